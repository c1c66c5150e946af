package service

import (
	"context"
	"errors"
	"strings"

	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/db"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/auth/repo"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/utils"

	"go.uber.org/zap"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgAccountLocked      = "Account is temporarily locked due to too many failed login attempts. Please try again later."
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	hasher    *utils.PasswordHasher
	tokens    *utils.TokenIssuer
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Service {
	cfg := appService.Config()
	return &Service{
		AppService: appService,
		userStore:  userStore,
		hasher:     utils.NewPasswordHasher(cfg.Security),
		tokens:     utils.NewTokenIssuer(cfg.JWT).WithClock(appService.Now),
	}
}

// AuthResult is returned by login and registration.
type AuthResult struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *Service) lockPolicy() LockPolicy {
	sec := s.Config().Security
	return LockPolicy{MaxAttempts: sec.MaxLoginAttempts, Duration: sec.LockDuration}
}

func (s *Service) Tokens() *utils.TokenIssuer {
	return s.tokens
}

// Authenticate verifies a username or email with a password and runs the
// lockout machine. Unknown and deactivated accounts get the same error as a
// wrong password.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*AuthResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, platformservice.NewValidationError("Username or email and password are required")
	}

	user, err := s.userStore.FindByLogin(ctx, identifier)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewUnauthorizedError(msgInvalidCredentials)
		}
		return nil, platformservice.WrapInternal("Login failed", err)
	}
	if !user.IsActive {
		return nil, platformservice.NewUnauthorizedError(msgInvalidCredentials)
	}

	now := s.Now()
	policy := s.lockPolicy()
	state := EvaluateLockState(now, user.LoginAttempts, user.LockUntil)
	if state.Locked {
		return nil, platformservice.NewLockedError(msgAccountLocked)
	}

	if !s.hasher.Verify(password, user.Password) {
		next := policy.Fail(now, state)
		if err := s.userStore.UpdateLoginState(ctx, user.ID, next.Attempts, next.LockUntil, nil); err != nil {
			return nil, platformservice.WrapInternal("Login failed", err)
		}
		if next.Locked {
			s.Logger().Warn("account locked after failed logins",
				zap.Uint("user_id", user.ID),
				zap.Int("attempts", next.Attempts),
				zap.Time("lock_until", *next.LockUntil),
			)
		}
		return nil, platformservice.NewUnauthorizedError(msgInvalidCredentials)
	}

	next := policy.Succeed()
	if err := s.userStore.UpdateLoginState(ctx, user.ID, next.Attempts, next.LockUntil, &now); err != nil {
		return nil, platformservice.WrapInternal("Login failed", err)
	}
	user.LoginAttempts = next.Attempts
	user.LockUntil = next.LockUntil
	user.LastLogin = &now

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, platformservice.WrapInternal("Login failed", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Register creates an active account with the configured self-registration
// role and signs the caller in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var fields []platformservice.FieldError
	if ok, msg := utils.ValidateUsername(username); !ok {
		fields = append(fields, platformservice.FieldError{Field: "username", Message: msg})
	}
	if ok, msg := utils.ValidatePassword(in.Password); !ok {
		fields = append(fields, platformservice.FieldError{Field: "password", Message: msg})
	}
	if email == "" {
		fields = append(fields, platformservice.FieldError{Field: "email", Message: "Email is required"})
	}
	if len(fields) > 0 {
		return nil, platformservice.NewFieldValidationError("Validation failed", fields)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, platformservice.WrapInternal("Registration failed", err)
	}

	role := s.Config().Security.RegisterRole
	if !consts.IsValidRole(role) {
		role = consts.RoleUser
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		if field, ok := db.UniqueViolation(err, string(consts.UserFieldUsername), string(consts.UserFieldEmail)); ok {
			if field != "" {
				return nil, platformservice.NewFieldConflictError(field)
			}
			return nil, platformservice.NewConflictError("User with this email or username already exists")
		}
		return nil, platformservice.WrapInternal("Registration failed", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, platformservice.WrapInternal("Registration failed", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *Service) Me(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("User not found")
		}
		return nil, platformservice.WrapInternal("Failed to load profile", err)
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(currentPassword, user.Password) {
		return platformservice.NewFieldValidationError("Current password is incorrect",
			[]platformservice.FieldError{{Field: "currentPassword", Message: "is incorrect"}})
	}
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return platformservice.NewFieldValidationError(msg,
			[]platformservice.FieldError{{Field: "newPassword", Message: msg}})
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return platformservice.WrapInternal("Failed to change password", err)
	}
	if err := s.userStore.UpdatePasswordByID(ctx, userID, hashed); err != nil {
		return platformservice.WrapInternal("Failed to change password", err)
	}
	return nil
}

// AuthorizeToken verifies a bearer token and reloads the account it names.
// The account's current state decides access, not the token claims.
func (s *Service) AuthorizeToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, utils.ErrExpiredToken) {
			return nil, platformservice.NewUnauthorizedError("Token expired")
		}
		return nil, platformservice.NewUnauthorizedError("Invalid token")
	}

	user, err := s.userStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewUnauthorizedError("User not found")
		}
		return nil, platformservice.WrapInternal("Authentication failed", err)
	}
	if !user.IsActive {
		return nil, platformservice.NewInactiveError("Account is deactivated")
	}
	if user.IsLocked(s.Now()) {
		return nil, platformservice.NewLockedError(msgAccountLocked)
	}
	return user, nil
}
