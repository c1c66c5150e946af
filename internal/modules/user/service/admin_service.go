package service

import (
	"context"
	"strings"

	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/db"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/resource"
	moduledto "pawcare-admin/internal/modules/user/dto"
	"pawcare-admin/internal/modules/user/repo"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/utils"
)

var userSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"lastLogin": "last_login",
	"name":      "username",
	"username":  "username",
	"email":     "email",
}

func (s *Service) ListUsers(ctx context.Context, req moduledto.AdminUserListRequest) (*resource.Page[model.User], error) {
	page, limit := resource.NormalizePage(req.Page, req.Limit)

	order := "created_at desc"
	if column, ok := userSortColumns[req.SortBy]; ok {
		dir := "desc"
		if strings.EqualFold(req.SortOrder, "asc") {
			dir = "asc"
		}
		order = column + " " + dir
	}

	users, total, err := s.userStore.AdminListUsers(ctx, repo.UserFilter{
		Search:   req.Search,
		Role:     req.Role,
		IsActive: req.IsActive,
	}, order, (page-1)*limit, limit)
	if err != nil {
		return nil, platformservice.WrapInternal("Failed to fetch users", err)
	}
	return &resource.Page[model.User]{Items: users, Pagination: resource.NewPagination(page, limit, total)}, nil
}

func (s *Service) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("User not found")
		}
		return nil, platformservice.WrapInternal("Failed to fetch user", err)
	}
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, req moduledto.AdminCreateUserRequest) (*model.User, error) {
	if err := validateCredentials(strings.TrimSpace(req.Username), req.Password); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = consts.RoleUser
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, platformservice.WrapInternal("Failed to create user", err)
	}

	user := &model.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     role,
		IsActive: active,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, writeError(err, "Failed to create user")
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uint, req moduledto.AdminUserUpdateRequest) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if ok, msg := utils.ValidateUsername(username); !ok {
			return nil, platformservice.NewFieldValidationError(msg, []platformservice.FieldError{{Field: "username", Message: msg}})
		}
		user.Username = username
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		if !consts.IsValidRole(*req.Role) {
			return nil, platformservice.NewFieldValidationError("Invalid role", []platformservice.FieldError{{Field: "role", Message: "is invalid"}})
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		if ok, msg := utils.ValidatePassword(*req.Password); !ok {
			return nil, platformservice.NewFieldValidationError(msg, []platformservice.FieldError{{Field: "password", Message: msg}})
		}
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, platformservice.WrapInternal("Failed to update user", err)
		}
		user.Password = hashed
	}

	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, writeError(err, "Failed to update user")
	}
	return user, nil
}

// DeleteUser hard deletes an account. Admins cannot delete themselves.
func (s *Service) DeleteUser(ctx context.Context, actorID, id uint) error {
	if actorID == id {
		return platformservice.NewValidationError("Cannot delete your own account")
	}
	if err := s.userStore.DeleteByID(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return platformservice.NewNotFoundError("User not found")
		}
		return platformservice.WrapInternal("Failed to delete user", err)
	}
	return nil
}

func (s *Service) ToggleStatus(ctx context.Context, actorID, id uint) (*model.User, error) {
	if actorID == id {
		return nil, platformservice.NewValidationError("Cannot deactivate your own account")
	}
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	if err := s.userStore.UpdateActiveByID(ctx, id, user.IsActive); err != nil {
		return nil, platformservice.WrapInternal("Failed to update user status", err)
	}
	return user, nil
}

// ResetPassword sets a new password and clears any lockout.
func (s *Service) ResetPassword(ctx context.Context, id uint, newPassword string) error {
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return platformservice.NewFieldValidationError(msg, []platformservice.FieldError{{Field: "newPassword", Message: msg}})
	}
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return platformservice.WrapInternal("Failed to reset password", err)
	}
	if err := s.userStore.UpdatePasswordByID(ctx, id, hashed); err != nil {
		return platformservice.WrapInternal("Failed to reset password", err)
	}
	if err := s.userStore.UpdateLoginState(ctx, id, 0, nil, nil); err != nil {
		return platformservice.WrapInternal("Failed to reset password", err)
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (*repo.UserStats, error) {
	stats, err := s.userStore.Stats(ctx, s.Now())
	if err != nil {
		return nil, platformservice.WrapInternal("Failed to fetch user statistics", err)
	}
	return stats, nil
}

func validateCredentials(username, password string) error {
	var fields []platformservice.FieldError
	if ok, msg := utils.ValidateUsername(username); !ok {
		fields = append(fields, platformservice.FieldError{Field: "username", Message: msg})
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		fields = append(fields, platformservice.FieldError{Field: "password", Message: msg})
	}
	if len(fields) > 0 {
		return platformservice.NewFieldValidationError("Validation failed", fields)
	}
	return nil
}

func writeError(err error, fallback string) error {
	if field, ok := db.UniqueViolation(err, string(consts.UserFieldUsername), string(consts.UserFieldEmail)); ok {
		if field != "" {
			return platformservice.NewFieldConflictError(field)
		}
		return platformservice.NewConflictError("User with this email or username already exists")
	}
	return platformservice.WrapInternal(fallback, err)
}
