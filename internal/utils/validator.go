package utils

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/platform/service"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[1-9][\d]{0,15}$`)

	enumSets = map[string][]string{
		"role":               consts.Roles,
		"specialization":     consts.Specializations,
		"availability":       consts.Availabilities,
		"food_category":      consts.FoodCategories,
		"age_group":          consts.AgeGroups,
		"education_category": consts.EducationCategories,
		"difficulty":         consts.Difficulties,
		"report_status":      consts.ReportStatuses,
		"report_priority":    consts.ReportPriorities,
		"animal_condition":   consts.AnimalConditions,
	}

	validate     = newValidator()
	ginHooksOnce sync.Once
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerRules(v)
	return v
}

func registerRules(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return IsHTTPURL(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		ok, _ := ValidateUsername(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		ok, _ := ValidatePassword(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		return inSet(fl.Field().String(), enumSets[fl.Param()])
	})
}

// RegisterGinValidations installs the custom rules on gin's binding engine so
// request DTOs can use them in binding tags.
func RegisterGinValidations() {
	ginHooksOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerRules(v)
		}
	})
}

// ValidateStruct checks validate tags and returns a ServiceError carrying one
// FieldError per violation.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return ToValidationError(err)
	}
	return nil
}

// ToValidationError converts binding or validation errors to a validation
// ServiceError. Unknown errors become a generic "invalid request body".
func ToValidationError(err error) error {
	fields := FieldErrors(err)
	if len(fields) == 0 {
		return service.NewValidationError("Invalid request body")
	}
	return service.NewFieldValidationError("Validation failed", fields)
}

func FieldErrors(err error) []service.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]service.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, service.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("cannot exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "phone":
		return "must be a valid phone number"
	case "httpurl":
		return "must be a valid URL starting with http:// or https://"
	case "username":
		return "can only contain letters, numbers, and underscores"
	case "strongpassword":
		return "must contain at least one lowercase letter, one uppercase letter, and one number"
	case "enum":
		return "must be one of: " + strings.Join(enumSets[fe.Param()], ", ")
	default:
		return "is invalid"
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func inSet(value string, set []string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// ValidateUsername checks length and charset.
func ValidateUsername(username string) (bool, string) {
	if len(username) < 3 || len(username) > 30 {
		return false, "Username must be between 3 and 30 characters"
	}
	if !usernamePattern.MatchString(username) {
		return false, "Username can only contain letters, numbers, and underscores"
	}
	return true, ""
}

// ValidatePassword requires 6..72 bytes with a lowercase letter, an
// uppercase letter and a digit. 72 is the bcrypt input ceiling.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 6 {
		return false, "Password must be at least 6 characters long"
	}
	if len(password) > 72 {
		return false, "Password cannot exceed 72 characters"
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return false, "Password must contain at least one lowercase letter, one uppercase letter, and one number"
	}
	return true, ""
}

func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
