package validator

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	global *validator.Validate
	// Vietnamese mobile numbers, local (0xxxxxxxxx) or international (84xxxxxxxxx / +84...).
	phoneRegex = regexp.MustCompile(`^(\+?84|0)(3|5|7|8|9)[0-9]{8}$`)
)

const (
	ErrFieldRequired      = "Trường bắt buộc"
	ErrInvalidFormat      = "Sai định dạng"
	ErrFieldExceedsMaxLen = "Vượt quá độ dài cho phép"
	ErrFieldBelowMinLen   = "Chưa đủ độ dài tối thiểu"
	ErrFieldExceedsMaxVal = "Vượt quá giá trị cho phép"
	ErrFieldBelowMinVal   = "Nhỏ hơn giá trị tối thiểu"
	ErrUnknownValidation  = "Dữ liệu không hợp lệ"
)

func init() {
	SetValidator(New())
}

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone_vn", validatePhone)
	_ = v.RegisterValidation("event_type", validateEnum)
	_ = v.RegisterValidation("field_type", validateEnum)
	return v
}

func SetValidator(v *validator.Validate) {
	global = v
}

func Validator() *validator.Validate {
	return global
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

// validateEnum delegates to the field's own Valid method.
func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	if v, ok := field.Interface().(interface{ Valid() bool }); ok {
		return v.Valid()
	}
	return false
}

func IsPhone(s string) bool {
	return phoneRegex.MatchString(strings.ReplaceAll(s, " ", ""))
}

// Validate checks structure and returns the first failure as a readable error.
func Validate(ctx context.Context, structure any) error {
	return parseValidationErrors(Validator().StructCtx(ctx, structure))
}

// Var checks a single value against a tag expression such as "email".
func Var(ctx context.Context, value any, tag string) error {
	return parseValidationErrors(Validator().VarCtx(ctx, value, tag))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("invalid validation target: %w", err)
		}
		return err
	}
	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required", "required_if":
		msg = ErrFieldRequired
	case "email", "phone_vn", "url", "numeric", "datetime", "event_type", "field_type":
		msg = ErrInvalidFormat
	case "max":
		msg = ErrFieldExceedsMaxLen
	case "min":
		msg = ErrFieldBelowMinLen
	case "lt", "lte":
		msg = ErrFieldExceedsMaxVal
	case "gt", "gte", "gtfield":
		msg = ErrFieldBelowMinVal
	default:
		msg = ErrUnknownValidation
	}
	if ve.Namespace() == "" {
		return errors.New(msg)
	}
	return errors.New(msg + ": " + ve.Field())
}
