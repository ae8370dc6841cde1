package usecase

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"bookshop_billing/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validatorOnce sync.Once
	entityRules   *validator.Validate
)

// entityValidator returns the validator shared by every entity. Rules are the
// `validate` struct tags of the entity types.
func entityValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
			if d, ok := f.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
		entityRules = v
	})
	return entityRules
}

// validateEntity checks entity against its tag schema and returns a
// ValidationError naming the first failing field.
func validateEntity(entity any) error {
	err := entityValidator().Struct(entity)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Message: describeRule(fe)}
	}
	return &ValidationError{Message: err.Error()}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid e-mail address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "datetime":
		return "must be a date formatted as YYYY-MM-DD"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// parseCalendarDate validates a YYYY-MM-DD date and returns it normalized.
func parseCalendarDate(raw string) (time.Time, bool) {
	t, err := time.Parse(entities.BillDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
