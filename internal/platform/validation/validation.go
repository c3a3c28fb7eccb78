// Package validation runs request payloads through struct-tag rules and
// route specific checks, collecting every failure as a field error.
package validation

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
)

const (
	TagRecentDate = "recentdate"

	dateLayout = "2006-01-02"
)

// FieldError is one failed rule for one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the aggregated result of a failed validation run.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Check is a rule that cannot be expressed as a struct tag, typically one
// that needs the database. It returns a field error when the rule fails
// and an error only when the rule could not be evaluated.
type Check func(ctx context.Context) (*FieldError, error)

type Validator struct {
	validate   *validator.Validate
	clock      clockwork.Clock
	dateWindow int
}

// New builds a validator whose recentdate rule accepts dates from
// windowMonths months ago up to now.
func New(clock clockwork.Clock, windowMonths int) *Validator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if windowMonths <= 0 {
		windowMonths = 2
	}

	v := &Validator{
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		clock:      clock,
		dateWindow: windowMonths,
	}
	v.validate.RegisterTagNameFunc(jsonFieldName)
	_ = v.validate.RegisterValidation(TagRecentDate, func(fl validator.FieldLevel) bool {
		return v.RecentDate(fl.Field().String()) == ""
	})

	return v
}

// Run validates payload and then every check. All failures are collected;
// the returned error is Errors when any rule failed.
func (v *Validator) Run(ctx context.Context, payload any, checks ...Check) error {
	var out Errors
	if payload != nil {
		out = append(out, v.Struct(ctx, payload)...)
	}

	for _, check := range checks {
		if check == nil {
			continue
		}
		fe, err := check(ctx)
		if err != nil {
			return err
		}
		if fe != nil {
			out = append(out, *fe)
		}
	}

	if len(out) > 0 {
		return out
	}
	return nil
}

// Struct applies the `validate` tags of payload.
func (v *Validator) Struct(ctx context.Context, payload any) Errors {
	err := v.validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "body", Message: err.Error()}}
	}

	out := make(Errors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: v.message(fe),
		})
	}
	return out
}

// RecentDate returns the reason raw is not an acceptable game date, or ""
// when it is.
func (v *Validator) RecentDate(raw string) string {
	date, err := ParseDate(raw)
	if err != nil {
		return "Invalid date format"
	}

	now := v.clock.Now()
	if date.After(now) {
		return "Date cannot be in the future"
	}
	if date.Before(now.AddDate(0, -v.dateWindow, 0)) {
		return fmt.Sprintf("Date cannot be more than %s in the past", monthsText(v.dateWindow))
	}
	return ""
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func (v *Validator) message(fe validator.FieldError) string {
	field := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if isString && fe.Param() == "1" {
			return field + " is required"
		}
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be no more than %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be no more than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, jsonName(fe.Param()))
	case TagRecentDate:
		if msg := v.RecentDate(fmt.Sprint(fe.Value())); msg != "" {
			return msg
		}
		return "Invalid date format"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// jsonName converts a Go field name used as a tag param (e.g. nefield=Home)
// to the snake_case name clients see.
func jsonName(goName string) string {
	var b strings.Builder
	for i, r := range goName {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func monthsText(n int) string {
	words := map[int]string{1: "one month", 2: "two months", 3: "three months"}
	if w, ok := words[n]; ok {
		return w
	}
	return fmt.Sprintf("%d months", n)
}
