package validation

import (
	"context"
	"strings"
)

// AtLeastOne fails on "body" unless one of present is true. fields names
// the alternatives in the message.
func AtLeastOne(fields []string, present ...bool) Check {
	return func(context.Context) (*FieldError, error) {
		for _, ok := range present {
			if ok {
				return nil, nil
			}
		}
		return &FieldError{
			Field:   "body",
			Message: "At least one of the following fields is required: " + strings.Join(fields, ", "),
		}, nil
	}
}

// NotExists fails field with message when exists reports true.
func NotExists(field, message string, exists func(ctx context.Context) (bool, error)) Check {
	return func(ctx context.Context) (*FieldError, error) {
		found, err := exists(ctx)
		if err != nil {
			return nil, err
		}
		if found {
			return &FieldError{Field: field, Message: message}, nil
		}
		return nil, nil
	}
}

// Exists is the inverse of NotExists.
func Exists(field, message string, exists func(ctx context.Context) (bool, error)) Check {
	return func(ctx context.Context) (*FieldError, error) {
		found, err := exists(ctx)
		if err != nil {
			return nil, err
		}
		if !found {
			return &FieldError{Field: field, Message: message}, nil
		}
		return nil, nil
	}
}
