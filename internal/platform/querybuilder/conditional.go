package querybuilder

import (
	"reflect"
	"regexp"

	crerr "github.com/cockroachdb/errors"
)

// Table is a trusted table identifier. Only the constants below are ever
// interpolated into SQL.
type Table string

const (
	TableTeams Table = "teams"
	TableGames Table = "games"
)

var (
	ErrNoFields           = crerr.New("no fields to update")
	ErrFieldValueMismatch = crerr.New("fields and values must be of equal length")
	ErrInvalidIdentifier  = crerr.New("invalid sql identifier")
)

var identifierRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ConditionalUpdate builds an UPDATE of the row with the given id that
// assigns only the fields whose name is present. A nil field name or a nil
// value marks an absent entry and is skipped.
//
// Field names are written into the statement as raw identifiers: callers
// must pass statically known column names only.
func ConditionalUpdate(table Table, id any, fields []*string, values []any) (*UpdateBuilder, error) {
	if !identifierRegex.MatchString(string(table)) {
		return nil, crerr.Wrapf(ErrInvalidIdentifier, "table %q", table)
	}

	presentFields := make([]string, 0, len(fields))
	for _, field := range fields {
		if field == nil {
			continue
		}
		presentFields = append(presentFields, *field)
	}

	presentValues := make([]any, 0, len(values))
	for _, value := range values {
		if isAbsent(value) {
			continue
		}
		presentValues = append(presentValues, value)
	}

	if len(presentFields) == 0 {
		return nil, ErrNoFields
	}
	if len(presentFields) != len(presentValues) {
		return nil, crerr.Wrapf(ErrFieldValueMismatch, "fields=%d values=%d", len(presentFields), len(presentValues))
	}

	builder := Update(table)
	for i, field := range presentFields {
		if !identifierRegex.MatchString(field) {
			return nil, crerr.Wrapf(ErrInvalidIdentifier, "field %q", field)
		}
		builder.Set(field, presentValues[i])
	}

	return builder.Where(Eq("id", id)).Suffix("RETURNING *"), nil
}

// Field returns a pointer to name when present is true and nil otherwise,
// for building the sparse field list of ConditionalUpdate.
func Field(name string, present bool) *string {
	if !present {
		return nil
	}
	return &name
}

// Value mirrors Field for the value list.
func Value(value any, present bool) any {
	if !present {
		return nil
	}
	return value
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
