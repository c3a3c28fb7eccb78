package validation

import "sort"

// StringFields reports fields of a decoded JSON object that are present
// but not strings. Null counts as absent.
func StringFields(body map[string]any, fields ...string) Errors {
	return typeErrors(body, fields, "must be a string", func(v any) bool {
		_, ok := v.(string)
		return ok
	})
}

// NumberFields is StringFields for JSON numbers.
func NumberFields(body map[string]any, fields ...string) Errors {
	return typeErrors(body, fields, "must be a number", func(v any) bool {
		switch v.(type) {
		case float64, int64, int:
			return true
		default:
			return false
		}
	})
}

func typeErrors(body map[string]any, fields []string, msg string, ok func(any) bool) Errors {
	var out Errors
	for _, field := range fields {
		v, present := body[field]
		if !present || v == nil || ok(v) {
			continue
		}
		out = append(out, FieldError{Field: field, Message: field + " " + msg})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
