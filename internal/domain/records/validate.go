package records

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
)

// Record is validated input ready for the document store: every schema
// field is present, defaults applied, absent optionals carrying nil.
type Record = map[string]any

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks input against the kind's constraint table and returns
// the record to persist. It walks fields in declared order and fails on
// the first violation. Unknown input fields are dropped, JSON null is
// treated the same as an absent field, and numeric bounds reject rather
// than clamp.
func Validate(kind Kind, input map[string]any) (Record, error) {
	fields, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}

	rec := make(Record, len(fields))
	for _, f := range fields {
		raw, present := input[f.Name]
		if raw == nil {
			present = false
		}
		if !present {
			if f.Required {
				return nil, &ValidationError{Field: f.Name, Reason: "required field is missing"}
			}
			rec[f.Name] = f.defaultValue()
			continue
		}
		value, err := f.check(raw)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = value
	}
	return rec, nil
}

func (f Field) check(raw any) (any, error) {
	switch f.Type {
	case TypeString, TypeEmail:
		s, ok := raw.(string)
		if !ok {
			return nil, &ValidationError{Field: f.Name, Reason: "must be a string"}
		}
		if f.Type == TypeEmail && !emailRe.MatchString(s) {
			return nil, &ValidationError{Field: f.Name, Reason: "must be a valid email address"}
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
			return nil, &ValidationError{
				Field:  f.Name,
				Reason: "must be one of: " + strings.Join(f.Enum, ", "),
			}
		}
		return s, nil

	case TypeNumber:
		n, ok := asNumber(raw)
		if !ok {
			return nil, &ValidationError{Field: f.Name, Reason: "must be a number"}
		}
		if f.Min != nil && n < *f.Min {
			return nil, &ValidationError{Field: f.Name, Reason: fmt.Sprintf("must be >= %g", *f.Min)}
		}
		return n, nil

	case TypeInt:
		n, ok := asNumber(raw)
		if !ok || n != math.Trunc(n) {
			return nil, &ValidationError{Field: f.Name, Reason: "must be an integer"}
		}
		if f.Min != nil && n < *f.Min {
			return nil, &ValidationError{Field: f.Name, Reason: fmt.Sprintf("must be >= %g", *f.Min)}
		}
		return int(n), nil

	case TypeBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, &ValidationError{Field: f.Name, Reason: "must be a boolean"}
		}
		return b, nil

	case TypeStringList:
		return f.checkStringList(raw)

	case TypeOrderItems:
		return f.checkOrderItems(raw)
	}
	return nil, fmt.Errorf("unhandled field type %q", f.Type)
}

func (f Field) checkStringList(raw any) (any, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &ValidationError{Field: f.Name, Reason: "must be a list of strings"}
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, &ValidationError{Field: f.Name, Reason: "must be a list of strings"}
}

func (f Field) checkOrderItems(raw any) (any, error) {
	var lines []map[string]any
	switch v := raw.(type) {
	case []map[string]any:
		lines = v
	case []any:
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, &ValidationError{Field: f.Name, Reason: "must be a list of order items"}
			}
			lines = append(lines, m)
		}
	default:
		return nil, &ValidationError{Field: f.Name, Reason: "must be a list of order items"}
	}

	out := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		itemID, _ := line["item_id"].(string)
		if itemID == "" {
			return nil, &ValidationError{Field: f.Name, Reason: "order item is missing item_id"}
		}
		qty, ok := asNumber(line["quantity"])
		if !ok || qty != math.Trunc(qty) {
			return nil, &ValidationError{Field: f.Name, Reason: "order item quantity must be an integer"}
		}
		if qty < 1 {
			return nil, &ValidationError{Field: f.Name, Reason: "order item quantity must be >= 1"}
		}
		out = append(out, map[string]any{"item_id": itemID, "quantity": int(qty)})
	}
	return out, nil
}

func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
