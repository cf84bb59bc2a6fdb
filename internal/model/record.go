package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record field names used by the lookup API.
const (
	FieldName        = "name"
	FieldFatherName  = "father_name"
	FieldFathersName = "fathersname"
	FieldAddress     = "address"
	FieldMobile      = "mobile"
	FieldError       = "error"
)

// Record is one person entry returned by the lookup API.
// Values are kept exactly as decoded from JSON.
type Record map[string]any

// String returns the value stored under key rendered as a string.
// The boolean is false when the key is missing or holds JSON null.
// Numbers and booleans are formatted without loss; nested values fall back
// to their fmt representation.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}

	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return fmt.Sprint(val), true
	}
}

// value returns String(key) or the empty string.
func (r Record) value(key string) string {
	s, _ := r.String(key)
	return s
}

// Name returns the raw name, or "" when absent.
func (r Record) Name() string {
	return r.value(FieldName)
}

// FatherName returns the raw father's name. Providers use either
// "father_name" or "fathersname"; the former wins when both are set.
func (r Record) FatherName() string {
	if s, ok := r.String(FieldFatherName); ok {
		return s
	}
	return r.value(FieldFathersName)
}

// Address returns the raw address, or "" when absent.
func (r Record) Address() string {
	return r.value(FieldAddress)
}

// Mobile returns the raw mobile number, or "" when absent.
func (r Record) Mobile() string {
	return r.value(FieldMobile)
}
