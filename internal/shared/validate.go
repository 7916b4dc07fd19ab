package shared

import (
	"encoding/json"
	"strconv"
)

// Field validators. Each takes the logical field name plus a raw,
// still-untyped value (as handed over by the route layer) and either
// returns the normalized value or an InvalidAttributeError carrying the
// field name. They perform no I/O; existence checks live in the services.

// Identifier validates an id field: integers and integer-valued strings
// are accepted and normalized to int64, everything else (booleans,
// floats, negative numbers, nil) is rejected. Zero passes the shape
// check; whether a zero id resolves to a row is an existence question,
// not a shape question.
func Identifier(attr string, value any) (int64, error) {
	n, err := nonNegativeInt(value)
	if err != nil {
		return 0, NewInvalidAttribute(attr)
	}
	return n, nil
}

// UnixTimestamp validates a non-negative unix timestamp with the same
// acceptance rules as Identifier.
func UnixTimestamp(attr string, value any) (int64, error) {
	n, err := nonNegativeInt(value)
	if err != nil {
		return 0, NewInvalidAttribute(attr)
	}
	return n, nil
}

// Name validates a name field: only native strings are accepted, with no
// coercion from numbers or booleans.
func Name(attr string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", NewInvalidAttribute(attr)
	}
	return s, nil
}

// Text validates a free-text field. Same rules as Name; kept separate so
// each entity field names the validator that governs it.
func Text(attr string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", NewInvalidAttribute(attr)
	}
	return s, nil
}

// Bool validates a strict boolean. 0/1 and "true"/"false" are rejected.
func Bool(attr string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, NewInvalidAttribute(attr)
	}
	return b, nil
}

// ScoreValue validates a score result string: a non-negative integer, a
// decimal, or a duration of the form H:MM or H:MM:SS.
func ScoreValue(attr string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", NewInvalidAttribute(attr)
	}
	if !IsScoreValue(s) {
		return "", NewInvalidAttribute(attr)
	}
	return s, nil
}

// nonNegativeInt normalizes integer-like input. Booleans and floats are
// rejected even where the language would happily convert them; numeric
// strings must parse as base-10 integers.
func nonNegativeInt(value any) (int64, error) {
	var n int64
	switch v := value.(type) {
	case bool:
		return 0, errNotInt
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		n = int64(v)
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		n = int64(v)
	case json.Number:
		parsed, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0, errNotInt
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errNotInt
		}
		n = parsed
	default:
		return 0, errNotInt
	}
	if n < 0 {
		return 0, errNotInt
	}
	return n, nil
}

var errNotInt = Error("not a non-negative integer")
