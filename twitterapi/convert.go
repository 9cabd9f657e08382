package twitterapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
)

// Converter turns one raw JSON value (as located by jsonparser) into T.
type Converter[T any] func(value []byte, dataType jsonparser.ValueType) (T, error)

// readOptional is the single lookup every parser goes through: a missing key
// or a JSON null is absent, anything else must convert.
func readOptional[T any](data []byte, convert Converter[T], keys ...string) (Optional[T], error) {
	value, dataType, _, err := jsonparser.Get(data, keys...)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return None[T](), nil
	}
	if err != nil {
		return None[T](), malformed(keys, err)
	}
	if dataType == jsonparser.Null {
		return None[T](), nil
	}

	converted, err := convert(value, dataType)
	if err != nil {
		return None[T](), annotate(keys, err)
	}
	return Some(converted), nil
}

// annotate prefixes nested parse errors with the key path they occurred
// under, keeping enum failures distinguishable from malformed ones.
func annotate(keys []string, err error) error {
	path := strings.Join(keys, ".")

	var enumErr *UnknownEnumValueError
	if errors.As(err, &enumErr) {
		if enumErr.Field == "" {
			enumErr.Field = path
		} else if path != "" {
			enumErr.Field = path + "." + enumErr.Field
		}
		return enumErr
	}

	var malformedErr *MalformedResponseError
	if errors.As(err, &malformedErr) {
		if path != "" {
			malformedErr.Field = path + "." + malformedErr.Field
		}
		return malformedErr
	}
	return malformed(keys, err)
}

func readRequired[T any](data []byte, convert Converter[T], keys ...string) (T, error) {
	var zero T
	opt, err := readOptional(data, convert, keys...)
	if err != nil {
		return zero, err
	}
	value, ok := opt.Get()
	if !ok {
		return zero, malformed(keys, nil)
	}
	return value, nil
}

func expectType(dataType, want jsonparser.ValueType) error {
	if dataType != want {
		return fmt.Errorf("expected %s, got %s", want, dataType)
	}
	return nil
}

func asString(value []byte, dataType jsonparser.ValueType) (string, error) {
	if err := expectType(dataType, jsonparser.String); err != nil {
		return "", err
	}
	return jsonparser.ParseString(value)
}

// asInt accepts JSON numbers and numeric strings; the API is not consistent
// about which one it sends for counters and positions.
func asInt(value []byte, dataType jsonparser.ValueType) (int, error) {
	switch dataType {
	case jsonparser.Number:
		n, err := jsonparser.ParseInt(value)
		return int(n), err
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", s)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected number, got %s", dataType)
	}
}

func asFloat(value []byte, dataType jsonparser.ValueType) (float64, error) {
	if err := expectType(dataType, jsonparser.Number); err != nil {
		return 0, err
	}
	return jsonparser.ParseFloat(value)
}

// asBool is the one boolean coercion rule: JSON booleans and the literal
// strings "true" / "false" are accepted, nothing else.
func asBool(value []byte, dataType jsonparser.ValueType) (bool, error) {
	switch dataType {
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return false, err
		}
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, fmt.Errorf("invalid boolean %q", s)
	default:
		return false, fmt.Errorf("expected boolean, got %s", dataType)
	}
}

// ParseTimestamp parses the API's ISO-8601 timestamps. A trailing Z is
// rewritten to +00:00 first.
func ParseTimestamp(s string) (time.Time, error) {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func asTime(value []byte, dataType jsonparser.ValueType) (time.Time, error) {
	s, err := asString(value, dataType)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTimestamp(s)
}

func asObject[T any](parse func([]byte) (T, error)) Converter[T] {
	return func(value []byte, dataType jsonparser.ValueType) (T, error) {
		if err := expectType(dataType, jsonparser.Object); err != nil {
			var zero T
			return zero, err
		}
		return parse(value)
	}
}

// asArray converts every element in order. An empty JSON array yields a
// non-nil empty slice so that Presence reports Empty.
func asArray[T any](convert Converter[T]) Converter[[]T] {
	return func(value []byte, dataType jsonparser.ValueType) ([]T, error) {
		if err := expectType(dataType, jsonparser.Array); err != nil {
			return nil, err
		}

		items := []T{}
		var itemErr error
		index := 0
		_, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, err error) {
			defer func() { index++ }()
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = fmt.Errorf("[%d]: %w", index, err)
				return
			}
			converted, err := convert(item, itemType)
			if err != nil {
				itemErr = annotate([]string{fmt.Sprintf("[%d]", index)}, err)
				return
			}
			items = append(items, converted)
		})
		if err != nil {
			return nil, err
		}
		if itemErr != nil {
			return nil, itemErr
		}
		return items, nil
	}
}

func asObjects[T any](parse func([]byte) (T, error)) Converter[[]T] {
	return asArray(asObject(parse))
}

func asStrings(value []byte, dataType jsonparser.ValueType) ([]string, error) {
	return asArray(asString)(value, dataType)
}

// asEnum fails closed on values outside the known set.
func asEnum[E ~string](enum string, known ...E) Converter[E] {
	return func(value []byte, dataType jsonparser.ValueType) (E, error) {
		s, err := asString(value, dataType)
		if err != nil {
			return "", err
		}
		for _, k := range known {
			if string(k) == s {
				return k, nil
			}
		}
		return "", &UnknownEnumValueError{Enum: enum, Value: s}
	}
}
