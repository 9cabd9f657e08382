package twitterapi

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// splitEnvelope returns the data and includes objects of a 2xx body. includes
// is nil when the body has none. A body without data is malformed; when it
// carries an errors array instead, those are attached to the error.
func splitEnvelope(body []byte) ([]byte, []byte, error) {
	data, dataType, _, err := jsonparser.Get(body, "data")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, nil, malformed([]string{"data"}, err)
	}
	if err != nil || dataType == jsonparser.Null {
		apiErrs, parseErr := readOptional(body, asObjects(parseAPIError), "errors")
		if parseErr == nil {
			if list, ok := apiErrs.Get(); ok && len(list) > 0 {
				return nil, nil, malformed([]string{"data"}, APIErrors(list))
			}
		}
		return nil, nil, malformed([]string{"data"}, nil)
	}
	if dataType != jsonparser.Object {
		return nil, nil, malformed([]string{"data"}, fmt.Errorf("expected object, got %s", dataType))
	}

	includesRaw, includesType, _, err := jsonparser.Get(body, "includes")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
		return data, nil, nil
	case err != nil:
		return nil, nil, malformed([]string{"includes"}, err)
	case includesType == jsonparser.Null:
		return data, nil, nil
	case includesType != jsonparser.Object:
		return nil, nil, malformed([]string{"includes"}, fmt.Errorf("expected object, got %s", includesType))
	}
	return data, includesRaw, nil
}

func parseAPIError(raw []byte) (APIError, error) {
	var e APIError
	var err error
	fields := []struct {
		dst *string
		key string
	}{
		{&e.Title, "title"},
		{&e.Detail, "detail"},
		{&e.Type, "type"},
		{&e.ResourceType, "resource_type"},
		{&e.ResourceID, "resource_id"},
		{&e.Parameter, "parameter"},
		{&e.Value, "value"},
	}
	for _, f := range fields {
		var value Optional[string]
		if value, err = readOptional(raw, asText, f.key); err != nil {
			return APIError{}, err
		}
		*f.dst = value.OrElse("")
	}
	return e, nil
}

// asText renders any scalar as a string. Error payloads are informational,
// so they are not held to a type.
func asText(value []byte, dataType jsonparser.ValueType) (string, error) {
	if dataType == jsonparser.String {
		return jsonparser.ParseString(value)
	}
	return string(value), nil
}
