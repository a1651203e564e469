package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/odoo-client/internal/constants"
)

// parseArgs decodes the positional arguments of an operation. An empty input
// yields an empty list.
func parseArgs(raw string) ([]interface{}, error) {
	if strings.TrimSpace(raw) == "" {
		return []interface{}{}, nil
	}

	value, err := decodeJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidJSONArgs, err)
	}

	args, ok := value.([]interface{})
	if !ok {
		return nil, constants.ErrInvalidJSONArgs
	}

	return args, nil
}

// parseKwargs decodes the keyword arguments of an operation. An empty input
// yields nil, which the API sends as an empty mapping.
func parseKwargs(raw string) (map[string]interface{}, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	value, err := decodeJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidJSONKwargs, err)
	}

	kwargs, ok := value.(map[string]interface{})
	if !ok {
		return nil, constants.ErrInvalidJSONKwargs
	}

	return kwargs, nil
}

// decodeJSON keeps integral numbers as ints so record ids are not sent as doubles.
func decodeJSON(raw string) (interface{}, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var value interface{}

	err := decoder.Decode(&value)
	if err != nil {
		return nil, err
	}

	if decoder.More() {
		return nil, constants.ErrTrailingJSONData
	}

	return normalizeNumbers(value), nil
}

func normalizeNumbers(value interface{}) interface{} {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}

		f, err := v.Float64()
		if err != nil {
			return v.String()
		}

		return f
	case []interface{}:
		for i := range v {
			v[i] = normalizeNumbers(v[i])
		}

		return v
	case map[string]interface{}:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}

		return v
	default:
		return v
	}
}
