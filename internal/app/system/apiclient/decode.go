package apiclient

import (
	"bytes"
	"encoding/json"
)

// DecodeCollection resolves a collection response body.
//
//   - {"results": [...]} yields the results array
//   - [...] yields the array itself
//   - any other valid JSON yields an empty, non-nil slice
//
// Only a body that is not valid JSON is an error.
func DecodeCollection(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		var probe any
		err := json.Unmarshal(trimmed, &probe)
		return nil, &DecodeError{Err: err}
	}

	out := []json.RawMessage{}
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, &DecodeError{Err: err}
		}
	case '{':
		var env map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, &DecodeError{Err: err}
		}
		results := bytes.TrimSpace(env["results"])
		if len(results) > 0 && results[0] == '[' {
			if err := json.Unmarshal(results, &out); err != nil {
				return nil, &DecodeError{Err: err}
			}
		}
	}
	return out, nil
}
