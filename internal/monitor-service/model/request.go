package model

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Request is the stored HTTP request a monitor re-executes.
type Request struct {
	ID      string
	Method  string
	URL     string
	Headers datatypes.JSON
	Body    string
}

// HeaderMap flattens the stored JSON headers into a string map.
func (r Request) HeaderMap() (map[string]string, error) {
	if len(r.Headers) == 0 {
		return map[string]string{}, nil
	}
	var raw map[string]any
	if err := json.Unmarshal(r.Headers, &raw); err != nil {
		return nil, err
	}
	headers := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			headers[k] = s
			continue
		}
		headers[k] = fmt.Sprint(v)
	}
	return headers, nil
}
