package database

import (
	"encoding/json"
	"fmt"

	"eventify/internal/domain"
)

// decodeList parses the JSON array stored under key. An absent key, an empty
// value or a JSON null all decode to an empty list.
func decodeList[T any](key, raw string, found bool) ([]T, error) {
	if !found || raw == "" {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode %q: %w: %v", key, domain.ErrCorruptData, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func encodeList[T any](key string, items []T) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode %q: %w", key, err)
	}
	return string(data), nil
}
