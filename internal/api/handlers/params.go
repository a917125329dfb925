package handlers

import (
	"fmt"
	"net/http"
	"time"
)

// ParseTimeParam разбирает query-параметр времени
// Принимает RFC3339 или дату YYYY-MM-DD
func ParseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("handlers: invalid time value %q", value)
	}
	return t, nil
}

// OptionalTimeParam разбирает необязательный query-параметр времени
// Возвращает nil, если параметр не передан
func OptionalTimeParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	t, err := ParseTimeParam(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
