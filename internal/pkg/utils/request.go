package utils

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ParseIntURLParam reads a chi URL parameter and requires it to be a positive integer.
func ParseIntURLParam(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, strconv.ErrRange
	}
	return value, nil
}
