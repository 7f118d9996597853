package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// resolveFormat applies the default style when the request omitted one.
func resolveFormat(format *string, fallback string) string {
	if format == nil {
		return fallback
	}
	return *format
}

// wantsDetail reports whether the caller asked for extracted fields via
// ?detail=true.
func wantsDetail(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("detail")
	if raw == "" {
		return false, nil
	}
	detail, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidDetailParam, raw)
	}
	return detail, nil
}
