package apiutil

import (
	"net/http"
	"strings"
)

// FormValues flattens a parsed request form, keeping the first value of each key.
// Callers must parse the form first.
func FormValues(r *http.Request) map[string]string {
	values := make(map[string]string, len(r.Form))
	for key, vals := range r.Form {
		if len(vals) == 0 {
			continue
		}
		values[key] = vals[0]
	}
	return values
}

// IsMultipart reports whether the request body is multipart/form-data.
func IsMultipart(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "multipart/form-data")
}
