package httpapi

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// formValue reads a parameter from either the query string or the POST
// form; legacy clients use both interchangeably.
func formValue(r *http.Request, key string) string {
	return r.FormValue(key)
}
