package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/ossian/todo-api/internal/errs"
)

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr renders the error envelope; the status rides on the transport only.
func writeErr(w http.ResponseWriter, e *errs.Error) {
	toJSON(w, e.Status, e)
}
