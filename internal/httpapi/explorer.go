package httpapi

import (
	"io/fs"
	"mime"
	"net/http"
	"path"

	chi "github.com/go-chi/chi/v5"
	"github.com/swaggo/swag"

	_ "github.com/ossian/todo-api/docs" // registers the OpenAPI template
	"github.com/ossian/todo-api/internal/errs"
)

// explorer serves the documentation browser. The swagger.json tail renders the
// OpenAPI document at request time; any other tail is looked up in the bundled
// swagger-ui distribution and served verbatim.
func (s *Server) explorer(w http.ResponseWriter, r *http.Request) {
	tail := chi.URLParam(r, "*")

	if tail == "swagger.json" {
		spec, err := swag.ReadDoc()
		if err != nil {
			writeErr(w, errs.Internal("Error generating OpenAPI spec: "+err.Error()))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(spec))
		return
	}

	data, err := fs.ReadFile(s.ui, tail)
	if err != nil {
		writeErr(w, errs.NotFound("path not found: "+tail))
		return
	}
	ct := mime.TypeByExtension(path.Ext(tail))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
