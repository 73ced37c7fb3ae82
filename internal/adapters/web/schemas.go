package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/invopop/jsonschema"

	"job-board/internal/app"
)

// schemaFor reflects a closed JSON Schema (no additional properties, fully
// inlined) from a request payload struct.
func schemaFor(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}

// schema handles GET /schemas/{entity} — serves the payload schema clients
// should validate against before POSTing.
func (h *Handler) schema(w http.ResponseWriter, r *http.Request) {
	var s *jsonschema.Schema
	switch entity := chi.URLParam(r, "entity"); entity {
	case "company":
		s = schemaFor(app.CreateCompanyRequest{})
	case "job":
		s = schemaFor(app.CreateJobRequest{})
	case "user":
		s = schemaFor(app.RegisterUserRequest{})
	default:
		writeError(w, r, "no schema for entity "+entity, "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeJSON(w, s)
}
