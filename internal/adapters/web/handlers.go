package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"job-board/internal/app"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{
		svc:       svc,
		jwtSecret: jwtSecret,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB
	r.Use(h.Authenticate)

	// ── Public ────────────────────────────────────────────────────────────────
	r.Get("/health", h.health)
	r.Get("/schemas/{entity}", h.schema)
	r.Post("/login", h.login)
	r.Post("/users", h.register)

	r.Get("/companies", h.listCompanies)
	r.Get("/companies/{handle}", h.getCompany)
	r.Get("/jobs", h.listJobs)
	r.Get("/jobs/{id}", h.getJob)

	// ── Admin writes ──────────────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth, h.RequireAdmin)
		r.Post("/companies", h.createCompany)
		r.Patch("/companies/{handle}", h.updateCompany)
		r.Delete("/companies/{handle}", h.deleteCompany)
		r.Post("/jobs", h.createJob)
		r.Patch("/jobs/{id}", h.updateJob)
		r.Delete("/jobs/{id}", h.deleteJob)
	})

	// ── Logged-in reads ───────────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Get("/users", h.listUsers)
		r.Get("/users/{username}", h.getUser)
	})

	// ── Self-service writes ───────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth, h.RequireSelf)
		r.Patch("/users/{username}", h.updateUser)
		r.Delete("/users/{username}", h.deleteUser)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
