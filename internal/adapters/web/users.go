package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"job-board/internal/app"
	"job-board/internal/core"
)

// listUsers handles GET /users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}

	type response struct {
		Users []core.UserSummary `json:"users"`
	}
	writeJSON(w, response{Users: users})
}

// getUser handles GET /users/{username}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondErr(w, r, err)
		return
	}

	type response struct {
		User *core.UserSummary `json:"user"`
	}
	writeJSON(w, response{User: user})
}

// updateUser handles PATCH /users/{username}.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req app.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.UpdateUser(r.Context(), chi.URLParam(r, "username"), req)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	type response struct {
		User *core.UserSummary `json:"user"`
	}
	writeJSON(w, response{User: user})
}

// deleteUser handles DELETE /users/{username}.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteUser(r.Context(), chi.URLParam(r, "username")); err != nil {
		respondErr(w, r, err)
		return
	}
	writeJSON(w, messageResponse{Message: "user deleted"})
}
