package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"job-board/internal/app"
	"job-board/internal/core"
)

// companyFilterFromQuery builds the list filter from the URL query. A search
// key that is present but empty still filters; numeric parameters that fail
// to parse are treated as absent.
func companyFilterFromQuery(r *http.Request) core.CompanyFilter {
	q := r.URL.Query()

	var f core.CompanyFilter
	if q.Has("search") {
		s := q.Get("search")
		f.Search = &s
	}
	if n, err := strconv.Atoi(q.Get("min_employees")); err == nil {
		f.MinEmployees = &n
	}
	if n, err := strconv.Atoi(q.Get("max_employees")); err == nil {
		f.MaxEmployees = &n
	}
	return f
}

// listCompanies handles GET /companies.
func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.ListCompanies(r.Context(), companyFilterFromQuery(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}

	type response struct {
		Companies []core.CompanySummary `json:"companies"`
	}
	writeJSON(w, response{Companies: companies})
}

// getCompany handles GET /companies/{handle}.
func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetCompany(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		respondErr(w, r, err)
		return
	}

	type response struct {
		Company *core.CompanyDetail `json:"company"`
	}
	writeJSON(w, response{Company: detail})
}

// createCompany handles POST /companies.
func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	var req app.CreateCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := h.svc.CreateCompany(r.Context(), req)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	type response struct {
		Company *core.Company `json:"company"`
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, response{Company: company})
}

// updateCompany handles PATCH /companies/{handle}.
func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	var req app.UpdateCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := h.svc.UpdateCompany(r.Context(), chi.URLParam(r, "handle"), req)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	type response struct {
		Company *core.Company `json:"company"`
	}
	writeJSON(w, response{Company: company})
}

// deleteCompany handles DELETE /companies/{handle}.
func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCompany(r.Context(), chi.URLParam(r, "handle")); err != nil {
		respondErr(w, r, err)
		return
	}
	writeJSON(w, messageResponse{Message: "Company deleted"})
}

type messageResponse struct {
	Message string `json:"message"`
}
