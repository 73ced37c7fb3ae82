package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"job-board/internal/app"
	"job-board/internal/core"
)

// jobFilterFromQuery builds the list filter from the URL query. Salary and
// equity bounds are decimals; values that fail to parse are treated as
// absent.
func jobFilterFromQuery(r *http.Request) core.JobFilter {
	q := r.URL.Query()

	var f core.JobFilter
	if q.Has("search") {
		s := q.Get("search")
		f.Search = &s
	}
	if d, err := decimal.NewFromString(q.Get("min_salary")); err == nil {
		f.MinSalary = &d
	}
	if d, err := decimal.NewFromString(q.Get("min_equity")); err == nil {
		f.MinEquity = &d
	}
	return f
}

// jobID parses the {id} URL parameter.
func jobID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "invalid job id", "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// jobEnvelope wraps a single job record. List rows carry the same wrapper,
// so a jobs listing is an array of {"job": {...}} objects.
type jobEnvelope struct {
	Job any `json:"job"`
}

// listJobs handles GET /jobs.
func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.ListJobs(r.Context(), jobFilterFromQuery(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}

	wrapped := make([]jobEnvelope, 0, len(jobs))
	for _, j := range jobs {
		wrapped = append(wrapped, jobEnvelope{Job: j})
	}

	type response struct {
		Jobs []jobEnvelope `json:"jobs"`
	}
	writeJSON(w, response{Jobs: wrapped})
}

// getJob handles GET /jobs/{id}.
func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}

	job, err := h.svc.GetJob(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	writeJSON(w, jobEnvelope{Job: job})
}

// createJob handles POST /jobs.
func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var req app.CreateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	job, err := h.svc.CreateJob(r.Context(), req)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, jobEnvelope{Job: job})
}

// updateJob handles PATCH /jobs/{id}.
func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}

	var req app.UpdateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	job, err := h.svc.UpdateJob(r.Context(), id, req)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	writeJSON(w, jobEnvelope{Job: job})
}

// deleteJob handles DELETE /jobs/{id}.
func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteJob(r.Context(), id); err != nil {
		respondErr(w, r, err)
		return
	}
	writeJSON(w, messageResponse{Message: "Job deleted"})
}
