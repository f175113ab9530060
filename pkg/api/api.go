// Package api exposes the booking services over HTTP. Handlers translate
// requests and responses to and from the service layer; all domain rules
// live below this package.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/internal/config"
	"github.com/brightfold/agency-ops/pkg/db"
)

// Handler holds all HTTP handlers for the booking API.
type Handler struct {
	database db.Store
	cfg      *config.Config
	logger   *zap.Logger
}

// NewHandler constructs a Handler.
func NewHandler(database db.Store, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{database: database, cfg: cfg, logger: logger}
}

// Router builds the chi router with the full route tree and middleware stack.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	r.Get("/health", healthCheck)

	r.Route("/staff", func(r chi.Router) {
		r.Get("/", h.listStaff)
		r.Get("/utilization", h.teamUtilization)
		r.Get("/{staffID}", h.getStaff)
	})

	r.Get("/briefs", h.listBriefs)
	r.Route("/briefs/{id}", func(r chi.Router) {
		r.Get("/", h.getBrief)
		r.Get("/slots", h.findSlots)
		r.Post("/bookings", h.createBooking)
		r.Post("/assignments", h.assignStaff)
		r.Delete("/assignments/{staffID}", h.unassignStaff)
	})

	r.Delete("/bookings/{entryID}", h.cancelBooking)

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// healthCheck handles GET /health
func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
