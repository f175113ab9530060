package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/core/scheduling"
	"github.com/brightfold/agency-ops/pkg/core/services"
	"github.com/brightfold/agency-ops/pkg/db"
)

// listBriefs handles GET /briefs
func (h *Handler) listBriefs(w http.ResponseWriter, r *http.Request) {
	records, err := h.database.GetBriefs(r.Context())
	if err != nil {
		h.logger.Error("Failed to list briefs", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list briefs")
		return
	}

	briefs := make([]briefJSON, 0, len(records))
	for _, record := range records {
		briefs = append(briefs, toBriefJSON(record))
	}

	writeJSON(w, http.StatusOK, briefs)
}

// getBrief handles GET /briefs/{id}
func (h *Handler) getBrief(w http.ResponseWriter, r *http.Request) {
	record, err := h.database.GetBriefByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "brief not found")
			return
		}
		h.logger.Error("Failed to fetch brief", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch brief")
		return
	}

	writeJSON(w, http.StatusOK, toBriefJSON(*record))
}

// findSlots handles GET /briefs/{id}/slots?phase=shoot&remaining=4
// Returns ranked candidate slots for one phase of the brief. An empty
// slot list is a 200, not an error.
func (h *Handler) findSlots(w http.ResponseWriter, r *http.Request) {
	briefID := chi.URLParam(r, "id")

	phase := model.Phase(r.URL.Query().Get("phase"))
	if !phase.IsValid() {
		writeError(w, http.StatusBadRequest, "phase must be shoot or edit")
		return
	}

	var remaining float64
	if raw := r.URL.Query().Get("remaining"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "remaining must be a positive number")
			return
		}
		remaining = parsed
	}

	result, err := services.PlanBriefBooking(r.Context(), h.database, h.cfg, h.logger, services.PlanBookingArgs{
		BriefID:        briefID,
		Phase:          phase,
		RemainingHours: remaining,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "brief not found")
			return
		}
		h.logger.Error("Failed to find slots", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to find slots")
		return
	}

	slots := make([]timeSlotJSON, 0, len(result.Slots))
	for _, slot := range result.Slots {
		slots = append(slots, toTimeSlotJSON(slot))
	}

	writeJSON(w, http.StatusOK, findSlotsResponse{
		BriefID:        result.Brief.ID,
		Phase:          string(result.Phase),
		RemainingHours: result.RemainingHours,
		Slots:          slots,
	})
}

// createBooking handles POST /briefs/{id}/bookings
// Replays the submitted slots through a booking session, so every
// conflict, overflow, and completeness rule applies before anything is
// written. Rule violations map to 409.
func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	briefID := chi.URLParam(r, "id")

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Slots) == 0 {
		writeError(w, http.StatusBadRequest, "at least one slot is required")
		return
	}

	briefRecord, err := h.database.GetBriefByID(r.Context(), briefID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "brief not found")
			return
		}
		h.logger.Error("Failed to fetch brief", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch brief")
		return
	}

	session := scheduling.NewSession(briefID, model.EstimatedHours{
		Shoot: briefRecord.ShootHours,
		Edit:  briefRecord.EditHours,
	})

	for _, slotJSON := range req.Slots {
		slot, err := slotJSON.toModel()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := session.Select(slot); err != nil {
			writeError(w, bookingErrorStatus(err), err.Error())
			return
		}
	}

	result, err := services.CommitBooking(r.Context(), h.database, h.logger, session)
	if err != nil {
		writeError(w, bookingErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, createBookingResponse{
		BriefID:    result.BriefID,
		EntryIDs:   result.EntryIDs,
		TotalHours: result.TotalHours,
	})
}

// cancelBooking handles DELETE /bookings/{entryID}
func (h *Handler) cancelBooking(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")

	if err := services.CancelBooking(r.Context(), h.database, h.logger, entryID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		h.logger.Error("Failed to cancel booking", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to cancel booking")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// assignStaff handles POST /briefs/{id}/assignments
func (h *Handler) assignStaff(w http.ResponseWriter, r *http.Request) {
	briefID := chi.URLParam(r, "id")

	var req assignStaffRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.StaffID == "" {
		writeError(w, http.StatusBadRequest, "staffId is required")
		return
	}

	result, err := services.AssignStaff(r.Context(), h.database, h.logger, briefID, req.StaffID, req.Force)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "brief or staff not found")
			return
		}
		// Capacity and state rule failures
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, assignStaffResponse{
		BriefID:        result.BriefID,
		StaffID:        result.StaffID,
		StaffName:      result.StaffName,
		RequiredHours:  result.RequiredHours,
		AvailableHours: result.AvailableHours,
		Forced:         result.Forced,
	})
}

// unassignStaff handles DELETE /briefs/{id}/assignments/{staffID}
func (h *Handler) unassignStaff(w http.ResponseWriter, r *http.Request) {
	briefID := chi.URLParam(r, "id")
	staffID := chi.URLParam(r, "staffID")

	if err := services.UnassignStaff(r.Context(), h.database, h.logger, briefID, staffID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "brief not found")
			return
		}
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bookingErrorStatus maps booking rule violations to HTTP statuses
func bookingErrorStatus(err error) int {
	var conflict *scheduling.ConflictError
	var overflow *scheduling.OverflowError
	var incomplete *scheduling.IncompleteBookingError

	switch {
	case errors.As(err, &conflict), errors.As(err, &overflow), errors.As(err, &incomplete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
