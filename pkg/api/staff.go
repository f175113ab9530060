package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/core/services"
	"github.com/brightfold/agency-ops/pkg/db"
)

// listStaff handles GET /staff
// Returns the roster with each member's remaining available hours.
// Pass ?active=true to hide inactive staff.
func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	overviews, err := services.ListStaff(r.Context(), h.database, h.logger, activeOnly)
	if err != nil {
		h.logger.Error("Failed to list staff", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list staff")
		return
	}

	rows := make([]staffOverviewJSON, 0, len(overviews))
	for _, overview := range overviews {
		rows = append(rows, toStaffOverviewJSON(overview))
	}

	writeJSON(w, http.StatusOK, rows)
}

// getStaff handles GET /staff/{staffID}
// Returns one staff member with their full calendar.
func (h *Handler) getStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	record, err := h.database.GetStaffByID(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "staff not found")
			return
		}
		h.logger.Error("Failed to fetch staff", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch staff")
		return
	}

	entries, err := h.database.GetCalendarEntriesForStaff(r.Context(), staffID)
	if err != nil {
		h.logger.Error("Failed to fetch calendar entries", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch calendar entries")
		return
	}

	detail := staffDetailJSON{
		ID:                    record.ID,
		Name:                  fmt.Sprintf("%s %s", record.FirstName, record.LastName),
		Email:                 record.Email,
		Status:                record.Status,
		MonthlyAvailableHours: record.MonthlyAvailableHours,
		Calendar:              make([]calendarEntryJSON, 0, len(entries)),
	}
	for _, entry := range entries {
		detail.Calendar = append(detail.Calendar, calendarEntryJSON{
			ID:        entry.ID,
			BriefID:   entry.BriefID,
			Type:      entry.Type,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
		})
	}

	writeJSON(w, http.StatusOK, detail)
}

// teamUtilization handles GET /staff/utilization
// Returns the weekly utilization report across all active staff.
func (h *Handler) teamUtilization(w http.ResponseWriter, r *http.Request) {
	result, err := services.TeamUtilization(r.Context(), h.database, h.logger, time.Now())
	if err != nil {
		h.logger.Error("Failed to build utilization report", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to build utilization report")
		return
	}

	resp := teamUtilizationResponse{
		Staff:         make([]staffUtilizationJSON, 0, len(result.Staff)),
		TotalBooked:   result.TotalBooked,
		TotalCapacity: result.TotalCapacity,
		BookedPercent: result.BookedPercent,
		OverbookedIDs: result.OverbookedIDs,
	}
	for _, row := range result.Staff {
		resp.Staff = append(resp.Staff, staffUtilizationJSON{
			StaffID:        row.StaffID,
			Name:           row.Name,
			BookedHours:    row.Utilization.Booked,
			AvailableHours: row.Utilization.Available,
			TotalHours:     row.Utilization.Total,
			UpcomingHours:  row.Utilization.Upcoming,
			ShareHours:     row.ShareHours,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
