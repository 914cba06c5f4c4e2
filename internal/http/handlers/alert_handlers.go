package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/rfalcao/stockwatch/internal/alert"
)

// GetRecentAlertsHandler godoc
// @Summary Recent delivered stock alerts
// @Tags alerts
// @Produce json
// @Param limit query int false "Maximum number of entries (default 50)"
// @Success 200 {array} alert.HistoryEntry
// @Failure 500 {string} string "Internal error"
// @Router /alerts/recent [get]
func GetRecentAlertsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	entries := []alert.HistoryEntry{}
	if alertHistory != nil {
		var err error
		entries, err = alertHistory.Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, "could not fetch alert history", http.StatusInternalServerError)
			return
		}
	}

	if err := writeJSON(w, http.StatusOK, entries); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
