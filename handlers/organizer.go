package handlers

import (
	"net/http"
	"time"

	"shuttlesync/services/scheduling"
	"shuttlesync/utils"

	"github.com/gin-gonic/gin"
)

const defaultActivity = "Badminton match"

// OrganizerHandler serves the coordination endpoints.
type OrganizerHandler struct {
	Engine *scheduling.Engine
	// PartyURLs maps party names to base URLs for health probing.
	PartyURLs map[string]string
}

func NewOrganizerHandler(engine *scheduling.Engine, partyURLs map[string]string) *OrganizerHandler {
	return &OrganizerHandler{Engine: engine, PartyURLs: partyURLs}
}

func (h *OrganizerHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"agent":       "Organizer",
		"status":      "active",
		"description": "Coordinates badminton match scheduling between the party agents",
	})
}

func (h *OrganizerHandler) ScheduleHandler(c *gin.Context) {
	var input struct {
		DurationHours int    `json:"duration_hours"`
		Activity      string `json:"activity"`
	}
	// The body is optional; defaults cover the plain POST case.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}
	if input.DurationHours != 0 && input.DurationHours != 2 {
		utils.JSONError(c, http.StatusBadRequest, "unsupported duration", "only 2-hour matches are supported")
		return
	}
	activity := input.Activity
	if activity == "" {
		activity = defaultActivity
	}

	report := h.Engine.Schedule(c.Request.Context(), activity)

	resp := gin.H{
		"organizer":          "Organizer",
		"run_id":             report.RunID,
		"status":             report.Status,
		"selected_slot":      report.SelectedSlot,
		"common_slots_found": report.CommonSlotsFound,
		"all_common_slots":   report.AllCommonSlots,
		"messages":           report.Messages,
	}
	if len(report.BookingResults) > 0 {
		resp["booking_results"] = report.BookingResults
	}
	for party, count := range report.PartySlotCounts {
		resp[party+"_available_slots"] = count
	}
	c.JSON(http.StatusOK, resp)
}

// HealthHandler probes each party agent with a short timeout.
func (h *OrganizerHandler) HealthHandler(c *gin.Context) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp := gin.H{"organizer": "online"}
	allReady := true
	for party, baseURL := range h.PartyURLs {
		status := "offline"
		if r, err := client.Get(baseURL + "/"); err == nil {
			if r.StatusCode == http.StatusOK {
				status = "online"
			}
			r.Body.Close()
		}
		if status != "online" {
			allReady = false
		}
		resp[party+"_agent"] = status
	}
	if allReady {
		resp["all_systems"] = "ready"
	} else {
		resp["all_systems"] = "not ready"
	}
	c.JSON(http.StatusOK, resp)
}
