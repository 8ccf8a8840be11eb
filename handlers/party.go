package handlers

import (
	"errors"
	"fmt"
	"net/http"

	diaryRepo "shuttlesync/database/repository/diary"
	"shuttlesync/models"
	diarySvc "shuttlesync/services/diary"
	"shuttlesync/utils"

	"github.com/gin-gonic/gin"
)

// PartyHandler serves one party agent's diary endpoints.
type PartyHandler struct {
	Svc         diarySvc.DiaryService
	Description string
	BaseURL     string
}

func NewPartyHandler(svc diarySvc.DiaryService, description, baseURL string) *PartyHandler {
	return &PartyHandler{Svc: svc, Description: description, BaseURL: baseURL}
}

func (h *PartyHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"agent":       h.Svc.Owner(),
		"status":      "active",
		"description": h.Description,
		"agent_card":  h.BaseURL + "/.well-known/agent.json",
	})
}

func (h *PartyHandler) GetDiaryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"agent": h.Svc.Owner(),
		"diary": h.Svc.FullDiary(),
	})
}

func (h *PartyHandler) CheckAvailabilityHandler(c *gin.Context) {
	var query models.TimeSlotQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	window, err := query.ParsedInterval()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid time window", err.Error())
		return
	}

	result, err := h.Svc.CheckWindow(query.Date, window)
	if err != nil {
		if errors.Is(err, diaryRepo.ErrDateOutOfHorizon) {
			utils.JSONError(c, http.StatusNotFound, "Date not in diary range", query.Date)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "availability check failed", err.Error())
		return
	}

	schedule := h.Svc.FullDiary()[query.Date]
	c.JSON(http.StatusOK, gin.H{
		"agent":            h.Svc.Owner(),
		"date":             query.Date,
		"requested_time":   fmt.Sprintf("%s - %s", query.StartTime, query.EndTime),
		"activity":         query.Activity,
		"available":        result.Available,
		"reason":           result.Reason,
		"conflicts":        result.ConflictLabels(),
		"suggestion":       result.Suggestion,
		"current_schedule": schedule,
	})
}

func (h *PartyHandler) BookAppointmentHandler(c *gin.Context) {
	var query models.TimeSlotQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	window, err := query.ParsedInterval()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid time window", err.Error())
		return
	}

	appt, err := h.Svc.BookAppointment(query.Date, window, query.Activity)
	if err != nil {
		if errors.Is(err, diaryRepo.ErrDateOutOfHorizon) {
			utils.JSONError(c, http.StatusNotFound, "Date not in diary range", query.Date)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agent":       h.Svc.Owner(),
		"status":      "booked",
		"message":     fmt.Sprintf("Appointment booked for %s at %s-%s", query.Date, query.StartTime, query.EndTime),
		"appointment": appt,
	})
}

func (h *PartyHandler) ResetDiaryHandler(c *gin.Context) {
	h.Svc.Reset()
	c.JSON(http.StatusOK, gin.H{
		"agent":   h.Svc.Owner(),
		"status":  "reset",
		"message": "Diary has been reset to default schedule",
	})
}

// AgentCardHandler serves the discovery document describing this agent's
// skills to other agents.
func (h *PartyHandler) AgentCardHandler(c *gin.Context) {
	param := func(name, desc string) gin.H {
		return gin.H{"name": name, "type": "string", "description": desc, "required": true}
	}
	slotParams := []gin.H{
		param("date", "Date in YYYY-MM-DD format"),
		param("start_time", "Start time in HH:MM format"),
		param("end_time", "End time in HH:MM format"),
		param("activity", "Activity description"),
	}
	c.JSON(http.StatusOK, gin.H{
		"name":        fmt.Sprintf("%s Calendar Agent", h.Svc.Owner()),
		"description": h.Description,
		"url":         h.BaseURL,
		"version":     "1.0.0",
		"skills": []gin.H{
			{"name": "get_diary", "description": "Get the agent's complete diary", "endpoint": h.BaseURL + "/diary", "method": "GET", "parameters": []gin.H{}},
			{"name": "check_availability", "description": "Check availability for a specific time slot", "endpoint": h.BaseURL + "/check_availability", "method": "POST", "parameters": slotParams},
			{"name": "book_appointment", "description": "Book an appointment in the diary", "endpoint": h.BaseURL + "/book_appointment", "method": "POST", "parameters": slotParams},
			{"name": "reset_diary", "description": "Reset the diary to its default schedule", "endpoint": h.BaseURL + "/reset_diary", "method": "POST", "parameters": []gin.H{}},
		},
	})
}
