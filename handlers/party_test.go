package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	diaryRepo "shuttlesync/database/repository/diary"
	"shuttlesync/handlers"
	"shuttlesync/models"
	"shuttlesync/routes"
	diarySvc "shuttlesync/services/diary"

	"github.com/gin-gonic/gin"
)

func newTestAgent(t *testing.T) (*gin.Engine, diaryRepo.DiaryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := diaryRepo.NewMemoryDiaryRepo("bean", diaryRepo.BeanSeed, 3)
	svc := &diarySvc.DefaultDiaryService{Repo: repo, Catalog: models.DefaultWindowCatalog()}
	router := gin.New()
	routes.RegisterPartyRoutes(router, handlers.NewPartyHandler(svc, "test agent", "http://localhost:8001"))
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func slotQuery(date, start, end string) models.TimeSlotQuery {
	return models.TimeSlotQuery{Date: date, StartTime: start, EndTime: end, Activity: "Badminton match"}
}

func TestGetDiary(t *testing.T) {
	router, _ := newTestAgent(t)

	w := doJSON(t, router, http.MethodGet, "/diary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /diary = %d, want 200", w.Code)
	}
	var body struct {
		Agent string          `json:"agent"`
		Diary models.Calendar `json:"diary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Agent != "bean" || len(body.Diary) != 3 {
		t.Fatalf("unexpected diary payload: agent=%q days=%d", body.Agent, len(body.Diary))
	}
}

func TestCheckAvailability_Endpoint(t *testing.T) {
	router, repo := newTestAgent(t)
	date := repo.Horizon()[0]

	// Bean's 10:00-12:00 office block is fixed on every seeded day.
	w := doJSON(t, router, http.MethodPost, "/check_availability", slotQuery(date, "10:00", "12:00"))
	if w.Code != http.StatusOK {
		t.Fatalf("check = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body struct {
		Available  bool     `json:"available"`
		Reason     string   `json:"reason"`
		Conflicts  []string `json:"conflicts"`
		Suggestion string   `json:"suggestion"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Available {
		t.Fatal("fixed office block should be unavailable")
	}
	found := false
	for _, label := range body.Conflicts {
		if label == "Work at office" {
			found = true
		}
	}
	if !found {
		t.Fatalf("conflicts %v missing the fixed appointment", body.Conflicts)
	}
	if body.Suggestion == "" {
		t.Fatal("blocked window should carry a suggestion")
	}
}

func TestCheckAvailability_BadRequests(t *testing.T) {
	router, repo := newTestAgent(t)
	date := repo.Horizon()[0]

	if w := doJSON(t, router, http.MethodPost, "/check_availability", slotQuery("1999-01-01", "10:00", "12:00")); w.Code != http.StatusNotFound {
		t.Fatalf("out-of-horizon date = %d, want 404", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/check_availability", slotQuery(date, "12:00", "10:00")); w.Code != http.StatusBadRequest {
		t.Fatalf("inverted window = %d, want 400", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/check_availability", map[string]string{"date": date}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing fields = %d, want 400", w.Code)
	}
}

func TestBookAndReset(t *testing.T) {
	router, repo := newTestAgent(t)
	date := repo.Horizon()[0]

	w := doJSON(t, router, http.MethodPost, "/book_appointment", slotQuery(date, "14:00", "16:00"))
	if w.Code != http.StatusOK {
		t.Fatalf("book = %d, want 200: %s", w.Code, w.Body.String())
	}
	var booked struct {
		Status      string             `json:"status"`
		Appointment models.Appointment `json:"appointment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &booked); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if booked.Status != "booked" || booked.Appointment.Kind != models.KindBooked {
		t.Fatalf("unexpected booking response: %+v", booked)
	}

	day, err := repo.Schedule(date)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	had := false
	for _, a := range day.Appointments {
		if a.Kind == models.KindBooked {
			had = true
		}
	}
	if !had {
		t.Fatal("booking did not land in the store")
	}

	if w := doJSON(t, router, http.MethodPost, "/reset_diary", nil); w.Code != http.StatusOK {
		t.Fatalf("reset = %d, want 200", w.Code)
	}
	day, err = repo.Schedule(repo.Horizon()[0])
	if err != nil {
		t.Fatalf("schedule after reset: %v", err)
	}
	for _, a := range day.Appointments {
		if a.Kind == models.KindBooked {
			t.Fatal("reset must discard booked appointments")
		}
	}

	if w := doJSON(t, router, http.MethodPost, "/book_appointment", slotQuery("1999-01-01", "14:00", "16:00")); w.Code != http.StatusNotFound {
		t.Fatalf("out-of-horizon booking = %d, want 404", w.Code)
	}
}

func TestAgentCard(t *testing.T) {
	router, _ := newTestAgent(t)

	w := doJSON(t, router, http.MethodGet, "/.well-known/agent.json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("agent card = %d, want 200", w.Code)
	}
	var card struct {
		Name   string `json:"name"`
		Skills []struct {
			Name string `json:"name"`
		} `json:"skills"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &card); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(card.Skills) != 4 {
		t.Fatalf("agent card lists %d skills, want 4", len(card.Skills))
	}
	want := map[string]bool{"get_diary": true, "check_availability": true, "book_appointment": true, "reset_diary": true}
	for _, s := range card.Skills {
		if !want[s.Name] {
			t.Fatalf("unexpected skill %q", s.Name)
		}
	}
	if card.Name == "" {
		t.Fatalf("agent card has no name: %s", w.Body.String())
	}
}
