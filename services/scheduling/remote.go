package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	diaryRepo "shuttlesync/database/repository/diary"
	"shuttlesync/models"
)

// HTTPParty talks to a collaborator agent over its REST API. Every call is
// bounded by the client timeout; a timeout or connection failure surfaces as
// a RemoteError and the caller treats the party as unavailable (fails
// closed, not open).
type HTTPParty struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewHTTPParty(name, baseURL string, timeout time.Duration) *HTTPParty {
	return &HTTPParty{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPParty) Name() string {
	return p.name
}

func (p *HTTPParty) Diary(ctx context.Context) (models.Calendar, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/diary", nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, newRemoteError(p.name, "fetch diary", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, newRemoteError(p.name, "fetch diary", fmt.Errorf("status %d", resp.StatusCode))
	}
	var body struct {
		Diary models.Calendar `json:"diary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, newRemoteError(p.name, "fetch diary", err)
	}
	return body.Diary, nil
}

func (p *HTTPParty) Check(ctx context.Context, w models.Window, activity string) (models.CheckResult, error) {
	var body struct {
		Available  bool     `json:"available"`
		Reason     string   `json:"reason"`
		Conflicts  []string `json:"conflicts"`
		Suggestion string   `json:"suggestion"`
	}
	if err := p.post(ctx, "/check_availability", w, activity, &body); err != nil {
		return models.CheckResult{}, err
	}
	result := models.CheckResult{
		Available:  body.Available,
		Reason:     body.Reason,
		Suggestion: body.Suggestion,
	}
	// The wire carries conflict labels only; keep them as bare appointments.
	for _, label := range body.Conflicts {
		result.Conflicts = append(result.Conflicts, models.Appointment{Activity: label})
	}
	return result, nil
}

func (p *HTTPParty) Book(ctx context.Context, w models.Window, activity string) (models.Appointment, error) {
	var body struct {
		Appointment models.Appointment `json:"appointment"`
	}
	if err := p.post(ctx, "/book_appointment", w, activity, &body); err != nil {
		return models.Appointment{}, err
	}
	return body.Appointment, nil
}

func (p *HTTPParty) post(ctx context.Context, path string, w models.Window, activity string, out any) error {
	query := models.TimeSlotQuery{
		Date:      w.Date,
		StartTime: w.Interval.Start.String(),
		EndTime:   w.Interval.End.String(),
		Activity:  activity,
	}
	payload, err := json.Marshal(query)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return newRemoteError(p.name, path, err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return diaryRepo.ErrDateOutOfHorizon
	case resp.StatusCode != http.StatusOK:
		return newRemoteError(p.name, path, fmt.Errorf("status %d", resp.StatusCode))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
