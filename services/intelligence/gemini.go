// Package intelligence holds the optional Gemini advisory layer. It only
// annotates already-booked slots with a human-readable note; the scheduling
// core stays deterministic and never depends on it.
package intelligence

import (
	"context"
	"fmt"
	"strings"

	"shuttlesync/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiAdvisor struct {
	model *genai.GenerativeModel
}

func NewGeminiAdvisor(ctx context.Context, apiKey string) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiAdvisor{model: model}, nil
}

// AdviseSlot asks the model for a one-line remark about the booked slot.
func (g *GeminiAdvisor) AdviseSlot(ctx context.Context, w models.Window, activity string) (string, error) {
	prompt := fmt.Sprintf(
		"A %s has been booked for %s between %s and %s. "+
			"In one short sentence, comment on why this is a good time for it. "+
			"Plain text only, no markdown.",
		activity, w.Date, w.Interval.Start, w.Interval.End,
	)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	// Safety-blocked responses carry no candidates.
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no usable candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
