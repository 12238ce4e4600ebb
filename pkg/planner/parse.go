package planner

import (
	"encoding/json"
	"strings"

	"github.com/exegete-ai/exegete/pkg/models"
)

// parsePlan strictly decodes the model's response into a plan. Wrapping
// code fences are stripped; anything else that fails to parse surfaces as a
// BadResponseError with a short diagnostic.
func parsePlan(raw string) (*models.ExecutionPlan, error) {
	cleaned := stripFences(raw)
	var plan models.ExecutionPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, newBadResponse(raw, err)
	}
	return &plan, nil
}

// stripFences removes a wrapping markdown code fence and trims to the
// outermost JSON object.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	// Models sometimes preface the object with prose
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return strings.TrimSpace(s)
}
