package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/exegete-ai/exegete/pkg/chapters"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

// Excerpt windows for book profiling.
const (
	excerptHead = 5000
	excerptMid  = 5000
	excerptTail = 3000
)

// Profile is the lightweight classification of one input work the adaptive
// planner grounds its engine selection on.
type Profile struct {
	Title              string             `json:"title"`
	Genre              string             `json:"genre,omitempty"`
	Domain             string             `json:"domain,omitempty"`
	ArgumentativeStyle string             `json:"argumentative_style,omitempty"`
	TechnicalLevel     string             `json:"technical_level,omitempty"`
	ReasoningModes     []string           `json:"reasoning_modes,omitempty"`
	KeyVocabulary      []string           `json:"key_vocabulary,omitempty"`
	StructuralNotes    string             `json:"structural_notes,omitempty"`
	CategoryAffinity   map[string]float64 `json:"category_affinity,omitempty"` // engine category → [0,1]
	Chapters           []chapters.Chapter `json:"chapters,omitempty"`
	Degraded           bool               `json:"degraded,omitempty"` // classification fell back to the default
}

// Sampler profiles input works with a fast model. Sampling is never fatal:
// every failure path yields a minimal default profile.
type Sampler struct {
	caller llm.Caller
	docs   *services.DocumentService
	log    *slog.Logger
}

// NewSampler creates a sampler
func NewSampler(caller llm.Caller, docs *services.DocumentService) *Sampler {
	return &Sampler{
		caller: caller,
		docs:   docs,
		log:    slog.Default().With("component", "sampler"),
	}
}

// SampleAll profiles every work concurrently.
func (s *Sampler) SampleAll(ctx context.Context, works []models.WorkMeta) (map[string]*Profile, error) {
	profiles := make([]*Profile, len(works))
	g, gctx := errgroup.WithContext(ctx)
	for i, work := range works {
		g.Go(func() error {
			profiles[i] = s.Sample(gctx, work)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byTitle := make(map[string]*Profile, len(works))
	for i, work := range works {
		byTitle[work.Title] = profiles[i]
	}
	return byTitle, nil
}

// Sample profiles one work. A missing document or a failed classification
// degrades to a default profile rather than erroring.
func (s *Sampler) Sample(ctx context.Context, work models.WorkMeta) *Profile {
	fallback := &Profile{Title: work.Title, Degraded: true}

	if work.DocumentID == "" {
		return fallback
	}
	doc, err := s.docs.Get(ctx, work.DocumentID)
	if err != nil || doc == nil {
		s.log.Warn("Document unavailable for sampling", "work", work.Title, "error", err)
		return fallback
	}

	split := chapters.Split(doc.Content)
	excerpt := buildExcerpt(doc.Content)

	result, err := s.caller.Call(ctx, llm.CallRequest{
		SystemPrompt: classificationPrompt,
		UserMessage:  fmt.Sprintf("Work: %s\n\n%s", work.Title, excerpt),
		ModelHint:    llm.HaikuModel.ID,
		Label:        fmt.Sprintf("sample %s", work.Title),
	})
	if err != nil {
		s.log.Warn("Classification call failed, using default profile", "work", work.Title, "error", err)
		fallback.Chapters = split
		return fallback
	}

	var profile Profile
	if err := json.Unmarshal([]byte(stripFences(result.Content)), &profile); err != nil {
		s.log.Warn("Classification response unparseable, using default profile", "work", work.Title, "error", err)
		fallback.Chapters = split
		return fallback
	}
	profile.Title = work.Title
	profile.Chapters = split
	return &profile
}

// buildExcerpt takes head, middle, and tail windows plus detected headings.
func buildExcerpt(text string) string {
	var sb strings.Builder

	sb.WriteString("### Opening\n\n")
	sb.WriteString(window(text, 0, excerptHead))

	if len(text) > excerptHead+excerptTail {
		mid := len(text)/2 - excerptMid/2
		sb.WriteString("\n\n### Middle\n\n")
		sb.WriteString(window(text, mid, excerptMid))

		sb.WriteString("\n\n### Closing\n\n")
		sb.WriteString(window(text, len(text)-excerptTail, excerptTail))
	}

	if headings := chapters.DetectHeadings(text); len(headings) > 0 {
		sb.WriteString("\n\n### Detected headings\n\n")
		sb.WriteString(strings.Join(headings, "\n"))
	}
	return sb.String()
}

func window(text string, start, size int) string {
	if start < 0 {
		start = 0
	}
	if start >= len(text) {
		return ""
	}
	end := start + size
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

const classificationPrompt = `You classify a book excerpt for analytical planning. Respond with a single JSON object and nothing else:
{
  "genre": "...",
  "domain": "...",
  "argumentative_style": "...",
  "technical_level": "introductory" | "intermediate" | "specialist",
  "reasoning_modes": ["..."],
  "key_vocabulary": ["..."],
  "structural_notes": "...",
  "category_affinity": {"<engine category>": 0.0-1.0}
}
Score category_affinity for how productively each analytical category would apply to this material.`
