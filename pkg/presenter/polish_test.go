package presenter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/services"
)

func newPolishHarness(t *testing.T, caller llm.Caller) (*presenterHarness, *Polisher) {
	t.Helper()
	h := newPresenterHarness(t, caller)
	polishes := services.NewPolishService(h.client)
	return h, NewPolisher(h.cfg, caller, h.assembler, polishes)
}

func TestPolishGeneratesAndCaches(t *testing.T) {
	caller := &stubCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		return &llm.CallResult{
			Content:      "the prose, reframed analytically",
			ModelUsed:    llm.SonnetModel.ID,
			InputTokens:  40,
			OutputTokens: 30,
		}, nil
	}}
	h, polisher := newPolishHarness(t, caller)
	ctx := context.Background()

	h.persist(t, "alpha", 1, "", "extraction", "the analytical prose")
	plan := planWithViews("overview")
	_, err := h.bridge.Prepare(ctx, h.jobID, plan, false)
	require.NoError(t, err)

	entry, err := polisher.Polish(ctx, h.jobID, plan, "overview", "analytic", false)
	require.NoError(t, err)
	assert.Equal(t, "the prose, reframed analytically", entry.Prose)
	assert.Equal(t, "analytic", entry.SchoolKey)
	require.Len(t, caller.calls, 1)
	assert.Contains(t, caller.calls[0].SystemPrompt, "Analytic")
	assert.Contains(t, caller.calls[0].SystemPrompt, "Read for argument structure.")
	assert.Contains(t, caller.calls[0].UserMessage, "the analytical prose")

	// Second request is a pure cache read
	again, err := polisher.Polish(ctx, h.jobID, plan, "overview", "analytic", false)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, again.ID)
	assert.Len(t, caller.calls, 1)

	// force regenerates and replaces the row
	forced, err := polisher.Polish(ctx, h.jobID, plan, "overview", "analytic", true)
	require.NoError(t, err)
	assert.NotEqual(t, entry.ID, forced.ID)
	assert.Len(t, caller.calls, 2)
}

func TestPolishUnknownSchool(t *testing.T) {
	h, polisher := newPolishHarness(t, &stubCaller{})

	_, err := polisher.Polish(context.Background(), h.jobID,
		planWithViews("overview"), "overview", "nonexistent", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSourceProsePrefersProseOverData(t *testing.T) {
	p := &Polisher{}

	assert.Equal(t, "plain prose",
		p.sourceProse(&ViewPayload{Prose: "plain prose"}))

	// Structured data without prose serializes
	got := p.sourceProse(&ViewPayload{Data: map[string]interface{}{"nodes": []interface{}{"being"}}})
	assert.Contains(t, got, "nodes")

	// Data carrying a prose field uses it directly
	got = p.sourceProse(&ViewPayload{Data: map[string]interface{}{"prose": "from the cache"}})
	assert.Equal(t, "from the cache", got)

	// Per-work sections land under headings
	got = p.sourceProse(&ViewPayload{PerWork: map[string]interface{}{
		"Prior One": map[string]interface{}{"prose": "per-work prose"},
	}})
	assert.Contains(t, got, "## Prior One")
	assert.Contains(t, got, "per-work prose")
}
