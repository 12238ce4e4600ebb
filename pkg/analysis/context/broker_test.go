package context

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent"
)

type fakeOutputs struct {
	outputs []*ent.PhaseOutput
	err     error
	phases  []float64
}

func (f *fakeOutputs) ListByPhases(_ context.Context, _ string, phases []float64) ([]*ent.PhaseOutput, error) {
	f.phases = phases
	return f.outputs, f.err
}

func TestCrossPhaseFormatsBlocks(t *testing.T) {
	source := &fakeOutputs{outputs: []*ent.PhaseOutput{
		{PhaseNumber: 1.0, EngineKey: "dialectical", Role: "extraction", Content: "first finding"},
		{PhaseNumber: 2.0, EngineKey: "genealogical", WorkKey: "Prior A", StanceKey: "analytic", Role: "synthesis", Content: "second finding"},
		{PhaseNumber: 2.0, EngineKey: "genealogical", Content: ""},
	}}
	b := NewBroker(source, 0)

	got, err := b.CrossPhase(context.Background(), "job-1", []float64{1.0, 2.0}, 0, "Weigh the contradiction findings most heavily.")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0}, source.phases)

	assert.True(t, strings.HasPrefix(got, "# Context from prior phases\n\n"))
	assert.Contains(t, got, "Weigh the contradiction findings most heavily.")
	assert.Contains(t, got, "## [phase 1.0 · dialectical · extraction]")
	assert.Contains(t, got, "## [phase 2.0 · genealogical · work: Prior A · stance: analytic · synthesis]")
	assert.Contains(t, got, "first finding")
	// Empty outputs contribute no block
	assert.Equal(t, 2, strings.Count(got, "## ["))
}

func TestCrossPhaseEmpty(t *testing.T) {
	b := NewBroker(&fakeOutputs{}, 0)
	ctx := context.Background()

	got, err := b.CrossPhase(ctx, "job-1", nil, 0, "")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = b.CrossPhase(ctx, "job-1", []float64{1.0}, 0, "emphasis")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCrossPhaseError(t *testing.T) {
	b := NewBroker(&fakeOutputs{err: errors.New("db gone")}, 0)

	_, err := b.CrossPhase(context.Background(), "job-1", []float64{1.0}, 0, "")
	require.Error(t, err)
}

func TestCrossPhaseCapOverride(t *testing.T) {
	long := strings.Repeat("x", 100)
	source := &fakeOutputs{outputs: []*ent.PhaseOutput{
		{PhaseNumber: 1.0, EngineKey: "alpha", Content: long},
	}}
	b := NewBroker(source, 0)

	got, err := b.CrossPhase(context.Background(), "job-1", []float64{1.0}, 10, "")
	require.NoError(t, err)
	assert.Contains(t, got, long[:10]+"\n\n[... truncated]")
	assert.NotContains(t, got, long[:11])

	// Default cap leaves short content alone
	got, err = b.CrossPhase(context.Background(), "job-1", []float64{1.0}, 0, "")
	require.NoError(t, err)
	assert.NotContains(t, got, "[... truncated]")
}

func TestInnerPassOrderingAndStances(t *testing.T) {
	b := NewBroker(&fakeOutputs{}, 0)

	got := b.InnerPass(
		map[int]string{1: "pass one prose", 3: "pass three prose"},
		map[int]string{1: "analytic"},
		[]int{3, 1, 2},
	)
	// Numeric order regardless of declaration order; missing pass 2 skipped
	assert.Less(t, strings.Index(got, "## Pass 1 (analytic)"), strings.Index(got, "## Pass 3\n"))
	assert.NotContains(t, got, "Pass 2")

	assert.Empty(t, b.InnerPass(map[int]string{1: "x"}, nil, nil))
}

func TestChainStep(t *testing.T) {
	b := NewBroker(&fakeOutputs{}, 0)

	assert.Equal(t, "## Output of Dialectical Analysis\n\nthe prose\n",
		b.ChainStep("the prose", "Dialectical Analysis"))
	assert.Empty(t, b.ChainStep("", "Dialectical Analysis"))
}
