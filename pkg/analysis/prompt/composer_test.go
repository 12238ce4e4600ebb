package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/pkg/config"
)

func testEngine() *config.EngineDefinition {
	return &config.EngineDefinition{
		Key:           "dialectical",
		Name:          "Dialectical Analysis",
		Problematique: "How does the text move through its own contradictions?",
		Lineage: &config.Lineage{
			PrimaryThinker: "Hegel",
			Traditions:     []string{"German idealism"},
			KeyConcepts:    []string{"sublation", "negation"},
		},
		Dimensions: []config.Dimension{
			{
				Key:             "contradiction",
				Description:     "Internal tensions the text works through.",
				DepthGuidance:   map[string]string{"deep": "Trace each tension to its resolution or failure."},
				ProbingQuestion: []string{"Where does the argument turn against itself?"},
			},
			{Key: "mediation", Description: "How opposites are brought into relation."},
		},
		Composability: &config.Composability{SharesWith: []string{"contradiction"}},
	}
}

func TestComposePassSectionsInOrder(t *testing.T) {
	engine := testEngine()
	system, spec := ComposePass(ComposeInput{
		Engine: engine,
		Pass: config.PassDefinition{
			Number:          2,
			Label:           "Deep reading",
			StanceKey:       "analytic",
			Description:     "Read against the grain of the first pass.",
			FocusDimensions: []string{"contradiction"},
			ConsumesFrom:    []int{1},
		},
		Stance:           &config.StanceDefinition{Key: "analytic", Prose: "Read for argument structure.", CognitiveMode: "convergent"},
		Depth:            "deep",
		SharedContext:    "## Pass 1\n\nprior pass prose",
		ResearchQuestion: "What does negation accomplish here?",
	})

	// Section order: framing, stance, dimensions, prior analysis, pass, output
	headings := []string{
		"# Dialectical Analysis",
		"## Analytical stance",
		"## Analytical dimensions",
		"## Prior analysis",
		"## This pass",
		"## Output",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(system, h)
		require.GreaterOrEqual(t, idx, 0, "missing heading %q", h)
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}

	assert.Contains(t, system, "work in the mode of Hegel")
	assert.Contains(t, system, "sublation, negation")
	assert.Contains(t, system, "What does negation accomplish here?")
	assert.Contains(t, system, "Cognitive mode: convergent")
	assert.Contains(t, system, "At this depth: Trace each tension to its resolution or failure.")
	assert.Contains(t, system, "Where does the argument turn against itself?")
	assert.Contains(t, system, "prior pass prose")
	assert.Contains(t, system, "Pass 2: Deep reading.")
	assert.Contains(t, system, "rich analytical prose")
	// Focused on contradiction only
	assert.NotContains(t, system, "### mediation")
	// Shared-dimension note fires because the focus covers it
	assert.Contains(t, system, "Findings on contradiction will be shared")

	assert.Equal(t, "dialectical", spec.EngineKey)
	assert.Equal(t, 2, spec.PassNumber)
	assert.Equal(t, "analytic", spec.StanceKey)
	assert.Equal(t, []string{"contradiction"}, spec.FocusDimensions)
	assert.Equal(t, []int{1}, spec.ConsumesFrom)
}

func TestComposePassFocusOverride(t *testing.T) {
	system, spec := ComposePass(ComposeInput{
		Engine: testEngine(),
		Pass: config.PassDefinition{
			Number:          1,
			FocusDimensions: []string{"contradiction"},
		},
		FocusOverride: []string{"mediation", "nonexistent"},
	})

	assert.Contains(t, system, "### mediation")
	assert.NotContains(t, system, "### contradiction")
	assert.NotContains(t, system, "nonexistent")
	assert.Equal(t, []string{"mediation", "nonexistent"}, spec.FocusDimensions)
	// Shared dims do not intersect the override: no sharing note
	assert.NotContains(t, system, "will be shared with downstream")
}

func TestComposePassWithoutStanceOrContext(t *testing.T) {
	system, _ := ComposePass(ComposeInput{
		Engine: testEngine(),
		Pass:   config.PassDefinition{Number: 1, Label: "Surface reading"},
	})

	assert.NotContains(t, system, "## Analytical stance")
	assert.NotContains(t, system, "## Prior analysis")
	// No focus: every dimension applies and the sharing note fires
	assert.Contains(t, system, "### contradiction")
	assert.Contains(t, system, "### mediation")
	assert.Contains(t, system, "Findings on contradiction will be shared")
}

func TestComposeWholeEngine(t *testing.T) {
	system, spec := ComposeWholeEngine(testEngine(), "standard", "", "")

	assert.Contains(t, system, "Pass 1: full analysis.")
	assert.Contains(t, system, "full analytical apparatus")
	assert.Equal(t, 1, spec.PassNumber)
	assert.Empty(t, spec.StanceKey)
}
