// Package prompt composes per-pass system prompts from an engine
// definition, a stance, a depth level, and shared context. Stateless —
// all state comes from parameters.
package prompt

import (
	"fmt"
	"strings"

	"github.com/exegete-ai/exegete/pkg/config"
)

// PromptSpec records what went into a composed prompt, persisted alongside
// the output for lineage.
type PromptSpec struct {
	EngineKey       string   `json:"engine_key"`
	PassNumber      int      `json:"pass_number"`
	StanceKey       string   `json:"stance_key,omitempty"`
	FocusDimensions []string `json:"focus_dimensions,omitempty"`
	ConsumesFrom    []int    `json:"consumes_from,omitempty"`
}

// ComposeInput carries everything a pass prompt is built from.
type ComposeInput struct {
	Engine           *config.EngineDefinition
	Pass             config.PassDefinition
	Stance           *config.StanceDefinition // nil when the pass has no stance
	Depth            string
	SharedContext    string
	FocusOverride    []string // plan-level focus-dimension subset, overrides the pass's own
	ResearchQuestion string
}

// The executor treats all analytical output as opaque prose; structure is
// imposed later by the presentation layer. This instruction is load-bearing.
const outputContract = `Write rich analytical prose — not JSON, not bullet fragments. ` +
	`Use section headings where the material calls for them. Develop claims with ` +
	`evidence from the text; do not summarize mechanically.`

// ComposePass builds the system prompt for one pass of an engine at a depth.
func ComposePass(in ComposeInput) (string, PromptSpec) {
	var b strings.Builder

	writeFraming(&b, in.Engine, in.ResearchQuestion)

	if in.Stance != nil {
		writeStance(&b, in.Stance)
	}

	focus := in.Pass.FocusDimensions
	if len(in.FocusOverride) > 0 {
		focus = in.FocusOverride
	}
	writeDimensions(&b, in.Engine, focus, in.Depth)

	if in.SharedContext != "" {
		b.WriteString("## Prior analysis\n\n")
		b.WriteString("The following analysis has already been produced. Build on it — ")
		b.WriteString("extend, complicate, and connect; do not repeat it.\n\n")
		b.WriteString(in.SharedContext)
		b.WriteString("\n\n")
	}

	writePassInstructions(&b, in.Engine, in.Pass, focus)

	b.WriteString("## Output\n\n")
	b.WriteString(outputContract)
	b.WriteString("\n")

	spec := PromptSpec{
		EngineKey:       in.Engine.Key,
		PassNumber:      in.Pass.Number,
		StanceKey:       in.Pass.StanceKey,
		FocusDimensions: focus,
		ConsumesFrom:    in.Pass.ConsumesFrom,
	}
	return b.String(), spec
}

// ComposeWholeEngine builds the single-call prompt used when an engine has
// no pass sequence at the requested depth.
func ComposeWholeEngine(engine *config.EngineDefinition, depth, sharedContext, researchQuestion string) (string, PromptSpec) {
	in := ComposeInput{
		Engine: engine,
		Pass: config.PassDefinition{
			Number:      1,
			Label:       "full analysis",
			Description: "Apply the full analytical apparatus of this engine to the material in a single reading.",
		},
		Depth:            depth,
		SharedContext:    sharedContext,
		ResearchQuestion: researchQuestion,
	}
	return ComposePass(in)
}

func writeFraming(b *strings.Builder, engine *config.EngineDefinition, researchQuestion string) {
	fmt.Fprintf(b, "# %s\n\n", engine.Name)
	if engine.Problematique != "" {
		b.WriteString(engine.Problematique)
		b.WriteString("\n\n")
	}
	if researchQuestion != "" {
		fmt.Fprintf(b, "The governing research question for this analysis: %s\n\n", researchQuestion)
	}
	if lin := engine.Lineage; lin != nil {
		var parts []string
		if lin.PrimaryThinker != "" {
			parts = append(parts, fmt.Sprintf("work in the mode of %s", lin.PrimaryThinker))
		}
		if len(lin.Traditions) > 0 {
			parts = append(parts, fmt.Sprintf("drawing on %s", strings.Join(lin.Traditions, ", ")))
		}
		if len(parts) > 0 {
			fmt.Fprintf(b, "Intellectual lineage: %s.", strings.Join(parts, "; "))
			if len(lin.KeyConcepts) > 0 {
				fmt.Fprintf(b, " Key concepts in play: %s.", strings.Join(lin.KeyConcepts, ", "))
			}
			b.WriteString("\n\n")
		}
	}
}

func writeStance(b *strings.Builder, stance *config.StanceDefinition) {
	b.WriteString("## Analytical stance\n\n")
	b.WriteString(stance.Prose)
	b.WriteString("\n")
	if stance.CognitiveMode != "" {
		fmt.Fprintf(b, "\nCognitive mode: %s\n", stance.CognitiveMode)
	}
	b.WriteString("\n")
}

// writeDimensions renders the selected dimension subset with depth-specific
// guidance. An empty focus list means every dimension applies.
func writeDimensions(b *strings.Builder, engine *config.EngineDefinition, focus []string, depth string) {
	selected := engine.Dimensions
	if len(focus) > 0 {
		selected = selected[:0:0]
		for _, key := range focus {
			if dim := engine.Dimension(key); dim != nil {
				selected = append(selected, *dim)
			}
		}
	}
	if len(selected) == 0 {
		return
	}

	b.WriteString("## Analytical dimensions\n\n")
	for _, dim := range selected {
		fmt.Fprintf(b, "### %s\n\n", dim.Key)
		if dim.Description != "" {
			b.WriteString(dim.Description)
			b.WriteString("\n\n")
		}
		if guidance, ok := dim.DepthGuidance[depth]; ok && guidance != "" {
			fmt.Fprintf(b, "At this depth: %s\n\n", guidance)
		}
		for _, q := range dim.ProbingQuestion {
			fmt.Fprintf(b, "- %s\n", q)
		}
		if len(dim.ProbingQuestion) > 0 {
			b.WriteString("\n")
		}
	}
}

func writePassInstructions(b *strings.Builder, engine *config.EngineDefinition, pass config.PassDefinition, focus []string) {
	b.WriteString("## This pass\n\n")
	if pass.Label != "" {
		fmt.Fprintf(b, "Pass %d: %s.\n\n", pass.Number, pass.Label)
	}
	if pass.Description != "" {
		b.WriteString(pass.Description)
		b.WriteString("\n\n")
	}
	if note := downstreamSharingNote(engine, focus); note != "" {
		b.WriteString(note)
		b.WriteString("\n\n")
	}
}

// downstreamSharingNote tells the pass which of its dimensions feed later
// engines, when the engine declares shared dimensions relevant to this
// pass's focus.
func downstreamSharingNote(engine *config.EngineDefinition, focus []string) string {
	shared := engine.SharedDimensions()
	if len(shared) == 0 {
		return ""
	}
	relevant := shared
	if len(focus) > 0 {
		relevant = relevant[:0:0]
		for _, s := range shared {
			for _, f := range focus {
				if s == f {
					relevant = append(relevant, s)
					break
				}
			}
		}
	}
	if len(relevant) == 0 {
		return ""
	}
	return fmt.Sprintf("Findings on %s will be shared with downstream analytical engines — "+
		"state them explicitly enough to survive excerpting.", strings.Join(relevant, ", "))
}
