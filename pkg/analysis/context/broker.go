// Package context assembles prior prose into labeled markdown context
// blocks for the next LLM call. The broker performs no transformation —
// it only selects, labels, and caps.
package context

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/exegete-ai/exegete/ent"
)

// DefaultBlockCap is the per-block length cap for cross-phase context.
const DefaultBlockCap = 50000

// OutputSource is the slice of the output store the broker reads from.
type OutputSource interface {
	ListByPhases(ctx context.Context, jobID string, phases []float64) ([]*ent.PhaseOutput, error)
}

// Broker builds the three context shapes: cross-phase, inner-pass, chain step.
type Broker struct {
	outputs OutputSource
	cap     int
	log     *slog.Logger
}

// NewBroker creates a broker over the output store. blockCap <= 0 selects
// the default.
func NewBroker(outputs OutputSource, blockCap int) *Broker {
	if blockCap <= 0 {
		blockCap = DefaultBlockCap
	}
	return &Broker{
		outputs: outputs,
		cap:     blockCap,
		log:     slog.Default().With("component", "context_broker"),
	}
}

// CrossPhase fetches every output of the upstream phases and formats each
// as a labeled block. capOverride <= 0 uses the broker default; emphasis is
// the plan's context-emphasis paragraph for the consuming phase. Returns
// empty string when no outputs exist.
func (b *Broker) CrossPhase(ctx context.Context, jobID string, upstreamPhases []float64, capOverride int, emphasis string) (string, error) {
	if len(upstreamPhases) == 0 {
		return "", nil
	}
	outputs, err := b.outputs.ListByPhases(ctx, jobID, upstreamPhases)
	if err != nil {
		return "", fmt.Errorf("failed to fetch upstream outputs: %w", err)
	}
	if len(outputs) == 0 {
		b.log.Info("No upstream outputs for context", "job_id", jobID, "phases", upstreamPhases)
		return "", nil
	}

	blockCap := b.cap
	if capOverride > 0 {
		blockCap = capOverride
	}

	var sb strings.Builder
	sb.WriteString("# Context from prior phases\n\n")
	if emphasis != "" {
		sb.WriteString(emphasis)
		sb.WriteString("\n\n")
	}
	for _, out := range outputs {
		if out.Content == "" {
			continue
		}
		sb.WriteString(formatBlockHeader(out))
		sb.WriteString(truncate(out.Content, blockCap))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

// InnerPass concatenates the prose of the named prior passes in numeric
// order, headed by pass number and stance.
func (b *Broker) InnerPass(proseByPass map[int]string, stanceByPass map[int]string, consumesFrom []int) string {
	if len(consumesFrom) == 0 {
		return ""
	}
	ordered := append([]int(nil), consumesFrom...)
	sort.Ints(ordered)

	var sb strings.Builder
	for _, n := range ordered {
		prose, ok := proseByPass[n]
		if !ok || prose == "" {
			continue
		}
		stance := stanceByPass[n]
		if stance != "" {
			fmt.Fprintf(&sb, "## Pass %d (%s)\n\n", n, stance)
		} else {
			fmt.Fprintf(&sb, "## Pass %d\n\n", n)
		}
		sb.WriteString(prose)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// ChainStep wraps the previous engine's final pass output in a single
// labeled block.
func (b *Broker) ChainStep(previousOutput, label string) string {
	if previousOutput == "" {
		return ""
	}
	return fmt.Sprintf("## Output of %s\n\n%s\n", label, previousOutput)
}

func formatBlockHeader(out *ent.PhaseOutput) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("phase %.1f", out.PhaseNumber))
	parts = append(parts, out.EngineKey)
	if out.WorkKey != "" {
		parts = append(parts, fmt.Sprintf("work: %s", out.WorkKey))
	}
	if out.StanceKey != "" {
		parts = append(parts, fmt.Sprintf("stance: %s", out.StanceKey))
	}
	if out.Role != "" {
		parts = append(parts, out.Role)
	}
	return fmt.Sprintf("## [%s]\n\n", strings.Join(parts, " · "))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n\n[... truncated]"
}
