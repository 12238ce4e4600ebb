package llm

// Effort selects the adaptive-thinking level requested from the provider.
type Effort string

// Effort levels. EffortOff disables extended thinking entirely.
const (
	EffortOff    Effort = "off"
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// ModelSpec names a provider model with its output budget and configured effort.
type ModelSpec struct {
	ID        string
	MaxTokens int
	Effort    Effort
}

// Model identifiers and tier specs. Deep analytical work goes to the opus
// tier; extraction and classification to sonnet and haiku.
var (
	OpusModel = ModelSpec{
		ID:        "claude-opus-4-1",
		MaxTokens: 32000,
		Effort:    EffortHigh,
	}
	SonnetModel = ModelSpec{
		ID:        "claude-sonnet-4-5",
		MaxTokens: 64000,
		Effort:    EffortMedium,
	}
	HaikuModel = ModelSpec{
		ID:        "claude-haiku-4-5",
		MaxTokens: 16000,
		Effort:    EffortOff,
	}
)

// thinkingBudgets maps effort levels to thinking token budgets. Budgets must
// stay below every model's MaxTokens and above the provider minimum of 1024.
var thinkingBudgets = map[Effort]int64{
	EffortLow:    2048,
	EffortMedium: 8192,
	EffortHigh:   16384,
}

// PhaseModelTable maps phase numbers to default model specs. The early
// distillation phases carry the heaviest single-document reads and default
// to the large-output sonnet tier; synthesis phases default per depth.
var PhaseModelTable = map[float64]ModelSpec{
	1.0: SonnetModel,
}

// ResolveModel applies the selection priority: explicit hint, then the
// phase-number default table, then the depth heuristic.
func ResolveModel(hint string, phaseNumber float64, depth string) ModelSpec {
	if hint != "" {
		for _, spec := range []ModelSpec{OpusModel, SonnetModel, HaikuModel} {
			if spec.ID == hint {
				return spec
			}
		}
		// Unknown hint: honor the id with sonnet-tier budgets
		return ModelSpec{ID: hint, MaxTokens: SonnetModel.MaxTokens, Effort: SonnetModel.Effort}
	}
	if spec, ok := PhaseModelTable[phaseNumber]; ok {
		return spec
	}
	if depth == "deep" {
		return OpusModel
	}
	return SonnetModel
}
