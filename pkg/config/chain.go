package config

// BlendMode declares how a chain combines its engines' outputs.
type BlendMode string

// Declared blend modes. Only sequential is executed today; the others are
// accepted in the catalog schema and logged as a known limitation, then run
// sequentially.
const (
	BlendSequential   BlendMode = "sequential"
	BlendParallel     BlendMode = "parallel"
	BlendMerge        BlendMode = "merge"
	BlendLLMSelection BlendMode = "llm_selection"
)

// ChainDefinition is an ordered list of engines that execute within one
// phase with sequential context threading.
type ChainDefinition struct {
	Key         string    `yaml:"key"`
	Name        string    `yaml:"name,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Engines     []string  `yaml:"engines"`
	BlendMode   BlendMode `yaml:"blend_mode,omitempty"`
}

// EffectiveBlendMode returns the declared blend mode, defaulting to sequential.
func (c *ChainDefinition) EffectiveBlendMode() BlendMode {
	if c.BlendMode == "" {
		return BlendSequential
	}
	return c.BlendMode
}

// ChainSummary is the compact listing shape for catalog browsing.
type ChainSummary struct {
	Key         string `json:"key"`
	Name        string `json:"name,omitempty"`
	EngineCount int    `json:"engine_count"`
	BlendMode   string `json:"blend_mode"`
}

// ChainRegistry stores chain definitions with thread-safe access
type ChainRegistry struct {
	registry[ChainDefinition]
	loader func() (map[string]*ChainDefinition, error)
}

// NewChainRegistry creates a new chain registry
func NewChainRegistry(chains map[string]*ChainDefinition) *ChainRegistry {
	return &ChainRegistry{registry: newRegistry(chains, ErrChainNotFound)}
}

// ListSummaries returns compact summaries sorted by key (thread-safe)
func (r *ChainRegistry) ListSummaries() []ChainSummary {
	all := r.ListAll()
	summaries := make([]ChainSummary, 0, len(all))
	for _, key := range r.ListKeys() {
		c := all[key]
		summaries = append(summaries, ChainSummary{
			Key:         key,
			Name:        c.Name,
			EngineCount: len(c.Engines),
			BlendMode:   string(c.EffectiveBlendMode()),
		})
	}
	return summaries
}

// Reload re-reads the catalog from its source files
func (r *ChainRegistry) Reload() error {
	if r.loader == nil {
		return nil
	}
	items, err := r.loader()
	if err != nil {
		return err
	}
	r.replace(items)
	return nil
}
