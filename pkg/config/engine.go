package config

// EngineDefinition is the unit of analytical capability, loaded read-only
// from the engine catalog.
type EngineDefinition struct {
	Key           string          `yaml:"key"`
	Name          string          `yaml:"name"`
	Category      string          `yaml:"category"`
	Kind          string          `yaml:"kind,omitempty"`
	Problematique string          `yaml:"problematique,omitempty"`
	Lineage       *Lineage        `yaml:"lineage,omitempty"`
	Dimensions    []Dimension     `yaml:"dimensions,omitempty"`
	Capabilities  []Capability    `yaml:"capabilities,omitempty"`
	Composability *Composability  `yaml:"composability,omitempty"`
	DepthLevels   []DepthLevelDef `yaml:"depth_levels,omitempty"`
}

// Lineage records the intellectual tradition an engine draws on.
type Lineage struct {
	PrimaryThinker string   `yaml:"primary_thinker,omitempty"`
	Traditions     []string `yaml:"traditions,omitempty"`
	KeyConcepts    []string `yaml:"key_concepts,omitempty"`
}

// Dimension is one analytical axis of an engine.
type Dimension struct {
	Key             string            `yaml:"key"`
	Description     string            `yaml:"description,omitempty"`
	DepthGuidance   map[string]string `yaml:"depth_guidance,omitempty"` // keyed by depth
	ProbingQuestion []string          `yaml:"probing_questions,omitempty"`
}

// Capability names what an engine can produce and what it needs.
type Capability struct {
	Key      string   `yaml:"key"`
	Produces []string `yaml:"produces,omitempty"` // dimension keys
	Requires []string `yaml:"requires,omitempty"` // dimension keys
}

// Composability declares how an engine's output relates to other engines.
type Composability struct {
	SharesWith    []string `yaml:"shares_with,omitempty"`
	ConsumesFrom  []string `yaml:"consumes_from,omitempty"`
	SynergyEngine []string `yaml:"synergy_engines,omitempty"`
}

// DepthLevelDef binds a depth key to an optional inline pass sequence.
// An operationalization for the engine at the same depth takes precedence.
type DepthLevelDef struct {
	Depth  string           `yaml:"depth"`
	Passes []PassDefinition `yaml:"passes,omitempty"`
}

// PassDefinition is the atomic LLM call unit within an engine at a depth.
type PassDefinition struct {
	Number            int      `yaml:"number"`
	Label             string   `yaml:"label,omitempty"`
	StanceKey         string   `yaml:"stance,omitempty"`
	Description       string   `yaml:"description,omitempty"`
	FocusDimensions   []string `yaml:"focus_dimensions,omitempty"`
	FocusCapabilities []string `yaml:"focus_capabilities,omitempty"`
	ConsumesFrom      []int    `yaml:"consumes_from,omitempty"` // pass numbers threaded into context
}

// InlinePasses returns the engine's own pass sequence for a depth, or nil
// when the depth declares none.
func (e *EngineDefinition) InlinePasses(depth string) []PassDefinition {
	for i := range e.DepthLevels {
		if e.DepthLevels[i].Depth == depth {
			return e.DepthLevels[i].Passes
		}
	}
	return nil
}

// Dimension returns the dimension with the given key, or nil.
func (e *EngineDefinition) Dimension(key string) *Dimension {
	for i := range e.Dimensions {
		if e.Dimensions[i].Key == key {
			return &e.Dimensions[i]
		}
	}
	return nil
}

// SharedDimensions returns the dimension keys this engine declares as
// shared with downstream engines.
func (e *EngineDefinition) SharedDimensions() []string {
	if e.Composability == nil {
		return nil
	}
	return e.Composability.SharesWith
}

// EngineSummary is the compact listing shape for catalog browsing.
type EngineSummary struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Kind     string `json:"kind,omitempty"`
}

// EngineRegistry stores engine definitions with thread-safe access
type EngineRegistry struct {
	registry[EngineDefinition]
	loader func() (map[string]*EngineDefinition, error)
}

// NewEngineRegistry creates a new engine registry
func NewEngineRegistry(engines map[string]*EngineDefinition) *EngineRegistry {
	return &EngineRegistry{registry: newRegistry(engines, ErrEngineNotFound)}
}

// ListSummaries returns compact summaries sorted by key (thread-safe)
func (r *EngineRegistry) ListSummaries() []EngineSummary {
	all := r.ListAll()
	summaries := make([]EngineSummary, 0, len(all))
	for _, key := range r.ListKeys() {
		e := all[key]
		summaries = append(summaries, EngineSummary{
			Key:      key,
			Name:     e.Name,
			Category: e.Category,
			Kind:     e.Kind,
		})
	}
	return summaries
}

// Reload re-reads the catalog from its source files
func (r *EngineRegistry) Reload() error {
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
