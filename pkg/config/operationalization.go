package config

// Operationalization specifies the concrete pass sequence for one engine at
// each depth, overriding the engine's inline defaults when present.
type Operationalization struct {
	EngineKey string                      `yaml:"engine_key"`
	Depths    map[string][]PassDefinition `yaml:"depths"` // keyed by depth
}

// PassesAt returns the pass sequence for a depth, or nil when the
// operationalization does not cover it.
func (o *Operationalization) PassesAt(depth string) []PassDefinition {
	return o.Depths[depth]
}

// OperationalizationSummary is the compact listing shape for catalog browsing.
type OperationalizationSummary struct {
	EngineKey string   `json:"engine_key"`
	Depths    []string `json:"depths"`
}

// OperationalizationRegistry stores operationalizations keyed by engine key
type OperationalizationRegistry struct {
	registry[Operationalization]
	loader func() (map[string]*Operationalization, error)
}

// NewOperationalizationRegistry creates a new operationalization registry
func NewOperationalizationRegistry(ops map[string]*Operationalization) *OperationalizationRegistry {
	return &OperationalizationRegistry{registry: newRegistry(ops, ErrOperationalizationNotFound)}
}

// ListSummaries returns compact summaries sorted by engine key (thread-safe)
func (r *OperationalizationRegistry) ListSummaries() []OperationalizationSummary {
	all := r.ListAll()
	summaries := make([]OperationalizationSummary, 0, len(all))
	for _, key := range r.ListKeys() {
		o := all[key]
		depths := make([]string, 0, len(o.Depths))
		for d := range o.Depths {
			depths = append(depths, d)
		}
		summaries = append(summaries, OperationalizationSummary{
			EngineKey: key,
			Depths:    depths,
		})
	}
	return summaries
}

// Reload re-reads the catalog from its source files
func (r *OperationalizationRegistry) Reload() error {
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
