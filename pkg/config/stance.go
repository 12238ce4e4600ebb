package config

// StanceDefinition is an abstract cognitive posture (discovery,
// confrontation, integration, ...) whose prose is injected into a pass's
// system prompt.
type StanceDefinition struct {
	Key           string `yaml:"key"`
	Name          string `yaml:"name,omitempty"`
	Prose         string `yaml:"prose"`
	CognitiveMode string `yaml:"cognitive_mode,omitempty"`
}

// StanceSummary is the compact listing shape for catalog browsing.
type StanceSummary struct {
	Key           string `json:"key"`
	Name          string `json:"name,omitempty"`
	CognitiveMode string `json:"cognitive_mode,omitempty"`
}

// StanceRegistry stores stance definitions with thread-safe access
type StanceRegistry struct {
	registry[StanceDefinition]
	loader func() (map[string]*StanceDefinition, error)
}

// NewStanceRegistry creates a new stance registry
func NewStanceRegistry(stances map[string]*StanceDefinition) *StanceRegistry {
	return &StanceRegistry{registry: newRegistry(stances, ErrStanceNotFound)}
}

// ListSummaries returns compact summaries sorted by key (thread-safe)
func (r *StanceRegistry) ListSummaries() []StanceSummary {
	all := r.ListAll()
	summaries := make([]StanceSummary, 0, len(all))
	for _, key := range r.ListKeys() {
		s := all[key]
		summaries = append(summaries, StanceSummary{
			Key:           key,
			Name:          s.Name,
			CognitiveMode: s.CognitiveMode,
		})
	}
	return summaries
}

// Reload re-reads the catalog from its source files
func (r *StanceRegistry) Reload() error {
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
