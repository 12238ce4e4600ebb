package config

// WorkflowTemplate is a named phase sequence the planner layers request
// overrides on top of.
type WorkflowTemplate struct {
	Key         string          `yaml:"key"`
	Name        string          `yaml:"name,omitempty"`
	Description string          `yaml:"description,omitempty"`
	Phases      []WorkflowPhase `yaml:"phases"`
}

// WorkflowPhase is one template-level phase. Exactly one of ChainKey and
// EngineKey is expected; the planner validates the instantiated plan.
type WorkflowPhase struct {
	PhaseNumber   float64   `yaml:"phase_number"`
	PhaseName     string    `yaml:"phase_name"`
	ChainKey      string    `yaml:"chain_key,omitempty"`
	EngineKey     string    `yaml:"engine_key,omitempty"`
	IterationMode string    `yaml:"iteration_mode,omitempty"`
	Depth         string    `yaml:"depth,omitempty"`
	DependsOn     []float64 `yaml:"depends_on,omitempty"`
	Description   string    `yaml:"description,omitempty"`
}

// Phase returns the template phase with the given number, or nil.
func (w *WorkflowTemplate) Phase(number float64) *WorkflowPhase {
	for i := range w.Phases {
		if w.Phases[i].PhaseNumber == number {
			return &w.Phases[i]
		}
	}
	return nil
}

// WorkflowSummary is the compact listing shape for catalog browsing.
type WorkflowSummary struct {
	Key        string `json:"key"`
	Name       string `json:"name,omitempty"`
	PhaseCount int    `json:"phase_count"`
}

// WorkflowRegistry stores workflow templates with thread-safe access
type WorkflowRegistry struct {
	registry[WorkflowTemplate]
	loader func() (map[string]*WorkflowTemplate, error)
}

// NewWorkflowRegistry creates a new workflow registry
func NewWorkflowRegistry(workflows map[string]*WorkflowTemplate) *WorkflowRegistry {
	return &WorkflowRegistry{registry: newRegistry(workflows, ErrWorkflowNotFound)}
}

// ListSummaries returns compact summaries sorted by key (thread-safe)
func (r *WorkflowRegistry) ListSummaries() []WorkflowSummary {
	all := r.ListAll()
	summaries := make([]WorkflowSummary, 0, len(all))
	for _, key := range r.ListKeys() {
		w := all[key]
		summaries = append(summaries, WorkflowSummary{
			Key:        key,
			Name:       w.Name,
			PhaseCount: len(w.Phases),
		})
	}
	return summaries
}

// Reload re-reads the catalog from its source files
func (r *WorkflowRegistry) Reload() error {
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
