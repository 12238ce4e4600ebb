package config

// ViewDataSource resolves which stored outputs feed a view: a phase plus
// either an engine or a chain, and a scope (single or per_work).
type ViewDataSource struct {
	PhaseNumber float64 `yaml:"phase_number,omitempty"`
	EngineKey   string  `yaml:"engine_key,omitempty"`
	ChainKey    string  `yaml:"chain_key,omitempty"`
	Scope       string  `yaml:"scope,omitempty"` // "single" (default) or "per_work"
}

// ViewDefinition describes one renderable view over stored prose.
type ViewDefinition struct {
	Key            string                 `yaml:"key"`
	Title          string                 `yaml:"title,omitempty"`
	RendererType   string                 `yaml:"renderer_type"`
	RendererConfig map[string]interface{} `yaml:"renderer_config,omitempty"`
	IdealDataShape string                 `yaml:"ideal_data_shape,omitempty"`
	DataSource     ViewDataSource         `yaml:"data_source"`
	Transformation string                 `yaml:"transformation,omitempty"` // template key, or "none"
	StanceKey      string                 `yaml:"stance,omitempty"`
	Visibility     string                 `yaml:"visibility,omitempty"`
	Position       int                    `yaml:"position,omitempty"`
	ParentKey      string                 `yaml:"parent,omitempty"`
}

// PerWork reports whether the view fans out into one payload per work key.
func (v *ViewDefinition) PerWork() bool {
	return v.DataSource.Scope == "per_work"
}

// ViewSummary is the compact listing shape for catalog browsing.
type ViewSummary struct {
	Key          string `json:"key"`
	Title        string `json:"title,omitempty"`
	RendererType string `json:"renderer_type"`
	Position     int    `json:"position"`
}

// ViewRegistry stores view definitions with thread-safe access
type ViewRegistry struct {
	registry[ViewDefinition]
	loader func() (map[string]*ViewDefinition, error)
}

// NewViewRegistry creates a new view registry
func NewViewRegistry(views map[string]*ViewDefinition) *ViewRegistry {
	return &ViewRegistry{registry: newRegistry(views, ErrViewNotFound)}
}

// ListSummaries returns compact summaries sorted by key (thread-safe)
func (r *ViewRegistry) ListSummaries() []ViewSummary {
	all := r.ListAll()
	summaries := make([]ViewSummary, 0, len(all))
	for _, key := range r.ListKeys() {
		v := all[key]
		summaries = append(summaries, ViewSummary{
			Key:          key,
			Title:        v.Title,
			RendererType: v.RendererType,
			Position:     v.Position,
		})
	}
	return summaries
}

// Reload re-reads the catalog from its source files
func (r *ViewRegistry) Reload() error {
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
