package config

// TransformationType dispatches the transformation executor.
type TransformationType string

// Supported transformation types.
const (
	TransformPassthrough  TransformationType = "passthrough"
	TransformSchemaRename TransformationType = "schema_rename"
	TransformLLMExtract   TransformationType = "llm_extract"
	TransformLLMSummarize TransformationType = "llm_summarize"
	TransformGroup        TransformationType = "group"
)

// TransformationTemplate is a curated recipe turning an engine's prose into
// the structured shape a renderer wants.
type TransformationTemplate struct {
	Key          string             `yaml:"key"`
	EngineKey    string             `yaml:"engine_key"`
	RendererType string             `yaml:"renderer_type"`
	Type         TransformationType `yaml:"type"`
	Prompt       string             `yaml:"prompt,omitempty"`       // llm_extract / llm_summarize
	Schema       string             `yaml:"schema,omitempty"`       // JSON shape description for extraction
	FieldMap     map[string]string  `yaml:"field_map,omitempty"`    // schema_rename
	GroupByField string             `yaml:"group_by,omitempty"`     // group
	ModelTier    string             `yaml:"model_tier,omitempty"`   // "fast" (default) or "strong"
}

// TransformationSummary is the compact listing shape for catalog browsing.
type TransformationSummary struct {
	Key          string `json:"key"`
	EngineKey    string `json:"engine_key"`
	RendererType string `json:"renderer_type"`
	Type         string `json:"type"`
}

// TransformationRegistry stores transformation templates with thread-safe access
type TransformationRegistry struct {
	registry[TransformationTemplate]
	loader func() (map[string]*TransformationTemplate, error)
}

// NewTransformationRegistry creates a new transformation registry
func NewTransformationRegistry(templates map[string]*TransformationTemplate) *TransformationRegistry {
	return &TransformationRegistry{registry: newRegistry(templates, ErrTransformationNotFound)}
}

// FindForEngine returns the template registered for an (engine, renderer)
// pair, or nil when none exists.
func (r *TransformationRegistry) FindForEngine(engineKey, rendererType string) *TransformationTemplate {
	for _, t := range r.ListAll() {
		if t.EngineKey == engineKey && t.RendererType == rendererType {
			return t
		}
	}
	return nil
}

// ListSummaries returns compact summaries sorted by key (thread-safe)
func (r *TransformationRegistry) ListSummaries() []TransformationSummary {
	all := r.ListAll()
	summaries := make([]TransformationSummary, 0, len(all))
	for _, key := range r.ListKeys() {
		t := all[key]
		summaries = append(summaries, TransformationSummary{
			Key:          key,
			EngineKey:    t.EngineKey,
			RendererType: t.RendererType,
			Type:         string(t.Type),
		})
	}
	return summaries
}

// Reload re-reads the catalog from its source files
func (r *TransformationRegistry) Reload() error {
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
