// Package config loads the catalog files (engines, chains, stances,
// operationalizations, workflows, views, transformations) into thread-safe
// read-only registries, plus runtime settings for the queue and LLM layers.
package config

// Config is the umbrella configuration object that encapsulates all
// registries, defaults, and configuration state.
type Config struct {
	configDir string

	// Runtime settings
	Settings *Settings

	// Catalog registries
	Engines             *EngineRegistry
	Chains              *ChainRegistry
	Stances             *StanceRegistry
	Operationalizations *OperationalizationRegistry
	Workflows           *WorkflowRegistry
	Views               *ViewRegistry
	Transformations     *TransformationRegistry

	// Non-fatal catalog inconsistencies found at load time
	Findings []Finding
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Engines             int
	Chains              int
	Stances             int
	Operationalizations int
	Workflows           int
	Views               int
	Transformations     int
	Findings            int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	return Stats{
		Engines:             c.Engines.Count(),
		Chains:              c.Chains.Count(),
		Stances:             c.Stances.Count(),
		Operationalizations: c.Operationalizations.Count(),
		Workflows:           c.Workflows.Count(),
		Views:               c.Views.Count(),
		Transformations:     c.Transformations.Count(),
		Findings:            len(c.Findings),
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetEngine retrieves an engine definition by key.
func (c *Config) GetEngine(key string) (*EngineDefinition, error) {
	return c.Engines.Get(key)
}

// GetChain retrieves a chain definition by key.
func (c *Config) GetChain(key string) (*ChainDefinition, error) {
	return c.Chains.Get(key)
}

// GetStance retrieves a stance definition by key.
func (c *Config) GetStance(key string) (*StanceDefinition, error) {
	return c.Stances.Get(key)
}

// GetWorkflow retrieves a workflow template by key.
func (c *Config) GetWorkflow(key string) (*WorkflowTemplate, error) {
	return c.Workflows.Get(key)
}

// ResolvePasses returns the pass sequence for an engine at a depth.
// An operationalization takes precedence over the engine's inline passes;
// nil means the engine runs as a single whole-engine call.
func (c *Config) ResolvePasses(engine *EngineDefinition, depth string) []PassDefinition {
	if op, err := c.Operationalizations.Get(engine.Key); err == nil {
		if passes := op.PassesAt(depth); len(passes) > 0 {
			return passes
		}
	}
	return engine.InlinePasses(depth)
}
