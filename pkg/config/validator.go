package config

import "fmt"

// Validate runs the cross-catalog consistency pass: every chain engine
// exists, every pass references a known stance, and every
// operationalization references known engine dimensions. Violations are
// returned as findings for the health endpoint, never as errors — a broken
// cross-reference degrades one engine at run time, not the whole service.
func Validate(cfg *Config) []Finding {
	var findings []Finding

	for key, chain := range cfg.Chains.ListAll() {
		for _, engineKey := range chain.Engines {
			if !cfg.Engines.Has(engineKey) {
				findings = append(findings, Finding{
					Catalog: "chains",
					Key:     key,
					Detail:  fmt.Sprintf("references unknown engine %q", engineKey),
				})
			}
		}
	}

	for key, engine := range cfg.Engines.ListAll() {
		for _, level := range engine.DepthLevels {
			for _, pass := range level.Passes {
				if pass.StanceKey != "" && !cfg.Stances.Has(pass.StanceKey) {
					findings = append(findings, Finding{
						Catalog: "engines",
						Key:     key,
						Detail: fmt.Sprintf("depth %q pass %d references unknown stance %q",
							level.Depth, pass.Number, pass.StanceKey),
					})
				}
			}
		}
	}

	for key, op := range cfg.Operationalizations.ListAll() {
		engine, err := cfg.Engines.Get(key)
		if err != nil {
			findings = append(findings, Finding{
				Catalog: "operationalizations",
				Key:     key,
				Detail:  "no such engine",
			})
			continue
		}
		for depth, passes := range op.Depths {
			for _, pass := range passes {
				if pass.StanceKey != "" && !cfg.Stances.Has(pass.StanceKey) {
					findings = append(findings, Finding{
						Catalog: "operationalizations",
						Key:     key,
						Detail: fmt.Sprintf("depth %q pass %d references unknown stance %q",
							depth, pass.Number, pass.StanceKey),
					})
				}
				for _, dim := range pass.FocusDimensions {
					if engine.Dimension(dim) == nil {
						findings = append(findings, Finding{
							Catalog: "operationalizations",
							Key:     key,
							Detail: fmt.Sprintf("depth %q pass %d references unknown dimension %q",
								depth, pass.Number, dim),
						})
					}
				}
			}
		}
	}

	for key, view := range cfg.Views.ListAll() {
		if view.Transformation != "" && view.Transformation != "none" &&
			!cfg.Transformations.Has(view.Transformation) {
			findings = append(findings, Finding{
				Catalog: "views",
				Key:     key,
				Detail:  fmt.Sprintf("references unknown transformation %q", view.Transformation),
			})
		}
	}

	for key, workflow := range cfg.Workflows.ListAll() {
		for _, phase := range workflow.Phases {
			if phase.ChainKey != "" && !cfg.Chains.Has(phase.ChainKey) {
				findings = append(findings, Finding{
					Catalog: "workflows",
					Key:     key,
					Detail:  fmt.Sprintf("phase %.1f references unknown chain %q", phase.PhaseNumber, phase.ChainKey),
				})
			}
			if phase.EngineKey != "" && !cfg.Engines.Has(phase.EngineKey) {
				findings = append(findings, Finding{
					Catalog: "workflows",
					Key:     key,
					Detail:  fmt.Sprintf("phase %.1f references unknown engine %q", phase.PhaseNumber, phase.EngineKey),
				})
			}
		}
	}

	return findings
}
