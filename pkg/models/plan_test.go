package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlan() *ExecutionPlan {
	return &ExecutionPlan{
		PlanID:     "plan-1",
		TargetWork: WorkMeta{Title: "Target"},
		PriorWorks: []WorkMeta{{Title: "Prior A"}, {Title: "Prior B"}},
		Phases: []PhaseSpec{
			{PhaseNumber: 1.0, PhaseName: "foundation", ChainKey: "core"},
			{PhaseNumber: 2.0, PhaseName: "priors", EngineKey: "dialectical",
				IterationMode: IterationPerWork, DependsOn: []float64{1.0}},
		},
	}
}

func TestPlanValidate(t *testing.T) {
	require.NoError(t, validPlan().Validate())

	p := validPlan()
	p.Phases[1].DependsOn = []float64{9.0}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency 9.0 not in plan")

	p = validPlan()
	p.Phases[1].WorkChainMap = map[string]string{"Unknown Work": "core"}
	err = p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a prior work")

	p = validPlan()
	p.Phases[1].WorkChainMap = map[string]string{"Prior A": "core"}
	require.NoError(t, p.Validate())
}

func TestPhaseSpecExactlyOneOfChainEngine(t *testing.T) {
	spec := PhaseSpec{PhaseNumber: 1.0}
	err := spec.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither chain_key nor engine_key")

	spec = PhaseSpec{PhaseNumber: 1.0, ChainKey: "core", EngineKey: "dialectical"}
	err = spec.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both chain_key and engine_key")

	require.NoError(t, (&PhaseSpec{PhaseNumber: 1.0, ChainKey: "core"}).Validate())
	require.NoError(t, (&PhaseSpec{PhaseNumber: 1.0, EngineKey: "dialectical"}).Validate())
}

func TestActivePhasesAndTitles(t *testing.T) {
	p := validPlan()
	p.Phases[0].Skip = true
	p.Phases[0].SkipReason = "covered by objective"

	active := p.ActivePhases()
	require.Len(t, active, 1)
	assert.Equal(t, 2.0, active[0].PhaseNumber)

	assert.Equal(t, []string{"Prior A", "Prior B"}, p.PriorWorkTitles())
}
