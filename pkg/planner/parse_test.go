package planner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose preamble", "Here is the plan:\n{\"a\":1}\nHope that helps.", `{"a":1}`},
		{"whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}

func TestParsePlan(t *testing.T) {
	raw := "```json\n" + `{
  "plan_id": "p1",
  "target_work": {"title": "Being and Time"},
  "phases": [
    {"phase_number": 1.0, "phase_name": "foundation", "chain_key": "core"}
  ]
}` + "\n```"

	plan, err := parsePlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "p1", plan.PlanID)
	assert.Equal(t, "Being and Time", plan.TargetWork.Title)
	require.Len(t, plan.Phases, 1)
	assert.Equal(t, "core", plan.Phases[0].ChainKey)
}

func TestParsePlanMalformed(t *testing.T) {
	raw := strings.Repeat("the model rambled instead of emitting JSON ", 20)

	_, err := parsePlan(raw)
	require.Error(t, err)

	var bad *BadResponseError
	require.True(t, errors.As(err, &bad))
	assert.Len(t, bad.Diagnostic, diagnosticChars)
	assert.True(t, strings.HasPrefix(raw, bad.Diagnostic))
	assert.Contains(t, bad.Error(), "malformed plan JSON")
}

func TestParsePlanShortDiagnosticKeptWhole(t *testing.T) {
	_, err := parsePlan("nope")
	var bad *BadResponseError
	require.True(t, errors.As(err, &bad))
	assert.Equal(t, "nope", bad.Diagnostic)
}
