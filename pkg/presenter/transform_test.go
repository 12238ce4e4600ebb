package presenter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
)

type stubCaller struct {
	mu      sync.Mutex
	calls   []llm.CallRequest
	respond func(req llm.CallRequest) (*llm.CallResult, error)
}

func (c *stubCaller) Call(_ context.Context, req llm.CallRequest) (*llm.CallResult, error) {
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()
	return c.respond(req)
}

func TestTransformPassthrough(t *testing.T) {
	e := NewTransformExecutor(nil)

	for _, typ := range []config.TransformationType{config.TransformPassthrough, ""} {
		result, err := e.Execute(context.Background(),
			&config.TransformationTemplate{Key: "p", Type: typ}, "raw prose")
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"prose": "raw prose"}, result.Payload)
		assert.Equal(t, 0, result.LLMCalls)
	}
}

func TestTransformSchemaRename(t *testing.T) {
	e := NewTransformExecutor(nil)
	tmpl := &config.TransformationTemplate{
		Key:      "rename",
		Type:     config.TransformSchemaRename,
		FieldMap: map[string]string{"concepts": "nodes"},
	}

	result, err := e.Execute(context.Background(), tmpl, `{"concepts": ["being"], "extra": 1}`)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"being"}, result.Payload["nodes"])
	assert.Equal(t, float64(1), result.Payload["extra"])
	assert.NotContains(t, result.Payload, "concepts")

	// Non-JSON content degrades to prose
	result, err = e.Execute(context.Background(), tmpl, "just prose")
	require.NoError(t, err)
	assert.Equal(t, "just prose", result.Payload["prose"])
}

func TestTransformGroup(t *testing.T) {
	e := NewTransformExecutor(nil)
	tmpl := &config.TransformationTemplate{
		Key:          "by-kind",
		Type:         config.TransformGroup,
		GroupByField: "kind",
	}

	result, err := e.Execute(context.Background(), tmpl,
		`[{"kind": "a", "v": 1}, {"kind": "b", "v": 2}, {"kind": "a", "v": 3}]`)
	require.NoError(t, err)

	groups, ok := result.Payload["groups"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, groups["a"], 2)
	assert.Len(t, groups["b"], 1)
}

func TestTransformLLMExtractTierFallback(t *testing.T) {
	caller := &stubCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		if req.ModelHint == llm.HaikuModel.ID {
			// Fast tier emits broken JSON
			return &llm.CallResult{Content: "not json", ModelUsed: req.ModelHint}, nil
		}
		return &llm.CallResult{Content: "```json\n{\"items\": []}\n```", ModelUsed: req.ModelHint}, nil
	}}
	e := NewTransformExecutor(caller)
	tmpl := &config.TransformationTemplate{
		Key:    "extract",
		Type:   config.TransformLLMExtract,
		Prompt: "Extract items.",
		Schema: `{"items": []}`,
	}

	result, err := e.Execute(context.Background(), tmpl, "prose")
	require.NoError(t, err)
	assert.Equal(t, 2, result.LLMCalls)
	assert.Equal(t, llm.SonnetModel.ID, result.ModelUsed)
	assert.Contains(t, result.Payload, "items")
}

func TestTransformLLMExtractStrongTierOnly(t *testing.T) {
	caller := &stubCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		return &llm.CallResult{Content: `{"ok": true}`, ModelUsed: req.ModelHint}, nil
	}}
	e := NewTransformExecutor(caller)
	tmpl := &config.TransformationTemplate{
		Key:       "extract-strong",
		Type:      config.TransformLLMExtract,
		ModelTier: "strong",
	}

	_, err := e.Execute(context.Background(), tmpl, "prose")
	require.NoError(t, err)
	require.Len(t, caller.calls, 1)
	assert.Equal(t, llm.SonnetModel.ID, caller.calls[0].ModelHint)
}

func TestTransformLLMExhaustsTiers(t *testing.T) {
	caller := &stubCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		return nil, errors.New("overloaded")
	}}
	e := NewTransformExecutor(caller)
	tmpl := &config.TransformationTemplate{Key: "summ", Type: config.TransformLLMSummarize}

	_, err := e.Execute(context.Background(), tmpl, "prose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted model tiers")
	assert.Len(t, caller.calls, 2)
}

func TestTransformUnknownType(t *testing.T) {
	e := NewTransformExecutor(nil)
	_, err := e.Execute(context.Background(),
		&config.TransformationTemplate{Key: "x", Type: "mystery"}, "prose")
	require.Error(t, err)
}

func TestStripFencesVariants(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`Preamble text {"a":1}`))
	assert.Equal(t, `[1,2]`, stripFences(" [1,2] "))
}
