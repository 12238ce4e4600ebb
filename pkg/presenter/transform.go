// Package presenter bridges opaque analytical prose and the structured
// shapes renderers want: transformation tasks, the presentation cache,
// view refinement, and payload assembly.
package presenter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
)

// TransformExecutor dispatches one transformation task on its type.
// LLM-backed types try the fast tier first and fall back to the strong
// tier when the fast model fails or returns unparseable JSON.
type TransformExecutor struct {
	caller llm.Caller
	log    *slog.Logger
}

// NewTransformExecutor creates a transformation executor
func NewTransformExecutor(caller llm.Caller) *TransformExecutor {
	return &TransformExecutor{
		caller: caller,
		log:    slog.Default().With("component", "transform_executor"),
	}
}

// TransformResult carries the structured payload plus accounting.
type TransformResult struct {
	Payload      map[string]interface{}
	ModelUsed    string
	LLMCalls     int
	InputTokens  int
	OutputTokens int
}

// Execute runs one transformation over source prose.
func (e *TransformExecutor) Execute(ctx context.Context, tmpl *config.TransformationTemplate, content string) (*TransformResult, error) {
	switch tmpl.Type {
	case config.TransformPassthrough, "":
		return &TransformResult{Payload: map[string]interface{}{"prose": content}}, nil
	case config.TransformSchemaRename:
		return e.schemaRename(tmpl, content)
	case config.TransformGroup:
		return e.group(tmpl, content)
	case config.TransformLLMExtract:
		return e.llmCall(ctx, tmpl, content, true)
	case config.TransformLLMSummarize:
		return e.llmCall(ctx, tmpl, content, false)
	default:
		return nil, fmt.Errorf("unknown transformation type %q", tmpl.Type)
	}
}

// schemaRename remaps top-level keys of JSON content. Non-JSON content
// degrades to a prose payload.
func (e *TransformExecutor) schemaRename(tmpl *config.TransformationTemplate, content string) (*TransformResult, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return &TransformResult{Payload: map[string]interface{}{"prose": content}}, nil
	}
	renamed := make(map[string]interface{}, len(data))
	for k, v := range data {
		if to, ok := tmpl.FieldMap[k]; ok {
			renamed[to] = v
		} else {
			renamed[k] = v
		}
	}
	return &TransformResult{Payload: renamed}, nil
}

// group buckets a JSON array by the configured field.
func (e *TransformExecutor) group(tmpl *config.TransformationTemplate, content string) (*TransformResult, error) {
	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return &TransformResult{Payload: map[string]interface{}{"prose": content}}, nil
	}
	groups := make(map[string][]map[string]interface{})
	for _, item := range items {
		key := fmt.Sprintf("%v", item[tmpl.GroupByField])
		groups[key] = append(groups[key], item)
	}
	payload := make(map[string]interface{}, len(groups))
	for k, v := range groups {
		payload[k] = v
	}
	return &TransformResult{Payload: map[string]interface{}{"groups": payload}}, nil
}

// llmCall runs an extraction or summarization with tier fallback.
func (e *TransformExecutor) llmCall(ctx context.Context, tmpl *config.TransformationTemplate, content string, wantJSON bool) (*TransformResult, error) {
	models := []llm.ModelSpec{llm.HaikuModel, llm.SonnetModel}
	if tmpl.ModelTier == "strong" {
		models = []llm.ModelSpec{llm.SonnetModel}
	}

	prompt := tmpl.Prompt
	if wantJSON {
		prompt = fmt.Sprintf("%s\n\nRespond with a single JSON object and nothing else. Shape: %s", tmpl.Prompt, tmpl.Schema)
	}

	result := &TransformResult{}
	var lastErr error
	for _, model := range models {
		call, err := e.caller.Call(ctx, llm.CallRequest{
			SystemPrompt: prompt,
			UserMessage:  content,
			ModelHint:    model.ID,
			Label:        fmt.Sprintf("transform %s", tmpl.Key),
		})
		if err != nil {
			lastErr = err
			e.log.Warn("Transformation call failed, trying next tier",
				"template", tmpl.Key, "model", model.ID, "error", err)
			continue
		}
		result.LLMCalls++
		result.InputTokens += call.InputTokens
		result.OutputTokens += call.OutputTokens
		result.ModelUsed = call.ModelUsed

		if !wantJSON {
			result.Payload = map[string]interface{}{"summary": call.Content}
			return result, nil
		}
		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(stripFences(call.Content)), &payload); err != nil {
			lastErr = fmt.Errorf("model %s returned unparseable JSON: %w", model.ID, err)
			continue
		}
		result.Payload = payload
		return result, nil
	}
	return nil, fmt.Errorf("transformation %s exhausted model tiers: %w", tmpl.Key, lastErr)
}

// stripFences removes a wrapping markdown code fence.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	start := strings.IndexAny(s, "{[")
	if start > 0 {
		s = s[start:]
	}
	return strings.TrimSpace(s)
}
