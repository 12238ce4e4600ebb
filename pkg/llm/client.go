// Package llm is the streaming Anthropic client behind every analytical
// call: model resolution, adaptive effort scaling, 1M-context upgrade,
// heartbeat watchdog, retry with backoff, and partial-output salvage.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
)

const (
	// Inter-event stall watchdog
	heartbeatInterval = 120 * time.Second
	// Transport-level read timeout for a silently dead socket
	readTimeout = 300 * time.Second
	// Connect / TLS / write timeouts
	connectTimeout = 60 * time.Second

	// Minimum accumulated prose to salvage a dead stream
	salvageThreshold = 5000

	// Adaptive effort: extended thinking on very large extraction inputs
	// multiplies latency without improving quality
	thinkingOffThreshold = 400_000
	lowEffortThreshold   = 200_000

	// 1M-context upgrade
	millionContextThreshold = 600_000
	millionContextBeta      = "context-1m-2025-08-07"
)

// retryDelays are the backoff delays between attempts; len+1 total attempts.
var retryDelays = []time.Duration{
	30 * time.Second,
	60 * time.Second,
	90 * time.Second,
	120 * time.Second,
	180 * time.Second,
}

// CancelCheck reports whether the owning job has been cancelled. Polled
// before every attempt and on every stream event.
type CancelCheck func() bool

// CallRequest is one analytical LLM invocation.
type CallRequest struct {
	SystemPrompt     string
	UserMessage      string
	PhaseNumber      float64
	ModelHint        string
	Depth            string
	RequiresFullDocs bool
	Label            string
	Cancelled        CancelCheck
}

// CallResult is the outcome of one invocation. Partial results carry
// salvaged prose with estimated token counts.
type CallResult struct {
	Content        string
	ModelUsed      string
	InputTokens    int
	OutputTokens   int
	ThinkingTokens int
	Duration       time.Duration
	Retries        int
	Partial        bool
	PartialReason  string
}

// Caller is the interface the runners depend on; satisfied by *Client and
// by scriptable mocks in tests.
type Caller interface {
	Call(ctx context.Context, req CallRequest) (*CallResult, error)
}

// MessagesClient captures the subset of the Anthropic SDK used by the
// client. Satisfied by *sdk.MessageService.
type MessagesClient interface {
	NewStreaming(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion]
}

// Client implements Caller on the Anthropic Messages streaming API.
type Client struct {
	messages MessagesClient
	delays   []time.Duration
	stall    time.Duration
	log      *slog.Logger
}

// NewClient builds a client from an API key with the transport timeouts
// every analytical call runs under.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext:           (&net.Dialer{Timeout: connectTimeout}).DialContext,
			TLSHandshakeTimeout:   connectTimeout,
			ResponseHeaderTimeout: readTimeout,
			ExpectContinueTimeout: connectTimeout,
		},
	}
	ac := sdk.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
	)
	return &Client{
		messages: &ac.Messages,
		delays:   retryDelays,
		stall:    heartbeatInterval,
		log:      slog.Default().With("component", "llm"),
	}, nil
}

// NewClientFromMessages wraps an existing messages client (useful for testing)
func NewClientFromMessages(messages MessagesClient) *Client {
	return &Client{
		messages: messages,
		delays:   retryDelays,
		stall:    heartbeatInterval,
		log:      slog.Default().With("component", "llm"),
	}
}

// Call runs one streaming invocation with retry. Cancellation is checked
// before every attempt and raises immediately without retry.
func (c *Client) Call(ctx context.Context, req CallRequest) (*CallResult, error) {
	start := time.Now()
	var lastErr error

	for attempt := 0; attempt <= len(c.delays); attempt++ {
		if req.Cancelled != nil && req.Cancelled() {
			return nil, ErrCancelled
		}
		if attempt > 0 {
			delay := c.delays[attempt-1]
			c.log.Warn("Retrying LLM call",
				"label", req.Label, "attempt", attempt, "delay", delay, "error", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := c.streamOnce(ctx, req)
		if err == nil {
			result.Retries = attempt
			result.Duration = time.Since(start)
			return result, nil
		}

		err = classifyError(err)
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("llm call %q failed after %d attempts: %w", req.Label, len(c.delays)+1, lastErr)
}

// adaptiveEffort downgrades the configured effort by total prompt size.
func adaptiveEffort(configured Effort, totalChars int) Effort {
	switch {
	case totalChars > thinkingOffThreshold:
		return EffortOff
	case totalChars > lowEffortThreshold:
		if configured == EffortOff {
			return EffortOff
		}
		return EffortLow
	default:
		return configured
	}
}

type streamEvent struct {
	event sdk.MessageStreamEventUnion
	done  bool
	err   error
}

// streamOnce performs a single streaming attempt, accumulating text and
// thinking deltas incrementally and reconciling against the final envelope.
func (c *Client) streamOnce(ctx context.Context, req CallRequest) (*CallResult, error) {
	spec := ResolveModel(req.ModelHint, req.PhaseNumber, req.Depth)
	totalChars := len(req.SystemPrompt) + len(req.UserMessage)
	effort := adaptiveEffort(spec.Effort, totalChars)

	params := sdk.MessageNewParams{
		Model:     sdk.Model(spec.ID),
		MaxTokens: int64(spec.MaxTokens),
		System:    []sdk.TextBlockParam{{Text: req.SystemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.UserMessage)),
		},
	}
	if effort != EffortOff {
		params.Thinking = sdk.ThinkingConfigParamOfEnabled(thinkingBudgets[effort])
	}

	var opts []option.RequestOption
	if req.RequiresFullDocs || totalChars > millionContextThreshold {
		opts = append(opts, option.WithHeaderAdd("anthropic-beta", millionContextBeta))
	}

	c.log.Info("LLM call starting",
		"label", req.Label, "model", spec.ID, "effort", effort,
		"total_chars", totalChars, "phase", req.PhaseNumber)

	sctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream := c.messages.NewStreaming(sctx, params, opts...)
	if err := stream.Err(); err != nil {
		return nil, err
	}
	defer func() { _ = stream.Close() }()

	// The SDK read loop blocks in Next(); run it in a goroutine so the
	// consumer can enforce the inter-event stall watchdog.
	events := make(chan streamEvent, 32)
	go func() {
		defer close(events)
		for stream.Next() {
			select {
			case events <- streamEvent{event: stream.Current()}:
			case <-sctx.Done():
				return
			}
		}
		select {
		case events <- streamEvent{done: true, err: stream.Err()}:
		case <-sctx.Done():
		}
	}()

	// Capacity hint: long streams reallocate heavily without it
	var text strings.Builder
	text.Grow(spec.MaxTokens * 4)
	var thinkingChars int
	var envelope sdk.Message
	var usageSeen bool

	watchdog := time.NewTimer(c.stall)
	defer watchdog.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || ev.done {
				var streamErr error
				if ev.done {
					streamErr = ev.err
				}
				if streamErr != nil {
					if res := c.salvage(&text, thinkingChars, spec, streamErr); res != nil {
						return res, nil
					}
					return nil, streamErr
				}
				return c.finish(&text, thinkingChars, &envelope, usageSeen, spec), nil
			}

			if !watchdog.Stop() {
				select {
				case <-watchdog.C:
				default:
				}
			}
			watchdog.Reset(c.stall)

			if req.Cancelled != nil && req.Cancelled() {
				return nil, ErrCancelled
			}

			if err := envelope.Accumulate(ev.event); err != nil {
				c.log.Warn("Envelope accumulation error", "error", err)
			}
			switch e := ev.event.AsAny().(type) {
			case sdk.ContentBlockDeltaEvent:
				switch delta := e.Delta.AsAny().(type) {
				case sdk.TextDelta:
					text.WriteString(delta.Text)
				case sdk.ThinkingDelta:
					thinkingChars += len(delta.Thinking)
				}
			case sdk.MessageDeltaEvent:
				usageSeen = true
			}

		case <-watchdog.C:
			stallErr := fmt.Errorf("%w: %s after %s", ErrStreamStall, req.Label, c.stall)
			if res := c.salvage(&text, thinkingChars, spec, stallErr); res != nil {
				return res, nil
			}
			return nil, stallErr

		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// finish reconciles the incremental accumulation against the final envelope,
// preferring the envelope's content only when it is at least as long.
func (c *Client) finish(text *strings.Builder, thinkingChars int, envelope *sdk.Message, usageSeen bool, spec ModelSpec) *CallResult {
	content := text.String()
	var envelopeText strings.Builder
	for _, block := range envelope.Content {
		if block.Type == "text" {
			envelopeText.WriteString(block.Text)
		}
	}
	if envelopeText.Len() >= len(content) {
		content = envelopeText.String()
	}

	result := &CallResult{
		Content:        content,
		ModelUsed:      spec.ID,
		ThinkingTokens: thinkingChars / 4,
	}
	if usageSeen {
		result.InputTokens = int(envelope.Usage.InputTokens)
		result.OutputTokens = int(envelope.Usage.OutputTokens)
	} else {
		result.OutputTokens = len(content) / 4
	}
	return result
}

// salvage returns a partial result when the stream died with enough
// accumulated prose; nil means the caller should surface the error. Only
// text is salvaged, never thinking.
func (c *Client) salvage(text *strings.Builder, thinkingChars int, spec ModelSpec, cause error) *CallResult {
	if text.Len() < salvageThreshold {
		return nil
	}
	content := text.String()
	c.log.Warn("Salvaging partial LLM output",
		"chars", len(content), "model", spec.ID, "cause", cause)
	return &CallResult{
		Content:        content,
		ModelUsed:      spec.ID,
		OutputTokens:   len(content) / 4,
		ThinkingTokens: thinkingChars / 4,
		Partial:        true,
		PartialReason:  cause.Error(),
	}
}
