package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventDecoder feeds scripted SSE events into the SDK stream, surfacing an
// optional terminal error once the events are exhausted.
type eventDecoder struct {
	events []ssestream.Event
	idx    int
	cur    ssestream.Event
	err    error
}

func (d *eventDecoder) Next() bool {
	if d.idx >= len(d.events) {
		return false
	}
	d.cur = d.events[d.idx]
	d.idx++
	return true
}

func (d *eventDecoder) Event() ssestream.Event { return d.cur }
func (d *eventDecoder) Close() error           { return nil }
func (d *eventDecoder) Err() error             { return d.err }

func sse(t *testing.T, eventType, data string) ssestream.Event {
	t.Helper()
	require.True(t, json.Valid([]byte(data)), "bad test event JSON: %s", data)
	return ssestream.Event{Type: eventType, Data: json.RawMessage(data)}
}

// messageEvents wraps text deltas in a complete stream envelope.
func messageEvents(t *testing.T, deltas ...string) []ssestream.Event {
	t.Helper()
	events := []ssestream.Event{
		sse(t, "message_start", `{"type":"message_start","message":{"id":"msg_1","type":"message","role":"assistant","model":"claude-haiku-4-5","content":[],"usage":{"input_tokens":120,"output_tokens":1}}}`),
		sse(t, "content_block_start", `{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`),
	}
	for _, text := range deltas {
		raw, err := json.Marshal(text)
		require.NoError(t, err)
		events = append(events, sse(t, "content_block_delta",
			fmt.Sprintf(`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":%s}}`, raw)))
	}
	events = append(events,
		sse(t, "content_block_stop", `{"type":"content_block_stop","index":0}`),
		sse(t, "message_delta", `{"type":"message_delta","delta":{"stop_reason":"end_turn"},"usage":{"input_tokens":120,"output_tokens":57}}`),
		sse(t, "message_stop", `{"type":"message_stop"}`),
	)
	return events
}

// fakeMessages serves one scripted stream per call.
type fakeMessages struct {
	mu       sync.Mutex
	requests []sdk.MessageNewParams
	optCount []int
	streams  []*eventDecoder
}

func (f *fakeMessages) NewStreaming(_ context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, body)
	f.optCount = append(f.optCount, len(opts))
	dec := f.streams[0]
	if len(f.streams) > 1 {
		f.streams = f.streams[1:]
	}
	return ssestream.NewStream[sdk.MessageStreamEventUnion](dec, nil)
}

func newTestClient(messages MessagesClient, delays []time.Duration) *Client {
	c := NewClientFromMessages(messages)
	c.delays = delays
	return c
}

func TestCallAccumulatesStreamedText(t *testing.T) {
	fake := &fakeMessages{streams: []*eventDecoder{
		{events: messageEvents(t, "The argument ", "proceeds in ", "three steps.")},
	}}
	c := newTestClient(fake, nil)

	result, err := c.Call(context.Background(), CallRequest{
		SystemPrompt: "Analyze.",
		UserMessage:  "the text",
		ModelHint:    HaikuModel.ID,
		Label:        "test call",
	})
	require.NoError(t, err)
	assert.Equal(t, "The argument proceeds in three steps.", result.Content)
	assert.Equal(t, HaikuModel.ID, result.ModelUsed)
	assert.Equal(t, 120, result.InputTokens)
	assert.Equal(t, 57, result.OutputTokens)
	assert.Equal(t, 0, result.Retries)
	assert.False(t, result.Partial)

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	assert.Equal(t, sdk.Model(HaikuModel.ID), req.Model)
	require.Len(t, req.System, 1)
	assert.Equal(t, "Analyze.", req.System[0].Text)
}

func TestCallSalvagesLongPartialStream(t *testing.T) {
	// Well past the salvage floor before the stream dies
	chunk := strings.Repeat("substantive analytical prose ", 40)
	dec := &eventDecoder{
		events: []ssestream.Event{
			sse(t, "message_start", `{"type":"message_start","message":{"id":"m","type":"message","role":"assistant","model":"claude-sonnet-4-5","content":[],"usage":{"input_tokens":10,"output_tokens":1}}}`),
			sse(t, "content_block_start", `{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`),
		},
		err: errors.New("unexpected EOF"),
	}
	for i := 0; i < 6; i++ {
		raw, _ := json.Marshal(chunk)
		dec.events = append(dec.events, sse(t, "content_block_delta",
			fmt.Sprintf(`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":%s}}`, raw)))
	}

	c := newTestClient(&fakeMessages{streams: []*eventDecoder{dec}}, nil)
	result, err := c.Call(context.Background(), CallRequest{Label: "salvage test"})
	require.NoError(t, err)
	assert.True(t, result.Partial)
	assert.Contains(t, result.PartialReason, "unexpected EOF")
	assert.GreaterOrEqual(t, len(result.Content), salvageThreshold)
	assert.Equal(t, len(result.Content)/4, result.OutputTokens)
}

func TestCallShortPartialRetriesThenFails(t *testing.T) {
	// Too little accumulated text to salvage: every attempt fails
	mk := func() *eventDecoder {
		return &eventDecoder{
			events: []ssestream.Event{
				sse(t, "message_start", `{"type":"message_start","message":{"id":"m","type":"message","role":"assistant","model":"claude-sonnet-4-5","content":[],"usage":{"input_tokens":10,"output_tokens":1}}}`),
			},
			err: errors.New("connection reset"),
		}
	}
	fake := &fakeMessages{streams: []*eventDecoder{mk(), mk(), mk()}}
	c := newTestClient(fake, []time.Duration{time.Millisecond, time.Millisecond})

	_, err := c.Call(context.Background(), CallRequest{Label: "retry test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Contains(t, err.Error(), "connection reset")
	assert.Len(t, fake.requests, 3)
}

func TestCallCancelledBeforeAttempt(t *testing.T) {
	fake := &fakeMessages{streams: []*eventDecoder{{}}}
	c := newTestClient(fake, nil)

	_, err := c.Call(context.Background(), CallRequest{
		Label:     "cancelled",
		Cancelled: func() bool { return true },
	})
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, fake.requests)
}

func TestCallStallWatchdogWithoutSalvage(t *testing.T) {
	block := make(chan struct{})
	var closeOnce sync.Once
	dec := &blockingDecoder{unblock: block, closeOnce: &closeOnce}

	c := newTestClient(&blockingMessages{dec: dec}, nil)
	c.stall = 20 * time.Millisecond

	_, err := c.Call(context.Background(), CallRequest{Label: "stall test"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStreamStall)
}

// blockingDecoder never yields an event until closed, simulating a silently
// dead socket.
type blockingDecoder struct {
	unblock   chan struct{}
	closeOnce *sync.Once
	cur       ssestream.Event
}

func (d *blockingDecoder) Next() bool {
	<-d.unblock
	return false
}
func (d *blockingDecoder) Event() ssestream.Event { return d.cur }
func (d *blockingDecoder) Err() error             { return nil }
func (d *blockingDecoder) Close() error {
	d.closeOnce.Do(func() { close(d.unblock) })
	return nil
}

type blockingMessages struct{ dec *blockingDecoder }

func (b *blockingMessages) NewStreaming(_ context.Context, _ sdk.MessageNewParams, _ ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion] {
	return ssestream.NewStream[sdk.MessageStreamEventUnion](b.dec, nil)
}

func TestMillionContextBetaHeader(t *testing.T) {
	fake := &fakeMessages{streams: []*eventDecoder{
		{events: messageEvents(t, "ok")},
		{events: messageEvents(t, "ok")},
		{events: messageEvents(t, "ok")},
	}}
	c := newTestClient(fake, nil)
	ctx := context.Background()

	_, err := c.Call(ctx, CallRequest{Label: "small", UserMessage: "short"})
	require.NoError(t, err)
	_, err = c.Call(ctx, CallRequest{Label: "full docs", UserMessage: "short", RequiresFullDocs: true})
	require.NoError(t, err)
	_, err = c.Call(ctx, CallRequest{Label: "huge", UserMessage: strings.Repeat("x", millionContextThreshold+1)})
	require.NoError(t, err)

	require.Len(t, fake.optCount, 3)
	assert.Equal(t, 0, fake.optCount[0])
	assert.Equal(t, 1, fake.optCount[1])
	assert.Equal(t, 1, fake.optCount[2])
}

func TestAdaptiveEffort(t *testing.T) {
	assert.Equal(t, EffortHigh, adaptiveEffort(EffortHigh, 100_000))
	assert.Equal(t, EffortLow, adaptiveEffort(EffortHigh, lowEffortThreshold+1))
	assert.Equal(t, EffortOff, adaptiveEffort(EffortOff, lowEffortThreshold+1))
	assert.Equal(t, EffortOff, adaptiveEffort(EffortHigh, thinkingOffThreshold+1))
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, OpusModel, ResolveModel(OpusModel.ID, 2.0, ""))
	assert.Equal(t, SonnetModel, ResolveModel("", 1.0, ""))
	assert.Equal(t, OpusModel, ResolveModel("", 5.0, "deep"))
	assert.Equal(t, SonnetModel, ResolveModel("", 5.0, "standard"))

	custom := ResolveModel("claude-custom", 1.0, "")
	assert.Equal(t, "claude-custom", custom.ID)
	assert.Equal(t, SonnetModel.MaxTokens, custom.MaxTokens)
}

func TestClassifyErrorAuth(t *testing.T) {
	apiErr := &sdk.Error{
		StatusCode: 401,
		Request:    httptest.NewRequest(http.MethodPost, "https://api.anthropic.com/v1/messages", nil),
		Response:   &http.Response{StatusCode: 401},
	}
	err := classifyError(fmt.Errorf("request failed: %w", apiErr))
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.False(t, isRetryable(err))

	// Unclassified errors pass through retryable
	plain := classifyError(errors.New("overloaded"))
	assert.True(t, isRetryable(plain))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, isRetryable(nil))
	assert.False(t, isRetryable(ErrCancelled))
	assert.False(t, isRetryable(ErrContextLength))
	assert.False(t, isRetryable(ErrPromptTooLong))
	assert.False(t, isRetryable(ErrMaxTokensLimit))
	assert.True(t, isRetryable(ErrStreamStall))
	assert.True(t, isRetryable(errors.New("http 529")))
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)

	c, err := NewClient("sk-test")
	require.NoError(t, err)
	require.NotNil(t, c)
}
