package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

var (
	// ErrCancelled is the distinguished interruption signal. It propagates
	// uncaught through the chain/phase runners; only the workflow runner
	// traps it and writes the cancelled status.
	ErrCancelled = errors.New("execution cancelled")

	// ErrStreamStall indicates no stream event arrived within the heartbeat window
	ErrStreamStall = errors.New("stream stalled: no events within heartbeat window")

	// ErrAuthentication indicates an invalid or missing API key (never retried)
	ErrAuthentication = errors.New("authentication failed")

	// ErrContextLength indicates the prompt exceeded the model's context window (never retried)
	ErrContextLength = errors.New("context length exceeded")

	// ErrPromptTooLong indicates the prompt was rejected as too long (never retried)
	ErrPromptTooLong = errors.New("prompt too long")

	// ErrMaxTokensLimit indicates max_tokens exceeds the model's output limit (never retried)
	ErrMaxTokensLimit = errors.New("max_tokens exceeds model limit")
)

// classifyError maps provider errors onto the non-retryable sentinels,
// passing everything else through for the retry loop.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return fmt.Errorf("%w: %v", ErrAuthentication, err)
		case 400:
			msg := strings.ToLower(apiErr.Error())
			switch {
			case strings.Contains(msg, "prompt is too long"):
				return fmt.Errorf("%w: %v", ErrPromptTooLong, err)
			case strings.Contains(msg, "context length"), strings.Contains(msg, "context window"):
				return fmt.Errorf("%w: %v", ErrContextLength, err)
			case strings.Contains(msg, "max_tokens"):
				return fmt.Errorf("%w: %v", ErrMaxTokensLimit, err)
			}
		}
	}
	return err
}

// isRetryable reports whether the retry loop should attempt again.
func isRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrCancelled),
		errors.Is(err, ErrAuthentication),
		errors.Is(err, ErrContextLength),
		errors.Is(err, ErrPromptTooLong),
		errors.Is(err, ErrMaxTokensLimit):
		return false
	}
	return true
}
