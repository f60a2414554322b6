// Package ai wraps the primary generative model behind a fail-fast client:
// bounded timeouts, a fixed retry budget, and typed errors. It never blocks
// past its budget and never touches session state.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/adarsh8081/e-waste-management/internal/config"
)

// invoker is the slice of compose.Runnable the client needs. Tests substitute
// a fake; production wires the compiled prompt+model chain.
type invoker interface {
	Invoke(ctx context.Context, input map[string]any, opts ...compose.Option) (*schema.Message, error)
}

// Client issues single question/answer calls against the generative model.
type Client struct {
	chain      invoker
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
}

// NewClient builds the Ark-backed client from configuration. The model is not
// contacted here; Handshake does that under its own shorter timeout.
func NewClient(ctx context.Context, cfg config.AIConfig) (*Client, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile chat chain: %w", err)
	}

	return &Client{
		chain:      runnable,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.Backoff,
	}, nil
}

// Ask sends the prompt under the default timeout budget.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	return c.AskWithTimeout(ctx, query, c.timeout)
}

// AskWithTimeout sends the prompt, making up to maxRetries attempts inside
// the given overall budget. Attempts are separated by a fixed backoff, and a
// retry is skipped when the remaining budget could not fit it anyway.
func (c *Client) AskWithTimeout(ctx context.Context, query string, timeout time.Duration) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", &Error{Kind: KindInvalidInput, Msg: "empty prompt"}
	}

	deadline := time.Now().Add(timeout)
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	var lastErr error
attempts:
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		msg, err := c.chain.Invoke(ctx, map[string]any{"query": query})
		if err == nil {
			text := strings.TrimSpace(msg.Content)
			if text != "" {
				return text, nil
			}
			err = errors.New("model returned empty content")
		}
		lastErr = err
		log.Printf("[ai] attempt %d/%d failed: %v", attempt, c.maxRetries, err)

		if attempt == c.maxRetries {
			break
		}
		// Abort early when the backoff alone would exhaust the budget.
		if time.Until(deadline) <= c.backoff {
			break
		}
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
			break attempts
		case <-time.After(c.backoff):
		}
	}

	return "", &Error{Kind: KindUnavailable, Msg: "primary model unavailable", Err: lastErr}
}

// Handshake exercises the chain once under the given timeout so startup can
// detect a dead provider before taking traffic.
func (c *Client) Handshake(ctx context.Context, timeout time.Duration) error {
	_, err := c.AskWithTimeout(ctx, "Briefly confirm you are ready to answer e-waste management questions.", timeout)
	return err
}
