// Package orchestrator decides how a query gets answered: the primary
// generative client when one is configured and healthy, otherwise the
// deterministic fallback engine. It never fails to produce a response.
package orchestrator

import (
	"context"
	"log"
	"strings"

	"github.com/adarsh8081/e-waste-management/internal/model/chat"
	"github.com/adarsh8081/e-waste-management/internal/service/ai"
	"github.com/adarsh8081/e-waste-management/internal/service/fallback"
)

// Asker is the primary-client surface the orchestrator depends on.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Orchestrator composes the primary client and the fallback engine.
type Orchestrator struct {
	client Asker
	engine *fallback.Engine
}

// New builds an orchestrator. client may be nil; every query then resolves
// through the fallback engine.
func New(client Asker, engine *fallback.Engine) *Orchestrator {
	if engine == nil {
		engine = fallback.NewEngine()
	}
	return &Orchestrator{client: client, engine: engine}
}

// GenerateResponse answers the query. Primary failures are absorbed here and
// never surface to the caller; the fallback ladder guarantees a non-empty
// text response for any input.
func (o *Orchestrator) GenerateResponse(ctx context.Context, text string) chat.Response {
	if o.client != nil {
		reply, err := o.client.Ask(ctx, ai.AugmentPrompt(text))
		if err == nil && strings.TrimSpace(reply) != "" {
			return chat.TextResponse(reply)
		}
		log.Printf("[orchestrator] primary client failed, using fallback: %v", err)
	}

	return chat.TextResponse(o.engine.Respond(text))
}
