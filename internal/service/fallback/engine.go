// Package fallback produces deterministic answers when the primary model is
// unavailable. It is pure: no I/O, no state, and it never fails.
package fallback

import "strings"

// Bucket is the intent class a query resolves to.
type Bucket string

const (
	Definition Bucket = "definition"
	Process    Bucket = "process"
	Impact     Bucket = "impact"
	Regulation Bucket = "regulation"
	General    Bucket = "general"
)

// definitionMarkers and the keyword lists below are checked in a fixed
// priority order; the first match wins.
var (
	definitionMarkers  = []string{"what is", "define"}
	processKeywords    = []string{"how", "process", "method"}
	impactKeywords     = []string{"why", "impact", "effect"}
	regulationKeywords = []string{"regulation", "law", "compliance"}
)

// Engine maps queries onto intent buckets and fixed template responses.
type Engine struct{}

// NewEngine returns the deterministic response engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Classify resolves the intent bucket for a query. Priority order:
// Definition, Process, Impact, Regulation, then General.
func (e *Engine) Classify(query string) Bucket {
	lower := strings.ToLower(query)

	if containsAny(lower, definitionMarkers) {
		return Definition
	}
	if containsAny(lower, processKeywords) {
		return Process
	}
	if containsAny(lower, impactKeywords) {
		return Impact
	}
	if containsAny(lower, regulationKeywords) {
		return Regulation
	}
	return General
}

// Respond returns the template answer for the query. Total function: every
// input, including empty, yields a non-empty response.
func (e *Engine) Respond(query string) string {
	lower := strings.ToLower(query)

	switch e.Classify(query) {
	case Definition:
		// Only the e-waste definition has a dedicated article today;
		// other definition queries get the topic menu.
		if strings.Contains(lower, "e-waste") {
			return definitionArticle
		}
		return generalMenu
	case Process:
		return processTemplate
	case Impact:
		return impactTemplate
	case Regulation:
		return regulationTemplate
	default:
		return generalMenu
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
