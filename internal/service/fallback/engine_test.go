package fallback_test

import (
	"strings"
	"testing"

	"github.com/adarsh8081/e-waste-management/internal/service/fallback"
)

func TestClassifyBuckets(t *testing.T) {
	engine := fallback.NewEngine()

	cases := []struct {
		query string
		want  fallback.Bucket
	}{
		{"What is e-waste?", fallback.Definition},
		{"define electronic waste", fallback.Definition},
		{"How do I recycle a laptop?", fallback.Process},
		{"best method for battery disposal", fallback.Process},
		{"why should I care about toxics", fallback.Impact},
		{"environmental effect of landfills", fallback.Impact},
		{"is there a law about exporting monitors", fallback.Regulation},
		{"WEEE compliance requirements", fallback.Regulation},
		{"tell me about recycling centers near me", fallback.General},
		{"", fallback.General},
	}

	for _, tc := range cases {
		if got := engine.Classify(tc.query); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.query, got, tc.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	engine := fallback.NewEngine()

	// "why" (impact) and "process" (process) both match; process keywords
	// are checked first.
	if got := engine.Classify("why does the recycling process matter"); got != fallback.Process {
		t.Fatalf("Classify = %s, want %s", got, fallback.Process)
	}

	// "what is" beats every later bucket.
	if got := engine.Classify("what is the law on e-waste"); got != fallback.Definition {
		t.Fatalf("Classify = %s, want %s", got, fallback.Definition)
	}
}

func TestRespondDefinitionArticle(t *testing.T) {
	engine := fallback.NewEngine()

	got := engine.Respond("What is e-waste?")
	if !strings.Contains(got, "Understanding E-Waste") {
		t.Fatalf("definition response missing article header, got %q", truncate(got))
	}
	if !strings.HasPrefix(got, "**Understanding E-Waste") {
		t.Fatalf("definition response should start with the article title, got %q", truncate(got))
	}
}

func TestRespondDefinitionWithoutEWasteFallsToMenu(t *testing.T) {
	engine := fallback.NewEngine()

	got := engine.Respond("what is a circular economy")
	if strings.Contains(got, "Understanding E-Waste") {
		t.Fatal("non-e-waste definition query should not get the e-waste article")
	}
	if !strings.Contains(got, "could you please specify your interest") {
		t.Fatalf("expected the topic menu, got %q", truncate(got))
	}
}

func TestRespondNeverEmpty(t *testing.T) {
	engine := fallback.NewEngine()

	queries := []string{
		"",
		"   ",
		"how",
		"why why why",
		"regulation",
		"completely unrelated gibberish xyzzy",
		"¿qué es la basura electrónica?",
	}
	for _, q := range queries {
		if got := engine.Respond(q); strings.TrimSpace(got) == "" {
			t.Errorf("Respond(%q) returned empty response", q)
		}
	}
}

func TestRespondDeterministic(t *testing.T) {
	engine := fallback.NewEngine()

	first := engine.Respond("how does recycling work")
	for i := 0; i < 5; i++ {
		if got := engine.Respond("how does recycling work"); got != first {
			t.Fatal("same query produced different responses")
		}
	}
}

func truncate(s string) string {
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}
