package language_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adarsh8081/e-waste-management/internal/service/language"
)

type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestDefaultsToEnglish(t *testing.T) {
	svc := language.NewService(nil)

	pref := svc.Preference()
	if pref.Code != "en" {
		t.Fatalf("default language = %q", pref.Code)
	}
	if pref.AudioEnabled {
		t.Fatal("audio enabled by default")
	}
}

func TestSetLanguage(t *testing.T) {
	svc := language.NewService(nil)

	if err := svc.SetLanguage("es"); err != nil {
		t.Fatalf("SetLanguage err: %v", err)
	}
	if got := svc.Preference().Code; got != "es" {
		t.Fatalf("preference = %q after SetLanguage", got)
	}
}

func TestSetLanguageRejectsUnknownCode(t *testing.T) {
	svc := language.NewService(nil)

	err := svc.SetLanguage("xx")
	if err == nil {
		t.Fatal("expected error for unsupported code")
	}
	if !strings.Contains(err.Error(), "language not supported") {
		t.Fatalf("unexpected message: %v", err)
	}
	if !strings.Contains(err.Error(), "en: English") || !strings.Contains(err.Error(), "es: Spanish") {
		t.Fatalf("error should list the supported languages, got: %v", err)
	}
	if got := svc.Preference().Code; got != "en" {
		t.Fatalf("rejected code changed the preference to %q", got)
	}
}

func TestSetAudio(t *testing.T) {
	svc := language.NewService(nil)

	svc.SetAudio(true)
	if !svc.Preference().AudioEnabled {
		t.Fatal("audio not enabled")
	}
	svc.SetAudio(false)
	if svc.Preference().AudioEnabled {
		t.Fatal("audio not disabled")
	}
}

func TestDetectLanguageFallsBackToEnglish(t *testing.T) {
	svc := language.NewService(nil)

	for _, text := range []string{"", "   ", "123 456"} {
		if got := svc.DetectLanguage(text); got != "en" {
			t.Errorf("DetectLanguage(%q) = %q, want en", text, got)
		}
	}
}

func TestDetectLanguageRecognizesSupportedLanguages(t *testing.T) {
	svc := language.NewService(nil)

	// Long unambiguous sentences so detection is stable.
	cases := map[string]string{
		"es": "La basura electrónica es un problema creciente para el medio ambiente en todo el mundo",
		"de": "Elektroschrott ist ein wachsendes Problem für die Umwelt auf der ganzen Welt",
	}
	for want, text := range cases {
		if got := svc.DetectLanguage(text); got != want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestTranslateWithoutProviderReturnsInput(t *testing.T) {
	svc := language.NewService(nil)

	in := "electronic waste contains valuable recoverable materials"
	if got := svc.Translate(context.Background(), in, "es"); got != in {
		t.Fatalf("nil provider should pass text through, got %q", got)
	}
}

func TestTranslateFailOpenOnProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	svc := language.NewService(provider)

	in := "electronic waste contains valuable recoverable materials"
	if got := svc.Translate(context.Background(), in, "es"); got != in {
		t.Fatalf("provider error should pass text through, got %q", got)
	}
	if provider.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", provider.calls)
	}
}

func TestTranslateFailOpenOnEmptyProviderOutput(t *testing.T) {
	provider := &stubProvider{reply: "   "}
	svc := language.NewService(provider)

	in := "electronic waste contains valuable recoverable materials"
	if got := svc.Translate(context.Background(), in, "es"); got != in {
		t.Fatalf("empty provider output should pass text through, got %q", got)
	}
}

func TestTranslateSkipsUnsupportedTarget(t *testing.T) {
	provider := &stubProvider{reply: "translated"}
	svc := language.NewService(provider)

	in := "some text"
	if got := svc.Translate(context.Background(), in, "xx"); got != in {
		t.Fatalf("unsupported target should pass text through, got %q", got)
	}
	if provider.calls != 0 {
		t.Fatalf("provider called for unsupported target")
	}
}

func TestTranslateSkipsMatchingSourceAndTarget(t *testing.T) {
	provider := &stubProvider{reply: "translated"}
	svc := language.NewService(provider)

	in := "This is a long English sentence about recycling old electronic devices responsibly"
	if got := svc.Translate(context.Background(), in, "en"); got != in {
		t.Fatalf("same-language translation should be a no-op, got %q", got)
	}
	if provider.calls != 0 {
		t.Fatalf("provider called when source already matches target")
	}
}

func TestTranslateUsesProviderResult(t *testing.T) {
	provider := &stubProvider{reply: "la traducción"}
	svc := language.NewService(provider)

	in := "This is a long English sentence about recycling old electronic devices responsibly"
	if got := svc.Translate(context.Background(), in, "es"); got != "la traducción" {
		t.Fatalf("expected provider result, got %q", got)
	}
}
