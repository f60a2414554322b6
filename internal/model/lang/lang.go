// Package lang defines the fixed set of languages the assistant can answer in.
package lang

import "sort"

// Default is the language assumed until a user picks another one.
const Default = "en"

// supported maps ISO 639-1 codes to display names. The set is fixed; adding a
// language means adding translation and TTS coverage for it first.
var supported = map[string]string{
	"en": "English",
	"es": "Spanish",
	"de": "German",
	"fr": "French",
	"zh": "Chinese",
	"ja": "Japanese",
}

// Supported returns a copy of the code→name map.
func Supported() map[string]string {
	out := make(map[string]string, len(supported))
	for code, name := range supported {
		out[code] = name
	}
	return out
}

// IsSupported reports whether code is one of the fixed language codes.
func IsSupported(code string) bool {
	_, ok := supported[code]
	return ok
}

// Name returns the display name for a supported code, or "" otherwise.
func Name(code string) string {
	return supported[code]
}

// Codes returns the supported codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(supported))
	for code := range supported {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Preference is the process-scoped language/audio choice for a logical user.
type Preference struct {
	Code         string `json:"code"`
	AudioEnabled bool   `json:"audio_enabled"`
}
