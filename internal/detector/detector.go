// Package detector wraps the lingua-go language detector behind a small
// read-only handle. Building the detector loads every language model, which
// is expensive; construct one at process start and share it.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

// Detect returns the most likely language of text. The second return value
// is false when the detector has no confident guess (including empty input).
func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO639_3 returns the lowercase ISO 639-3 code of the detected
// language, e.g. "eng" for English. The translation service identifies its
// supported source languages by this prefix.
func (d *Detector) DetectISO639_3(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_3().String()), true
}
