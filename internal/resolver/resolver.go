// Package resolver maps a piece of input text plus a target language name to
// the (source, target) code pair the translation service expects.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/memorise/nlpdemo/internal/languages"
)

// ErrUndetectable is returned when language detection has no confident guess
// for the input text. Callers are expected to skip the translation call and
// surface an empty result instead.
var ErrUndetectable = errors.New("input language could not be detected")

// LanguageDetector yields a lowercase ISO 639-3 code for a piece of text.
type LanguageDetector interface {
	DetectISO639_3(text string) (string, bool)
}

// LanguageLister fetches the translation service's supported source codes.
type LanguageLister interface {
	SupportedLanguages(ctx context.Context) ([]string, error)
}

type Resolver struct {
	det   LanguageDetector
	langs LanguageLister
}

func New(det LanguageDetector, langs LanguageLister) *Resolver {
	return &Resolver{det: det, langs: langs}
}

// Resolve produces the (source, target) language code pair for translating
// text into the target language named by targetName.
//
// The supported-language list is fetched live on every call. The source code
// is the first listed code whose prefix matches the detected ISO 639-3 code;
// when the service offers several script variants of one language, list order
// decides. Detection failure returns ErrUndetectable without consulting the
// list any further.
func (r *Resolver) Resolve(ctx context.Context, text, targetName string) (srcLang, tgtLang string, err error) {
	tgtLang, ok := languages.Code(targetName)
	if !ok {
		return "", "", fmt.Errorf("unknown target language %q", targetName)
	}

	supported, err := r.langs.SupportedLanguages(ctx)
	if err != nil {
		return "", "", fmt.Errorf("fetch supported languages: %w", err)
	}

	iso, ok := r.det.DetectISO639_3(text)
	if !ok {
		return "", "", ErrUndetectable
	}

	for _, code := range supported {
		if strings.HasPrefix(code, iso) {
			return code, tgtLang, nil
		}
	}
	return "", "", fmt.Errorf("translation service does not support source language %q", iso)
}
