// Package languages holds the fixed mapping from human-readable target
// language names to the FLORES-200 codes the translation service expects.
package languages

import "sort"

// floresCodes is read-only process-wide configuration. The UI dropdown only
// ever offers names present here.
var floresCodes = map[string]string{
	"Czech":     "ces_Latn",
	"Danish":    "dan_Latn",
	"Dutch":     "nld_Latn",
	"English":   "eng_Latn",
	"German":    "deu_Latn",
	"Hebrew":    "heb_Hebr",
	"Hungarian": "hun_Latn",
	"Polish":    "pol_Latn",
	"Ukrainian": "ukr_Cyrl",
}

// Code returns the FLORES-200 code for a target language name.
func Code(name string) (string, bool) {
	code, ok := floresCodes[name]
	return code, ok
}

// Names returns the supported target language names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(floresCodes))
	for name := range floresCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
