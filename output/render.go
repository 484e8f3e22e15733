package output

import (
	"regexp"
	"strings"

	"github.com/honki-bobo/synthv-translator/phoneme"
)

var (
	leadingTagRe = regexp.MustCompile(`^<(\w+)>`)
	anyTagRe     = regexp.MustCompile(`<(\w+)>`)
	stripTagRe   = regexp.MustCompile(`^<\w+>\s*`)
)

// Render produces the notation consumed by the synthesizer: language
// tags as <language>, phonemes space-separated, alternative sets
// bracketed and pipe-separated, syllables dash-separated, words
// newline-separated (double space in single-line mode). This format
// is the external file contract and must not drift.
func Render(words [][]phoneme.Syllable, singleLine bool) string {
	var outputGroups []string
	for _, word := range words {
		var formatted []string
		for _, syl := range word {
			var altStrings []string
			for _, alt := range syl.Alternatives {
				altStrings = append(altStrings, renderAlternative(alt))
			}
			if len(altStrings) == 0 {
				// nothing could be scored, emit the raw IPA
				altStrings = append(altStrings, syl.IPA)
			}
			joined := strings.Join(altStrings, ` | `)
			if len(altStrings) > 1 {
				joined = `[` + joined + `]`
			}
			formatted = append(formatted, joined)
		}
		collapseRedundantTags(formatted)
		outputGroups = append(outputGroups, strings.Join(formatted, ` - `))
	}
	separator := "\n"
	if singleLine {
		separator = `  `
	}
	return strings.Join(outputGroups, separator)
}

// renderAlternative emits a tag before the first phoneme of a run and
// again on every language change. Passthrough entries print bare and
// leave run tracking untouched.
func renderAlternative(alt phoneme.Alternative) string {
	var tokens []string
	lastLang := ``
	for _, entry := range alt.Mapping {
		if entry.Lang != `` && entry.Lang != lastLang {
			tokens = append(tokens, `<`+entry.Lang+`>`)
			lastLang = entry.Lang
		}
		tokens = append(tokens, entry.Ph)
	}
	return strings.Join(tokens, ` `)
}

// collapseRedundantTags drops a syllable's leading tag when it repeats
// the tag that ended the previous unbracketed syllable. Bracketed
// syllables have an ambiguous leading language, so they reset the
// tracking.
func collapseRedundantTags(formatted []string) {
	lastLang := ``
	for i, s := range formatted {
		if strings.HasPrefix(s, `[`) {
			lastLang = ``
			continue
		}
		match := leadingTagRe.FindStringSubmatch(s)
		if match != nil && match[1] == lastLang {
			s = stripTagRe.ReplaceAllString(s, ``)
			formatted[i] = s
		}
		allTags := anyTagRe.FindAllStringSubmatch(formatted[i], -1)
		if len(allTags) > 0 {
			lastLang = allTags[len(allTags)-1][1]
		}
	}
}

// IPAString renders the intermediate IPA, syllables joined by hyphens
// and words by spaces, for inspection.
func IPAString(words [][]phoneme.Syllable) string {
	var ipaWords []string
	for _, word := range words {
		var syls []string
		for _, syl := range word {
			syls = append(syls, syl.IPA)
		}
		ipaWords = append(ipaWords, strings.Join(syls, `-`))
	}
	return strings.Join(ipaWords, ` `)
}
