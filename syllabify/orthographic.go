package syllabify

import (
	"context"
	"strings"
	"unicode"

	log "github.com/honki-bobo/synthv-translator/logger"
)

// Hyphenator is the external syllable-break engine. Its output is
// language-model driven and imperfect; Syllabify corrects it.
type Hyphenator interface {
	Hyphenate(word string) (string, *log.Status)
}

type Orthographic struct {
	ctx        context.Context
	hyphenator Hyphenator
	vowels     map[rune]bool
}

func NewOrthographic(ctx context.Context, hyphenator Hyphenator, vowelsOrth string) Orthographic {
	var o Orthographic
	o.ctx = ctx
	o.hyphenator = hyphenator
	o.vowels = make(map[rune]bool)
	for _, vowel := range vowelsOrth {
		o.vowels[vowel] = true
	}
	return o
}

// Syllabify splits one word into syllables, correcting the hyphenator
// where it fails: unsplit loanwords, protected grapheme clusters, and
// consonant-only fragments from bad split points.
func (o *Orthographic) Syllabify(word string) ([]string, *log.Status) {
	hyphenated, status := o.hyphenator.Hyphenate(word)
	if status != nil {
		return nil, status
	}
	syls := strings.Split(hyphenated, `-`)
	if len(syls) == 1 {
		return o.splitUnhyphenated(syls[0]), nil
	}
	syls = reattachPh(syls)
	syls = o.mergeVowelless(syls)
	return syls, nil
}

// splitUnhyphenated handles words the hyphenator returned whole.
// A leading vowel followed by h or b splits off the first letter
// ("ah" -> "a","h"); a trailing vowel+e splits off the final letter.
// Anything else stays unsplit, including one-letter words.
func (o *Orthographic) splitUnhyphenated(word string) []string {
	runes := []rune(word)
	if len(runes) >= 2 {
		first := unicode.ToLower(runes[0])
		second := unicode.ToLower(runes[1])
		if o.vowels[first] && (second == 'h' || second == 'b') {
			return []string{string(runes[0]), string(runes[1:])}
		}
		last := unicode.ToLower(runes[len(runes)-1])
		beforeLast := unicode.ToLower(runes[len(runes)-2])
		if o.vowels[beforeLast] && last == 'e' {
			return []string{string(runes[:len(runes)-1]), string(runes[len(runes)-1:])}
		}
	}
	return []string{word}
}

// reattachPh moves the "ph" of a syllable starting with "phth" onto
// the preceding syllable, keeping the cluster pronounceable.
func reattachPh(syls []string) []string {
	for i := 0; i < len(syls)-1; i++ {
		if strings.HasPrefix(syls[i+1], `phth`) {
			syls[i] += `ph`
			syls[i+1] = syls[i+1][2:]
		}
	}
	return syls
}

// mergeVowelless folds syllables without any orthographic vowel into
// their left neighbor (right neighbor when first). The index holds
// after a merge so the result is re-checked. A single remaining
// fragment stays as is.
func (o *Orthographic) mergeVowelless(syls []string) []string {
	i := 0
	for i < len(syls) && len(syls) > 1 {
		if o.hasVowel(syls[i]) {
			i++
			continue
		}
		if i == 0 {
			syls[0] = syls[0] + syls[1]
			syls = append(syls[:1], syls[2:]...)
		} else {
			syls[i-1] = syls[i-1] + syls[i]
			syls = append(syls[:i], syls[i+1:]...)
		}
	}
	return syls
}

func (o *Orthographic) hasVowel(syl string) bool {
	for _, r := range strings.ToLower(syl) {
		if o.vowels[r] {
			return true
		}
	}
	return false
}
