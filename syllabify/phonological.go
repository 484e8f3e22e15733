package syllabify

import (
	"sort"
	"unicode/utf8"

	"github.com/honki-bobo/synthv-translator/decode_yaml"
)

// Phonological syllabifies IPA strings directly, using maximal onset
// with a legality check over the configured sonority hierarchy.
type Phonological struct {
	rules    decode_yaml.SyllableRules
	specials []string
}

func NewPhonological(rules decode_yaml.SyllableRules) Phonological {
	var p Phonological
	p.rules = rules
	// multi-character units are matched longest first; the secondary
	// lexicographic order makes tokenization deterministic
	for diphthong := range rules.Diphthongs {
		p.specials = append(p.specials, diphthong)
	}
	for affricate := range rules.Affricates {
		p.specials = append(p.specials, affricate)
	}
	for vowel := range rules.Vowels {
		p.specials = append(p.specials, vowel)
	}
	sort.Slice(p.specials, func(i, j int) bool {
		if len(p.specials[i]) != len(p.specials[j]) {
			return len(p.specials[i]) > len(p.specials[j])
		}
		return p.specials[i] < p.specials[j]
	})
	return p
}

// Syllabify splits an IPA string at legal onset boundaries. A string
// without any nucleus is returned whole.
func (p *Phonological) Syllabify(ipa string) []string {
	tokens := p.tokenize(ipa)
	var nuclei []int
	for i, token := range tokens {
		class := p.rules.Class(token)
		if class == `vowel` || class == `diphthong` {
			nuclei = append(nuclei, i)
		}
	}
	if len(nuclei) == 0 {
		return []string{ipa}
	}
	var syllables []string
	lastBoundary := 0
	for ni := 1; ni < len(nuclei); ni++ {
		prevNuc := nuclei[ni-1]
		currNuc := nuclei[ni]
		cluster := tokens[prevNuc+1 : currNuc]
		if len(cluster) == 0 {
			continue
		}
		// maximal onset: shrink the cluster from the left until the
		// remainder is a legal onset for the following syllable
		split := prevNuc + 1
		for k := 0; k < len(cluster); k++ {
			if p.isValidOnset(cluster[k:]) {
				split = prevNuc + 1 + k
				break
			}
		}
		syllables = append(syllables, join(tokens[lastBoundary:split]))
		lastBoundary = split
	}
	syllables = append(syllables, join(tokens[lastBoundary:]))
	return syllables
}

// tokenize splits an IPA string greedily, longest known unit first,
// falling back to one rune.
func (p *Phonological) tokenize(ipa string) []string {
	var tokens []string
	i := 0
	for i < len(ipa) {
		matched := false
		for _, special := range p.specials {
			if len(ipa)-i >= len(special) && ipa[i:i+len(special)] == special {
				tokens = append(tokens, special)
				i += len(special)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(ipa[i:])
			tokens = append(tokens, ipa[i:i+size])
			i += size
		}
	}
	return tokens
}

// isValidOnset accepts the empty onset, exact whitelist matches, and
// clusters whose sonority never decreases left to right.
func (p *Phonological) isValidOnset(onset []string) bool {
	if len(onset) == 0 {
		return true
	}
	if p.rules.AllowedOnsets[join(onset)] {
		return true
	}
	for i := 1; i < len(onset); i++ {
		if p.rules.SonorityOf(onset[i]) < p.rules.SonorityOf(onset[i-1]) {
			return false
		}
	}
	return true
}

func join(tokens []string) string {
	var result string
	for _, token := range tokens {
		result += token
	}
	return result
}
