package translate

import (
	"context"
	"strings"

	"github.com/honki-bobo/synthv-translator/align"
	"github.com/honki-bobo/synthv-translator/db"
	"github.com/honki-bobo/synthv-translator/decode_yaml"
	log "github.com/honki-bobo/synthv-translator/logger"
	"github.com/honki-bobo/synthv-translator/phoneme"
	"github.com/honki-bobo/synthv-translator/syllabify"
)

// Phonemizer is the external transcription engine, one IPA string per
// token, same order.
type Phonemizer interface {
	Transcribe(tokens []string) ([]string, *log.Status)
}

// Translator wires the pipeline: orthographic syllabification,
// dual-pass transcription, boundary projection, segmentation, and
// alternative generation. All configuration is bound at construction;
// nothing here mutates shared state between words.
type Translator struct {
	ctx          context.Context
	mapping      decode_yaml.Mapping
	lang         string
	phonemizer   Phonemizer
	orth         syllabify.Orthographic
	projector    align.Projector
	keyLengths   []int
	cache        *db.CacheDB
	alternatives int
	phonemeEdit  bool
}

func NewTranslator(ctx context.Context, mapping decode_yaml.Mapping, lang string,
	hyphenator syllabify.Hyphenator, phonemizer Phonemizer) Translator {
	var t Translator
	t.ctx = ctx
	t.mapping = mapping
	t.lang = lang
	t.phonemizer = phonemizer
	t.orth = syllabify.NewOrthographic(ctx, hyphenator, mapping.VowelsOrth)
	t.projector = align.NewProjector(ctx)
	t.keyLengths = mapping.KeyLengths()
	return t
}

// SetCache enables the sqlite transcription cache.
func (t *Translator) SetCache(cache *db.CacheDB) {
	t.cache = cache
}

// SetAlternatives controls how many ranked alternatives each syllable
// keeps (-1 all, n >= 0 the top n+1) and whether a syllable may mix
// languages beyond the minimum.
func (t *Translator) SetAlternatives(count int, phonemeEdit bool) {
	t.alternatives = count
	t.phonemeEdit = phonemeEdit
}

// Translate runs the whole pipeline over a text and returns one
// Syllable list per word, ready for rendering.
func (t *Translator) Translate(text string) ([][]phoneme.Syllable, *log.Status) {
	ipaWords, status := t.IPAConvert(text)
	if status != nil {
		return nil, status
	}
	return t.ConvertToSV(ipaWords), nil
}

// IPAConvert turns text into per-word IPA syllable lists. Syllables
// are transcribed individually to keep their boundaries, whole words
// are transcribed again to get cross-boundary phonology right, and
// the projector reconciles the two.
func (t *Translator) IPAConvert(text string) ([][]string, *log.Status) {
	words := strings.Fields(strings.TrimSpace(text))
	var sylWords [][]string
	for _, word := range words {
		syls, status := t.orth.Syllabify(word)
		if status != nil {
			return nil, status
		}
		sylWords = append(sylWords, syls)
	}

	var sylTokens []string
	for _, word := range sylWords {
		sylTokens = append(sylTokens, word...)
	}
	sylIPA, status := t.transcribe(sylTokens)
	if status != nil {
		return nil, status
	}
	var wordTokens []string
	for _, word := range sylWords {
		if len(word) > 1 {
			wordTokens = append(wordTokens, strings.Join(word, ``))
		}
	}
	wordIPA, status := t.transcribe(wordTokens)
	if status != nil {
		return nil, status
	}

	var results [][]string
	j := 0 // index into sylIPA
	k := 0 // index into wordIPA
	for _, word := range sylWords {
		if len(word) == 1 {
			results = append(results, []string{sylIPA[j]})
		} else {
			projected, status := t.projector.Project(sylIPA[j:j+len(word)], wordIPA[k])
			if status != nil {
				return nil, status
			}
			results = append(results, projected)
			k++
		}
		j += len(word)
	}
	return results, nil
}

// ConvertToSV segments each IPA syllable and generates its ranked
// alternatives.
func (t *Translator) ConvertToSV(ipaWords [][]string) [][]phoneme.Syllable {
	var results [][]phoneme.Syllable
	for _, word := range ipaWords {
		var svWord []phoneme.Syllable
		for _, syl := range word {
			units := phoneme.Segment(syl, t.mapping.PhonemeMap, t.keyLengths)
			alts := phoneme.Generate(t.ctx, units, t.mapping.PhonemeMap, t.alternatives, t.phonemeEdit)
			svWord = append(svWord, phoneme.Syllable{IPA: syl, Units: units, Alternatives: alts})
		}
		results = append(results, svWord)
	}
	return results
}

// transcribe consults the cache token by token and sends only misses
// to the engine.
func (t *Translator) transcribe(tokens []string) ([]string, *log.Status) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if t.cache == nil {
		return t.phonemizer.Transcribe(tokens)
	}
	results := make([]string, len(tokens))
	var misses []string
	var missIdx []int
	for i, token := range tokens {
		ipa, found, status := t.cache.SelectIPA(t.lang, token)
		if status != nil {
			return nil, status
		}
		if found {
			results[i] = ipa
		} else {
			misses = append(misses, token)
			missIdx = append(missIdx, i)
		}
	}
	if len(misses) > 0 {
		fresh, status := t.phonemizer.Transcribe(misses)
		if status != nil {
			return nil, status
		}
		for n, ipa := range fresh {
			results[missIdx[n]] = ipa
			status = t.cache.InsertIPA(t.lang, misses[n], ipa)
			if status != nil {
				return nil, status
			}
		}
	}
	return results, nil
}
