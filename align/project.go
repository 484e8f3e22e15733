package align

import (
	"context"
	"strings"

	log "github.com/honki-bobo/synthv-translator/logger"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// gap marks a missing character on one side of the alignment
const gap = rune(0)

type alignedPair struct {
	syl  rune // character from the flattened syllable transcription
	word rune // character from the whole-word transcription
}

// Projector transfers syllable boundaries from per-syllable IPA onto
// whole-word IPA. The per-syllable transcription has known boundaries
// but possibly wrong phonology (each syllable was transcribed in
// isolation); the whole-word transcription has correct phonology but
// no boundaries.
type Projector struct {
	ctx       context.Context
	diffMatch *diffmatchpatch.DiffMatchPatch
}

func NewProjector(ctx context.Context) Projector {
	var p Projector
	p.ctx = ctx
	p.diffMatch = diffmatchpatch.New()
	return p
}

// Project returns wordIPA cut into exactly len(syllableIPA) pieces.
// A count mismatch cannot happen by construction; if it does, that is
// an internal defect and a 500 Status is returned.
func (p *Projector) Project(syllableIPA []string, wordIPA string) ([]string, *log.Status) {
	flat := strings.Join(syllableIPA, ``)
	diffs := p.diffMatch.DiffMain(flat, wordIPA, false)
	diffs = p.diffMatch.DiffCleanupMerge(diffs)
	alignment := buildAlignment(diffs)

	// boundary offsets are cumulative rune lengths of all syllables
	// except the last
	boundaries := make(map[int]bool)
	pos := 0
	for _, syl := range syllableIPA[:len(syllableIPA)-1] {
		pos += len([]rune(syl))
		boundaries[pos] = true
	}

	var result []string
	var buffer []rune
	flatIndex := 0
	for _, pair := range alignment {
		if pair.word != gap {
			buffer = append(buffer, pair.word)
		}
		if pair.syl != gap {
			flatIndex++
			if boundaries[flatIndex] {
				result = append(result, string(buffer))
				buffer = buffer[:0]
			}
		}
	}
	result = append(result, string(buffer))

	if len(result) != len(syllableIPA) {
		return nil, log.ErrorNoErr(p.ctx, 500, `Projection produced`, len(result),
			`syllables for`, len(syllableIPA), `inputs:`, flat, `->`, wordIPA)
	}
	fixGeminates(syllableIPA, result)
	return result, nil
}

// buildAlignment converts diff runs into a character-level alignment.
// DiffCleanupMerge guarantees a delete run directly precedes its
// paired insert run, so the two are zipped as a replacement, padded
// with gaps where lengths differ.
func buildAlignment(diffs []diffmatchpatch.Diff) []alignedPair {
	var pairs []alignedPair
	var pending []rune
	flush := func() {
		for _, r := range pending {
			pairs = append(pairs, alignedPair{syl: r, word: gap})
		}
		pending = nil
	}
	for _, diff := range diffs {
		runes := []rune(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for _, r := range runes {
				pairs = append(pairs, alignedPair{syl: r, word: r})
			}
		case diffmatchpatch.DiffDelete:
			flush()
			pending = runes
		case diffmatchpatch.DiffInsert:
			if len(pending) > 0 {
				length := len(pending)
				if len(runes) > length {
					length = len(runes)
				}
				for k := 0; k < length; k++ {
					pair := alignedPair{syl: gap, word: gap}
					if k < len(pending) {
						pair.syl = pending[k]
					}
					if k < len(runes) {
						pair.word = runes[k]
					}
					pairs = append(pairs, pair)
				}
				pending = nil
			} else {
				for _, r := range runes {
					pairs = append(pairs, alignedPair{syl: gap, word: r})
				}
			}
		}
	}
	flush()
	return pairs
}

// fixGeminates restores doubled consonants that span a boundary in the
// original syllabification. The check reads the original list, the
// patch lands on the projected output.
func fixGeminates(original []string, projected []string) {
	for i := 0; i < len(projected)-1; i++ {
		left := []rune(original[i])
		right := []rune(original[i+1])
		if len(left) == 0 || len(right) == 0 {
			continue
		}
		if left[len(left)-1] != right[0] {
			continue
		}
		geminate := string(left[len(left)-1])
		if !strings.HasPrefix(projected[i+1], geminate) {
			projected[i+1] = geminate + projected[i+1]
		}
	}
}
