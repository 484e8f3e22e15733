package phoneme

import (
	"context"
	"sort"
	"strings"

	"github.com/honki-bobo/synthv-translator/decode_yaml"
	log "github.com/honki-bobo/synthv-translator/logger"
)

// Alternative is one scored choice of target phonemes for a syllable.
// Mapping has one entry per segmented unit; units absent from the
// phoneme map appear as passthrough entries with an empty Lang.
type Alternative struct {
	Weight  float64
	NLangs  int
	Mapping []decode_yaml.MappingEntry
}

// Syllable carries one syllable through the back half of the pipeline.
type Syllable struct {
	IPA          string
	Units        []string
	Alternatives []Alternative
}

// Generate enumerates every combination of per-unit candidate entries,
// scores them, and returns the ranked top slice.
//
// The enumeration is a full cartesian product, maxOptions^len(units)
// in the worst case for pathological mapping files. Truncation happens
// after ranking, not during enumeration, so the returned prefix is
// always the true top of the total order.
//
// maxResults: -1 returns all, n >= 0 returns the first n+1.
// When allowMixing is false only combinations with the minimum
// observed distinct-language count survive.
func Generate(ctx context.Context, units []string, phonemeMap map[string][]decode_yaml.MappingEntry,
	maxResults int, allowMixing bool) []Alternative {

	// units missing from the map are excluded from the product but
	// stay in every Mapping as raw passthrough, so output length
	// always equals len(units)
	var optionLists [][]decode_yaml.MappingEntry
	var mappedPos []int
	var unmapped []string
	for pos, unit := range units {
		options, ok := phonemeMap[unit]
		if !ok || len(options) == 0 {
			unmapped = append(unmapped, unit)
			continue
		}
		optionLists = append(optionLists, options)
		mappedPos = append(mappedPos, pos)
	}
	if len(unmapped) > 0 {
		log.Warn(ctx, `No mapping for phoneme(s)`, strings.Join(unmapped, ` `),
			`in sequence`, strings.Join(units, ``), `- passing through as raw text`)
	}

	maxOptions := 0
	for _, options := range optionLists {
		if len(options) > maxOptions {
			maxOptions = len(options)
		}
	}

	var alternatives []Alternative
	indices := make([]int, len(optionLists))
	for {
		var alt Alternative
		alt.Mapping = make([]decode_yaml.MappingEntry, len(units))
		for pos, unit := range units {
			alt.Mapping[pos] = decode_yaml.MappingEntry{Ph: unit}
		}
		langs := make(map[string]bool)
		for listNum, idx := range indices {
			entry := optionLists[listNum][idx]
			alt.Mapping[mappedPos[listNum]] = entry
			// earlier entries in a unit's preference list earn a
			// larger positional bonus regardless of weight
			alt.Weight += float64(maxOptions-idx) + entry.Weight
			langs[entry.Lang] = true
		}
		alt.NLangs = len(langs)
		alternatives = append(alternatives, alt)
		if !advance(indices, optionLists) {
			break
		}
	}

	// higher weight first, fewer languages as tie-break; the stable
	// sort keeps enumeration order for full ties, making results
	// byte-identical across runs
	sort.SliceStable(alternatives, func(i, j int) bool {
		if alternatives[i].Weight != alternatives[j].Weight {
			return alternatives[i].Weight > alternatives[j].Weight
		}
		return alternatives[i].NLangs < alternatives[j].NLangs
	})

	if !allowMixing {
		minLangs := alternatives[0].NLangs
		for _, alt := range alternatives {
			if alt.NLangs < minLangs {
				minLangs = alt.NLangs
			}
		}
		if minLangs > 1 {
			log.Warn(ctx, `The IPA sequence '`+strings.Join(units, ``)+`' cannot be mapped into a single language.`)
		}
		var kept []Alternative
		for _, alt := range alternatives {
			if alt.NLangs == minLangs {
				kept = append(kept, alt)
			}
		}
		alternatives = kept
	}

	if maxResults >= 0 && len(alternatives) > maxResults+1 {
		alternatives = alternatives[:maxResults+1]
	}
	return alternatives
}

// advance steps the index odometer in itertools.product order, the
// rightmost list varying fastest. Returns false after the last combo.
func advance(indices []int, optionLists [][]decode_yaml.MappingEntry) bool {
	for k := len(indices) - 1; k >= 0; k-- {
		indices[k]++
		if indices[k] < len(optionLists[k]) {
			return true
		}
		indices[k] = 0
	}
	return false
}
