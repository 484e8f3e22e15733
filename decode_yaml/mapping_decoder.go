package decode_yaml

import (
	"context"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	log "github.com/honki-bobo/synthv-translator/logger"
	"gopkg.in/yaml.v3"
)

// MappingEntry is one candidate substitution for a source IPA phoneme.
// Order within a phoneme's list encodes preference rank; Weight biases
// ranking on top of that, 0 is neutral.
type MappingEntry struct {
	Lang   string  `yaml:"lang"`
	Ph     string  `yaml:"ph"`
	Weight float64 `yaml:"weight"`
}

// IPARule is one compiled post-processing rule applied to espeak output.
// Replacement uses Go regexp syntax ($1, not \1).
type IPARule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Mapping is the per-source-language configuration bundle. Immutable
// after Process returns.
type Mapping struct {
	VowelsOrth string                    `yaml:"vowels_orth"`
	IpaProcess [][]string                `yaml:"ipa_process"`
	PhonemeMap map[string][]MappingEntry `yaml:"phoneme_map"`
	Rules      []IPARule                 `yaml:"-"`
}

// KeyLengths returns the distinct rune lengths of the phoneme map keys,
// sorted descending, for longest-match segmentation.
func (m *Mapping) KeyLengths() []int {
	lengthSet := make(map[int]bool)
	for key := range m.PhonemeMap {
		lengthSet[utf8.RuneCountInString(key)] = true
	}
	var results []int
	for length := range lengthSet {
		results = append(results, length)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(results)))
	return results
}

type MappingDecoder struct {
	ctx    context.Context
	errors []string
}

func NewMappingDecoder(ctx context.Context) MappingDecoder {
	var d MappingDecoder
	d.ctx = ctx
	return d
}

// Process reads, decodes, compiles, and validates a mapping file.
// The original project ships these as JSON; YAML 1.2 is a superset,
// so both load here. Any problem is a fatal configuration error.
func (d *MappingDecoder) Process(path string) (Mapping, *log.Status) {
	var result Mapping
	content, err := os.ReadFile(path)
	if err != nil {
		return result, log.Error(d.ctx, 500, err, `Could not read mapping file`, path)
	}
	err = yaml.Unmarshal(content, &result)
	if err != nil {
		return result, log.Error(d.ctx, 500, err, `Could not parse mapping file`, path)
	}
	d.validateMapping(&result)
	if len(d.errors) > 0 {
		return result, log.ErrorNoErr(d.ctx, 400, `Mapping file`, path, "has errors:\n"+strings.Join(d.errors, "\n"))
	}
	return result, nil
}

func (d *MappingDecoder) validateMapping(m *Mapping) {
	if len(m.PhonemeMap) == 0 {
		d.errors = append(d.errors, `Required field phoneme_map: is empty`)
	}
	for phoneme, entries := range m.PhonemeMap {
		if len(entries) == 0 {
			d.errors = append(d.errors, `Phoneme `+phoneme+` has no mapping entries`)
		}
		for _, entry := range entries {
			if entry.Lang == `` || entry.Ph == `` {
				d.errors = append(d.errors, `Phoneme `+phoneme+` has an entry missing lang: or ph:`)
			}
		}
	}
	for _, rule := range m.IpaProcess {
		if len(rule) != 2 {
			d.errors = append(d.errors, `ipa_process rules must be [pattern, replacement] pairs`)
			continue
		}
		pattern, err := regexp.Compile(rule[0])
		if err != nil {
			d.errors = append(d.errors, `ipa_process pattern `+rule[0]+` does not compile: `+err.Error())
			continue
		}
		m.Rules = append(m.Rules, IPARule{Pattern: pattern, Replacement: rule[1]})
	}
}
