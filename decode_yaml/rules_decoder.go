package decode_yaml

import (
	"context"
	"os"
	"strings"

	log "github.com/honki-bobo/synthv-translator/logger"
	"gopkg.in/yaml.v3"
)

// reserved rules-file keys that are not phoneme class lists
var reservedRuleKeys = map[string]bool{
	`vowels`:             true,
	`vowels_orth`:        true,
	`diphthongs`:         true,
	`affricates`:         true,
	`allowed_onsets`:     true,
	`sonority_hierarchy`: true,
}

// SyllableRules is the phonological configuration bundle consumed by
// the sonority syllabifier. Immutable after Process returns.
type SyllableRules struct {
	Vowels        map[string]bool
	VowelsOrth    map[string]bool
	Diphthongs    map[string]bool
	Affricates    map[string]bool
	AllowedOnsets map[string]bool
	Sonority      map[string]int
	classOf       map[string]string
}

// Class returns the phoneme class of a token. Unknown tokens classify
// as a generic obstruent.
func (r *SyllableRules) Class(token string) string {
	class, ok := r.classOf[token]
	if !ok {
		return `stop`
	}
	return class
}

// SonorityOf returns the sonority rank of a token's class, 0 when the
// class has no rank.
func (r *SyllableRules) SonorityOf(token string) int {
	return r.Sonority[r.Class(token)]
}

type RulesDecoder struct {
	ctx    context.Context
	errors []string
}

func NewRulesDecoder(ctx context.Context) RulesDecoder {
	var d RulesDecoder
	d.ctx = ctx
	return d
}

func (d *RulesDecoder) Process(path string) (SyllableRules, *log.Status) {
	var result SyllableRules
	content, err := os.ReadFile(path)
	if err != nil {
		return result, log.Error(d.ctx, 500, err, `Could not read syllable rules file`, path)
	}
	var raw map[string]yaml.Node
	err = yaml.Unmarshal(content, &raw)
	if err != nil {
		return result, log.Error(d.ctx, 500, err, `Could not parse syllable rules file`, path)
	}
	result.Vowels = d.decodeSet(raw, `vowels`)
	result.VowelsOrth = d.decodeSet(raw, `vowels_orth`)
	result.Diphthongs = d.decodeSet(raw, `diphthongs`)
	result.Affricates = d.decodeSet(raw, `affricates`)
	result.AllowedOnsets = d.decodeSet(raw, `allowed_onsets`)
	result.Sonority = d.decodeSonority(raw)
	result.classOf = d.decodeClasses(raw)
	for vowel := range result.Vowels {
		result.classOf[vowel] = `vowel`
	}
	for diphthong := range result.Diphthongs {
		result.classOf[diphthong] = `diphthong`
	}
	for affricate := range result.Affricates {
		result.classOf[affricate] = `affricate`
	}
	d.validateRules(&result)
	if len(d.errors) > 0 {
		return result, log.ErrorNoErr(d.ctx, 400, `Syllable rules file`, path, "has errors:\n"+strings.Join(d.errors, "\n"))
	}
	return result, nil
}

func (d *RulesDecoder) decodeSet(raw map[string]yaml.Node, key string) map[string]bool {
	result := make(map[string]bool)
	node, ok := raw[key]
	if !ok {
		return result
	}
	var items []string
	err := node.Decode(&items)
	if err != nil {
		d.errors = append(d.errors, key+`: must be a list of strings`)
		return result
	}
	for _, item := range items {
		result[item] = true
	}
	return result
}

func (d *RulesDecoder) decodeSonority(raw map[string]yaml.Node) map[string]int {
	result := make(map[string]int)
	node, ok := raw[`sonority_hierarchy`]
	if !ok {
		return result
	}
	err := node.Decode(&result)
	if err != nil {
		d.errors = append(d.errors, `sonority_hierarchy: must map class names to integer ranks`)
	}
	return result
}

// decodeClasses treats every non-reserved top-level key as a phoneme
// class holding a list of its members.
func (d *RulesDecoder) decodeClasses(raw map[string]yaml.Node) map[string]string {
	result := make(map[string]string)
	for key, node := range raw {
		if reservedRuleKeys[key] {
			continue
		}
		var members []string
		err := node.Decode(&members)
		if err != nil {
			d.errors = append(d.errors, key+`: must be a list of phonemes`)
			continue
		}
		for _, member := range members {
			result[member] = key
		}
	}
	return result
}

func (d *RulesDecoder) validateRules(r *SyllableRules) {
	if len(r.Vowels) == 0 {
		d.errors = append(d.errors, `Required field vowels: is empty`)
	}
	if len(r.Sonority) == 0 {
		d.errors = append(d.errors, `Required field sonority_hierarchy: is empty`)
	}
}
