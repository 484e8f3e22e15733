package syllabify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/honki-bobo/synthv-translator/decode_yaml"
)

const testRulesFixture = `
vowels: ["a", "e", "i", "o", "u", "ɛ", "ə"]
vowels_orth: ["a", "e", "i", "o", "u"]
diphthongs: ["aɪ"]
affricates: ["ts"]
allowed_onsets: ["ʃt"]
sonority_hierarchy:
  vowel: 5
  diphthong: 5
  liquid: 3
  nasal: 3
  fricative: 2
  stop: 1
liquid: ["l", "r"]
nasal: ["m", "n"]
fricative: ["f", "s", "ʃ"]
`

func testRules(t *testing.T) decode_yaml.SyllableRules {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	err := os.WriteFile(path, []byte(testRulesFixture), 0644)
	if err != nil {
		t.Fatal(err)
	}
	decoder := decode_yaml.NewRulesDecoder(context.Background())
	rules, status := decoder.Process(path)
	if status != nil {
		t.Fatal(status)
	}
	return rules
}

func TestSyllabifyIPASimple(t *testing.T) {
	phonological := NewPhonological(testRules(t))
	syls := phonological.Syllabify("fɛlə")
	if len(syls) != 2 || syls[0] != "fɛ" || syls[1] != "lə" {
		t.Fatalf(`expected [fɛ lə], got %v`, syls)
	}
}

func TestSyllabifyIPANoNucleus(t *testing.T) {
	phonological := NewPhonological(testRules(t))
	syls := phonological.Syllabify("pst")
	if len(syls) != 1 || syls[0] != "pst" {
		t.Fatalf(`expected [pst], got %v`, syls)
	}
}

func TestSyllabifyIPAFallingClusterSplits(t *testing.T) {
	// "lt" falls in sonority, so l stays as coda and t onsets
	phonological := NewPhonological(testRules(t))
	syls := phonological.Syllabify("alto")
	if len(syls) != 2 || syls[0] != "al" || syls[1] != "to" {
		t.Fatalf(`expected [al to], got %v`, syls)
	}
}

func TestSyllabifyIPAMaximalOnset(t *testing.T) {
	// "pl" rises in sonority, the whole cluster onsets syllable two
	phonological := NewPhonological(testRules(t))
	syls := phonological.Syllabify("aplo")
	if len(syls) != 2 || syls[0] != "a" || syls[1] != "plo" {
		t.Fatalf(`expected [a plo], got %v`, syls)
	}
}

func TestSyllabifyIPAWhitelistedOnset(t *testing.T) {
	// ʃt falls in sonority but is whitelisted as an onset
	phonological := NewPhonological(testRules(t))
	syls := phonological.Syllabify("aʃto")
	if len(syls) != 2 || syls[0] != "a" || syls[1] != "ʃto" {
		t.Fatalf(`expected [a ʃto], got %v`, syls)
	}
}

func TestSyllabifyIPAFallingOnsetNotWhitelisted(t *testing.T) {
	phonological := NewPhonological(testRules(t))
	syls := phonological.Syllabify("asto")
	if len(syls) != 2 || syls[0] != "as" || syls[1] != "to" {
		t.Fatalf(`expected [as to], got %v`, syls)
	}
}

func TestSyllabifyIPADiphthongNucleus(t *testing.T) {
	phonological := NewPhonological(testRules(t))
	syls := phonological.Syllabify("maɪnə")
	if len(syls) != 2 || syls[0] != "maɪ" || syls[1] != "nə" {
		t.Fatalf(`expected [maɪ nə], got %v`, syls)
	}
}

func TestSyllabifyIPAAdjacentNuclei(t *testing.T) {
	// no consonants between nuclei means no boundary is inserted
	phonological := NewPhonological(testRules(t))
	syls := phonological.Syllabify("ao")
	if len(syls) != 1 || syls[0] != "ao" {
		t.Fatalf(`expected [ao], got %v`, syls)
	}
}
