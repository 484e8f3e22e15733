package syllabify

import (
	"context"
	"testing"

	log "github.com/honki-bobo/synthv-translator/logger"
)

// fakeHyphenator returns canned hyphenations, standing in for pyphen
type fakeHyphenator struct {
	results map[string]string
}

func (f *fakeHyphenator) Hyphenate(word string) (string, *log.Status) {
	result, ok := f.results[word]
	if !ok {
		return word, nil
	}
	return result, nil
}

func newOrth(results map[string]string) Orthographic {
	return NewOrthographic(context.Background(), &fakeHyphenator{results: results}, "aeiouyäöüÿ")
}

func TestSyllabifyVowelHSplit(t *testing.T) {
	orth := newOrth(nil) // hyphenator returns "ah" unsplit
	syls, status := orth.Syllabify("ah")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 2 || syls[0] != "a" || syls[1] != "h" {
		t.Fatalf(`expected [a h], got %v`, syls)
	}
}

func TestSyllabifyVowelBSplit(t *testing.T) {
	orth := newOrth(nil)
	syls, status := orth.Syllabify("oben")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 2 || syls[0] != "o" || syls[1] != "ben" {
		t.Fatalf(`expected [o ben], got %v`, syls)
	}
}

func TestSyllabifyTrailingESplit(t *testing.T) {
	orth := newOrth(nil)
	syls, status := orth.Syllabify("rue")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 2 || syls[0] != "ru" || syls[1] != "e" {
		t.Fatalf(`expected [ru e], got %v`, syls)
	}
}

func TestSyllabifySingleCharStaysWhole(t *testing.T) {
	orth := newOrth(nil)
	syls, status := orth.Syllabify("k")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 1 || syls[0] != "k" {
		t.Fatalf(`expected [k], got %v`, syls)
	}
}

func TestSyllabifyPhthReattach(t *testing.T) {
	orth := newOrth(map[string]string{"Diphthong": "Di-phthong"})
	syls, status := orth.Syllabify("Diphthong")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 2 || syls[0] != "Diph" || syls[1] != "thong" {
		t.Fatalf(`expected [Diph thong], got %v`, syls)
	}
}

func TestSyllabifyMergeVowellessFragment(t *testing.T) {
	orth := newOrth(map[string]string{"hallos": "hal-lo-s"})
	syls, status := orth.Syllabify("hallos")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 2 || syls[0] != "hal" || syls[1] != "los" {
		t.Fatalf(`expected [hal los], got %v`, syls)
	}
}

func TestSyllabifyMergeLeadingFragment(t *testing.T) {
	// a vowel-less first syllable merges into its right neighbor
	orth := newOrth(map[string]string{"strasse": "str-as-se"})
	syls, status := orth.Syllabify("strasse")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 2 || syls[0] != "stras" || syls[1] != "se" {
		t.Fatalf(`expected [stras se], got %v`, syls)
	}
}

func TestSyllabifyAllConsonantsCollapse(t *testing.T) {
	// repeated merges must terminate even when no syllable has a vowel
	orth := newOrth(map[string]string{"pssst": "ps-s-st"})
	syls, status := orth.Syllabify("pssst")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 1 || syls[0] != "pssst" {
		t.Fatalf(`expected [pssst], got %v`, syls)
	}
}

func TestSyllabifyCleanSplitUntouched(t *testing.T) {
	orth := newOrth(map[string]string{"hallo": "hal-lo"})
	syls, status := orth.Syllabify("hallo")
	if status != nil {
		t.Fatal(status)
	}
	if len(syls) != 2 || syls[0] != "hal" || syls[1] != "lo" {
		t.Fatalf(`expected [hal lo], got %v`, syls)
	}
}
