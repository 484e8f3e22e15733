package align

import (
	"context"
	"strings"
	"testing"
)

func TestProjectIdentity(t *testing.T) {
	projector := NewProjector(context.Background())
	result, status := projector.Project([]string{"ha", "lo"}, "halo")
	if status != nil {
		t.Fatal(status)
	}
	if len(result) != 2 || result[0] != "ha" || result[1] != "lo" {
		t.Fatalf(`expected [ha lo], got %v`, result)
	}
}

func TestProjectSingleSyllable(t *testing.T) {
	projector := NewProjector(context.Background())
	result, status := projector.Project([]string{"vɛlt"}, "vɛlt")
	if status != nil {
		t.Fatal(status)
	}
	if len(result) != 1 || result[0] != "vɛlt" {
		t.Fatalf(`expected [vɛlt], got %v`, result)
	}
}

func TestProjectGeminate(t *testing.T) {
	// the per-syllable transcription doubles the l across the boundary;
	// the whole-word transcription has it once, with different vowels
	projector := NewProjector(context.Background())
	result, status := projector.Project([]string{"feːl", "leː"}, "fɛlə")
	if status != nil {
		t.Fatal(status)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 syllables, got %v", result)
	}
	if !strings.HasPrefix(result[1], "l") {
		t.Fatalf("expected second syllable to keep the geminate l, got %v", result)
	}
	if !strings.HasPrefix(result[0], "fɛ") {
		t.Fatalf("expected corrected phonology in first syllable, got %v", result)
	}
	if result[1] != "lə" {
		t.Fatalf(`expected second syllable lə, got %v`, result)
	}
}

func TestProjectGeminateSimple(t *testing.T) {
	projector := NewProjector(context.Background())
	result, status := projector.Project([]string{"ab", "ba"}, "aba")
	if status != nil {
		t.Fatal(status)
	}
	if len(result) != 2 || result[0] != "ab" || result[1] != "ba" {
		t.Fatalf(`expected [ab ba], got %v`, result)
	}
}

func TestProjectVowelReduction(t *testing.T) {
	// isolated syllables transcribe with full vowels, the word reduces
	projector := NewProjector(context.Background())
	result, status := projector.Project([]string{"ha", "lo"}, "halə")
	if status != nil {
		t.Fatal(status)
	}
	if len(result) != 2 || result[0] != "ha" || result[1] != "lə" {
		t.Fatalf(`expected [ha lə], got %v`, result)
	}
}

func TestProjectCountAlwaysMatchesInput(t *testing.T) {
	projector := NewProjector(context.Background())
	cases := [][2]any{
		{[]string{"ab", "cd", "ef"}, "abxcdef"},
		{[]string{"aa", "bb"}, "ab"},
		{[]string{"ka", "ta"}, "katta"},
	}
	for _, c := range cases {
		syls := c[0].([]string)
		word := c[1].(string)
		result, status := projector.Project(syls, word)
		if status != nil {
			t.Fatal(status)
		}
		if len(result) != len(syls) {
			t.Fatalf("projection of %v onto %s returned %d syllables: %v",
				syls, word, len(result), result)
		}
	}
}
