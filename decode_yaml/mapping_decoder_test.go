package decode_yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const mappingFixture = `
vowels_orth: "aeiou"
ipa_process:
  - ["x", "k"]
phoneme_map:
  a:
    - {lang: spanish, ph: a}
    - {lang: english, ph: aa, weight: -0.5}
  tʃ:
    - {lang: english, ph: ch}
`

func TestMappingDecoder(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.yaml")
	err := os.WriteFile(path, []byte(mappingFixture), 0644)
	if err != nil {
		t.Fatal(err)
	}
	decoder := NewMappingDecoder(ctx)
	mapping, status := decoder.Process(path)
	if status != nil {
		t.Fatal(status)
	}
	if mapping.VowelsOrth != "aeiou" {
		t.Errorf("expected vowels_orth aeiou, got %s", mapping.VowelsOrth)
	}
	entries := mapping.PhonemeMap["a"]
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for a, got %d", len(entries))
	}
	if entries[0].Lang != "spanish" || entries[1].Weight != -0.5 {
		t.Errorf("entries decoded wrong: %+v", entries)
	}
	if len(mapping.Rules) != 1 {
		t.Fatalf("expected 1 compiled rule, got %d", len(mapping.Rules))
	}
	if mapping.Rules[0].Pattern.ReplaceAllString("ax", mapping.Rules[0].Replacement) != "ak" {
		t.Error("compiled rule did not apply")
	}
}

func TestMappingDecoderJSON(t *testing.T) {
	// the original project ships mapping files as JSON
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.json")
	content := `{"vowels_orth": "ae", "ipa_process": [], "phoneme_map": {"a": [{"lang": "spanish", "ph": "a"}]}}`
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	decoder := NewMappingDecoder(ctx)
	mapping, status := decoder.Process(path)
	if status != nil {
		t.Fatal(status)
	}
	if mapping.PhonemeMap["a"][0].Ph != "a" {
		t.Errorf("JSON mapping decoded wrong: %+v", mapping.PhonemeMap)
	}
}

func TestMappingDecoderErrors(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `
phoneme_map:
  a:
    - {lang: spanish}
ipa_process:
  - ["(unclosed", "x"]
`
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	decoder := NewMappingDecoder(ctx)
	_, status := decoder.Process(path)
	if status == nil {
		t.Fatal("expected validation errors")
	}
	if status.Status != 400 {
		t.Errorf("expected status 400, got %d", status.Status)
	}
}

func TestKeyLengths(t *testing.T) {
	mapping := Mapping{PhonemeMap: map[string][]MappingEntry{
		"a": nil, "tʃ": nil, "aɪ": nil, "abc": nil,
	}}
	lengths := mapping.KeyLengths()
	expected := []int{3, 2, 1}
	if len(lengths) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, lengths)
	}
	for i := range expected {
		if lengths[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, lengths)
		}
	}
}
