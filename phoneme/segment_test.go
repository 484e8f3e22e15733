package phoneme

import (
	"strings"
	"testing"

	"github.com/honki-bobo/synthv-translator/decode_yaml"
)

func segMap(keys ...string) map[string][]decode_yaml.MappingEntry {
	result := make(map[string][]decode_yaml.MappingEntry)
	for _, key := range keys {
		result[key] = []decode_yaml.MappingEntry{{Lang: "english", Ph: key}}
	}
	return result
}

func TestSegmentLongestMatchFirst(t *testing.T) {
	phonemeMap := segMap("t", "ʃ", "tʃ", "a", "aɪ")
	segments := Segment("tʃaɪ", phonemeMap, []int{2, 1})
	if len(segments) != 2 || segments[0] != "tʃ" || segments[1] != "aɪ" {
		t.Fatalf(`expected [tʃ aɪ], got %v`, segments)
	}
}

func TestSegmentUnknownRuneFallback(t *testing.T) {
	phonemeMap := segMap("a")
	segments := Segment("aqa", phonemeMap, []int{1})
	if len(segments) != 3 || segments[1] != "q" {
		t.Fatalf(`expected [a q a], got %v`, segments)
	}
}

func TestSegmentPartition(t *testing.T) {
	// concatenating the units must reproduce the syllable exactly
	phonemeMap := segMap("a", "b", "ab", "abc", "ɛ", "tʃ")
	keyLengths := []int{3, 2, 1}
	inputs := []string{"abc", "abab", "ɛtʃab", "xyz", "", "aɛb", "ababc"}
	for _, input := range inputs {
		segments := Segment(input, phonemeMap, keyLengths)
		if strings.Join(segments, "") != input {
			t.Fatalf("segments %v do not partition %q", segments, input)
		}
	}
}

func TestSegmentPrefersLongerKey(t *testing.T) {
	phonemeMap := segMap("a", "b", "ab")
	segments := Segment("ab", phonemeMap, []int{2, 1})
	if len(segments) != 1 || segments[0] != "ab" {
		t.Fatalf(`expected [ab], got %v`, segments)
	}
}
