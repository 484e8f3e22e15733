package phoneme

import (
	"github.com/honki-bobo/synthv-translator/decode_yaml"
)

// Segment splits an IPA syllable into the longest phoneme units known
// to the mapping. At each position the candidate lengths are tried
// largest first; with no match one rune is consumed as a singleton, so
// the cursor always advances and the units partition the syllable
// exactly.
func Segment(syllable string, phonemeMap map[string][]decode_yaml.MappingEntry, keyLengths []int) []string {
	var segments []string
	runes := []rune(syllable)
	i := 0
	for i < len(runes) {
		match := ``
		for _, length := range keyLengths {
			if i+length > len(runes) {
				continue
			}
			chunk := string(runes[i : i+length])
			if _, ok := phonemeMap[chunk]; ok {
				match = chunk
				i += length
				break
			}
		}
		if match == `` {
			match = string(runes[i])
			i++
		}
		segments = append(segments, match)
	}
	return segments
}
