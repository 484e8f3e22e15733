// gen_inventory extracts the phoneme inventories from a Synthesizer V
// installation's clf-data directory into a JSON reference file used
// when authoring new mapping files. Offline tool, not part of the
// translation pipeline.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Config struct {
	ClfDataDir string
	OutputDir  string
	JSMode     bool
}

// notation -> language -> phones file
var languageFiles = map[string]map[string]string{
	"arpabet": {
		"english": "english-arpabet-phones.txt",
	},
	"romaji": {
		"japanese": "japanese-romaji-phones.txt",
	},
	"xsampa": {
		"mandarin":  "mandarin-xsampa-phones.txt",
		"cantonese": "cantonese-xsampa-phones.txt",
		"spanish":   "spanish-xsampa-phones.txt",
		"korean":    "korean-xsampa-phones.txt",
	},
}

func main() {
	var config Config
	flag.StringVar(&config.ClfDataDir, "clf", `C:\Program Files\Synthesizer V Studio 2 Pro\clf-data`,
		"Path to the Synthesizer V clf-data directory")
	flag.StringVar(&config.OutputDir, "output", "mappings", "Output directory")
	flag.BoolVar(&config.JSMode, "js", false, "Print a JS vowel table instead of writing JSON")
	flag.Parse()

	inventory, err := generateInventory(config.ClfDataDir)
	if err != nil {
		log.Fatalf("Failed to generate inventory: %v", err)
	}

	if config.JSMode {
		fmt.Println(generateJSVowelTable(inventory))
		return
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory %s: %v", config.OutputDir, err)
	}
	outputFile := filepath.Join(config.OutputDir, "sv_phoneme_inventory.json")
	content, err := json.MarshalIndent(inventory, "", "    ")
	if err != nil {
		log.Fatalf("Failed to marshal inventory: %v", err)
	}
	if err := os.WriteFile(outputFile, content, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", outputFile, err)
	}
	fmt.Printf("Generated phoneme inventory at: %s\n", outputFile)
}

// generateInventory parses each *-phones.txt file into
// notation -> language -> category -> phonemes. The "common" section
// holds utility phones shared by every voice language.
func generateInventory(clfDataDir string) (map[string]any, error) {
	if _, err := os.Stat(clfDataDir); err != nil {
		return nil, fmt.Errorf("directory not found: %s", clfDataDir)
	}
	inventory := make(map[string]any)
	for notation, languages := range languageFiles {
		byLanguage := make(map[string]map[string][]string)
		for language, filename := range languages {
			path := filepath.Join(clfDataDir, filename)
			phonemes, err := parsePhonesFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}
			fmt.Printf("Processing %s (%s)...\n", language, notation)
			byLanguage[language] = phonemes
		}
		inventory[notation] = byLanguage
	}
	inventory["common"] = map[string][]string{
		"glottal_stop": {"cl"},
		"silence":      {"sil"},
		"breath":       {"br"},
	}
	return inventory, nil
}

// parsePhonesFile reads lines of "phoneme category" into a map of
// category -> phonemes.
func parsePhonesFile(path string) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	defer file.Close()
	phonemes := make(map[string][]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			phonemes[parts[1]] = append(phonemes[parts[1]], parts[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return phonemes, nil
}

// generateJSVowelTable emits a VOWELS lookup object per language,
// suitable for pasting into the SynthV script editor companion.
func generateJSVowelTable(inventory map[string]any) string {
	vowelsByLang := make(map[string][]string)
	for notation, entry := range inventory {
		if notation == "common" {
			continue
		}
		languages, ok := entry.(map[string]map[string][]string)
		if !ok {
			continue
		}
		for language, categories := range languages {
			seen := make(map[string]bool)
			for _, category := range []string{"vowel", "diphthong"} {
				for _, ph := range categories[category] {
					seen[ph] = true
				}
			}
			if len(seen) == 0 {
				continue
			}
			var phonemes []string
			for ph := range seen {
				phonemes = append(phonemes, ph)
			}
			sort.Strings(phonemes)
			vowelsByLang[language] = phonemes
		}
	}
	var langs []string
	for lang := range vowelsByLang {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	var lines []string
	lines = append(lines, "var VOWELS = {")
	for i, lang := range langs {
		var entries []string
		for _, ph := range vowelsByLang[lang] {
			entries = append(entries, fmt.Sprintf("%q: 1", ph))
		}
		comma := ","
		if i == len(langs)-1 {
			comma = ""
		}
		lines = append(lines, fmt.Sprintf("  %q: {%s}%s", lang, strings.Join(entries, ", "), comma))
	}
	lines = append(lines, "};")
	return strings.Join(lines, "\n")
}
