package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/honki-bobo/synthv-translator/db"
	"github.com/honki-bobo/synthv-translator/decode_yaml"
	log "github.com/honki-bobo/synthv-translator/logger"
	"github.com/honki-bobo/synthv-translator/output"
	"github.com/honki-bobo/synthv-translator/phonemize"
	"github.com/honki-bobo/synthv-translator/report"
	"github.com/honki-bobo/synthv-translator/syllabify"
	"github.com/honki-bobo/synthv-translator/translate"
)

type Config struct {
	Input        string
	Lang         string
	MapFile      string
	RulesFile    string
	Alternatives int
	PhonemeEdit  bool
	Output       string
	ShowIPA      bool
	SingleLine   bool
	IPASplit     bool
	Report       string
	Cache        string
}

var knownLangs = map[string]bool{`de`: true, `fr`: true, `it`: true, `pt`: true, `ru`: true}

func main() {
	var config Config
	flag.StringVar(&config.Input, "i", "", "Input text file (default: stdin)")
	flag.StringVar(&config.Lang, "l", "de", "Language for phonemization: de|fr|it|pt|ru (default: de)")
	flag.StringVar(&config.MapFile, "m", "", "Mapping file (default: mappings/<lang>.json)")
	flag.StringVar(&config.RulesFile, "rules", "", "Syllable rules file (required with -ipa-split)")
	flag.IntVar(&config.Alternatives, "a", 0, "Show N alternatives, -1 = all (default: 0)")
	flag.BoolVar(&config.PhonemeEdit, "p", false, "Allow language switching per phoneme instead of per syllable")
	flag.StringVar(&config.Output, "o", "", "Output file (default: stdout)")
	flag.BoolVar(&config.ShowIPA, "ipa", false, "Print intermediate IPA syllables to stderr")
	flag.BoolVar(&config.SingleLine, "single-line", false, "Join words with double spaces instead of newlines")
	flag.BoolVar(&config.IPASplit, "ipa-split", false, "Treat input tokens as IPA and print phonological syllable splits")
	flag.StringVar(&config.Report, "report", "", "Write a reviewer .xlsx to this path")
	flag.StringVar(&config.Cache, "cache", "", "Path to a sqlite transcription cache (default: disabled)")
	flag.Parse()

	log.SetOutput(`stderr`)
	ctx := context.Background()

	if !knownLangs[config.Lang] {
		fmt.Fprintln(os.Stderr, `Unknown language:`, config.Lang, `- must be one of: de, fr, it, pt, ru`)
		os.Exit(1)
	}
	if config.IPASplit {
		ipaSplit(ctx, config)
		return
	}
	if config.MapFile == `` {
		config.MapFile = filepath.Join(`mappings`, config.Lang+`.json`)
	}
	decoder := decode_yaml.NewMappingDecoder(ctx)
	mapping, status := decoder.Process(config.MapFile)
	if status != nil {
		os.Exit(1)
	}

	hyphenator, status := phonemize.NewHyphenator(ctx, config.Lang)
	if status != nil {
		os.Exit(1)
	}
	defer hyphenator.Close()
	phonemizer, status := phonemize.NewPhonemizer(ctx, config.Lang, mapping.Rules)
	if status != nil {
		os.Exit(1)
	}
	defer phonemizer.Close()

	translator := translate.NewTranslator(ctx, mapping, config.Lang, hyphenator, phonemizer)
	translator.SetAlternatives(config.Alternatives, config.PhonemeEdit)
	if config.Cache != `` {
		cache, status2 := db.NewCacheDB(ctx, config.Cache)
		if status2 != nil {
			os.Exit(1)
		}
		defer cache.Close()
		translator.SetCache(&cache)
	}

	text, err := readInput(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, `Could not read input:`, err)
		os.Exit(1)
	}
	words, status := translator.Translate(text)
	if status != nil {
		os.Exit(1)
	}
	if config.ShowIPA {
		fmt.Fprintln(os.Stderr, output.IPAString(words))
	}
	result := output.Render(words, config.SingleLine)
	if config.Output != `` {
		err = os.WriteFile(config.Output, []byte(result+"\n"), 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, `Could not write output:`, err)
			os.Exit(1)
		}
	} else {
		fmt.Println(result)
	}
	if config.Report != `` {
		rpt := report.NewExcelReport(ctx, config.Report)
		status = rpt.Generate(strings.Fields(text), words)
		if status != nil {
			os.Exit(1)
		}
	}
}

// ipaSplit is the inspection mode for the phonological syllabifier:
// each input token is treated as an IPA string and split at sonority
// boundaries.
func ipaSplit(ctx context.Context, config Config) {
	if config.RulesFile == `` {
		fmt.Fprintln(os.Stderr, `-ipa-split requires -rules <file>`)
		os.Exit(1)
	}
	decoder := decode_yaml.NewRulesDecoder(ctx)
	rules, status := decoder.Process(config.RulesFile)
	if status != nil {
		os.Exit(1)
	}
	phonological := syllabify.NewPhonological(rules)
	text, err := readInput(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, `Could not read input:`, err)
		os.Exit(1)
	}
	for _, token := range strings.Fields(text) {
		fmt.Println(strings.Join(phonological.Syllabify(token), `-`))
	}
}

func readInput(config Config) (string, error) {
	if config.Input != `` {
		content, err := os.ReadFile(config.Input)
		return string(content), err
	}
	if flag.NArg() > 0 {
		return strings.Join(flag.Args(), ` `), nil
	}
	content, err := io.ReadAll(os.Stdin)
	return string(content), err
}
