package phonemize

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/honki-bobo/synthv-translator/decode_yaml"
	log "github.com/honki-bobo/synthv-translator/logger"
	"github.com/honki-bobo/synthv-translator/utility/stdio_exec"
)

// Phonemizer bridges eSpeak NG through the phonemizer library. One
// text token per request line, one IPA line back. Responses are
// post-processed before use.
type Phonemizer struct {
	ctx   context.Context
	stdio *stdio_exec.StdioExec
	rules []decode_yaml.IPARule
}

func NewPhonemizer(ctx context.Context, lang string, rules []decode_yaml.IPARule) (*Phonemizer, *log.Status) {
	var p Phonemizer
	p.ctx = ctx
	p.rules = rules
	if lang == `fr` {
		lang = `fr-fr` // eSpeak names French fr-fr, not fr
	}
	script := filepath.Join(os.Getenv(`SYNTHV_PROJ`), `phonemize`, `phonemize.py`)
	var status *log.Status
	p.stdio, status = stdio_exec.NewStdioExec(ctx, os.Getenv(`SYNTHV_PYTHON`), script, lang)
	return &p, status
}

// Transcribe returns one post-processed IPA string per token, in order.
func (p *Phonemizer) Transcribe(tokens []string) ([]string, *log.Status) {
	var results []string
	for _, token := range tokens {
		ipa, status := p.stdio.Process(token)
		if status != nil {
			return results, status
		}
		results = append(results, PostProcessIPA(ipa, p.rules))
	}
	return results, nil
}

func (p *Phonemizer) Close() {
	p.stdio.Close()
}

var ipaStripper = strings.NewReplacer(`ː`, ``, `‿`, ``, `‖`, ``, ` `, ``)

// PostProcessIPA strips marks the mapping does not use (length,
// linking, boundary, literal spaces) and applies the mapping file's
// substitution rules in order.
func PostProcessIPA(ipa string, rules []decode_yaml.IPARule) string {
	ipa = ipaStripper.Replace(ipa)
	for _, rule := range rules {
		ipa = rule.Pattern.ReplaceAllString(ipa, rule.Replacement)
	}
	return ipa
}
