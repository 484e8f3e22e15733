package phonemize

import (
	"context"
	"os"
	"path/filepath"

	log "github.com/honki-bobo/synthv-translator/logger"
	"github.com/honki-bobo/synthv-translator/utility/stdio_exec"
)

// Hyphenator bridges the pyphen hyphenation engine. One word per
// request line, the hyphen-marked word back. The language is fixed at
// construction.
type Hyphenator struct {
	ctx   context.Context
	stdio *stdio_exec.StdioExec
}

func NewHyphenator(ctx context.Context, lang string) (*Hyphenator, *log.Status) {
	var h Hyphenator
	h.ctx = ctx
	script := filepath.Join(os.Getenv(`SYNTHV_PROJ`), `phonemize`, `hyphenate.py`)
	var status *log.Status
	h.stdio, status = stdio_exec.NewStdioExec(ctx, os.Getenv(`SYNTHV_PYTHON`), script, lang)
	return &h, status
}

func (h *Hyphenator) Hyphenate(word string) (string, *log.Status) {
	return h.stdio.Process(word)
}

func (h *Hyphenator) Close() {
	h.stdio.Close()
}
