package stdio_exec

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"

	log "github.com/honki-bobo/synthv-translator/logger"
)

// StdioExec drives a long-lived external engine over stdin/stdout,
// one request line out, one response line back. The hyphenation and
// phonemization engines are both run this way so their startup cost
// is paid once per run, not once per word.
type StdioExec struct {
	ctx       context.Context
	command   string
	args      []string
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    io.ReadCloser
	stderr    io.ReadCloser
	writer    *bufio.Writer
	reader    *bufio.Reader
	stderrWg  sync.WaitGroup
	engineErr *log.Status
	errMutex  sync.Mutex
}

func NewStdioExec(ctx context.Context, command string, args ...string) (*StdioExec, *log.Status) {
	var stdio StdioExec
	stdio.ctx = ctx
	stdio.command = command
	stdio.args = args
	var err error
	stdio.cmd = exec.CommandContext(ctx, command, args...)
	stdio.stdin, err = stdio.cmd.StdinPipe()
	if err != nil {
		return &stdio, log.Error(ctx, 500, err, `Unable to open stdin for reading`)
	}
	stdio.stdout, err = stdio.cmd.StdoutPipe()
	if err != nil {
		return &stdio, log.Error(ctx, 500, err, `Unable to open stdout for writing`)
	}
	stdio.stderr, err = stdio.cmd.StderrPipe()
	if err != nil {
		return &stdio, log.Error(ctx, 500, err, `Unable to open stderr for writing`)
	}
	err = stdio.cmd.Start()
	if err != nil {
		return &stdio, log.Error(ctx, 500, err, `Unable to start`, command)
	}
	stdio.handleStderr()
	stdio.writer = bufio.NewWriterSize(stdio.stdin, 4096)
	stdio.reader = bufio.NewReaderSize(stdio.stdout, 4096)
	return &stdio, nil
}

func (s *StdioExec) handleStderr() {
	s.stderrWg.Add(1)
	go func() {
		defer s.stderrWg.Done()
		scanner := bufio.NewScanner(s.stderr)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if len(line) > 0 {
				status := log.ExecError(s.ctx, 500, line)
				if status != nil {
					s.errMutex.Lock()
					s.engineErr = status
					s.errMutex.Unlock()
				}
			}
		}
		err := scanner.Err()
		if err != nil {
			_ = log.Error(s.ctx, 500, err, `Error reading stderr`)
		}
	}()
}

func (s *StdioExec) getEngineErr() *log.Status {
	s.errMutex.Lock()
	defer s.errMutex.Unlock()
	return s.engineErr
}

func (s *StdioExec) Process(input string) (string, *log.Status) {
	var result string
	engErr := s.getEngineErr()
	if engErr != nil {
		return result, engErr
	}
	_, err := s.writer.WriteString(input + "\n")
	if err != nil {
		return result, log.Error(s.ctx, 500, err, `Error writing to`, s.command)
	}
	err = s.writer.Flush()
	if err != nil {
		return result, log.Error(s.ctx, 500, err, `Error flush to`, s.command)
	}
	result, err = s.reader.ReadString('\n')
	if err != nil {
		return result, log.Error(s.ctx, 500, err, `Error reading response from`, s.command)
	}
	engErr = s.getEngineErr()
	if engErr != nil {
		return result, engErr
	}
	result = strings.TrimRight(result, "\n")
	return result, nil
}

func (s *StdioExec) Close() {
	if s.writer != nil {
		_ = s.writer.Flush()
	}
	if s.stdin != nil {
		_ = s.stdin.Close()
	}
	s.stderrWg.Wait()
	if s.cmd != nil && s.cmd.Process != nil {
		err := s.cmd.Wait()
		if err != nil {
			// Do not return error so that s.engineErr is reported
			_ = log.Error(s.ctx, 500, err, `Engine failed`, s.cmd.String())
		}
	}
}
