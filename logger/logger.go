package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"
)

type RequestKeyType string

const RequestKey RequestKeyType = `request`

// Status is the error type returned by all fallible functions.
// Status codes follow HTTP convention: 4xx caller problem, 5xx internal.
type Status struct {
	Status  int
	Message string
	Err     string
	Trace   string
	Request string
}

func (s *Status) Error() string {
	return s.String()
}

func (s *Status) String() string {
	var result []string
	result = append(result, fmt.Sprintf("Status: %d", s.Status))
	result = append(result, s.Message)
	if s.Err != `` {
		result = append(result, s.Err)
	}
	return strings.Join(result, ", ")
}

var output io.Writer = os.Stderr

// SetOutput directs log output to "stderr", "stdout", or a file path.
func SetOutput(target string) {
	switch target {
	case `stderr`:
		output = os.Stderr
	case `stdout`:
		output = os.Stdout
	default:
		file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, `Unable to open log file`, target, err)
			return
		}
		output = file
	}
}

func Error(ctx context.Context, status int, err error, messages ...any) *Status {
	var s Status
	s.Status = status
	s.Message = join(messages)
	if err != nil {
		s.Err = err.Error()
	}
	s.Trace = trace()
	s.Request = request(ctx)
	writeLog(`ERROR`, s.String())
	return &s
}

func ErrorNoErr(ctx context.Context, status int, messages ...any) *Status {
	return Error(ctx, status, nil, messages...)
}

// ExecError classifies one stderr line from an external engine.
// Warning-level chatter is logged and nil returned; anything that looks
// like an engine failure becomes a Status.
func ExecError(ctx context.Context, status int, line string) *Status {
	lower := strings.ToLower(line)
	if strings.Contains(lower, `error`) ||
		strings.Contains(line, `Traceback`) ||
		strings.Contains(line, `Exception`) {
		return ErrorNoErr(ctx, status, line)
	}
	Warn(ctx, line)
	return nil
}

func Warn(ctx context.Context, messages ...any) {
	writeLog(`WARN`, join(messages))
}

func Info(ctx context.Context, messages ...any) {
	writeLog(`INFO`, join(messages))
}

func Debug(ctx context.Context, messages ...any) {
	writeLog(`DEBUG`, join(messages))
}

func join(messages []any) string {
	var parts []string
	for _, msg := range messages {
		parts = append(parts, fmt.Sprintf("%v", msg))
	}
	return strings.Join(parts, ` `)
}

func request(ctx context.Context) string {
	value := ctx.Value(RequestKey)
	if value == nil {
		return ``
	}
	result, _ := value.(string)
	return result
}

func trace() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ``
	}
	return fmt.Sprintf("%s:%d", file, line)
}

func writeLog(level string, message string) {
	timestamp := time.Now().Format(`2006-01-02 15:04:05`)
	fmt.Fprintln(output, timestamp, level, message)
}
