// Package logger wires the process-wide zerolog logger.
//
// Call Init once in main; components receive the logger by value through
// their constructors, and Get exists for the few places outside that chain.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the root logger.
type Options struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	// Anything unrecognised falls back to info.
	Level string
	// Pretty switches from JSON lines to the coloured console writer.
	// Meant for local development only.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu   sync.Mutex
	root *zerolog.Logger
)

// Init builds the root logger. The first call wins; later calls return the
// logger built by the first.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if root != nil {
		return *root
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
	root = &l
	return l
}

// Get returns the root logger, initialising it with defaults if Init was
// never called. That keeps log calls safe in tests and tools that skip main.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if root == nil {
		l := zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
		root = &l
	}
	return *root
}

// Reset discards the root logger so the next Init rebuilds it. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root = nil
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
