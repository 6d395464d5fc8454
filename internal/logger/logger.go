package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/term"
)

// LogFileName is the file written inside Options.Dir.
const LogFileName = "combiner.log"

// Options controls where and how much a Logger writes.
type Options struct {
	Dir     string // optional: also append entries to Dir/combiner.log
	Verbose bool   // enable Debug output
}

// Logger provides leveled logging (debug/info/warning/error).
type Logger struct {
	debugLog   *log.Logger
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger
	verbose    bool
	file       *os.File
	mu         sync.Mutex
}

type prefixes struct {
	debug, info, warning, error string
}

var (
	plainPrefixes = prefixes{"DEBUG   ", "INFO    ", "WARNING ", "ERROR   "}
	ttyPrefixes   = prefixes{"🔍 DEBUG   ", "ℹ️  INFO    ", "⚠️  WARNING ", "❌ ERROR   "}
)

// New creates a Logger writing to w and, when opts.Dir is set, to a log file
// inside that directory.
func New(w io.Writer, opts Options) (*Logger, error) {
	l := &Logger{verbose: opts.Verbose}

	p := plainPrefixes
	if isTerminal(w) {
		p = ttyPrefixes
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(filepath.Join(opts.Dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		l.file = f
		w = io.MultiWriter(w, f)
	}

	l.debugLog = log.New(w, p.debug, log.Ltime|log.Lmsgprefix)
	l.infoLog = log.New(w, p.info, log.Ltime|log.Lmsgprefix)
	l.warningLog = log.New(w, p.warning, log.Ltime|log.Lmsgprefix)
	l.errorLog = log.New(w, p.error, log.Ltime|log.Lmsgprefix)
	return l, nil
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	l, _ := New(io.Discard, Options{})
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Debug writes a formatted debug-level entry when verbose output is enabled.
func (l *Logger) Debug(format string, v ...interface{}) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugLog.Printf(format, v...)
}

// Info writes a formatted info-level log entry.
func (l *Logger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoLog.Printf(format, v...)
}

// Warning writes a formatted warning-level log entry.
func (l *Logger) Warning(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warningLog.Printf(format, v...)
}

// Error writes a formatted error-level log entry.
func (l *Logger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorLog.Printf(format, v...)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
