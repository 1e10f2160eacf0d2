// Package logging builds the engine's zap loggers. Every module gets a named
// logger that writes to the console and, when enabled, to its own file and
// to General.txt.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// GeneralName is the name of the log every module also writes to.
const GeneralName = "General"

// Config selects where logs go.
type Config struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
	Files bool   `toml:"files"`

	// Console receives console output. Nil means stdout.
	Console zapcore.WriteSyncer `toml:"-"`
	// Color forces coloured levels on or off. Nil detects a terminal.
	Color *bool `toml:"-"`
}

// DefaultConfig logs at info level to the console and to files under logs/.
func DefaultConfig() Config {
	return Config{Dir: "logs", Level: "info", Files: true}
}

// Logging owns the console sink and the log files.
type Logging struct {
	cfg     Config
	level   zap.AtomicLevel
	console zapcore.Core
	general zapcore.Core

	mu      sync.Mutex
	files   map[string]*os.File
	loggers map[string]*zap.Logger
}

// New creates the console sink and, when files are enabled, the log
// directory and General.txt.
func New(cfg Config) (*Logging, error) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out := cfg.Console
	color := false
	if out == nil {
		out = zapcore.Lock(os.Stdout)
		color = term.IsTerminal(int(os.Stdout.Fd()))
	}
	if cfg.Color != nil {
		color = *cfg.Color
	}

	l := &Logging{
		cfg:     cfg,
		level:   zap.NewAtomicLevelAt(lvl),
		files:   make(map[string]*os.File),
		loggers: make(map[string]*zap.Logger),
	}
	l.console = zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(color)), out, l.level)

	if cfg.Files {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		core, err := l.fileCore(GeneralName)
		if err != nil {
			return nil, err
		}
		l.general = core
	}
	return l, nil
}

func encoderConfig(color bool) zapcore.EncoderConfig {
	level := zapcore.CapitalLevelEncoder
	if color {
		level = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "module",
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       encodeClock,
		EncodeLevel:      level,
		EncodeName:       encodeModule,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

func encodeClock(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[15:04:05]:"))
}

func encodeModule(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + name + "]")
}

// fileCore opens <Dir>/<name>.txt, truncating an old log.
func (l *Logging) fileCore(name string) (zapcore.Core, error) {
	path := filepath.Join(l.cfg.Dir, name+".txt")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	l.files[name] = f
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(false)), zapcore.AddSync(f), l.level), nil
}

// Module returns the logger for a module, creating its file on first use.
// Failing to open the file falls back to console and General.txt.
func (l *Logging) Module(name string) *zap.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lg, ok := l.loggers[name]; ok {
		return lg
	}

	cores := []zapcore.Core{l.console}
	if l.general != nil {
		cores = append(cores, l.general)
	}
	if l.cfg.Files && name != GeneralName {
		core, err := l.fileCore(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		} else {
			cores = append(cores, core)
		}
	}

	lg := zap.New(zapcore.NewTee(cores...)).Named(name)
	l.loggers[name] = lg
	return lg
}

// General returns the logger for messages that belong to no module.
func (l *Logging) General() *zap.Logger {
	return l.Module(GeneralName)
}

// SetLevel changes the level of every logger.
func (l *Logging) SetLevel(lvl zapcore.Level) { l.level.SetLevel(lvl) }

// Files returns the paths of the open log files.
func (l *Logging) Files() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	paths := make([]string, 0, len(l.files))
	for _, f := range l.files {
		paths = append(paths, f.Name())
	}
	return paths
}

// Sync flushes every logger to its sinks.
func (l *Logging) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var first error
	for _, lg := range l.loggers {
		// stdout returns EINVAL on sync when it is a terminal.
		_ = lg.Sync()
	}
	for name, f := range l.files {
		if err := f.Sync(); err != nil && first == nil {
			first = fmt.Errorf("failed to sync %s log: %w", name, err)
		}
	}
	return first
}

// Close syncs and closes every log file. Loggers must not be used after
// Close.
func (l *Logging) Close() error {
	err := l.Sync()
	l.mu.Lock()
	defer l.mu.Unlock()
	for name, f := range l.files {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s log: %w", name, cerr)
		}
		delete(l.files, name)
	}
	return err
}
