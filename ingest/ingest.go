package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/talentsift/screener/core"
)

// Loader reads candidate documents from the filesystem. Extraction problems
// for a single file degrade to an empty-text document for that file and
// never abort the batch; the ranking engine treats empty text as a scoreable
// state of its own.
type Loader struct {
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// NewLoader creates a document loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{logger: slog.Default().With("component", "ingest")}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadDir loads every supported file (.pdf, .txt, .md) directly inside dir,
// in lexical filename order so document order is deterministic.
func (l *Loader) LoadDir(dir string) ([]core.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supported(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return l.LoadFiles(paths...), nil
}

// LoadFiles loads the given files in the order provided. Every path yields a
// document; extraction failures yield one with empty text.
func (l *Loader) LoadFiles(paths ...string) []core.Document {
	docs := make([]core.Document, 0, len(paths))
	for _, path := range paths {
		docs = append(docs, l.loadFile(path))
	}
	return docs
}

func (l *Loader) loadFile(path string) core.Document {
	name := filepath.Base(path)

	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDFText(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	}
	if err != nil {
		l.logger.Warn("extraction failed, continuing with empty text", "file", name, "err", err)
		text = ""
	}

	return core.Document{Name: name, Text: text}
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt", ".md":
		return true
	}
	return false
}
