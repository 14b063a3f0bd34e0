package knowledge

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CategoryKnowledge reference data for one category.
// Order matters: tools are ranked by relevance, and generic responses
// use the first 3 tools, first 2 techniques and first pattern.
type CategoryKnowledge struct {
	Tools      []string `yaml:"tools"`
	Techniques []string `yaml:"techniques"`
	Patterns   []string `yaml:"patterns"`
}

// Snapshot immutable view of all category tables.
// A snapshot is never modified after publication; growth replaces
// the whole snapshot so in-flight requests read a consistent table.
type Snapshot map[Category]CategoryKnowledge

// Counts per-category entry counts (status endpoint)
type Counts struct {
	Tools      int `json:"tools"`
	Techniques int `json:"techniques"`
	Patterns   int `json:"patterns"`
}

// Base knowledge base holding the current snapshot
type Base struct {
	snap   *atomic.Pointer[Snapshot]
	mu     sync.Mutex // serializes writers; readers go through the pointer
	logger *zap.Logger
}

// NewBase creates a knowledge base with the built-in tables
func NewBase(logger *zap.Logger) *Base {
	snap := defaultSnapshot()
	return &Base{
		snap:   atomic.NewPointer(&snap),
		logger: logger,
	}
}

// Snapshot returns the current snapshot
func (b *Base) Snapshot() Snapshot {
	return *b.snap.Load()
}

// Lookup returns the table for a category.
// Unknown categories get a zero value, never an error.
func (b *Base) Lookup(c Category) CategoryKnowledge {
	return b.Snapshot()[c]
}

// Append folds new patterns and techniques into a category's table.
// Duplicates are skipped. The update is a copy-on-write swap.
func (b *Base) Append(c Category, patterns, techniques []string) {
	if len(patterns) == 0 && len(techniques) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	old := b.Snapshot()
	next := make(Snapshot, len(old))
	for cat, ck := range old {
		next[cat] = ck
	}

	ck := next[c]
	ck.Patterns = appendUnique(ck.Patterns, patterns)
	ck.Techniques = appendUnique(ck.Techniques, techniques)
	next[c] = ck

	b.snap.Store(&next)
	b.logger.Info("knowledge table updated",
		zap.String("category", c.String()),
		zap.Int("patterns", len(ck.Patterns)),
		zap.Int("techniques", len(ck.Techniques)))
}

// CountAll entry counts for every category
func (b *Base) CountAll() map[Category]Counts {
	snap := b.Snapshot()
	counts := make(map[Category]Counts, len(snap))
	for cat, ck := range snap {
		counts[cat] = Counts{
			Tools:      len(ck.Tools),
			Techniques: len(ck.Techniques),
			Patterns:   len(ck.Patterns),
		}
	}
	return counts
}

// LoadFile merges category tables from a YAML file over the current
// snapshot. Listed fields replace the built-in ones wholesale.
func (b *Base) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read knowledge file: %w", err)
	}

	var overrides map[Category]CategoryKnowledge
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse knowledge file: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	old := b.Snapshot()
	next := make(Snapshot, len(old))
	for cat, ck := range old {
		next[cat] = ck
	}

	for cat, override := range overrides {
		if !cat.Valid() {
			b.logger.Warn("skipping unknown category in knowledge file",
				zap.String("category", cat.String()))
			continue
		}
		ck := next[cat]
		if len(override.Tools) > 0 {
			ck.Tools = override.Tools
		}
		if len(override.Techniques) > 0 {
			ck.Techniques = override.Techniques
		}
		if len(override.Patterns) > 0 {
			ck.Patterns = override.Patterns
		}
		next[cat] = ck
	}

	b.snap.Store(&next)
	b.logger.Info("knowledge file loaded",
		zap.String("path", path),
		zap.Int("categories", len(overrides)))
	return nil
}

// appendUnique returns a fresh slice so published snapshots stay immutable
func appendUnique(existing, additions []string) []string {
	out := make([]string, 0, len(existing)+len(additions))
	seen := make(map[string]bool, len(existing)+len(additions))
	for _, v := range existing {
		out = append(out, v)
		seen[v] = true
	}
	for _, v := range additions {
		if v == "" || seen[v] {
			continue
		}
		out = append(out, v)
		seen[v] = true
	}
	return out
}
