package corpus

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/knowledge"
)

// Writeup a stored challenge writeup
type Writeup struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Category knowledge.Category `json:"category"`
	Content  string             `json:"content"`
	AddedAt  time.Time          `json:"addedAt"`
}

// SearchResult a scored match
type SearchResult struct {
	Writeup Writeup `json:"writeup"`
	Score   int     `json:"score"`
}

// Keyword weights: a title hit is worth more than a category hit,
// which is worth more than a body hit.
const (
	titleWeight    = 3
	categoryWeight = 2
	contentWeight  = 1
)

// Store in-memory writeup store
type Store struct {
	writeups map[string]*Writeup
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewStore creates an empty writeup store
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		writeups: make(map[string]*Writeup),
		logger:   logger,
	}
}

// Add stores a writeup
func (s *Store) Add(w Writeup) error {
	if w.ID == "" {
		return fmt.Errorf("writeup ID cannot be empty")
	}
	if w.Title == "" {
		return fmt.Errorf("writeup title cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeups[w.ID] = &w
	s.logger.Info("writeup stored",
		zap.String("id", w.ID),
		zap.String("category", w.Category.String()))
	return nil
}

// Get returns a writeup by ID
func (s *Store) Get(id string) (*Writeup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.writeups[id]
	if !ok {
		return nil, fmt.Errorf("writeup not found: %s", id)
	}
	out := *w
	return &out, nil
}

// Search scores every writeup against the query keywords and returns
// the top matches. Words of 3 or fewer characters are ignored.
func (s *Store) Search(query string, limit int) []SearchResult {
	words := queryWords(query)
	if len(words) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]SearchResult, 0, len(s.writeups))
	for _, w := range s.writeups {
		score := scoreWriteup(w, words)
		if score > 0 {
			results = append(results, SearchResult{Writeup: *w, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Writeup.Title < results[j].Writeup.Title
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug("corpus search",
		zap.String("query", query),
		zap.Int("results", len(results)))
	return results
}

// Count number of stored writeups
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.writeups)
}

// CountByCategory writeup counts per category
func (s *Store) CountByCategory() map[knowledge.Category]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[knowledge.Category]int)
	for _, w := range s.writeups {
		counts[w.Category]++
	}
	return counts
}

func scoreWriteup(w *Writeup, words []string) int {
	title := strings.ToLower(w.Title)
	content := strings.ToLower(w.Content)
	category := strings.ToLower(w.Category.String())

	score := 0
	for _, word := range words {
		if strings.Contains(title, word) {
			score += titleWeight
		}
		if strings.Contains(category, word) {
			score += categoryWeight
		}
		if strings.Contains(content, word) {
			score += contentWeight
		}
	}
	return score
}

func queryWords(query string) []string {
	var words []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if len(word) > 3 {
			words = append(words, word)
		}
	}
	return words
}
