package corpus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/knowledge"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(zap.NewNop())

	writeups := []Writeup{
		{ID: "1", Title: "SQL Injection Basics", Category: knowledge.CategoryWeb,
			Content: "Union select payloads and blind injection techniques.", AddedAt: time.Now()},
		{ID: "2", Title: "Buffer Overflow Exploitation", Category: knowledge.CategoryPwn,
			Content: "Overwriting the saved return address to control execution.", AddedAt: time.Now()},
		{ID: "3", Title: "Hidden Data in Images", Category: knowledge.CategoryForensics,
			Content: "Steghide and binwalk reveal embedded files.", AddedAt: time.Now()},
	}
	for _, w := range writeups {
		require.NoError(t, s.Add(w))
	}
	return s
}

func TestAddValidation(t *testing.T) {
	s := NewStore(zap.NewNop())

	assert.Error(t, s.Add(Writeup{Title: "no id"}))
	assert.Error(t, s.Add(Writeup{ID: "x"}))
	assert.NoError(t, s.Add(Writeup{ID: "x", Title: "ok"}))
}

func TestGet(t *testing.T) {
	s := seededStore(t)

	w, err := s.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Buffer Overflow Exploitation", w.Title)

	_, err = s.Get("missing")
	assert.Error(t, err)
}

func TestSearchRanking(t *testing.T) {
	s := seededStore(t)

	// title hits outweigh content hits
	results := s.Search("buffer overflow return address", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, "2", results[0].Writeup.ID)

	// category term scores too
	results = s.Search("forensics images", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, "3", results[0].Writeup.ID)
}

func TestSearchLimitAndNoMatch(t *testing.T) {
	s := seededStore(t)

	assert.Len(t, s.Search("injection overflow images steghide", 1), 1)
	assert.Empty(t, s.Search("quantum knitting", 10))

	// words of 3 or fewer characters are ignored
	assert.Empty(t, s.Search("a an sql", 10)) // "sql" has 3 chars
}

func TestCounts(t *testing.T) {
	s := seededStore(t)

	assert.Equal(t, 3, s.Count())
	byCat := s.CountByCategory()
	assert.Equal(t, 1, byCat[knowledge.CategoryWeb])
	assert.Equal(t, 1, byCat[knowledge.CategoryPwn])
}
