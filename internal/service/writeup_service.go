package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/corpus"
	"github.com/penomovu/Unveil/internal/knowledge"
	"github.com/penomovu/Unveil/internal/model"
)

// WriteupService ingests writeups into the corpus and folds any
// supplied reference data into the knowledge tables
type WriteupService struct {
	store  *corpus.Store
	base   *knowledge.Base
	logger *zap.Logger
}

// NewWriteupService creates a writeup ingestion service
func NewWriteupService(store *corpus.Store, base *knowledge.Base, logger *zap.Logger) *WriteupService {
	return &WriteupService{
		store:  store,
		base:   base,
		logger: logger,
	}
}

// Ingest stores the writeup and updates the category's knowledge
// table with any patterns/techniques it carries. The table update is
// a whole-snapshot swap: requests in flight keep their view.
func (w *WriteupService) Ingest(upload model.WriteupUpload) (*corpus.Writeup, error) {
	category := knowledge.Category(upload.Category)
	if !category.Valid() {
		category = knowledge.CategoryMisc
	}

	writeup := corpus.Writeup{
		ID:       uuid.New().String(),
		Title:    upload.Title,
		Category: category,
		Content:  upload.Content,
		AddedAt:  time.Now(),
	}

	if err := w.store.Add(writeup); err != nil {
		return nil, fmt.Errorf("store writeup: %w", err)
	}

	w.base.Append(category, upload.Patterns, upload.Techniques)

	w.logger.Info("writeup ingested",
		zap.String("id", writeup.ID),
		zap.String("title", writeup.Title),
		zap.String("category", category.String()))
	return &writeup, nil
}

// Search keyword search over the corpus
func (w *WriteupService) Search(query string, limit int) []corpus.SearchResult {
	return w.store.Search(query, limit)
}
