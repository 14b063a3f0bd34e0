package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/knowledge"
	"github.com/penomovu/Unveil/internal/model"
)

// apologyText returned when processing faults unexpectedly.
// Classification and synthesis are total functions, so this should
// never be seen; the caller still must get a result either way.
const apologyText = "Sorry, something went wrong while working on your question. Could you try rephrasing it?"

const historyTTL = 24 * time.Hour

// AssistantService orchestrates classification and response synthesis
type AssistantService struct {
	classifier  *ClassifierService
	responder   *ResponderService
	redisClient *redis.Client // optional; nil disables history
	logger      *zap.Logger
}

// NewAssistantService creates the orchestrator.
// redisClient may be nil, in which case chat history is skipped.
func NewAssistantService(
	classifier *ClassifierService,
	responder *ResponderService,
	redisClient *redis.Client,
	logger *zap.Logger,
) *AssistantService {
	return &AssistantService{
		classifier:  classifier,
		responder:   responder,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ProcessQuestion classifies the question, synthesizes an answer and
// measures elapsed time. Never returns an error: an unexpected fault
// yields an apologetic result with the time measured so far.
func (s *AssistantService) ProcessQuestion(question string) (result model.QueryResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("question processing faulted",
				zap.Any("cause", r),
				zap.String("question", question))
			result = model.QueryResult{
				Text:     apologyText,
				Category: knowledge.CategoryMisc,
				Elapsed:  time.Since(start),
			}
		}
	}()

	category := s.classifier.Classify(question)
	text := s.responder.Respond(question, category)

	result = model.QueryResult{
		Text:     text,
		Category: category,
		Elapsed:  time.Since(start),
	}

	s.logger.Info("question processed",
		zap.String("category", category.String()),
		zap.Duration("elapsed", result.Elapsed))
	return result
}

// Ask processes a question for a known user, recording it in the
// user's chat history when a history store is configured.
func (s *AssistantService) Ask(ctx context.Context, userID int64, question string) model.QueryResult {
	result := s.ProcessQuestion(question)
	if userID != 0 {
		s.saveHistory(ctx, userID, question)
	}
	return result
}

// History returns the most recent questions for a user, newest last
func (s *AssistantService) History(ctx context.Context, userID int64, limit int64) []string {
	if s.redisClient == nil {
		return nil
	}

	history, err := s.redisClient.LRange(ctx, historyKey(userID), -limit, -1).Result()
	if err != nil {
		s.logger.Warn("history read failed", zap.Int64("userId", userID), zap.Error(err))
		return nil
	}
	return history
}

// saveHistory appends the question to the user's history, best effort
func (s *AssistantService) saveHistory(ctx context.Context, userID int64, question string) {
	if s.redisClient == nil {
		return
	}

	key := historyKey(userID)
	if err := s.redisClient.RPush(ctx, key, question).Err(); err != nil {
		s.logger.Warn("history write failed", zap.Int64("userId", userID), zap.Error(err))
		return
	}
	s.redisClient.Expire(ctx, key, historyTTL)
}

func historyKey(userID int64) string {
	return fmt.Sprintf("chat_history:%d", userID)
}
