package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/knowledge"
)

func newAssistant(t *testing.T) *AssistantService {
	t.Helper()
	logger := zap.NewNop()
	classifier := NewClassifierService(logger)
	responder := NewResponderService(knowledge.NewBase(logger), logger)
	return NewAssistantService(classifier, responder, nil, logger)
}

func TestProcessQuestion(t *testing.T) {
	s := newAssistant(t)

	result := s.ProcessQuestion("I need help with SQL injection")
	assert.Equal(t, knowledge.CategoryWeb, result.Category)
	assert.NotEmpty(t, result.Text)
	assert.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))
}

func TestProcessQuestionEmptyInput(t *testing.T) {
	s := newAssistant(t)

	result := s.ProcessQuestion("")
	assert.Equal(t, knowledge.CategoryMisc, result.Category)
	assert.NotEmpty(t, result.Text)
}

// Identical questions yield identical text and category; only the
// elapsed time may differ between calls.
func TestProcessQuestionIdempotent(t *testing.T) {
	s := newAssistant(t)

	first := s.ProcessQuestion("ghidra disassemble this binary")
	second := s.ProcessQuestion("ghidra disassemble this binary")

	require.Equal(t, first.Text, second.Text)
	require.Equal(t, first.Category, second.Category)
	assert.Equal(t, knowledge.CategoryReverse, first.Category)
}

// A fault inside synthesis must surface as an apologetic result,
// never as a panic or an error to the caller.
func TestProcessQuestionRecoversFromFault(t *testing.T) {
	logger := zap.NewNop()
	classifier := NewClassifierService(logger)
	responder := NewResponderService(nil, logger) // broken wiring
	s := NewAssistantService(classifier, responder, nil, logger)

	result := s.ProcessQuestion("where do I even start")
	assert.NotEmpty(t, result.Text)
	assert.Equal(t, knowledge.CategoryMisc, result.Category)
	assert.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))
}

// Ask without a configured history store must still answer
func TestAskWithoutHistoryStore(t *testing.T) {
	s := newAssistant(t)

	result := s.Ask(context.Background(), 42, "how to crack this hash")
	assert.Equal(t, knowledge.CategoryCrypto, result.Category)
	assert.NotEmpty(t, result.Text)

	assert.Nil(t, s.History(context.Background(), 42, 5))
}
