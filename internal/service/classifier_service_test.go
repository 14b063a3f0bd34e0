package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/knowledge"
)

func TestClassify(t *testing.T) {
	s := NewClassifierService(zap.NewNop())

	tests := []struct {
		name     string
		question string
		want     knowledge.Category
	}{
		{"sql injection question", "I need help with SQL injection", knowledge.CategoryWeb},
		{"hash cracking question", "how to crack this hash", knowledge.CategoryCrypto},
		{"disassembly question", "ghidra disassemble this binary", knowledge.CategoryReverse},
		{"pwn question", "my exploit needs a rop chain", knowledge.CategoryPwn},
		{"forensics question", "open this pcap capture", knowledge.CategoryForensics},
		{"osint question", "whois lookup on this domain", knowledge.CategoryOSINT},
		{"empty question", "", knowledge.CategoryMisc},
		{"no keywords", "hello there, can you help me", knowledge.CategoryMisc},
		{"uppercase input", "WHAT IS XSS", knowledge.CategoryWeb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Classify(tt.question))
		})
	}
}

// Keyword sets overlap across categories; the evaluation order
// web, crypto, pwn, reverse, forensics, osint is the tie-break and
// is part of the contract.
func TestClassifyPriorityOrder(t *testing.T) {
	s := NewClassifierService(zap.NewNop())

	// "web" (web) and "buffer" (pwn) both present: web wins
	assert.Equal(t, knowledge.CategoryWeb, s.Classify("web app has a buffer issue"))

	// "hash" (crypto) and "overflow" (pwn) both present: crypto wins
	assert.Equal(t, knowledge.CategoryCrypto, s.Classify("hash table overflow"))

	// "heap" (pwn) and "ghidra" (reverse) both present: pwn wins
	assert.Equal(t, knowledge.CategoryPwn, s.Classify("heap bug found with ghidra"))
}

func TestClassifyAlwaysReturnsKnownCategory(t *testing.T) {
	s := NewClassifierService(zap.NewNop())

	questions := []string{
		"", " ", "x", "completely unrelated text",
		"sql xss crypto pwn reverse forensics osint",
		"¿cómo funciona esto?",
	}

	for _, q := range questions {
		assert.True(t, s.Classify(q).Valid(), "question %q", q)
	}
}

func TestClassifyMultipleHitsSameCategory(t *testing.T) {
	s := NewClassifierService(zap.NewNop())

	// several web keywords do not change the outcome
	assert.Equal(t, knowledge.CategoryWeb, s.Classify("sql injection via csrf on the web login"))
}
