package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/knowledge"
)

// specificRule a canned high-precision answer keyed on trigger substrings.
// Triggers are checked against the question regardless of the assigned
// category, so a "buffer overflow" question classified as web still gets
// the buffer overflow answer.
type specificRule struct {
	triggers []string
	answer   string
}

// specificRules checked in order; the first trigger hit wins
var specificRules = []specificRule{
	{
		triggers: []string{"sql injection"},
		answer: `SQL injection exploits vulnerable database queries. Basic techniques:
1. Test with single quotes (') to break queries
2. Use OR statements: ' OR '1'='1' --
3. UNION attacks: ' UNION SELECT username,password FROM users --
4. Blind SQL injection with time delays
5. Use tools like sqlmap for automation`,
	},
	{
		triggers: []string{"buffer overflow"},
		answer: `Buffer overflow occurs when data exceeds buffer boundaries. Common exploitation steps:
1. Find the vulnerable function (strcpy, gets, sprintf)
2. Calculate the offset to overwrite the return address
3. Craft payload: padding + return address + shellcode
4. Use tools like pattern_create, gdb, or radare2
5. Bypass protections like ASLR, DEP, stack canaries if present`,
	},
	{
		triggers: []string{"caesar cipher", "rot"},
		answer: `Caesar ciphers shift every letter by a fixed amount. To break one:
1. Try all 25 shifts, ROT13 is the most common
2. Look for readable words appearing in the output
3. Word lengths and punctuation are preserved, so structure is a clue
4. Frequency analysis helps on longer texts
5. CyberChef or a short python loop handles this in seconds`,
	},
}

// ResponderService produces the answer text for a classified question
type ResponderService struct {
	base   *knowledge.Base
	rules  []specificRule
	logger *zap.Logger
}

// NewResponderService creates a responder over the given knowledge base
func NewResponderService(base *knowledge.Base, logger *zap.Logger) *ResponderService {
	return &ResponderService{
		base:   base,
		rules:  specificRules,
		logger: logger,
	}
}

// Respond returns the canned answer for the first matching specific
// trigger, or a templated summary of the category's reference data.
// Never fails and never returns empty text.
func (s *ResponderService) Respond(question string, category knowledge.Category) string {
	lowered := strings.ToLower(question)

	for _, rule := range s.rules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lowered, trigger) {
				s.logger.Debug("specific answer matched", zap.String("trigger", trigger))
				return rule.answer
			}
		}
	}

	return s.genericResponse(category)
}

// genericResponse renders the category template from the current
// knowledge snapshot. Missing table fields render as empty values.
func (s *ResponderService) genericResponse(category knowledge.Category) string {
	ck := s.base.Lookup(category)

	return fmt.Sprintf(
		"For %s challenges, I recommend starting with %s. Focus on %s techniques. Common patterns include %s. What specific aspect would you like help with?",
		category,
		joinAnd(firstN(ck.Tools, 3)),
		joinAnd(firstN(ck.Techniques, 2)),
		firstOrEmpty(ck.Patterns),
	)
}

// joinAnd joins values as "a, b and c"
func joinAnd(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values[:len(values)-1], ", ") + " and " + values[len(values)-1]
	}
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
