package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/knowledge"
)

// classificationRule maps a keyword set to a category.
// A question matches when it contains any keyword as a
// case-insensitive substring.
type classificationRule struct {
	category knowledge.Category
	keywords []string
}

// classificationRules evaluated top to bottom; the first category with
// any keyword hit wins. Keyword sets overlap, so this order is the
// tie-break and must not be reordered: a question mentioning both
// "web" and "buffer" is a web question.
var classificationRules = []classificationRule{
	{knowledge.CategoryWeb, []string{"sql", "xss", "web", "injection", "csrf", "burp", "lfi", "ssrf", "cookie"}},
	{knowledge.CategoryCrypto, []string{"crypto", "cipher", "rsa", "aes", "hash", "encrypt", "decrypt", "base64", "vigenere"}},
	{knowledge.CategoryPwn, []string{"pwn", "buffer", "overflow", "shellcode", "rop", "heap", "canary", "format string"}},
	{knowledge.CategoryReverse, []string{"reverse", "ghidra", "ida", "disassem", "decompil", "assembly", "binary", "debugger", "unpack"}},
	{knowledge.CategoryForensics, []string{"forensic", "pcap", "wireshark", "steg", "memory dump", "metadata", "binwalk", "exif", "volatility"}},
	{knowledge.CategoryOSINT, []string{"osint", "whois", "geolocation", "social media", "recon", "shodan", "dork", "username"}},
}

// ClassifierService assigns a category to a question
type ClassifierService struct {
	rules  []classificationRule
	logger *zap.Logger
}

// NewClassifierService creates a classifier with the built-in rule table
func NewClassifierService(logger *zap.Logger) *ClassifierService {
	return &ClassifierService{
		rules:  classificationRules,
		logger: logger,
	}
}

// Classify returns the first category whose keyword set matches the
// question, or misc when nothing matches. Never fails: every input,
// including the empty string, gets exactly one category.
func (s *ClassifierService) Classify(question string) knowledge.Category {
	lowered := strings.ToLower(question)

	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				s.logger.Debug("question classified",
					zap.String("category", rule.category.String()),
					zap.String("keyword", keyword))
				return rule.category
			}
		}
	}

	return knowledge.CategoryMisc
}
