// Package validation holds the pure input rules for polls. Both poll creation
// and poll update run through CheckPollInput so the two paths cannot drift.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/hermanngumbu/alx-polly/internal/core/domain"
)

const (
	maxQuestionLen = 255
	maxOptionLen   = 100
	minOptions     = 2
)

// CheckPollInput validates and normalizes raw poll input. Blank options are
// dropped before the minimum-options rule is applied, so a form submitted with
// trailing empty fields still passes. On success it returns the trimmed
// question and the filtered, trimmed options; on failure one of the domain
// validation sentinels. No side effects.
func CheckPollInput(question string, options []string) (string, []string, error) {
	question = strings.TrimSpace(question)
	// Bounds count characters, not bytes, so multibyte input is not
	// penalized.
	if question == "" || utf8.RuneCountInString(question) > maxQuestionLen {
		return "", nil, domain.ErrInvalidQuestion
	}

	filtered := make([]string, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		if utf8.RuneCountInString(opt) > maxOptionLen {
			return "", nil, domain.ErrInvalidOptionText
		}
		filtered = append(filtered, opt)
	}

	if len(filtered) < minOptions {
		return "", nil, domain.ErrInsufficientOptions
	}

	return question, filtered, nil
}
