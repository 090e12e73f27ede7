package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// paperIDRegex matches dataset identifiers such as "climate_review_2024".
var paperIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)

// ValidatePaperID validates a paper identifier from a dataset file or the
// command line.
//
// Rules:
//   - No empty IDs
//   - Maximum length of 128 characters
//   - Lowercase letters, digits, underscore, dot and hyphen only
func ValidatePaperID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPaperID, "paper ID cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidPaperID, "paper ID too long (max 128 characters)")
	}
	if !paperIDRegex.MatchString(id) {
		return New(ErrCodeInvalidPaperID, "invalid paper ID: %q", id)
	}
	return nil
}

// ValidateChoice checks that value is one of allowed, ignoring case. code
// selects the error code reported on mismatch.
func ValidateChoice(code Code, kind, value string, allowed ...string) error {
	if value == "" {
		return New(code, "%s cannot be empty", kind)
	}
	if slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, value) }) {
		return nil
	}
	return New(code, "unknown %s %q (want one of: %s)", kind, value, strings.Join(allowed, ", "))
}

// ValidateOutputDir validates a directory that output files will be written
// to. Relative and absolute paths are both accepted.
//
// Rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
