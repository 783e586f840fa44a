package utils

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

var (
	// invalidCharsPattern includes ASCII control characters (0-31) and Windows-restricted characters: < > : " / \ | ? *.
	//nolint:gochecknoglobals // This is an immutable, pre-compiled regex pattern used as a constant.
	invalidCharsPattern = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

	// textContentTypePatterns matches content types considered text-based,
	// which is what decides whether HTTP response bodies are dumped to the debug log.
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
	}
)

// SanitizeFilename replaces characters that are invalid in file names
// on common filesystems with underscores and trims surrounding spaces.
func SanitizeFilename(name string) string {
	sanitized := invalidCharsPattern.ReplaceAllString(name, "_")

	return strings.TrimSpace(sanitized)
}

// ReadUniqueLinesFromFile reads a newline-delimited list from the given path.
// Lines are trimmed, blank lines are dropped, and duplicates are removed
// while preserving first-seen order.
func ReadUniqueLinesFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	defer file.Close()

	var (
		seen  = make(map[string]struct{})
		lines []string
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if _, ok := seen[line]; ok {
			continue
		}

		seen[line] = struct{}{}

		lines = append(lines, line)
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	return lines, nil
}

// ExtractNamedGroup returns the value of the named capture group from the
// first match of the pattern in the input, or an empty string if the pattern
// does not match.
func ExtractNamedGroup(re *regexp.Regexp, groupName, input string) string {
	match := re.FindStringSubmatch(input)
	if match == nil {
		return ""
	}

	for i, name := range re.SubexpNames() {
		if name == groupName && i < len(match) {
			return match[i]
		}
	}

	return ""
}

// IsTextContentType reports whether the given Content-Type header value
// describes a text-based payload.
func IsTextContentType(contentType string) bool {
	mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	for _, pattern := range textContentTypePatterns {
		if pattern.MatchString(mediaType) {
			return true
		}
	}

	return false
}

// StartTimer begins a scoped duration measurement. The returned function
// reports the elapsed time since the call to StartTimer.
func StartTimer() func() time.Duration {
	start := time.Now()

	return func() time.Duration {
		return time.Since(start)
	}
}
