package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean name unchanged",
			input:    "some-album",
			expected: "some-album",
		},
		{
			name:     "slashes replaced",
			input:    "AC/DC Live",
			expected: "AC_DC Live",
		},
		{
			name:     "windows restricted characters replaced",
			input:    `what? "is": this*`,
			expected: "what_ _is__ this_",
		},
		{
			name:     "surrounding spaces trimmed",
			input:    "  padded title  ",
			expected: "padded title",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestReadUniqueLinesFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "usernames.txt")
	content := "alpha\n  beta  \n\nalpha\ngamma\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines, err := ReadUniqueLinesFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, lines)
}

func TestReadUniqueLinesFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadUniqueLinesFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestExtractNamedGroup(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`/album/(?P<slug>[^/?#]+)`)

	tests := []struct {
		name     string
		input    string
		group    string
		expected string
	}{
		{
			name:     "match",
			input:    "https://foo.bandcamp.com/album/bar",
			group:    "slug",
			expected: "bar",
		},
		{
			name:     "no match",
			input:    "https://foo.bandcamp.com/merch",
			group:    "slug",
			expected: "",
		},
		{
			name:     "unknown group",
			input:    "https://foo.bandcamp.com/album/bar",
			group:    "missing",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ExtractNamedGroup(pattern, tt.group, tt.input))
		})
	}
}

func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTextContentType("text/html; charset=utf-8"))
	assert.True(t, IsTextContentType("application/json"))
	assert.False(t, IsTextContentType("image/jpeg"))
	assert.False(t, IsTextContentType("application/octet-stream"))
}

func TestStartTimer(t *testing.T) {
	t.Parallel()

	elapsed := StartTimer()
	time.Sleep(10 * time.Millisecond)

	first := elapsed()
	assert.GreaterOrEqual(t, first, 10*time.Millisecond)

	// Calling the stop function again keeps measuring from the same start.
	second := elapsed()
	assert.GreaterOrEqual(t, second, first)
}
