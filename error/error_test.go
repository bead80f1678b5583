package error

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecError(t *testing.T) {
	cause := errors.New("the semicolon is missing")

	dir := t.TempDir()
	path := filepath.Join(dir, "test.ll")
	require.NoError(t, os.WriteFile(path, []byte("S : a\nA : b ;\n"), 0600))

	tests := []struct {
		caption  string
		err      *SpecError
		expected string
	}{
		{
			caption:  "only a cause",
			err:      &SpecError{Cause: cause},
			expected: "error: the semicolon is missing",
		},
		{
			caption: "a source name, a position, and a detail",
			err: &SpecError{
				Cause:      cause,
				Detail:     "A",
				SourceName: "test.ll",
				Row:        2,
				Col:        3,
			},
			expected: "test.ll: 2:3: error: the semicolon is missing: A",
		},
		{
			caption: "the offending line is quoted when the file is readable",
			err: &SpecError{
				Cause:      cause,
				FilePath:   path,
				SourceName: "test.ll",
				Row:        1,
			},
			expected: "test.ll: 1: error: the semicolon is missing\n    S : a",
		},
		{
			caption: "a row beyond the end of the file",
			err: &SpecError{
				Cause:    cause,
				FilePath: path,
				Row:      10,
			},
			expected: "10: error: the semicolon is missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}
