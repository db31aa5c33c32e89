package conflicts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	t.Run("accepts csv under the size limit", func(t *testing.T) {
		require.NoError(t, ValidateFile(1024, "text/csv"))
	})

	t.Run("accepts plain text with charset parameter", func(t *testing.T) {
		require.NoError(t, ValidateFile(1024, "text/plain; charset=utf-8"))
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		err := ValidateFile(MaxUploadBytes+1, "text/csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file too large")
	})

	t.Run("rejects unrecognized content types", func(t *testing.T) {
		err := ValidateFile(1024, "application/pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
	})

	t.Run("size exactly at the limit passes", func(t *testing.T) {
		require.NoError(t, ValidateFile(MaxUploadBytes, "text/plain"))
	})
}

func TestParseParties_CSV(t *testing.T) {
	content := "Acme Law,Beta Corp\nGamma Partners,\"Delta Holdings\"\n"

	parties := ParseParties(content, "text/csv")

	assert.Equal(t, []string{"Acme Law", "Beta Corp", "Gamma Partners", "Delta Holdings"}, parties)
}

func TestParseParties_Freeform(t *testing.T) {
	content := "- Acme Law\n* Beta Corp\n• Gamma Partners\n1. Delta Holdings\n2) Epsilon Trust\n"

	parties := ParseParties(content, "text/plain")

	assert.Equal(t, []string{"Acme Law", "Beta Corp", "Gamma Partners", "Delta Holdings", "Epsilon Trust"}, parties)
}

func TestParseParties_Deduplication(t *testing.T) {
	content := "Acme Law\nBeta Corp\nAcme Law\nBeta Corp\n"

	parties := ParseParties(content, "text/plain")

	assert.Equal(t, []string{"Acme Law", "Beta Corp"}, parties)
}

func TestParseParties_LengthBounds(t *testing.T) {
	long := strings.Repeat("x", 201)
	ok := strings.Repeat("y", 200)
	content := "A\n" + long + "\n" + ok + "\nAB\n"

	parties := ParseParties(content, "text/plain")

	// single characters and names over 200 characters are dropped
	assert.Equal(t, []string{ok, "AB"}, parties)
}

func TestParseParties_EmptyContent(t *testing.T) {
	assert.Empty(t, ParseParties("", "text/plain"))
	assert.Empty(t, ParseParties("\n\n,,\n", "text/csv"))
}

func TestParseParties_WindowsLineEndings(t *testing.T) {
	content := "Acme Law\r\nBeta Corp\r\n"

	parties := ParseParties(content, "text/csv")

	assert.Equal(t, []string{"Acme Law", "Beta Corp"}, parties)
}
