package vote

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefinition_Render(t *testing.T) {
	def, err := parseDefinition(makeDocument(t, "", ""), "url")
	require.NoError(t, err)

	buffer := bytes.Buffer{}
	def.Render(&buffer)

	out := buffer.String()

	require.Contains(t, out, "Vote abc-123\n")
	require.Contains(t, out, "Open from ")
	require.Contains(t, out, "A second paragraph.")
	require.Contains(t, out, "Ballot options:\n  1. Alice\n  2. Bob\n")

	// Paragraphs are wrapped for display.
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len(line), 80)
	}
}
