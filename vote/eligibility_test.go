package vote

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCheckEligible(t *testing.T) {
	def, err := NewDefinition(makeTemplate(t))
	require.NoError(t, err)

	start := def.Start()
	end := def.End()

	require.Equal(t, NotYetOpen, def.CheckEligible(start.Add(-time.Second)))
	require.Equal(t, Closed, def.CheckEligible(end.Add(time.Second)))

	// The window is inclusive on both ends.
	require.Equal(t, Eligible, def.CheckEligible(start))
	require.Equal(t, Eligible, def.CheckEligible(end))
	require.Equal(t, Eligible, def.CheckEligible(start.Add(12*time.Hour)))
}

func TestCheckEligible_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))

	tmpl := makeTemplate(t)

	for i := 0; i < 200; i++ {
		zone := time.FixedZone("test", (rnd.Intn(29)-14)*3600)

		start := time.Unix(rnd.Int63n(1<<32), 0).In(zone)
		end := start.Add(time.Duration(rnd.Int63n(int64(365 * 24 * time.Hour))))

		tmpl.Start = start
		tmpl.End = end

		def, err := NewDefinition(tmpl)
		require.NoError(t, err)

		now := start.Add(time.Duration(rnd.Int63n(int64(500 * 24 * time.Hour))) -
			250*24*time.Hour)

		// The clock zone must not influence the outcome.
		other := now.In(time.FixedZone("other", (rnd.Intn(29)-14)*3600))

		expected := Eligible
		if now.Before(start) {
			expected = NotYetOpen
		} else if now.After(end) {
			expected = Closed
		}

		require.Equal(t, expected, def.CheckEligible(now))
		require.Equal(t, expected, def.CheckEligible(other))
	}
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "not yet open", NotYetOpen.String())
	require.Equal(t, "open", Eligible.String())
	require.Equal(t, "closed", Closed.String())
	require.Equal(t, "unknown", Status(99).String())
}
