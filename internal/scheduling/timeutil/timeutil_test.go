package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	cases := []struct {
		start, end     string
		step, duration int
		expect         []string
	}{
		{"09:00", "10:30", 30, 30, []string{"09:00", "09:30", "10:00"}},
		{"09:00", "12:00", 30, 90, []string{"09:00", "09:30", "10:00", "10:30"}},
	}
	for _, c := range cases {
		got, err := GenerateSlots(c.start, c.end, c.step, c.duration)
		require.NoError(t, err)
		assert.Equal(t, c.expect, got)
	}
}

func TestEndOf(t *testing.T) {
	assert.Equal(t, "10:30", EndOf("09:00", 90))
	assert.Equal(t, "09:45", EndOf("09:00", 45))
}

func TestEndOfRoundTrip(t *testing.T) {
	start := "09:00"
	duration := 90
	end := EndOf(start, duration)
	endMin, err := ToMinutes(end)
	require.NoError(t, err)
	startMin, err := ToMinutes(start)
	require.NoError(t, err)
	assert.Equal(t, duration, endMin-startMin)
}

func TestOverlapsTouchingBoundaries(t *testing.T) {
	assert.False(t, Overlaps("09:00", "10:00", "10:00", "11:00"),
		"touching intervals should not be reported as overlapping")
}

func TestOverlapsTrue(t *testing.T) {
	assert.True(t, Overlaps("09:00", "10:00", "09:30", "10:30"))
}
