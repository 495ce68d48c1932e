package availability

import (
	"testing"

	"campus-core/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWithinUnconstrainedWhenAbsent(t *testing.T) {
	assert.True(t, Within(&Entity{}, models.Monday, "09:00", "10:00"),
		"entity with no availability/blackout data should be unconstrained")
	assert.True(t, Within(nil, models.Monday, "09:00", "10:00"),
		"nil entity should be unconstrained")
}

func TestWithinBlackoutRejects(t *testing.T) {
	e := &Entity{
		BlackoutPeriods: models.DayIntervals{
			models.Monday: {{Start: "09:00", End: "10:00"}},
		},
	}
	assert.False(t, Within(e, models.Monday, "09:30", "10:30"),
		"overlapping blackout interval should reject the placement")
}

func TestWithinAvailabilityDeclaredButMissingDayIsUnavailable(t *testing.T) {
	e := &Entity{
		Availability: models.DayIntervals{
			models.Tuesday: {{Start: "09:00", End: "17:00"}},
		},
	}
	assert.False(t, Within(e, models.Monday, "09:00", "10:00"),
		"availability declared for other days but not this one should be unavailable")
}

func TestWithinAvailabilityMustContainInterval(t *testing.T) {
	e := &Entity{
		Availability: models.DayIntervals{
			models.Monday: {{Start: "09:00", End: "12:00"}},
		},
	}
	assert.True(t, Within(e, models.Monday, "09:00", "10:00"),
		"interval fully inside the availability window should pass")
	assert.False(t, Within(e, models.Monday, "11:30", "12:30"),
		"interval extending past the availability window should fail")
}
