// Package availability tests a candidate placement against an entity's
// declared availability windows and blackout periods.
package availability

import (
	"campus-core/internal/models"
	"campus-core/internal/scheduling/timeutil"
)

// Entity is the minimal shape the filter needs from a teacher, classroom, or
// student group: its own availability/blackout declarations.
type Entity struct {
	Availability    models.DayIntervals
	BlackoutPeriods models.DayIntervals
}

// Within reports whether [start,end) on day is permitted for entity.
//
//   - An entity with neither availability nor blackout data is unconstrained.
//   - A blackout interval overlapping [start,end) on day always rejects.
//   - When availability is declared, a record must exist for day and at
//     least one of its windows must fully contain [start,end); declaring
//     availability but omitting a day makes the entity unavailable that day.
func Within(entity *Entity, day models.DayOfWeek, start, end string) bool {
	if entity == nil || (len(entity.Availability) == 0 && len(entity.BlackoutPeriods) == 0) {
		return true
	}

	if blackouts, ok := entity.BlackoutPeriods[day]; ok {
		for _, b := range blackouts {
			if timeutil.Overlaps(start, end, b.Start, b.End) {
				return false
			}
		}
	}

	if len(entity.Availability) > 0 {
		windows, ok := entity.Availability[day]
		if !ok {
			return false
		}
		for _, w := range windows {
			if fitsWithin(start, end, w.Start, w.End) {
				return true
			}
		}
		return false
	}

	return true
}

func fitsWithin(start, end, slotStart, slotEnd string) bool {
	startMin, err1 := timeutil.ToMinutes(start)
	endMin, err2 := timeutil.ToMinutes(end)
	slotStartMin, err3 := timeutil.ToMinutes(slotStart)
	slotEndMin, err4 := timeutil.ToMinutes(slotEnd)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return startMin >= slotStartMin && endMin <= slotEndMin
}
