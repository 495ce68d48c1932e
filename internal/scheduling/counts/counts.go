// Package counts implements per-day entity caps: given a same-day slate of
// entries plus a candidate, reject any (teacher, group, classroom) whose
// occurrence count exceeds its configured cap.
package counts

import (
	"fmt"

	"github.com/google/uuid"
)

// Caps holds the configured per-day limits. Zero-value Caps is invalid;
// callers should fill in defaults (teacher 4, group 5, classroom 6).
type Caps struct {
	Teacher   int
	Group     int
	Classroom int
}

// DefaultCaps holds the per-day caps used when none are configured.
var DefaultCaps = Caps{Teacher: 4, Group: 5, Classroom: 6}

// Entry is the minimal shape counts needs: the three identifiers a cap is
// tracked against.
type Entry struct {
	TeacherID   uuid.UUID
	GroupID     uuid.UUID
	ClassroomID uuid.UUID
}

// Check counts occurrences of candidate's teacher/group/classroom across
// sameDayEntries (which must already include candidate) and returns one
// message per entity whose count exceeds its cap.
func Check(sameDayEntries []Entry, candidate Entry, caps Caps) []string {
	var (
		teacherCount   int
		groupCount     int
		classroomCount int
	)
	for _, e := range sameDayEntries {
		if e.TeacherID == candidate.TeacherID {
			teacherCount++
		}
		if e.GroupID == candidate.GroupID {
			groupCount++
		}
		if e.ClassroomID == candidate.ClassroomID {
			classroomCount++
		}
	}

	var messages []string
	if teacherCount > caps.Teacher {
		messages = append(messages, fmt.Sprintf("Teacher has exceeded maximum daily lectures (%d)", caps.Teacher))
	}
	if groupCount > caps.Group {
		messages = append(messages, fmt.Sprintf("Student group has exceeded maximum daily lectures (%d)", caps.Group))
	}
	if classroomCount > caps.Classroom {
		messages = append(messages, fmt.Sprintf("Classroom has exceeded maximum daily lectures (%d)", caps.Classroom))
	}
	return messages
}
