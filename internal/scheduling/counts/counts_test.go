package counts

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTeacherDailyCap(t *testing.T) {
	teacher := uuid.New()
	entries := make([]Entry, 0, 5)
	for i := 0; i < 4; i++ {
		entries = append(entries, Entry{TeacherID: teacher, GroupID: uuid.New(), ClassroomID: uuid.New()})
	}
	candidate := Entry{TeacherID: teacher, GroupID: uuid.New(), ClassroomID: uuid.New()}
	entries = append(entries, candidate)

	messages := Check(entries, candidate, DefaultCaps)
	require.NotEmpty(t, messages)
	assert.True(t, strings.Contains(messages[0], "maximum daily lectures"),
		"expected a maximum daily lectures message, got %v", messages)
}

func TestCheckWithinCapsProducesNoMessages(t *testing.T) {
	candidate := Entry{TeacherID: uuid.New(), GroupID: uuid.New(), ClassroomID: uuid.New()}
	messages := Check([]Entry{candidate}, candidate, DefaultCaps)
	assert.Empty(t, messages)
}
