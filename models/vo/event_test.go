package vo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

func TestMapEventToVO_CapacityState(t *testing.T) {
	max := 10

	cases := []struct {
		name            string
		maxParticipants *int
		participants    int64
		want            string
	}{
		{"不限名额恒为 open", nil, 100000, CapacityOpen},
		{"有空位为 open", &max, 9, CapacityOpen},
		{"刚好满员为 full", &max, 10, CapacityFull},
		{"超员也是 full", &max, 11, CapacityFull},
		{"零报名为 open", &max, 0, CapacityOpen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := &entities.Event{MaxParticipants: tc.maxParticipants}
			result := MapEventToVO(event, tc.participants)
			assert.Equal(t, tc.want, result.CapacityState)
			assert.Equal(t, tc.participants, result.ParticipantsCount)
		})
	}
}

func TestMapEventToVO_CopiesFields(t *testing.T) {
	max := 1
	categoryID := uint64(7)
	event := &entities.Event{
		Title:           "丰收节工作坊",
		OrganizerID:     "organizer-1",
		MaxParticipants: &max,
		Status:          enums.EventCancelled,
		CategoryID:      &categoryID,
		Price:           25.5,
	}
	event.ID = 3

	result := MapEventToVO(event, 1)
	assert.Equal(t, uint64(3), result.ID)
	assert.Equal(t, "丰收节工作坊", result.Title)
	assert.Equal(t, enums.EventCancelled, result.Status)
	assert.Equal(t, &categoryID, result.CategoryID)
	// 容量推导与生命周期状态相互独立
	assert.Equal(t, CapacityFull, result.CapacityState)
}

func TestMapParticipantToVO_NilSafe(t *testing.T) {
	assert.Nil(t, MapParticipantToVO(nil))

	participant := &entities.EventParticipant{
		EventID:    5,
		UserID:     "user-1",
		Attendance: enums.AttendanceAbsent,
	}
	result := MapParticipantToVO(participant)
	assert.Equal(t, uint64(5), result.EventID)
	assert.Equal(t, enums.AttendanceAbsent, result.Attendance)
}
