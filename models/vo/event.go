package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// 活动容量展示状态。只在响应里出现，绝不落库。
const (
	CapacityOpen = "open"
	CapacityFull = "full"
)

// EventVO 活动响应
type EventVO struct {
	ID                uint64            `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	OrganizerID       string            `json:"organizer_id"`
	OrganizerUsername string            `json:"organizer_username"`
	Location          string            `json:"location"`
	StartTime         time.Time         `json:"start_time"`
	EndTime           time.Time         `json:"end_time"`
	MaxParticipants   *int              `json:"max_participants"` // null 表示不限名额
	ParticipantsCount int64             `json:"participants_count"`
	CapacityState     string            `json:"capacity_state"` // open / full，读取时推导
	Status            enums.EventStatus `json:"status"`
	CategoryID        *uint64           `json:"category_id"`
	Price             float64           `json:"price"`
	ImageURL          string            `json:"image_url"`
	CreatedAt         time.Time         `json:"created_at"`
}

// ListEventsPageVO 活动分页响应
type ListEventsPageVO struct {
	Events []*EventVO `json:"events"`
	Total  int64      `json:"total"`
}

// RegistrationVO 报名记录响应
type RegistrationVO struct {
	EventID      uint64                 `json:"event_id"`
	UserID       string                 `json:"user_id"`
	RegisteredAt time.Time              `json:"registered_at"`
	Attendance   enums.AttendanceStatus `json:"attendance"`
}

// MapEventToVO 活动实体转响应 VO，报名数由调用方传入（聚合层统计）。
// 容量展示状态在这里统一推导: 无名额上限恒为 open。
func MapEventToVO(e *entities.Event, participants int64) *EventVO {
	capacity := CapacityOpen
	if e.MaxParticipants != nil && participants >= int64(*e.MaxParticipants) {
		capacity = CapacityFull
	}
	return &EventVO{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		OrganizerID:       e.OrganizerID,
		OrganizerUsername: e.OrganizerUsername,
		Location:          e.Location,
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		MaxParticipants:   e.MaxParticipants,
		ParticipantsCount: participants,
		CapacityState:     capacity,
		Status:            e.Status,
		CategoryID:        e.CategoryID,
		Price:             e.Price,
		ImageURL:          e.ImageURL,
		CreatedAt:         e.CreatedAt,
	}
}

// MapParticipantToVO 报名实体转响应 VO。
func MapParticipantToVO(p *entities.EventParticipant) *RegistrationVO {
	if p == nil {
		return nil
	}
	return &RegistrationVO{
		EventID:      p.EventID,
		UserID:       p.UserID,
		RegisteredAt: p.RegisteredAt,
		Attendance:   p.Attendance,
	}
}
