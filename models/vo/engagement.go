package vo

import "time"

// ToggleResultVO 点赞/收藏开关操作的结果
// - Active 是操作之后的最新状态: true=已点亮, false=已熄灭
type ToggleResultVO struct {
	SubjectID uint64 `json:"subject_id"`
	Active    bool   `json:"active"`
}

// ReactionVO 表态响应
type ReactionVO struct {
	SubjectID uint64    `json:"subject_id"`
	Type      string    `json:"type"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationVO 站内通知响应
type NotificationVO struct {
	ID        uint64    `json:"id"`
	Type      string    `json:"type"`
	Payload   string    `json:"payload"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotificationsVO 通知分页响应
type ListNotificationsVO struct {
	Notifications []*NotificationVO `json:"notifications"`
	Total         int64             `json:"total"`
	UnreadCount   int64             `json:"unread_count"`
}
