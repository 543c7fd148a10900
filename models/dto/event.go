package dto

import (
	"time"

	"github.com/Xushengqwer/community_service/models/enums"
)

// CreateEventRequest 定义了创建活动的请求数据结构
// - OrganizerID 由 context 注入，不在 DTO 中
// - MaxParticipants 为 nil 表示不限名额
type CreateEventRequest struct {
	Title             string    `json:"title" binding:"required,max=255"`
	Description       string    `json:"description" binding:"required"`
	OrganizerUsername string    `json:"organizer_username" binding:"required,max=50"`
	Location          string    `json:"location" binding:"omitempty,max=255"`
	StartTime         time.Time `json:"start_time" binding:"required"`
	EndTime           time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
	MaxParticipants   *int      `json:"max_participants" binding:"omitempty,gte=1"`
	CategoryID        *uint64   `json:"category_id" binding:"omitempty,gt=0"`
	Price             float64   `json:"price" binding:"omitempty,gte=0"` // 仅存储展示，结算在外部系统
	ImageURL          string    `json:"image_url" binding:"omitempty,url|uri,max=1023"`
}

// ListEventsRequest 活动列表筛选与分页参数
type ListEventsRequest struct {
	Page        int                `form:"page" binding:"required,gte=1"`
	PageSize    int                `form:"page_size" binding:"required,gte=1,lte=100"`
	Status      *enums.EventStatus `form:"status" binding:"omitempty"`
	CategoryID  *uint64            `form:"category_id" binding:"omitempty,gt=0"`
	OrganizerID *string            `form:"organizer_id" binding:"omitempty"`
	From        *time.Time         `form:"from" binding:"omitempty"`            // 开始时间下界
	To          *time.Time         `form:"to" binding:"omitempty"`              // 开始时间上界
	Keyword     *string            `form:"keyword" binding:"omitempty,max=255"` // 标题/地点模糊搜索
}

// UpdateAttendanceRequest 更新报名记录的到场状态，由组织者调用
type UpdateAttendanceRequest struct {
	UserID     string                 `json:"user_id" binding:"required"`
	Attendance enums.AttendanceStatus `json:"attendance" binding:"omitempty,oneof=0 1 2"`
}
