package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/community_service/models/enums"
)

// Event 活动实体（线下工作坊、线上讲座、田间参观等）
// - 表名: events
// - 容量约束: event_participants 的行数不得超过 MaxParticipants，
//   该不变量在报名事务中通过行锁强制，详见 repo/mysql/event.go
type Event struct {
	entities.BaseModel

	// 活动标题
	Title string `gorm:"type:varchar(255);not null"`

	// 活动描述
	Description string `gorm:"type:text;not null"`

	// 组织者ID，不透明用户标识
	OrganizerID string `gorm:"type:char(36);not null;index"`

	// 组织者用户名，冗余字段
	OrganizerUsername string `gorm:"type:varchar(50);not null"`

	// 活动地点（线上活动填会议链接说明）
	Location string `gorm:"type:varchar(255)"`

	// 开始/结束时间
	StartTime time.Time `gorm:"not null;index"`
	EndTime   time.Time `gorm:"not null;index"`

	// 最大报名人数
	// - 指针类型: NULL 表示不限名额
	// - “已满”状态永远由报名数与该值实时推导，不落库
	MaxParticipants *int `gorm:"type:int"`

	// 状态: 0=未开始, 1=已取消, 2=已结束
	// - Upcoming -> Completed 由定时任务按 EndTime 驱动
	// - Upcoming -> Cancelled 由组织者操作驱动
	Status enums.EventStatus `gorm:"type:int;default:0;index"`

	// 分类ID，可选
	CategoryID *uint64 `gorm:"type:bigint;index"`

	// 票价（单位: 元）。仅存储展示，支付结算由外部系统负责
	Price float64 `gorm:"type:decimal(10,2);default:0"`

	// 封面图 URL，不透明字符串
	ImageURL string `gorm:"type:varchar(1023)"`
}

// EventParticipant 活动报名记录
// - 表名: event_participants
// - 约束: (event_id, user_id) 复合唯一，同一用户不能重复报名
// - 不嵌入 BaseModel: 取消报名必须硬删除，否则软删除残留会挡住再次报名，
//   且容量统计需要 COUNT(*) 直接反映真实占座数
type EventParticipant struct {
	ID           uint64                 `gorm:"primaryKey;autoIncrement"`
	EventID      uint64                 `gorm:"type:bigint;not null;uniqueIndex:uk_event_user"`
	UserID       string                 `gorm:"type:char(36);not null;uniqueIndex:uk_event_user;index"`
	RegisteredAt time.Time              `gorm:"autoCreateTime"`
	Attendance   enums.AttendanceStatus `gorm:"type:int;default:0"`
}
