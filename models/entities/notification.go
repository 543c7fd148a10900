package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Notification 站内通知实体
// - 表名: notifications
// - 追加写入，唯一允许的变更是翻转已读标记；推送投递由外部系统负责
type Notification struct {
	entities.BaseModel

	// 接收者ID
	UserID string `gorm:"type:char(36);not null;index"`

	// 通知类型，例如 "like" / "comment" / "answer" / "event_cancelled"
	Type string `gorm:"type:varchar(32);not null"`

	// 载荷，JSON 字符串，由产生方决定结构
	Payload string `gorm:"type:text"`

	// 已读标记
	IsRead bool `gorm:"default:false;index"`
}
