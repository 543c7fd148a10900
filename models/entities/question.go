package entities

import (
	"database/sql"

	"github.com/Xushengqwer/go-common/models/entities"
	"github.com/Xushengqwer/go-common/models/enums"
)

// Question 问答区的问题实体
// - 表名: questions
// - 与 Post 共享分类/标签/互动体系，但拥有独立的回答子表
type Question struct {
	entities.BaseModel

	// 标题，必填
	Title string `gorm:"type:varchar(255);not null"`

	// 问题描述
	Content string `gorm:"type:text;not null"`

	// 提问者ID，不透明用户标识
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 提问者用户名，冗余字段
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 状态，0=待审核, 1=已审核, 2=拒绝，由审核流水线驱动
	Status enums.Status `gorm:"type:int;default:0"`

	// 分类ID，可选
	CategoryID *uint64 `gorm:"type:bigint;index"`

	// 审核原因
	AuditReason sql.NullString `gorm:"type:varchar(255)"`
}

// Answer 问题的回答实体
// - 表名: answers
// - 与 Question 多对一；不支持对回答的再回复
type Answer struct {
	entities.BaseModel

	// 所属问题ID
	QuestionID uint64 `gorm:"type:bigint;not null;index"`

	// 回答者ID
	AuthorID string `gorm:"type:char(36);not null"`

	// 回答者用户名，冗余字段
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 回答内容
	Content string `gorm:"type:text;not null"`

	// 点赞数冗余计数
	LikeCount int64 `gorm:"type:bigint;default:0"`
}
