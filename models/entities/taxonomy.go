package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// Category 内容分类实体
// - 表名: categories
// - 被帖子/问题/活动可选引用；数量少，基本静态
type Category struct {
	entities.BaseModel

	// 分类名，唯一
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`

	// 前端展示用的颜色，十六进制字符串，例如 "#4CAF50"
	Color string `gorm:"type:varchar(20)"`
}

// Tag 标签实体
// - 表名: tags
// - 帖子与问题通过各自的关联表共享同一套标签
type Tag struct {
	entities.BaseModel

	// 标签名，唯一
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`

	// URL 安全的 slug，唯一
	Slug string `gorm:"type:varchar(120);not null;uniqueIndex"`

	// 使用次数冗余计数，由标签集合替换操作在同一事务内维护
	// - 趋势标签在无法做窗口统计时回退读取该字段
	UsageCount int64 `gorm:"type:bigint;default:0"`
}

// PostTag 帖子-标签关联表
// - 表名: post_tags
// - 约束: (post_id, tag_id) 复合唯一，同一帖子不能重复引用同一标签
// - 注意: 不嵌入 BaseModel。关联行只有“存在/不存在”两种状态，必须硬删除，
//   软删除的残留行会让复合唯一索引挡住重新关联。
type PostTag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	PostID    uint64    `gorm:"type:bigint;not null;uniqueIndex:uk_post_tag"`
	TagID     uint64    `gorm:"type:bigint;not null;uniqueIndex:uk_post_tag;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// QuestionTag 问题-标签关联表
// - 表名: question_tags
// - 约束与 PostTag 相同: (question_id, tag_id) 复合唯一，硬删除
type QuestionTag struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	QuestionID uint64    `gorm:"type:bigint;not null;uniqueIndex:uk_question_tag"`
	TagID      uint64    `gorm:"type:bigint;not null;uniqueIndex:uk_question_tag;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
