package entities

import (
	"time"

	"github.com/Xushengqwer/community_service/models/enums"
)

// 互动信号表（点赞/收藏/表态）的共同设计约束:
// - 不嵌入 BaseModel: 信号行只有“存在=生效”一种生命周期，必须硬删除，
//   软删除残留会让 (subject, user) 唯一索引挡住用户再次点亮。
// - 唯一索引是并发正确性的最终依据: 开关操作的“查-改”两步在并发双击下
//   并不互斥，重复插入由唯一索引拒绝并被上层视为“已存在”，而非错误。

// Like 点赞记录
// - 表名: likes
// - 约束: (subject_type, subject_id, user_id) 复合唯一
type Like struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement"`
	SubjectType enums.SubjectType `gorm:"type:int;not null;uniqueIndex:uk_like_subject_user"`
	SubjectID   uint64            `gorm:"type:bigint;not null;uniqueIndex:uk_like_subject_user"`
	UserID      string            `gorm:"type:char(36);not null;uniqueIndex:uk_like_subject_user;index"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
}

// Bookmark 收藏记录
// - 表名: bookmarks
// - 约束: (subject_type, subject_id, user_id) 复合唯一
type Bookmark struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement"`
	SubjectType enums.SubjectType `gorm:"type:int;not null;uniqueIndex:uk_bookmark_subject_user"`
	SubjectID   uint64            `gorm:"type:bigint;not null;uniqueIndex:uk_bookmark_subject_user"`
	UserID      string            `gorm:"type:char(36);not null;uniqueIndex:uk_bookmark_subject_user;index"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
}

// Reaction 单值表态记录
// - 表名: reactions
// - 与 Like 语义相近但独立建表（产品侧尚未确认两者是否合并，先按原样保留两套）
// - 约束: (subject_type, subject_id, user_id) 复合唯一；设置新表态时覆盖 Type
type Reaction struct {
	ID          uint64             `gorm:"primaryKey;autoIncrement"`
	SubjectType enums.SubjectType  `gorm:"type:int;not null;uniqueIndex:uk_reaction_subject_user"`
	SubjectID   uint64             `gorm:"type:bigint;not null;uniqueIndex:uk_reaction_subject_user"`
	UserID      string             `gorm:"type:char(36);not null;uniqueIndex:uk_reaction_subject_user;index"`
	Type        enums.ReactionType `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time          `gorm:"autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime"`
}

// Reputation 用户声望侧表
// - 表名: reputations
// - 互动服务在内容作者收到点赞/表态时 best-effort 累加，失败不影响主操作
type Reputation struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"type:char(36);not null;uniqueIndex"`
	Points    int64     `gorm:"type:bigint;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
