package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Comment 帖子评论实体
// - 表名: comments
// - 关系: 与 Post 多对一，通过 PostID 外键关联；不支持嵌套回复
type Comment struct {
	entities.BaseModel

	// 所属帖子ID
	// - index: 按帖子拉取评论列表是热点查询
	PostID uint64 `gorm:"type:bigint;not null;index"`

	// 作者ID，不透明用户标识
	AuthorID string `gorm:"type:char(36);not null"`

	// 作者用户名，冗余字段
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 评论内容
	Content string `gorm:"type:text;not null"`

	// 点赞数冗余计数，互动服务在点赞开关成功后 best-effort 维护
	LikeCount int64 `gorm:"type:bigint;default:0"`
}
