package entities

import (
	"database/sql"

	"github.com/Xushengqwer/go-common/models/entities"
	"github.com/Xushengqwer/go-common/models/enums"
)

// Post 社区帖子实体
// - 使用场景: 社区动态/经验分享，支持分类、标签、点赞、收藏、评论
// - 表名: posts (GORM 默认使用结构体名复数形式)
type Post struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，最大长度255个字符
	// - GORM 标签: type:varchar(255) 指定数据库类型，not null 表示非空
	Title string `gorm:"type:varchar(255);not null"`

	// 正文内容，支持多行文本
	// - 类型: text，适合存储较长的帖子内容，保留换行符
	Content string `gorm:"type:text;not null"`

	// 作者ID，来自身份服务的不透明用户标识（UUID，36字符）
	// - 本服务不签发也不校验凭证，只存储网关透传下来的 userID
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 作者用户名，冗余字段，数据来源于用户服务
	// - 设计意图: 列表页直接展示作者信息，避免跨服务调用
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 作者头像 URL，冗余字段，同上
	AuthorAvatar string `gorm:"type:varchar(255)"`

	// 状态，枚举类型：0=待审核, 1=已审核, 2=拒绝
	// - 由内容审核流水线（Kafka 消费者）驱动变更
	Status enums.Status `gorm:"type:int;default:0"`

	// 分类ID，可选，关联 categories 表
	// - 使用指针以区分“未分类”（NULL）和具体分类
	CategoryID *uint64 `gorm:"type:bigint;index"`

	// 配图 URL，不透明字符串
	// - 上传/校验由外部对象存储服务负责，本服务只保存引用
	ImageURL string `gorm:"type:varchar(1023)"`

	// 审核原因，记录审核（特别是拒绝时）的原因
	AuditReason sql.NullString `gorm:"type:varchar(255);comment:审核原因"`
}
