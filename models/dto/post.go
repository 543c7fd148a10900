package dto

import "github.com/Xushengqwer/go-common/models/enums"

// CreatePostRequest 定义了创建帖子的请求数据结构
// - 添加了 binding 标签用于输入验证
// - AuthorID 不在 DTO 中: 由网关透传、UserContextMiddleware 注入 context，
//   控制器取出后作为独立参数传给服务层
type CreatePostRequest struct {
	Title          string   `json:"title" binding:"required,max=255"`              // 帖子标题，必填
	Content        string   `json:"content" binding:"required"`                    // 帖子内容，必填
	AuthorUsername string   `json:"author_username" binding:"required,max=50"`     // 作者用户名，冗余字段，必填
	AuthorAvatar   string   `json:"author_avatar" binding:"omitempty,url|uri"`     // 作者头像 URL，可选
	CategoryID     *uint64  `json:"category_id" binding:"omitempty,gt=0"`          // 分类ID，可选
	ImageURL       string   `json:"image_url" binding:"omitempty,url|uri,max=1023"` // 配图 URL，可选，不透明字符串
	TagIDs         []uint64 `json:"tag_ids" binding:"omitempty,dive,gt=0"`         // 标签ID集合，可选，空集合表示无标签
}

// UpdatePostRequest 定义了部分更新帖子的请求数据结构
// - 所有字段均为指针: nil 表示不更新该字段
// - TagIDs 为 nil 表示保持标签不变；非 nil（含空数组）表示用该集合整体替换
type UpdatePostRequest struct {
	Title      *string   `json:"title" binding:"omitempty,max=255"`
	Content    *string   `json:"content" binding:"omitempty"`
	CategoryID *uint64   `json:"category_id" binding:"omitempty,gt=0"`
	ImageURL   *string   `json:"image_url" binding:"omitempty,url|uri,max=1023"`
	TagIDs     *[]uint64 `json:"tag_ids" binding:"omitempty,dive,gt=0"`
}

// ListPostsRequest 定义了帖子列表的筛选与分页参数
type ListPostsRequest struct {
	Page       int           `form:"page" binding:"required,gte=1"`              // 页码，从1开始
	PageSize   int           `form:"page_size" binding:"required,gte=1,lte=100"` // 每页数量
	CategoryID *uint64       `form:"category_id" binding:"omitempty,gt=0"`       // 按分类筛选，可选
	TagID      *uint64       `form:"tag_id" binding:"omitempty,gt=0"`            // 按标签筛选，可选
	AuthorID   *string       `form:"author_id" binding:"omitempty"`              // 按作者筛选，可选
	Keyword    *string       `form:"keyword" binding:"omitempty,max=255"`        // 标题模糊搜索，可选
	Status     *enums.Status `form:"status" binding:"omitempty"`                 // 按审核状态筛选，可选
}

// CreateCommentRequest 定义了给帖子添加评论的请求数据结构
type CreateCommentRequest struct {
	Content        string `json:"content" binding:"required"`
	AuthorUsername string `json:"author_username" binding:"required,max=50"`
}
