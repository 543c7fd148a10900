package vo

import (
	"time"

	"github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/community_service/models/entities"
)

// PostResponse 定义了帖子基础信息的响应数据结构（列表页）
type PostResponse struct {
	ID             uint64       `json:"id"`              // 帖子ID
	Title          string       `json:"title"`           // 帖子标题
	Status         enums.Status `json:"status"`          // 帖子状态，0=待审核, 1=已审核, 2=拒绝
	AuthorID       string       `json:"author_id"`       // 作者ID
	AuthorUsername string       `json:"author_username"` // 作者用户名
	AuthorAvatar   string       `json:"author_avatar"`   // 作者头像
	CategoryID     *uint64      `json:"category_id"`     // 分类ID，可能为空
	ImageURL       string       `json:"image_url"`       // 配图 URL
	CommentsCount  int64        `json:"comments_count"`  // 评论数，聚合层实时统计
	LikesCount     int64        `json:"likes_count"`     // 点赞数，聚合层实时统计
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// PostDetailVO 帖子详情页响应，附带解析后的标签/分类对象和评论列表
type PostDetailVO struct {
	PostResponse
	Content  string       `json:"content"`            // 正文
	Category *CategoryVO  `json:"category,omitempty"` // 分类对象，未分类时为空
	Tags     []TagVO      `json:"tags"`               // 标签对象集合，顺序不保证
	Comments []CommentVO  `json:"comments,omitempty"` // 评论列表
	Viewer   *ViewerState `json:"viewer,omitempty"`   // 当前请求用户的互动状态，未登录为空
}

// ViewerState 当前用户与该内容的互动状态
type ViewerState struct {
	Liked      bool   `json:"liked"`
	Bookmarked bool   `json:"bookmarked"`
	Reaction   string `json:"reaction,omitempty"` // 为空表示未表态
}

// CommentVO 评论响应
type CommentVO struct {
	ID             uint64    `json:"id"`
	PostID         uint64    `json:"post_id"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	LikeCount      int64     `json:"like_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListPostsPageVO 帖子分页响应
type ListPostsPageVO struct {
	Posts []*PostResponse `json:"posts"` // 当前页的帖子列表
	Total int64           `json:"total"` // 符合条件的总记录数
}

// MapPostToResponseVO 将帖子实体转换为列表响应 VO，计数字段由调用方填充。
func MapPostToResponseVO(post *entities.Post) *PostResponse {
	return &PostResponse{
		ID:             post.ID,
		Title:          post.Title,
		Status:         post.Status,
		AuthorID:       post.AuthorID,
		AuthorUsername: post.AuthorUsername,
		AuthorAvatar:   post.AuthorAvatar,
		CategoryID:     post.CategoryID,
		ImageURL:       post.ImageURL,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
}

// MapCommentToVO 将评论实体转换为响应 VO。
func MapCommentToVO(c *entities.Comment) CommentVO {
	return CommentVO{
		ID:             c.ID,
		PostID:         c.PostID,
		AuthorID:       c.AuthorID,
		AuthorUsername: c.AuthorUsername,
		Content:        c.Content,
		LikeCount:      c.LikeCount,
		CreatedAt:      c.CreatedAt,
	}
}
