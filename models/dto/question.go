package dto

import "github.com/Xushengqwer/go-common/models/enums"

// CreateQuestionRequest 定义了发布问题的请求数据结构
type CreateQuestionRequest struct {
	Title          string   `json:"title" binding:"required,max=255"`
	Content        string   `json:"content" binding:"required"`
	AuthorUsername string   `json:"author_username" binding:"required,max=50"`
	CategoryID     *uint64  `json:"category_id" binding:"omitempty,gt=0"`
	TagIDs         []uint64 `json:"tag_ids" binding:"omitempty,dive,gt=0"`
}

// UpdateQuestionRequest 部分更新问题
// - 字段语义与 UpdatePostRequest 一致: nil 不更新，TagIDs 非 nil 整体替换
type UpdateQuestionRequest struct {
	Title      *string   `json:"title" binding:"omitempty,max=255"`
	Content    *string   `json:"content" binding:"omitempty"`
	CategoryID *uint64   `json:"category_id" binding:"omitempty,gt=0"`
	TagIDs     *[]uint64 `json:"tag_ids" binding:"omitempty,dive,gt=0"`
}

// ListQuestionsRequest 问题列表筛选与分页参数
type ListQuestionsRequest struct {
	Page       int           `form:"page" binding:"required,gte=1"`
	PageSize   int           `form:"page_size" binding:"required,gte=1,lte=100"`
	CategoryID *uint64       `form:"category_id" binding:"omitempty,gt=0"`
	TagID      *uint64       `form:"tag_id" binding:"omitempty,gt=0"`
	AuthorID   *string       `form:"author_id" binding:"omitempty"`
	Keyword    *string       `form:"keyword" binding:"omitempty,max=255"`
	Status     *enums.Status `form:"status" binding:"omitempty"`
}

// CreateAnswerRequest 给问题添加回答
type CreateAnswerRequest struct {
	Content        string `json:"content" binding:"required"`
	AuthorUsername string `json:"author_username" binding:"required,max=50"`
}
