package vo

import (
	"time"

	"github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/community_service/models/entities"
)

// QuestionResponse 问题列表响应
type QuestionResponse struct {
	ID             uint64       `json:"id"`
	Title          string       `json:"title"`
	Status         enums.Status `json:"status"`
	AuthorID       string       `json:"author_id"`
	AuthorUsername string       `json:"author_username"`
	CategoryID     *uint64      `json:"category_id"`
	AnswersCount   int64        `json:"answers_count"` // 聚合层实时统计
	LikesCount     int64        `json:"likes_count"`   // 聚合层实时统计
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// QuestionDetailVO 问题详情响应
type QuestionDetailVO struct {
	QuestionResponse
	Content  string      `json:"content"`
	Category *CategoryVO `json:"category,omitempty"`
	Tags     []TagVO     `json:"tags"`
	Answers  []AnswerVO  `json:"answers,omitempty"`
}

// AnswerVO 回答响应
type AnswerVO struct {
	ID             uint64    `json:"id"`
	QuestionID     uint64    `json:"question_id"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	LikeCount      int64     `json:"like_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListQuestionsPageVO 问题分页响应
type ListQuestionsPageVO struct {
	Questions []*QuestionResponse `json:"questions"`
	Total     int64               `json:"total"`
}

// MapQuestionToResponseVO 将问题实体转换为列表响应 VO，计数字段由调用方填充。
func MapQuestionToResponseVO(q *entities.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:             q.ID,
		Title:          q.Title,
		Status:         q.Status,
		AuthorID:       q.AuthorID,
		AuthorUsername: q.AuthorUsername,
		CategoryID:     q.CategoryID,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

// MapAnswerToVO 将回答实体转换为响应 VO。
func MapAnswerToVO(a *entities.Answer) AnswerVO {
	return AnswerVO{
		ID:             a.ID,
		QuestionID:     a.QuestionID,
		AuthorID:       a.AuthorID,
		AuthorUsername: a.AuthorUsername,
		Content:        a.Content,
		LikeCount:      a.LikeCount,
		CreatedAt:      a.CreatedAt,
	}
}
