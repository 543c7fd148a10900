package events

import (
	"time"

	"github.com/Xushengqwer/community_service/models/enums"
)

// 内容审核流水线的 Kafka 事件结构。
// 帖子与问题共用同一套事件，通过 SubjectType 区分；审核服务消费
// ContentPendingModerationEvent，并把结果写回 approved/rejected 两个主题。

// ContentData 承载待审核内容的核心字段
type ContentData struct {
	SubjectType enums.SubjectType `json:"subject_type"` // post / question
	SubjectID   uint64            `json:"subject_id"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	AuthorID    string            `json:"author_id"`
	AuthorName  string            `json:"author_name"`
	CreatedAt   int64             `json:"created_at"` // UnixMilli
}

// ContentPendingModerationEvent 内容创建后发往审核服务的事件
type ContentPendingModerationEvent struct {
	EventID   string      `json:"event_id"`
	Timestamp time.Time   `json:"timestamp"`
	Subject   ContentData `json:"subject"`
}

// ContentApprovedEvent 审核通过事件
type ContentApprovedEvent struct {
	EventID     string            `json:"event_id"`
	Timestamp   time.Time         `json:"timestamp"`
	SubjectType enums.SubjectType `json:"subject_type"`
	SubjectID   uint64            `json:"subject_id"`
}

// ContentRejectedEvent 审核拒绝事件
// - Reason 会被截断后写入内容行的 audit_reason 字段
type ContentRejectedEvent struct {
	EventID     string            `json:"event_id"`
	Timestamp   time.Time         `json:"timestamp"`
	SubjectType enums.SubjectType `json:"subject_type"`
	SubjectID   uint64            `json:"subject_id"`
	Reason      string            `json:"reason"`
}

// ContentDeletedEvent 内容删除事件，通知下游（如搜索索引）清理数据
type ContentDeletedEvent struct {
	EventID     string            `json:"event_id"`
	Timestamp   time.Time         `json:"timestamp"`
	SubjectType enums.SubjectType `json:"subject_type"`
	SubjectID   uint64            `json:"subject_id"`
}
