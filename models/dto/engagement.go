package dto

import "github.com/Xushengqwer/community_service/models/enums"

// ToggleRequest 点赞/收藏开关请求
// - 同一结构同时服务于 toggleLike 与 toggleBookmark，两者仅表不同
type ToggleRequest struct {
	SubjectType enums.SubjectType `json:"subject_type" binding:"required"`
	SubjectID   uint64            `json:"subject_id" binding:"required,gt=0"`
}

// SetReactionRequest 设置单值表态请求
type SetReactionRequest struct {
	SubjectType enums.SubjectType  `json:"subject_type" binding:"required"`
	SubjectID   uint64             `json:"subject_id" binding:"required,gt=0"`
	Type        enums.ReactionType `json:"type" binding:"required"`
}

// ClearReactionRequest 清除表态请求
type ClearReactionRequest struct {
	SubjectType enums.SubjectType `json:"subject_type" binding:"required"`
	SubjectID   uint64            `json:"subject_id" binding:"required,gt=0"`
}
