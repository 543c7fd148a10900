package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// PostDetailResponseWrapper 对应 response.APIResponse[vo.PostDetailVO]
type PostDetailResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    PostDetailVO `json:"data"`
}

// ListPostsPageResponseWrapper 对应 response.APIResponse[vo.ListPostsPageVO]
type ListPostsPageResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    ListPostsPageVO `json:"data"`
}

// QuestionDetailResponseWrapper 对应 response.APIResponse[vo.QuestionDetailVO]
type QuestionDetailResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    QuestionDetailVO `json:"data"`
}

// ListQuestionsPageResponseWrapper 对应 response.APIResponse[vo.ListQuestionsPageVO]
type ListQuestionsPageResponseWrapper struct {
	Code    int                 `json:"code" example:"0"`
	Message string              `json:"message,omitempty" example:"success"`
	Data    ListQuestionsPageVO `json:"data"`
}

// EventResponseWrapper 对应 response.APIResponse[vo.EventVO]
type EventResponseWrapper struct {
	Code    int     `json:"code" example:"0"`
	Message string  `json:"message,omitempty" example:"success"`
	Data    EventVO `json:"data"`
}

// ListEventsPageResponseWrapper 对应 response.APIResponse[vo.ListEventsPageVO]
type ListEventsPageResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    ListEventsPageVO `json:"data"`
}

// RegistrationResponseWrapper 对应 response.APIResponse[vo.RegistrationVO]
type RegistrationResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    RegistrationVO `json:"data"`
}

// ToggleResultResponseWrapper 对应 response.APIResponse[vo.ToggleResultVO]
type ToggleResultResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    ToggleResultVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
