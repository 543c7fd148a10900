package constant

// 站内通知类型。持久化在 notifications.type 列，前端据此渲染文案。
const (
	NotificationTypeNewComment        = "new_comment"        // 帖子收到新评论
	NotificationTypeNewAnswer         = "new_answer"         // 问题收到新回答
	NotificationTypeContentLiked      = "content_liked"      // 内容被点赞
	NotificationTypeEventRegistration = "event_registration" // 活动收到新报名
	NotificationTypeEventCancelled    = "event_cancelled"    // 已报名的活动被取消
	NotificationTypeContentApproved   = "content_approved"   // 内容审核通过
	NotificationTypeContentRejected   = "content_rejected"   // 内容审核被拒
)

// 声望积分规则。积分只增不减，点赞取消时不回收。
const (
	ReputationPointsCommentCreated = 2
	ReputationPointsAnswerCreated  = 3
	ReputationPointsLikeReceived   = 1
)
