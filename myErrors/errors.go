package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// 活动报名相关的冲突类错误。
// 服务层通过 errors.Is 识别这些哨兵错误，控制器据此返回可直接展示给用户的提示。
var (
	// ErrAlreadyRegistered 同一用户重复报名同一活动
	ErrAlreadyRegistered = errors.New("event: user already registered")

	// ErrEventFull 活动名额已满
	ErrEventFull = errors.New("event: event is full")

	// ErrEventCancelled 活动已被组织者取消，拒绝报名
	ErrEventCancelled = errors.New("event: event is cancelled")

	// ErrEventCompleted 活动已结束，拒绝报名
	ErrEventCompleted = errors.New("event: event is completed")
)

// 内容与标签相关的校验/冲突错误。
var (
	// ErrUnknownTag 标签集合替换时引用了不存在的标签ID。
	// 按全有或全无策略，出现该错误时不会有任何关联被写入。
	ErrUnknownTag = errors.New("taxonomy: unknown tag id")

	// ErrInvalidSubjectType 互动信号指向了未定义的内容类型
	ErrInvalidSubjectType = errors.New("engagement: invalid subject type")

	// ErrInvalidReactionType 不支持的表态类型
	ErrInvalidReactionType = errors.New("engagement: invalid reaction type")

	// ErrForbidden 操作者不是资源的拥有者/组织者
	ErrForbidden = errors.New("forbidden: not the resource owner")
)
