package enums

import "fmt"

// EventStatus 表示活动（工作坊/线上讲座/实地参观）的生命周期状态。
// - 状态机: Upcoming -> Completed (时间驱动), Upcoming -> Cancelled (组织者操作)。
// - 注意: “已满 (Full)” 不是持久化状态，它由 participant_count 与 max_participants
//   在读取/报名时实时推导，绝不落库。
type EventStatus int

const (
	EventUpcoming  EventStatus = 0 // 未开始
	EventCancelled EventStatus = 1 // 已取消
	EventCompleted EventStatus = 2 // 已结束
)

// IsValid 校验活动状态是否在已定义范围内。
func (s EventStatus) IsValid() bool {
	switch s {
	case EventUpcoming, EventCancelled, EventCompleted:
		return true
	}
	return false
}

func (s EventStatus) String() string {
	switch s {
	case EventUpcoming:
		return "upcoming"
	case EventCancelled:
		return "cancelled"
	case EventCompleted:
		return "completed"
	default:
		return fmt.Sprintf("event_status(%d)", int(s))
	}
}
