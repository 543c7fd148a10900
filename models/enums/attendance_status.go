package enums

// AttendanceStatus 表示活动报名记录的出席状态。
// - 报名成功时默认为 Registered，活动结束后由组织者标记实际出席情况。
type AttendanceStatus int

const (
	AttendanceRegistered AttendanceStatus = 0 // 已报名
	AttendanceAttended   AttendanceStatus = 1 // 已出席
	AttendanceAbsent     AttendanceStatus = 2 // 未出席
)

// IsValid 校验出席状态是否在已定义范围内。
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceRegistered, AttendanceAttended, AttendanceAbsent:
		return true
	}
	return false
}
