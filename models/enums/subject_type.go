package enums

import "fmt"

// SubjectType 标识互动信号（点赞/收藏/表态）所指向的内容类型。
// - 点赞、收藏、表态等记录都以 (subject_type, subject_id, user_id) 作为唯一键，
//   因此需要一个稳定的枚举来区分帖子、问题、评论和回答。
type SubjectType int

const (
	SubjectPost     SubjectType = 1 // 帖子
	SubjectQuestion SubjectType = 2 // 问题
	SubjectComment  SubjectType = 3 // 评论
	SubjectAnswer   SubjectType = 4 // 回答
)

// IsValid 校验枚举值是否在已定义范围内。
func (t SubjectType) IsValid() bool {
	switch t {
	case SubjectPost, SubjectQuestion, SubjectComment, SubjectAnswer:
		return true
	}
	return false
}

func (t SubjectType) String() string {
	switch t {
	case SubjectPost:
		return "post"
	case SubjectQuestion:
		return "question"
	case SubjectComment:
		return "comment"
	case SubjectAnswer:
		return "answer"
	default:
		return fmt.Sprintf("subject_type(%d)", int(t))
	}
}
