package enums

// ReactionType 表示用户对内容的单值表态。
// - 与点赞（二元开关）不同，同一 (subject, user) 只允许保留一种表态，
//   设置新表态会覆盖旧表态。
// - 存储为 varchar，便于后续扩展新的表态类型而无需迁移。
type ReactionType string

const (
	ReactionLike    ReactionType = "like"    // 赞同
	ReactionLove    ReactionType = "love"    // 喜爱
	ReactionHelpful ReactionType = "helpful" // 有帮助
)

// IsValid 校验表态类型是否受支持。
func (r ReactionType) IsValid() bool {
	switch r {
	case ReactionLike, ReactionLove, ReactionHelpful:
		return true
	}
	return false
}
