package config

// TrendingConfig 包含趋势标签统计任务相关的配置
type TrendingConfig struct {
	// WindowHours 是统计标签使用量的时间窗口（小时）。
	// 定时任务会统计最近 WindowHours 小时内 post_tags/question_tags 两张
	// 关联表的新增行数作为标签热度分数。为 0 时使用 constant 中的默认值。
	WindowHours int `mapstructure:"windowHours" json:"windowHours" yaml:"windowHours"`

	// Limit 是写入 Redis 榜单的标签数量上限。为 0 时使用默认值。
	Limit int `mapstructure:"limit" json:"limit" yaml:"limit"`
}
