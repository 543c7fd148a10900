package constant

// 服务元信息，用于追踪与日志标识
const (
	ServiceName    = "community-service"
	ServiceVersion = "1.0.0"
)

// 定时任务调度表达式 (robfig/cron V3，分钟级精度)
const (
	// EventStatusSyncCronSpec 活动状态同步任务: 每 5 分钟把已过 EndTime 的
	// Upcoming 活动标记为 Completed。
	EventStatusSyncCronSpec = "*/5 * * * *"

	// TrendingTagsCronSpec 趋势标签缓存刷新任务: 每 10 分钟重算一次时间窗口内
	// 的标签使用量并写入 Redis ZSet。
	TrendingTagsCronSpec = "*/10 * * * *"
)

// 趋势标签默认参数
const (
	// TrendingTagsDefaultWindowHours 统计窗口（小时）
	TrendingTagsDefaultWindowHours = 72

	// TrendingTagsDefaultLimit 榜单长度
	TrendingTagsDefaultLimit = 20
)
