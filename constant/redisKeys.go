package constant

import "time"

// Redis Key 相关常量 (导出)
const (
	// TrendingTagsRankKey 是趋势标签榜单的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是标签 ID (tagID)，分数是统计窗口内的使用次数。
	// 由定时任务从 MySQL 的关联表统计生成，读取侧在该 Key 缺失时回退到
	// tags.usage_count 的静态计数。
	// Redis 类型: Sorted Set
	// 示例成员与分数: Member="42", Score=17
	TrendingTagsRankKey = "trending_tags_rank"

	// TrendingTagsCacheTTL 榜单快照的过期时间。
	// 略大于刷新周期，刷新任务失联时榜单自动失效并触发数据库回退。
	TrendingTagsCacheTTL = 30 * time.Minute
)
