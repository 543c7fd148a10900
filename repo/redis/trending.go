package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// TrendingTagCache 定义了热门标签榜的缓存操作接口。
//
// 榜单由定时任务离线计算后整体刷入 ZSet（member=标签ID, score=窗口内使用次数），
// 读路径只做一次 ZREVRANGE。缓存只是加速层: 未命中时返回 myErrors.ErrCacheMiss，
// 调用方回源 MySQL 聚合并触发回填。
type TrendingTagCache interface {
	// RefreshRank 用最新的统计结果整体替换榜单。
	// 通过临时键 + RENAME 原子切换，刷新期间读请求不会看到半成品榜单。
	RefreshRank(ctx context.Context, usages []mysql.TagUsage) error

	// GetRank 读取榜单前 limit 名。
	// - 键不存在时返回 myErrors.ErrCacheMiss。
	GetRank(ctx context.Context, limit int) ([]mysql.TagUsage, error)
}

type trendingTagCache struct {
	client *redis.Client
	logger *core.ZapLogger
}

// NewTrendingTagCache 是 trendingTagCache 的构造函数。
func NewTrendingTagCache(client *redis.Client, logger *core.ZapLogger) TrendingTagCache {
	return &trendingTagCache{client: client, logger: logger}
}

func (c *trendingTagCache) RefreshRank(ctx context.Context, usages []mysql.TagUsage) error {
	tempKey := constant.TrendingTagsRankKey + ":staging"

	members := make([]redis.Z, 0, len(usages))
	for _, usage := range usages {
		members = append(members, redis.Z{
			Score:  float64(usage.Count),
			Member: strconv.FormatUint(usage.TagID, 10),
		})
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, tempKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, tempKey, members...)
		pipe.Expire(ctx, tempKey, constant.TrendingTagsCacheTTL)
		pipe.Rename(ctx, tempKey, constant.TrendingTagsRankKey)
	} else {
		// 窗口内没有任何标签使用，清掉旧榜单即可。
		pipe.Del(ctx, constant.TrendingTagsRankKey)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Error("刷新热门标签榜失败", zap.Error(err))
		return fmt.Errorf("刷新热门标签榜失败: %w", err)
	}

	c.logger.Info("热门标签榜已刷新", zap.Int("entries", len(members)))
	return nil
}

func (c *trendingTagCache) GetRank(ctx context.Context, limit int) ([]mysql.TagUsage, error) {
	exists, err := c.client.Exists(ctx, constant.TrendingTagsRankKey).Result()
	if err != nil {
		c.logger.Error("检查热门标签榜键失败", zap.Error(err))
		return nil, err
	}
	if exists == 0 {
		return nil, myErrors.ErrCacheMiss
	}

	members, err := c.client.ZRevRangeWithScores(ctx, constant.TrendingTagsRankKey, 0, int64(limit-1)).Result()
	if err != nil {
		c.logger.Error("读取热门标签榜失败", zap.Error(err))
		return nil, err
	}

	usages := make([]mysql.TagUsage, 0, len(members))
	for _, member := range members {
		raw, ok := member.Member.(string)
		if !ok {
			continue
		}
		tagID, parseErr := strconv.ParseUint(raw, 10, 64)
		if parseErr != nil {
			c.logger.Warn("热门标签榜出现非法成员，已跳过", zap.Any("member", member.Member))
			continue
		}
		usages = append(usages, mysql.TagUsage{TagID: tagID, Count: int64(member.Score)})
	}
	return usages, nil
}
