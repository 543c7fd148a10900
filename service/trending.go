package service

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// TrendingService 定义了热门标签榜的业务逻辑接口。
//
// 读路径优先走 Redis 榜单；缓存未命中时回源 MySQL 聚合并顺手回填。
// 定时任务周期性调用 RefreshTrendingTags 保持榜单新鲜。
type TrendingService interface {
	// GetTrendingTags 返回统计窗口内最热的标签，带使用次数。
	// limit <= 0 时使用配置默认值。
	GetTrendingTags(ctx context.Context, limit int) ([]*vo.TrendingTagVO, error)

	// RefreshTrendingTags 重算窗口统计并整体刷新缓存榜单。
	RefreshTrendingTags(ctx context.Context) error
}

type trendingService struct {
	aggregateRepo mysql.AggregateRepository
	tagRepo       mysql.TagRepository
	trendingCache redis.TrendingTagCache
	cfg           appConfig.TrendingConfig
	logger        *core.ZapLogger
}

// NewTrendingService 是 trendingService 的构造函数。
func NewTrendingService(
	aggregateRepo mysql.AggregateRepository,
	tagRepo mysql.TagRepository,
	trendingCache redis.TrendingTagCache,
	cfg appConfig.TrendingConfig,
	logger *core.ZapLogger,
) TrendingService {
	if cfg.WindowHours <= 0 {
		cfg.WindowHours = constant.TrendingTagsDefaultWindowHours
	}
	if cfg.Limit <= 0 {
		cfg.Limit = constant.TrendingTagsDefaultLimit
	}
	return &trendingService{
		aggregateRepo: aggregateRepo,
		tagRepo:       tagRepo,
		trendingCache: trendingCache,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *trendingService) GetTrendingTags(ctx context.Context, limit int) ([]*vo.TrendingTagVO, error) {
	if limit <= 0 || limit > s.cfg.Limit {
		limit = s.cfg.Limit
	}

	usages, err := s.trendingCache.GetRank(ctx, limit)
	if err != nil {
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			// Redis 故障时也回源，榜单是纯加速层。
			s.logger.Warn("读取热门标签榜缓存失败，回源数据库", zap.Error(err))
		}
		usages, err = s.computeUsages(ctx)
		if err != nil {
			return nil, err
		}
		// 回填失败不影响本次响应。
		if refreshErr := s.trendingCache.RefreshRank(ctx, usages); refreshErr != nil {
			s.logger.Warn("回填热门标签榜失败", zap.Error(refreshErr))
		}
		if len(usages) > limit {
			usages = usages[:limit]
		}
	}

	return s.hydrate(ctx, usages)
}

func (s *trendingService) RefreshTrendingTags(ctx context.Context) error {
	usages, err := s.computeUsages(ctx)
	if err != nil {
		return err
	}
	return s.trendingCache.RefreshRank(ctx, usages)
}

func (s *trendingService) computeUsages(ctx context.Context) ([]mysql.TagUsage, error) {
	since := time.Now().Add(-time.Duration(s.cfg.WindowHours) * time.Hour)
	return s.aggregateRepo.TagUsageSince(ctx, since, s.cfg.Limit)
}

// hydrate 用标签元数据填充榜单条目，已被删除的标签跳过。
func (s *trendingService) hydrate(ctx context.Context, usages []mysql.TagUsage) ([]*vo.TrendingTagVO, error) {
	ids := make([]uint64, 0, len(usages))
	for _, usage := range usages {
		ids = append(ids, usage.TagID)
	}
	tags, err := s.tagRepo.GetTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]vo.TagVO, len(tags))
	for _, tag := range tags {
		byID[tag.ID] = vo.TagVO{ID: tag.ID, Name: tag.Name, Slug: tag.Slug, UsageCount: tag.UsageCount}
	}

	result := make([]*vo.TrendingTagVO, 0, len(usages))
	for _, usage := range usages {
		tagVO, ok := byID[usage.TagID]
		if !ok {
			continue
		}
		result = append(result, &vo.TrendingTagVO{TagVO: tagVO, Score: usage.Count})
	}
	return result, nil
}
