package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/service"
)

// TrendingTagsCacheTask 负责定时重算热门标签榜并刷入 Redis。
// 读接口因此几乎总能命中缓存，回源只发生在冷启动或 Redis 故障后。
type TrendingTagsCacheTask struct {
	trendingSvc service.TrendingService
	cron        *cron.Cron
	logger      *core.ZapLogger
}

// NewTrendingTagsCacheTask 初始化并启动热门标签榜刷新定时任务。
func NewTrendingTagsCacheTask(trendingSvc service.TrendingService, logger *core.ZapLogger) *TrendingTagsCacheTask {
	task := &TrendingTagsCacheTask{
		trendingSvc: trendingSvc,
		cron:        cron.New(),
		logger:      logger,
	}
	task.startCronJob()
	return task
}

func (t *TrendingTagsCacheTask) startCronJob() {
	schedule := constant.TrendingTagsCronSpec
	t.logger.Info("准备启动热门标签榜刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := t.trendingSvc.RefreshTrendingTags(ctx); err != nil {
			t.logger.Error("刷新热门标签榜失败", zap.Error(err))
			return
		}
		t.logger.Info("热门标签榜刷新完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加热门标签榜刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门标签榜刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器。
func (t *TrendingTagsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门标签榜刷新定时任务...")
	return t.cron.Stop()
}
