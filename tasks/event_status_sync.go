package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// EventStatusSyncTask 负责定时把已过结束时间的活动批量置为已完结。
// 完结是纯时间驱动的状态，没有外部触发点，靠周期扫描收敛。
type EventStatusSyncTask struct {
	eventRepo mysql.EventRepository
	cron      *cron.Cron
	logger    *core.ZapLogger
}

// NewEventStatusSyncTask 初始化并启动活动状态同步定时任务。
func NewEventStatusSyncTask(eventRepo mysql.EventRepository, logger *core.ZapLogger) *EventStatusSyncTask {
	task := &EventStatusSyncTask{
		eventRepo: eventRepo,
		cron:      cron.New(),
		logger:    logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *EventStatusSyncTask) startCronJob() {
	schedule := constant.EventStatusSyncCronSpec
	t.logger.Info("准备启动活动状态同步定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		affected, err := t.eventRepo.CompletePastEvents(ctx, time.Now())
		if err != nil {
			t.logger.Error("批量完结过期活动失败", zap.Error(err))
			return
		}
		if affected > 0 {
			t.logger.Info("过期活动已批量完结", zap.Int64("affected", affected))
		}
	})
	if err != nil {
		t.logger.Fatal("添加活动状态同步 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("活动状态同步定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器，返回的 context 在运行中的任务结束后关闭。
func (t *EventStatusSyncTask) Stop() context.Context {
	t.logger.Info("正在停止活动状态同步定时任务...")
	return t.cron.Stop()
}
