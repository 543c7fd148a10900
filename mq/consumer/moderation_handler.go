package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/service"
)

// todo 未配置死信队列

// 审核拒绝原因最长写入 250 字符，超出截断，与数据库列宽对齐。
const maxReasonLength = 250

// --- ApprovedModerationHandler ---

// ApprovedModerationHandler 消费审核通过事件，把对应内容置为已通过。
type ApprovedModerationHandler struct {
	logger            *core.ZapLogger
	moderationService service.ModerationService
}

func NewApprovedModerationHandler(logger *core.ZapLogger, moderationService service.ModerationService) *ApprovedModerationHandler {
	return &ApprovedModerationHandler{
		logger:            logger,
		moderationService: moderationService,
	}
}

func (h *ApprovedModerationHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.ContentApprovedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("ApprovedModerationHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("ApprovedModerationHandler: 收到审核通过消息",
		zap.String("event_id", event.EventID),
		zap.String("subject_type", event.SubjectType.String()),
		zap.Uint64("subject_id", event.SubjectID))

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.moderationService.ApplyModerationResult(updateCtx, event.SubjectType, event.SubjectID, enums.Approved, "")
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 内容在审核期间被删除了，结果作废即可。
			h.logger.Warn("ApprovedModerationHandler: 内容不存在或已删除", zap.Uint64("subject_id", event.SubjectID))
			return nil
		}
		h.logger.Error("ApprovedModerationHandler: 更新内容状态失败", zap.Error(err), zap.Uint64("subject_id", event.SubjectID))
		return fmt.Errorf("ApprovedModerationHandler: 应用审核结果失败: %w", err)
	}
	return nil
}

// --- RejectedModerationHandler ---

// RejectedModerationHandler 消费审核拒绝事件，把对应内容置为已拒绝并记录原因。
type RejectedModerationHandler struct {
	logger            *core.ZapLogger
	moderationService service.ModerationService
}

func NewRejectedModerationHandler(logger *core.ZapLogger, moderationService service.ModerationService) *RejectedModerationHandler {
	return &RejectedModerationHandler{
		logger:            logger,
		moderationService: moderationService,
	}
}

func (h *RejectedModerationHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.ContentRejectedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("RejectedModerationHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil
	}

	reason := event.Reason
	if len(reason) > maxReasonLength {
		reason = reason[:maxReasonLength] + "..."
	}

	h.logger.Info("RejectedModerationHandler: 收到审核拒绝消息",
		zap.String("event_id", event.EventID),
		zap.String("subject_type", event.SubjectType.String()),
		zap.Uint64("subject_id", event.SubjectID),
		zap.String("reason", reason))

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.moderationService.ApplyModerationResult(updateCtx, event.SubjectType, event.SubjectID, enums.Rejected, reason)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("RejectedModerationHandler: 内容不存在或已删除", zap.Uint64("subject_id", event.SubjectID))
			return nil
		}
		h.logger.Error("RejectedModerationHandler: 更新内容状态失败", zap.Error(err), zap.Uint64("subject_id", event.SubjectID))
		return fmt.Errorf("RejectedModerationHandler: 应用审核结果失败: %w", err)
	}
	return nil
}
