package service

import (
	"context"
	"encoding/json"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// NotificationService 定义了站内通知的业务逻辑接口。
//
// Notify 供其他服务在业务动作完成后调用，是尽力而为的旁路写入:
// 通知写失败只记日志，绝不让点赞/评论/报名的主流程失败。
type NotificationService interface {
	// Notify 给 userID 投递一条 notifType 类型的通知，payload 会被序列化为 JSON。
	// 永远返回成功语义（无返回值），失败在内部消化。
	Notify(ctx context.Context, userID string, notifType string, payload map[string]interface{})

	// ListNotifications 分页返回用户的通知和未读总数。
	ListNotifications(ctx context.Context, userID string, page, pageSize int) (*vo.ListNotificationsVO, error)

	// MarkRead 把用户的一条通知置为已读。
	MarkRead(ctx context.Context, userID string, id uint64) error

	// MarkAllRead 把用户的全部未读通知置为已读。
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationService struct {
	notificationRepo mysql.NotificationRepository
	logger           *core.ZapLogger
}

// NewNotificationService 是 notificationService 的构造函数。
func NewNotificationService(notificationRepo mysql.NotificationRepository, logger *core.ZapLogger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, userID string, notifType string, payload map[string]interface{}) {
	if userID == "" {
		return
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("序列化通知载荷失败", zap.String("type", notifType), zap.Error(err))
		return
	}

	notification := &entities.Notification{
		UserID:  userID,
		Type:    notifType,
		Payload: string(payloadBytes),
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		// 仓库层已记录细节，这里只补业务上下文。
		s.logger.Warn("投递站内通知失败，已忽略",
			zap.String("userID", userID),
			zap.String("type", notifType))
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, page, pageSize int) (*vo.ListNotificationsVO, error) {
	offset := (page - 1) * pageSize
	notifications, total, unread, err := s.notificationRepo.ListByUser(ctx, userID, offset, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*vo.NotificationVO, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, &vo.NotificationVO{
			ID:        n.ID,
			Type:      n.Type,
			Payload:   n.Payload,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return &vo.ListNotificationsVO{
		Notifications: items,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, id uint64) error {
	return s.notificationRepo.MarkRead(ctx, userID, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	affected, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return err
	}
	s.logger.Debug("批量已读通知完成", zap.String("userID", userID), zap.Int64("affected", affected))
	return nil
}
