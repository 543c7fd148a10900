package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// NotificationRepository 定义了站内通知的持久化操作接口
type NotificationRepository interface {
	// CreateNotification 持久化一条通知。通知是尽力而为的旁路写入，
	// 调用方（服务层）吞掉错误只记日志，不影响主流程。
	CreateNotification(ctx context.Context, notification *entities.Notification) error

	// ListByUser 返回某用户的通知，按创建时间倒序分页，并附带未读总数。
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*entities.Notification, int64, int64, error)

	// MarkRead 把某用户的一条通知置为已读。归属校验在 WHERE 里完成，
	// 不属于该用户的通知表现为未找到。
	MarkRead(ctx context.Context, userID string, id uint64) error

	// MarkAllRead 把某用户的全部未读通知置为已读，返回受影响行数。
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

type notificationRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewNotificationRepository 是 notificationRepository 的构造函数。
func NewNotificationRepository(db *gorm.DB, logger *core.ZapLogger) NotificationRepository {
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		r.logger.Error("创建通知失败",
			zap.String("userID", notification.UserID),
			zap.String("type", notification.Type),
			zap.Error(err))
		return err
	}
	return nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*entities.Notification, int64, int64, error) {
	base := r.db.WithContext(ctx).Model(&entities.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var unread int64
	if err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return nil, 0, 0, err
	}

	var notifications []*entities.Notification
	err := base.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error
	if err != nil {
		r.logger.Error("查询通知列表失败", zap.String("userID", userID), zap.Error(err))
		return nil, 0, 0, err
	}
	return notifications, total, unread, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID string, id uint64) error {
	res := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if res.Error != nil {
		r.logger.Error("批量已读通知失败", zap.String("userID", userID), zap.Error(res.Error))
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
