package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
)

// EventRepository 定义活动与报名数据的持久化操作接口。
//
// 报名是本服务唯一需要悲观锁的写路径: 容量上限必须在“读计数 + 写报名”之间
// 保持一致，否则并发报名会把最后一个名额卖给多个人。实现上在事务内对活动行
// 加排他锁，把容量检查和报名插入序列化；(event_id, user_id) 唯一索引兜底重复报名。
type EventRepository interface {
	// CreateEvent 持久化一个新的活动记录。
	CreateEvent(ctx context.Context, event *entities.Event) error

	// GetEventByID 根据 ID 检索活动。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetEventByID(ctx context.Context, id uint64) (*entities.Event, error)

	// ListEvents 按过滤条件分页查询活动，默认按开始时间升序（最近的活动在前）。
	ListEvents(ctx context.Context, req *dto.ListEventsRequest) ([]*entities.Event, int64, error)

	// UpdateEventStatus 更新活动状态（取消/完结）。
	UpdateEventStatus(ctx context.Context, id uint64, status enums.EventStatus) error

	// CompletePastEvents 把所有已过结束时间、仍为进行中状态的活动批量置为已完结，
	// 返回受影响的行数。由定时任务驱动。
	CompletePastEvents(ctx context.Context, now time.Time) (int64, error)

	// RegisterParticipant 为用户报名活动。容量检查与插入在同一事务内完成:
	// - 活动不存在: commonerrors.ErrRepoNotFound
	// - 活动已取消: myErrors.ErrEventCancelled
	// - 活动已完结: myErrors.ErrEventCompleted
	// - 已报名过:   myErrors.ErrAlreadyRegistered
	// - 名额已满:   myErrors.ErrEventFull
	RegisterParticipant(ctx context.Context, eventID uint64, userID string) (*entities.EventParticipant, error)

	// UnregisterParticipant 取消用户的报名。未报名时静默成功（幂等）。
	UnregisterParticipant(ctx context.Context, eventID uint64, userID string) error

	// GetRegistration 查询用户在某活动的报名记录，未报名返回 (nil, nil)。
	GetRegistration(ctx context.Context, eventID uint64, userID string) (*entities.EventParticipant, error)

	// ListParticipants 返回某活动的全部报名记录，按报名时间升序。
	ListParticipants(ctx context.Context, eventID uint64) ([]*entities.EventParticipant, error)

	// CountParticipants 统计某活动的报名人数。
	CountParticipants(ctx context.Context, eventID uint64) (int64, error)

	// UpdateAttendance 更新某条报名记录的到场状态。
	UpdateAttendance(ctx context.Context, eventID uint64, userID string, attendance enums.AttendanceStatus) error

	// ListRegisteredEventIDs 返回用户报名过的活动ID，按报名时间倒序分页。
	ListRegisteredEventIDs(ctx context.Context, userID string, offset, limit int) ([]uint64, int64, error)
}

type eventRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewEventRepository 是 eventRepository 的构造函数。
func NewEventRepository(db *gorm.DB, logger *core.ZapLogger) EventRepository {
	return &eventRepository{db: db, logger: logger}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetEventByID(ctx context.Context, id uint64) (*entities.Event, error) {
	var event entities.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取活动失败", zap.Uint64("eventID", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListEvents(ctx context.Context, req *dto.ListEventsRequest) ([]*entities.Event, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Event{})

	if req.Status != nil {
		query = query.Where("status = ?", *req.Status)
	}
	if req.CategoryID != nil {
		query = query.Where("category_id = ?", *req.CategoryID)
	}
	if req.OrganizerID != nil {
		query = query.Where("organizer_id = ?", *req.OrganizerID)
	}
	if req.From != nil {
		query = query.Where("start_time >= ?", *req.From)
	}
	if req.To != nil {
		query = query.Where("start_time <= ?", *req.To)
	}
	if req.Keyword != nil && *req.Keyword != "" {
		keyword := "%" + *req.Keyword + "%"
		query = query.Where("title LIKE ? OR location LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计活动总数失败", zap.Error(err))
		return nil, 0, err
	}

	var events []*entities.Event
	offset := int((req.Page - 1) * req.PageSize)
	err := query.Order("start_time ASC").Offset(offset).Limit(int(req.PageSize)).Find(&events).Error
	if err != nil {
		r.logger.Error("查询活动列表失败", zap.Error(err))
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) UpdateEventStatus(ctx context.Context, id uint64, status enums.EventStatus) error {
	res := r.db.WithContext(ctx).Model(&entities.Event{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *eventRepository) CompletePastEvents(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Event{}).
		Where("status = ? AND end_time < ?", enums.EventUpcoming, now).
		Update("status", enums.EventCompleted)
	if res.Error != nil {
		r.logger.Error("批量完结过期活动失败", zap.Error(res.Error))
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *eventRepository) RegisterParticipant(ctx context.Context, eventID uint64, userID string) (*entities.EventParticipant, error) {
	var participant *entities.EventParticipant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 锁住活动行。后续的计数和插入在锁保护下进行，
		//    并发报名同一活动的事务在这里排队。
		var event entities.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return commonerrors.ErrRepoNotFound
			}
			return err
		}

		// 2. 状态校验: 取消和完结的活动都不接受报名。
		switch event.Status {
		case enums.EventCancelled:
			return myErrors.ErrEventCancelled
		case enums.EventCompleted:
			return myErrors.ErrEventCompleted
		}

		// 3. 重复报名校验。
		var existing int64
		if err := tx.Model(&entities.EventParticipant{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return myErrors.ErrAlreadyRegistered
		}

		// 4. 容量校验。MaxParticipants 为 NULL 表示不限名额。
		if event.MaxParticipants != nil {
			var count int64
			if err := tx.Model(&entities.EventParticipant{}).
				Where("event_id = ?", eventID).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(*event.MaxParticipants) {
				return myErrors.ErrEventFull
			}
		}

		// 5. 插入报名记录。唯一索引兜底步骤3漏掉的并发重复。
		record := &entities.EventParticipant{
			EventID:    eventID,
			UserID:     userID,
			Attendance: enums.AttendanceRegistered,
		}
		if err := tx.Create(record).Error; err != nil {
			if isDuplicateKeyError(err) {
				return myErrors.ErrAlreadyRegistered
			}
			return err
		}
		participant = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.logger.Info("用户报名活动成功", zap.Uint64("eventID", eventID), zap.String("userID", userID))
	return participant, nil
}

func (r *eventRepository) UnregisterParticipant(ctx context.Context, eventID uint64, userID string) error {
	// 硬删除，名额立即释放；记录不存在时 RowsAffected 为 0，按幂等成功处理。
	return r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entities.EventParticipant{}).Error
}

func (r *eventRepository) GetRegistration(ctx context.Context, eventID uint64, userID string) (*entities.EventParticipant, error) {
	var participant entities.EventParticipant
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *eventRepository) ListParticipants(ctx context.Context, eventID uint64) ([]*entities.EventParticipant, error) {
	var participants []*entities.EventParticipant
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("registered_at ASC").
		Find(&participants).Error
	if err != nil {
		r.logger.Error("查询活动报名列表失败", zap.Uint64("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return participants, nil
}

func (r *eventRepository) CountParticipants(ctx context.Context, eventID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.EventParticipant{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *eventRepository) UpdateAttendance(ctx context.Context, eventID uint64, userID string, attendance enums.AttendanceStatus) error {
	res := r.db.WithContext(ctx).Model(&entities.EventParticipant{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Update("attendance", attendance)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *eventRepository) ListRegisteredEventIDs(ctx context.Context, userID string, offset, limit int) ([]uint64, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.EventParticipant{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint64
	err := query.Order("registered_at DESC").Offset(offset).Limit(limit).Pluck("event_id", &ids).Error
	if err != nil {
		r.logger.Error("查询用户报名活动列表失败", zap.String("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	return ids, total, nil
}
