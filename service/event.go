package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// EventService 定义了活动与报名的核心业务逻辑接口。
//
// 名额控制完全下沉到仓库层的报名事务；服务层负责权限（组织者操作）、
// 通知和展示态（容量状态、报名数）的组装。
type EventService interface {
	// CreateEvent 创建活动。活动不走内容审核，创建即可见。
	CreateEvent(ctx context.Context, organizerID string, req *dto.CreateEventRequest) (*vo.EventVO, error)

	// GetEvent 获取活动详情，附带实时报名数和推导出的容量状态。
	GetEvent(ctx context.Context, eventID uint64) (*vo.EventVO, error)

	// ListEvents 按条件分页查询活动。
	ListEvents(ctx context.Context, req *dto.ListEventsRequest) (*vo.ListEventsPageVO, error)

	// CancelEvent 取消活动，仅组织者可操作；已完结的活动不可取消。
	// 全部已报名用户收到取消通知。
	CancelEvent(ctx context.Context, organizerID string, eventID uint64) error

	// Register 报名活动。满员返回 ErrEventFull，重复报名返回 ErrAlreadyRegistered，
	// 已取消/已完结分别返回 ErrEventCancelled / ErrEventCompleted。
	Register(ctx context.Context, eventID uint64, userID string) (*vo.RegistrationVO, error)

	// Unregister 取消报名，名额立即释放。未报名时幂等成功。
	Unregister(ctx context.Context, eventID uint64, userID string) error

	// GetMyRegistration 查询用户在某活动的报名状态，未报名返回 (nil, nil)。
	GetMyRegistration(ctx context.Context, eventID uint64, userID string) (*vo.RegistrationVO, error)

	// ListParticipants 返回活动的报名名单，仅组织者可查看。
	ListParticipants(ctx context.Context, organizerID string, eventID uint64) ([]*vo.RegistrationVO, error)

	// UpdateAttendance 更新报名者的到场状态，仅组织者可操作。
	UpdateAttendance(ctx context.Context, organizerID string, eventID uint64, req *dto.UpdateAttendanceRequest) error

	// ListMyEvents 分页返回用户报名过的活动。
	ListMyEvents(ctx context.Context, userID string, page, pageSize int) (*vo.ListEventsPageVO, error)
}

type eventService struct {
	eventRepo       mysql.EventRepository
	aggregateRepo   mysql.AggregateRepository
	notificationSvc NotificationService
	logger          *core.ZapLogger
}

// NewEventService 是 eventService 的构造函数。
func NewEventService(
	eventRepo mysql.EventRepository,
	aggregateRepo mysql.AggregateRepository,
	notificationSvc NotificationService,
	logger *core.ZapLogger,
) EventService {
	return &eventService{
		eventRepo:       eventRepo,
		aggregateRepo:   aggregateRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, organizerID string, req *dto.CreateEventRequest) (*vo.EventVO, error) {
	event := &entities.Event{
		Title:             req.Title,
		Description:       req.Description,
		OrganizerID:       organizerID,
		OrganizerUsername: req.OrganizerUsername,
		Location:          req.Location,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		MaxParticipants:   req.MaxParticipants,
		Status:            enums.EventUpcoming,
		CategoryID:        req.CategoryID,
		Price:             req.Price,
		ImageURL:          req.ImageURL,
	}
	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		s.logger.Error("创建活动失败", zap.String("organizerID", organizerID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("活动创建成功", zap.Uint64("eventID", event.ID), zap.String("organizerID", organizerID))
	return vo.MapEventToVO(event, 0), nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID uint64) (*vo.EventVO, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	participants, err := s.eventRepo.CountParticipants(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return vo.MapEventToVO(event, participants), nil
}

func (s *eventService) ListEvents(ctx context.Context, req *dto.ListEventsRequest) (*vo.ListEventsPageVO, error) {
	events, total, err := s.eventRepo.ListEvents(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.buildEventPage(ctx, events, total)
}

// buildEventPage 批量补齐报名数后组装分页响应。
func (s *eventService) buildEventPage(ctx context.Context, events []*entities.Event, total int64) (*vo.ListEventsPageVO, error) {
	ids := make([]uint64, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	counts, err := s.aggregateRepo.ParticipantCountsByEventIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*vo.EventVO, 0, len(events))
	for _, event := range events {
		items = append(items, vo.MapEventToVO(event, counts[event.ID]))
	}
	return &vo.ListEventsPageVO{Events: items, Total: total}, nil
}

func (s *eventService) CancelEvent(ctx context.Context, organizerID string, eventID uint64) error {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != organizerID {
		return fmt.Errorf("%w: 只有组织者可以取消活动", myErrors.ErrForbidden)
	}
	switch event.Status {
	case enums.EventCancelled:
		return nil // 重复取消幂等
	case enums.EventCompleted:
		return myErrors.ErrEventCompleted
	}

	if err := s.eventRepo.UpdateEventStatus(ctx, eventID, enums.EventCancelled); err != nil {
		return err
	}
	s.logger.Info("活动已取消", zap.Uint64("eventID", eventID), zap.String("organizerID", organizerID))

	// 逐一通知已报名用户。通知是尽力而为，失败不回滚取消。
	participants, err := s.eventRepo.ListParticipants(ctx, eventID)
	if err != nil {
		s.logger.Warn("读取报名名单失败，取消通知未发送", zap.Uint64("eventID", eventID), zap.Error(err))
		return nil
	}
	payload := map[string]interface{}{
		"event_id":    eventID,
		"event_title": event.Title,
	}
	for _, participant := range participants {
		s.notificationSvc.Notify(ctx, participant.UserID, constant.NotificationTypeEventCancelled, payload)
	}
	return nil
}

func (s *eventService) Register(ctx context.Context, eventID uint64, userID string) (*vo.RegistrationVO, error) {
	participant, err := s.eventRepo.RegisterParticipant(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	event, eventErr := s.eventRepo.GetEventByID(ctx, eventID)
	if eventErr == nil && event.OrganizerID != userID {
		s.notificationSvc.Notify(ctx, event.OrganizerID, constant.NotificationTypeEventRegistration, map[string]interface{}{
			"event_id": eventID,
			"user_id":  userID,
		})
	}
	return vo.MapParticipantToVO(participant), nil
}

func (s *eventService) Unregister(ctx context.Context, eventID uint64, userID string) error {
	// 活动必须存在，报名记录不必。
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		return err
	}
	return s.eventRepo.UnregisterParticipant(ctx, eventID, userID)
}

func (s *eventService) GetMyRegistration(ctx context.Context, eventID uint64, userID string) (*vo.RegistrationVO, error) {
	participant, err := s.eventRepo.GetRegistration(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	return vo.MapParticipantToVO(participant), nil
}

func (s *eventService) ListParticipants(ctx context.Context, organizerID string, eventID uint64) ([]*vo.RegistrationVO, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizerID {
		return nil, fmt.Errorf("%w: 只有组织者可以查看报名名单", myErrors.ErrForbidden)
	}

	participants, err := s.eventRepo.ListParticipants(ctx, eventID)
	if err != nil {
		return nil, err
	}
	items := make([]*vo.RegistrationVO, 0, len(participants))
	for _, participant := range participants {
		items = append(items, vo.MapParticipantToVO(participant))
	}
	return items, nil
}

func (s *eventService) UpdateAttendance(ctx context.Context, organizerID string, eventID uint64, req *dto.UpdateAttendanceRequest) error {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != organizerID {
		return fmt.Errorf("%w: 只有组织者可以更新到场状态", myErrors.ErrForbidden)
	}
	return s.eventRepo.UpdateAttendance(ctx, eventID, req.UserID, req.Attendance)
}

func (s *eventService) ListMyEvents(ctx context.Context, userID string, page, pageSize int) (*vo.ListEventsPageVO, error) {
	offset := (page - 1) * pageSize
	ids, total, err := s.eventRepo.ListRegisteredEventIDs(ctx, userID, offset, pageSize)
	if err != nil {
		return nil, err
	}

	events := make([]*entities.Event, 0, len(ids))
	for _, id := range ids {
		event, getErr := s.eventRepo.GetEventByID(ctx, id)
		if getErr != nil {
			// 活动被硬清理属于异常数据，跳过不阻塞列表。
			s.logger.Warn("报名记录指向的活动不存在", zap.Uint64("eventID", id))
			continue
		}
		events = append(events, event)
	}
	return s.buildEventPage(ctx, events, total)
}
