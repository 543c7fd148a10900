package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// ModerationService 定义了审核结果落地的业务逻辑接口。
// 由 Kafka 消费者在收到审核服务的结论后调用，也可由管理端直接调用。
type ModerationService interface {
	// ApplyModerationResult 把审核结论写回内容行，并通知作者。
	// - status 只接受 Approved / Rejected，Rejected 时 reason 记入 audit_reason。
	ApplyModerationResult(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, status commonEnums.Status, reason string) error
}

type moderationService struct {
	postRepo        mysql.PostRepository
	questionRepo    mysql.QuestionRepository
	notificationSvc NotificationService
	logger          *core.ZapLogger
}

// NewModerationService 是 moderationService 的构造函数。
func NewModerationService(
	postRepo mysql.PostRepository,
	questionRepo mysql.QuestionRepository,
	notificationSvc NotificationService,
	logger *core.ZapLogger,
) ModerationService {
	return &moderationService{
		postRepo:        postRepo,
		questionRepo:    questionRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *moderationService) ApplyModerationResult(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, status commonEnums.Status, reason string) error {
	var authorID string
	switch subjectType {
	case enums.SubjectPost:
		post, err := s.postRepo.GetPostByID(ctx, subjectID)
		if err != nil {
			return err
		}
		if err := s.postRepo.UpdatePostStatus(ctx, subjectID, status, reason); err != nil {
			return err
		}
		authorID = post.AuthorID
	case enums.SubjectQuestion:
		question, err := s.questionRepo.GetQuestionByID(ctx, subjectID)
		if err != nil {
			return err
		}
		if err := s.questionRepo.UpdateQuestionStatus(ctx, subjectID, status, reason); err != nil {
			return err
		}
		authorID = question.AuthorID
	default:
		return fmt.Errorf("%w: %s 不参与审核", myErrors.ErrInvalidSubjectType, subjectType)
	}

	s.logger.Info("审核结果已落地",
		zap.String("subjectType", subjectType.String()),
		zap.Uint64("subjectID", subjectID),
		zap.Int("status", int(status)))

	payload := map[string]interface{}{
		"subject_type": subjectType,
		"subject_id":   subjectID,
	}
	switch status {
	case commonEnums.Approved:
		s.notificationSvc.Notify(ctx, authorID, constant.NotificationTypeContentApproved, payload)
	case commonEnums.Rejected:
		payload["reason"] = reason
		s.notificationSvc.Notify(ctx, authorID, constant.NotificationTypeContentRejected, payload)
	}
	return nil
}
