package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// QuestionService 定义了问题与回答的核心业务逻辑接口。
// 流程与帖子对称: 标签同事务、创建即送审、删除级联清理。
type QuestionService interface {
	CreateQuestion(ctx context.Context, userID string, req *dto.CreateQuestionRequest) (*vo.QuestionDetailVO, error)
	GetQuestionDetail(ctx context.Context, questionID uint64) (*vo.QuestionDetailVO, error)
	UpdateQuestion(ctx context.Context, userID string, questionID uint64, req *dto.UpdateQuestionRequest) (*vo.QuestionDetailVO, error)
	DeleteQuestion(ctx context.Context, userID string, questionID uint64) error
	ListQuestions(ctx context.Context, req *dto.ListQuestionsRequest) (*vo.ListQuestionsPageVO, error)

	// CreateAnswer 给问题添加回答，并通知提问者。
	CreateAnswer(ctx context.Context, userID string, questionID uint64, req *dto.CreateAnswerRequest) (*vo.AnswerVO, error)

	// DeleteAnswer 删除回答，仅回答作者可操作。
	DeleteAnswer(ctx context.Context, userID string, answerID uint64) error
}

type questionService struct {
	db              *gorm.DB
	questionRepo    mysql.QuestionRepository
	answerRepo      mysql.AnswerRepository
	tagRepo         mysql.TagRepository
	categoryRepo    mysql.CategoryRepository
	likeRepo        mysql.LikeRepository
	bookmarkRepo    mysql.BookmarkRepository
	reactionRepo    mysql.ReactionRepository
	reputationRepo  mysql.ReputationRepository
	aggregateRepo   mysql.AggregateRepository
	notificationSvc NotificationService
	kafkaSvc        *producer.KafkaProducer
	logger          *core.ZapLogger
}

// NewQuestionService 是 questionService 的构造函数。
func NewQuestionService(
	db *gorm.DB,
	questionRepo mysql.QuestionRepository,
	answerRepo mysql.AnswerRepository,
	tagRepo mysql.TagRepository,
	categoryRepo mysql.CategoryRepository,
	likeRepo mysql.LikeRepository,
	bookmarkRepo mysql.BookmarkRepository,
	reactionRepo mysql.ReactionRepository,
	reputationRepo mysql.ReputationRepository,
	aggregateRepo mysql.AggregateRepository,
	notificationSvc NotificationService,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) QuestionService {
	return &questionService{
		db:              db,
		questionRepo:    questionRepo,
		answerRepo:      answerRepo,
		tagRepo:         tagRepo,
		categoryRepo:    categoryRepo,
		likeRepo:        likeRepo,
		bookmarkRepo:    bookmarkRepo,
		reactionRepo:    reactionRepo,
		reputationRepo:  reputationRepo,
		aggregateRepo:   aggregateRepo,
		notificationSvc: notificationSvc,
		kafkaSvc:        kafkaSvc,
		logger:          logger,
	}
}

func (s *questionService) CreateQuestion(ctx context.Context, userID string, req *dto.CreateQuestionRequest) (*vo.QuestionDetailVO, error) {
	question := &entities.Question{
		Title:          req.Title,
		Content:        req.Content,
		AuthorID:       userID,
		AuthorUsername: req.AuthorUsername,
		Status:         commonEnums.Pending,
		CategoryID:     req.CategoryID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.questionRepo.CreateQuestion(ctx, tx, question); err != nil {
			return err
		}
		return s.tagRepo.ReplaceTagSet(ctx, tx, enums.SubjectQuestion, question.ID, req.TagIDs)
	})
	if err != nil {
		s.logger.Error("创建问题事务失败", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("问题创建成功", zap.Uint64("questionID", question.ID), zap.String("userID", userID))
	s.submitForModeration(question)

	return s.GetQuestionDetail(ctx, question.ID)
}

func (s *questionService) submitForModeration(question *entities.Question) {
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := s.kafkaSvc.SendContentPendingModerationEvent(sendCtx, events.ContentData{
			SubjectType: enums.SubjectQuestion,
			SubjectID:   question.ID,
			Title:       question.Title,
			Content:     question.Content,
			AuthorID:    question.AuthorID,
			AuthorName:  question.AuthorUsername,
			CreatedAt:   question.CreatedAt.UnixMilli(),
		})
		if err != nil {
			s.logger.Error("发送问题待审核事件失败", zap.Uint64("questionID", question.ID), zap.Error(err))
		}
	}()
}

func (s *questionService) GetQuestionDetail(ctx context.Context, questionID uint64) (*vo.QuestionDetailVO, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	detail := &vo.QuestionDetailVO{
		QuestionResponse: *vo.MapQuestionToResponseVO(question),
		Content:          question.Content,
	}

	if question.CategoryID != nil {
		if category, catErr := s.categoryRepo.GetCategoryByID(ctx, *question.CategoryID); catErr == nil {
			detail.Category = vo.MapCategoryToVO(category)
		}
	}

	tags, err := s.tagRepo.GetTagsForSubject(ctx, enums.SubjectQuestion, questionID)
	if err != nil {
		return nil, err
	}
	detail.Tags = vo.MapTagsToVOs(tags)

	answers, err := s.answerRepo.ListAnswersByQuestionID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	detail.Answers = make([]vo.AnswerVO, 0, len(answers))
	for _, answer := range answers {
		detail.Answers = append(detail.Answers, vo.MapAnswerToVO(answer))
	}
	detail.AnswersCount = int64(len(answers))

	likeCounts, err := s.aggregateRepo.LikeCountsBySubjectIDs(ctx, enums.SubjectQuestion, []uint64{questionID})
	if err != nil {
		return nil, err
	}
	detail.LikesCount = likeCounts[questionID]
	return detail, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, userID string, questionID uint64, req *dto.UpdateQuestionRequest) (*vo.QuestionDetailVO, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.AuthorID != userID {
		return nil, fmt.Errorf("%w: 只有提问者可以编辑问题", myErrors.ErrForbidden)
	}

	updates := make(map[string]interface{})
	needsModeration := false
	if req.Title != nil && *req.Title != question.Title {
		updates["title"] = *req.Title
		question.Title = *req.Title
		needsModeration = true
	}
	if req.Content != nil && *req.Content != question.Content {
		updates["content"] = *req.Content
		question.Content = *req.Content
		needsModeration = true
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if needsModeration {
		updates["status"] = commonEnums.Pending
		updates["audit_reason"] = nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.questionRepo.UpdateQuestion(ctx, tx, questionID, updates); err != nil {
			return err
		}
		if req.TagIDs != nil {
			return s.tagRepo.ReplaceTagSet(ctx, tx, enums.SubjectQuestion, questionID, *req.TagIDs)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("更新问题事务失败", zap.Uint64("questionID", questionID), zap.Error(err))
		return nil, err
	}

	if needsModeration {
		s.submitForModeration(question)
	}
	return s.GetQuestionDetail(ctx, questionID)
}

func (s *questionService) DeleteQuestion(ctx context.Context, userID string, questionID uint64) error {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question.AuthorID != userID {
		return fmt.Errorf("%w: 只有提问者可以删除问题", myErrors.ErrForbidden)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tagRepo.DeleteAllForSubject(ctx, tx, enums.SubjectQuestion, questionID); err != nil {
			return err
		}
		if err := s.answerRepo.DeleteAllForQuestion(ctx, tx, questionID); err != nil {
			return err
		}
		if err := s.likeRepo.DeleteAllForSubject(ctx, tx, enums.SubjectQuestion, questionID); err != nil {
			return err
		}
		if err := s.bookmarkRepo.DeleteAllForSubject(ctx, tx, enums.SubjectQuestion, questionID); err != nil {
			return err
		}
		if err := s.reactionRepo.DeleteAllForSubject(ctx, tx, enums.SubjectQuestion, questionID); err != nil {
			return err
		}
		return s.questionRepo.DeleteQuestion(ctx, tx, questionID)
	})
	if err != nil {
		s.logger.Error("删除问题事务失败", zap.Uint64("questionID", questionID), zap.Error(err))
		return err
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if sendErr := s.kafkaSvc.SendContentDeletedEvent(sendCtx, enums.SubjectQuestion, questionID); sendErr != nil {
			s.logger.Error("发送内容删除事件失败", zap.Uint64("questionID", questionID), zap.Error(sendErr))
		}
	}()
	return nil
}

func (s *questionService) ListQuestions(ctx context.Context, req *dto.ListQuestionsRequest) (*vo.ListQuestionsPageVO, error) {
	questions, total, err := s.questionRepo.ListQuestions(ctx, req)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(questions))
	for _, question := range questions {
		ids = append(ids, question.ID)
	}
	answerCounts, err := s.aggregateRepo.AnswerCountsByQuestionIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.aggregateRepo.LikeCountsBySubjectIDs(ctx, enums.SubjectQuestion, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*vo.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		item := vo.MapQuestionToResponseVO(question)
		item.AnswersCount = answerCounts[question.ID]
		item.LikesCount = likeCounts[question.ID]
		items = append(items, item)
	}
	return &vo.ListQuestionsPageVO{Questions: items, Total: total}, nil
}

func (s *questionService) CreateAnswer(ctx context.Context, userID string, questionID uint64, req *dto.CreateAnswerRequest) (*vo.AnswerVO, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	answer := &entities.Answer{
		QuestionID:     questionID,
		AuthorID:       userID,
		AuthorUsername: req.AuthorUsername,
		Content:        req.Content,
	}
	if err := s.answerRepo.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}

	if question.AuthorID != userID {
		s.notificationSvc.Notify(ctx, question.AuthorID, constant.NotificationTypeNewAnswer, map[string]interface{}{
			"question_id": questionID,
			"answer_id":   answer.ID,
			"author_id":   userID,
		})
	}
	if repErr := s.reputationRepo.AddPoints(ctx, userID, constant.ReputationPointsAnswerCreated); repErr != nil {
		s.logger.Warn("累加回答者声望失败", zap.String("userID", userID), zap.Error(repErr))
	}

	result := vo.MapAnswerToVO(answer)
	return &result, nil
}

func (s *questionService) DeleteAnswer(ctx context.Context, userID string, answerID uint64) error {
	answer, err := s.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer.AuthorID != userID {
		return fmt.Errorf("%w: 只有回答者本人可以删除回答", myErrors.ErrForbidden)
	}
	return s.answerRepo.DeleteAnswer(ctx, answerID)
}
