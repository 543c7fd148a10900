package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
)

// QuestionRepository 定义了问题数据的持久化操作接口
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, db *gorm.DB, question *entities.Question) error
	GetQuestionByID(ctx context.Context, id uint64) (*entities.Question, error)
	UpdateQuestion(ctx context.Context, db *gorm.DB, id uint64, updates map[string]interface{}) error
	UpdateQuestionStatus(ctx context.Context, id uint64, status enums.Status, reason string) error
	DeleteQuestion(ctx context.Context, db *gorm.DB, id uint64) error
	ListQuestions(ctx context.Context, req *dto.ListQuestionsRequest) ([]*entities.Question, int64, error)
}

// AnswerRepository 定义了回答数据的持久化操作接口
type AnswerRepository interface {
	CreateAnswer(ctx context.Context, answer *entities.Answer) error
	GetAnswerByID(ctx context.Context, id uint64) (*entities.Answer, error)

	// ListAnswersByQuestionID 返回某问题的全部回答，按创建时间升序。
	ListAnswersByQuestionID(ctx context.Context, questionID uint64) ([]*entities.Answer, error)

	DeleteAnswer(ctx context.Context, id uint64) error
	DeleteAllForQuestion(ctx context.Context, db *gorm.DB, questionID uint64) error

	// AdjustLikeCount 调整回答上的点赞冗余计数。
	AdjustLikeCount(ctx context.Context, id uint64, delta int64) error
}

type questionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewQuestionRepository 是 questionRepository 的构造函数。
func NewQuestionRepository(db *gorm.DB, logger *core.ZapLogger) QuestionRepository {
	return &questionRepository{db: db, logger: logger}
}

func (r *questionRepository) CreateQuestion(ctx context.Context, db *gorm.DB, question *entities.Question) error {
	if err := db.WithContext(ctx).Create(question).Error; err != nil {
		r.logger.Error("创建问题失败", zap.Error(err))
		return err
	}
	return nil
}

func (r *questionRepository) GetQuestionByID(ctx context.Context, id uint64) (*entities.Question, error) {
	var question entities.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取问题失败", zap.Uint64("questionID", id), zap.Error(err))
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) UpdateQuestion(ctx context.Context, db *gorm.DB, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := db.WithContext(ctx).Model(&entities.Question{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.logger.Error("更新问题失败", zap.Uint64("questionID", id), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *questionRepository) UpdateQuestionStatus(ctx context.Context, id uint64, status enums.Status, reason string) error {
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["audit_reason"] = reason
	}
	res := r.db.WithContext(ctx).Model(&entities.Question{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.logger.Error("更新问题审核状态失败", zap.Uint64("questionID", id), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *questionRepository) DeleteQuestion(ctx context.Context, db *gorm.DB, id uint64) error {
	res := db.WithContext(ctx).Delete(&entities.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *questionRepository) ListQuestions(ctx context.Context, req *dto.ListQuestionsRequest) ([]*entities.Question, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Question{})

	if req.Status != nil {
		query = query.Where("status = ?", *req.Status)
	}
	if req.CategoryID != nil {
		query = query.Where("category_id = ?", *req.CategoryID)
	}
	if req.AuthorID != nil && *req.AuthorID != "" {
		query = query.Where("author_id = ?", *req.AuthorID)
	}
	if req.Keyword != nil && *req.Keyword != "" {
		query = query.Where("title LIKE ?", "%"+*req.Keyword+"%")
	}
	if req.TagID != nil {
		query = query.Where("id IN (?)",
			r.db.Model(&entities.QuestionTag{}).Select("question_id").Where("tag_id = ?", *req.TagID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计问题总数失败", zap.Error(err))
		return nil, 0, err
	}

	var questions []*entities.Question
	offset := (req.Page - 1) * req.PageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(req.PageSize).Find(&questions).Error
	if err != nil {
		r.logger.Error("查询问题列表失败", zap.Error(err))
		return nil, 0, err
	}
	return questions, total, nil
}

type answerRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewAnswerRepository 是 answerRepository 的构造函数。
func NewAnswerRepository(db *gorm.DB, logger *core.ZapLogger) AnswerRepository {
	return &answerRepository{db: db, logger: logger}
}

func (r *answerRepository) CreateAnswer(ctx context.Context, answer *entities.Answer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		r.logger.Error("创建回答失败", zap.Uint64("questionID", answer.QuestionID), zap.Error(err))
		return err
	}
	return nil
}

func (r *answerRepository) GetAnswerByID(ctx context.Context, id uint64) (*entities.Answer, error) {
	var answer entities.Answer
	err := r.db.WithContext(ctx).First(&answer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) ListAnswersByQuestionID(ctx context.Context, questionID uint64) ([]*entities.Answer, error) {
	var answers []*entities.Answer
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		r.logger.Error("查询问题回答列表失败", zap.Uint64("questionID", questionID), zap.Error(err))
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) DeleteAnswer(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&entities.Answer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *answerRepository) DeleteAllForQuestion(ctx context.Context, db *gorm.DB, questionID uint64) error {
	return db.WithContext(ctx).Where("question_id = ?", questionID).Delete(&entities.Answer{}).Error
}

func (r *answerRepository) AdjustLikeCount(ctx context.Context, id uint64, delta int64) error {
	return r.db.WithContext(ctx).Model(&entities.Answer{}).
		Where("id = ? AND like_count + ? >= 0", id, delta).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
}
