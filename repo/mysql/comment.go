package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// CommentRepository 定义了帖子评论的持久化操作接口
type CommentRepository interface {
	// CreateComment 持久化一条新评论。
	CreateComment(ctx context.Context, comment *entities.Comment) error

	// GetCommentByID 根据 ID 检索评论。
	GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error)

	// ListCommentsByPostID 返回某帖子的全部评论，按创建时间升序。
	ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	// DeleteComment 软删除一条评论。
	DeleteComment(ctx context.Context, id uint64) error

	// DeleteAllForPost 软删除某帖子的全部评论（帖子删除级联）。
	DeleteAllForPost(ctx context.Context, db *gorm.DB, postID uint64) error

	// AdjustLikeCount 调整评论上的点赞冗余计数，delta 为 +1/-1。
	// 计数列只作展示，信号表才是事实来源，这里不会减到负数。
	AdjustLikeCount(ctx context.Context, id uint64, delta int64) error
}

type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{db: db, logger: logger}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		r.logger.Error("创建评论失败", zap.Uint64("postID", comment.PostID), zap.Error(err))
		return err
	}
	return nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取评论失败", zap.Uint64("commentID", id), zap.Error(err))
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		r.logger.Error("查询帖子评论列表失败", zap.Uint64("postID", postID), zap.Error(err))
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&entities.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *commentRepository) DeleteAllForPost(ctx context.Context, db *gorm.DB, postID uint64) error {
	return db.WithContext(ctx).Where("post_id = ?", postID).Delete(&entities.Comment{}).Error
}

func (r *commentRepository) AdjustLikeCount(ctx context.Context, id uint64, delta int64) error {
	return r.db.WithContext(ctx).Model(&entities.Comment{}).
		Where("id = ? AND like_count + ? >= 0", id, delta).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
}
