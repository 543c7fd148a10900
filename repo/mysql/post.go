package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
)

// PostRepository 定义了帖子数据的持久化操作接口
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - db 参数支持在服务层事务内执行（帖子与标签关联同事务写入）。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据 ID 检索单个帖子。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// UpdatePost 按字段映射部分更新帖子。
	// - updates 的键是数据库列名，只更新出现的键。
	UpdatePost(ctx context.Context, db *gorm.DB, id uint64, updates map[string]interface{}) error

	// UpdatePostStatus 更新帖子的审核状态，审核拒绝时附带原因。
	UpdatePostStatus(ctx context.Context, id uint64, status enums.Status, reason string) error

	// DeletePost 软删除帖子本体。关联数据（标签关联、评论、信号）的级联
	// 由服务层在同一事务内编排。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error

	// ListPosts 按过滤条件分页查询帖子，按创建时间倒序。
	// - TagID 过滤走关联表子查询。
	ListPosts(ctx context.Context, req *dto.ListPostsRequest) ([]*entities.Post, int64, error)

	// GetPostsByIDs 批量检索帖子，保持入参ID的顺序。
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error)
}

type postRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{db: db, logger: logger}
}

func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		r.logger.Error("创建帖子失败", zap.Error(err))
		return fmt.Errorf("创建帖子失败: %w", err)
	}
	return nil
}

func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, db *gorm.DB, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := db.WithContext(ctx).Model(&entities.Post{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.logger.Error("更新帖子失败", zap.Uint64("postID", id), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *postRepository) UpdatePostStatus(ctx context.Context, id uint64, status enums.Status, reason string) error {
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["audit_reason"] = reason
	}
	res := r.db.WithContext(ctx).Model(&entities.Post{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.logger.Error("更新帖子审核状态失败", zap.Uint64("postID", id), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	res := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if res.Error != nil {
		r.logger.Error("删除帖子失败", zap.Uint64("postID", id), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *postRepository) ListPosts(ctx context.Context, req *dto.ListPostsRequest) ([]*entities.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Post{})

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
			r.db.Model(&entities.PostTag{}).Select("post_id").Where("tag_id = ?", *req.TagID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计帖子总数失败", zap.Error(err))
		return nil, 0, err
	}

	var posts []*entities.Post
	offset := (req.Page - 1) * req.PageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(req.PageSize).Find(&posts).Error
	if err != nil {
		r.logger.Error("查询帖子列表失败", zap.Error(err))
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}
	var posts []*entities.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		r.logger.Error("批量获取帖子失败", zap.Error(err))
		return nil, err
	}
	// 数据库 IN 查询不保序，按入参顺序重排。
	byID := make(map[uint64]*entities.Post, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
	}
	ordered := make([]*entities.Post, 0, len(posts))
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			ordered = append(ordered, post)
		}
	}
	return ordered, nil
}
