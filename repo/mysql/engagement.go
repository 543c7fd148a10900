package mysql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// LikeRepository 定义点赞信号的持久化操作接口。
// 信号表没有软删除，唯一索引 (subject_type, subject_id, user_id) 是并发安全的最终依据，
// 应用层的存在性检查只是快路径。
type LikeRepository interface {
	// ToggleLike 切换用户对某内容的点赞状态，返回操作后的状态（true=已点赞）。
	// 并发重复切换最终收敛到单条记录或零条记录，不会报错给调用方。
	ToggleLike(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error)

	// HasLiked 查询用户是否已点赞某内容。
	HasLiked(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error)

	// DeleteAllForSubject 删除某内容的全部点赞记录（内容删除时级联）。
	DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error
}

// BookmarkRepository 定义收藏信号的持久化操作接口，语义与点赞一致。
type BookmarkRepository interface {
	ToggleBookmark(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error)
	HasBookmarked(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error)

	// ListBookmarkedIDs 返回用户收藏的某类内容ID，按收藏时间倒序分页。
	ListBookmarkedIDs(ctx context.Context, subjectType enums.SubjectType, userID string, offset, limit int) ([]uint64, int64, error)

	DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error
}

// ReactionRepository 定义表态反应的持久化操作接口。
// 每个用户对每条内容最多一条反应记录，重复设置覆盖旧值（单值 upsert）。
type ReactionRepository interface {
	// SetReaction 设置或覆盖用户对某内容的反应类型。
	SetReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string, reaction enums.ReactionType) error

	// ClearReaction 清除用户对某内容的反应，记录不存在时静默成功。
	ClearReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) error

	// GetReaction 查询用户对某内容的当前反应，不存在时返回 (nil, nil)。
	GetReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (*entities.Reaction, error)

	// CountReactions 按反应类型统计某内容的反应数量。
	CountReactions(ctx context.Context, subjectType enums.SubjectType, subjectID uint64) (map[enums.ReactionType]int64, error)

	DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error
}

// ReputationRepository 定义用户声望积分的持久化操作接口。
type ReputationRepository interface {
	// AddPoints 为用户累加声望积分，行不存在时自动创建。
	AddPoints(ctx context.Context, userID string, delta int64) error

	// GetPoints 查询用户当前积分，无记录视为 0。
	GetPoints(ctx context.Context, userID string) (int64, error)
}

// isDuplicateKeyError 判断写入是否触碰了唯一索引。
// gorm 开启 TranslateError 后 MySQL 1062 会被翻译成 ErrDuplicatedKey，
// 字符串匹配兜底历史版本的驱动行为。
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}

type likeRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewLikeRepository 是 likeRepository 的构造函数。
func NewLikeRepository(db *gorm.DB, logger *core.ZapLogger) LikeRepository {
	return &likeRepository{db: db, logger: logger}
}

func (r *likeRepository) ToggleLike(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error) {
	// 先删后插: 删到了说明此前是点赞态，本次切换为取消；没删到就插入。
	// 并发双写由唯一索引兜底，冲突按“对方已点亮”处理。
	res := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Delete(&entities.Like{})
	if res.Error != nil {
		r.logger.Error("删除点赞记录失败", zap.Error(res.Error))
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	like := &entities.Like{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		UserID:      userID,
	}
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isDuplicateKeyError(err) {
			return true, nil
		}
		r.logger.Error("插入点赞记录失败", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *likeRepository) HasLiked(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Like{}).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error {
	return db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Delete(&entities.Like{}).Error
}

type bookmarkRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewBookmarkRepository 是 bookmarkRepository 的构造函数。
func NewBookmarkRepository(db *gorm.DB, logger *core.ZapLogger) BookmarkRepository {
	return &bookmarkRepository{db: db, logger: logger}
}

func (r *bookmarkRepository) ToggleBookmark(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Delete(&entities.Bookmark{})
	if res.Error != nil {
		r.logger.Error("删除收藏记录失败", zap.Error(res.Error))
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	bookmark := &entities.Bookmark{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		UserID:      userID,
	}
	if err := r.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		if isDuplicateKeyError(err) {
			return true, nil
		}
		r.logger.Error("插入收藏记录失败", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *bookmarkRepository) HasBookmarked(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Bookmark{}).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *bookmarkRepository) ListBookmarkedIDs(ctx context.Context, subjectType enums.SubjectType, userID string, offset, limit int) ([]uint64, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Bookmark{}).
		Where("subject_type = ? AND user_id = ?", subjectType, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计收藏总数失败", zap.String("userID", userID), zap.Error(err))
		return nil, 0, err
	}

	var ids []uint64
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Pluck("subject_id", &ids).Error
	if err != nil {
		r.logger.Error("查询收藏列表失败", zap.String("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	return ids, total, nil
}

func (r *bookmarkRepository) DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error {
	return db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Delete(&entities.Bookmark{}).Error
}

type reactionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewReactionRepository 是 reactionRepository 的构造函数。
func NewReactionRepository(db *gorm.DB, logger *core.ZapLogger) ReactionRepository {
	return &reactionRepository{db: db, logger: logger}
}

func (r *reactionRepository) SetReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string, reaction enums.ReactionType) error {
	record := &entities.Reaction{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		UserID:      userID,
		Type:        reaction,
	}
	// 单值 upsert: 命中唯一索引时覆盖反应类型而不是报错。
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "subject_type"}, {Name: "subject_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"type":       reaction,
			"updated_at": time.Now(),
		}),
	}).Create(record).Error
	if err != nil {
		r.logger.Error("写入反应记录失败",
			zap.String("subjectType", subjectType.String()),
			zap.Uint64("subjectID", subjectID),
			zap.Error(err))
	}
	return err
}

func (r *reactionRepository) ClearReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) error {
	return r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Delete(&entities.Reaction{}).Error
}

func (r *reactionRepository) GetReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (*entities.Reaction, error) {
	var reaction entities.Reaction
	err := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

func (r *reactionRepository) CountReactions(ctx context.Context, subjectType enums.SubjectType, subjectID uint64) (map[enums.ReactionType]int64, error) {
	type row struct {
		Type  enums.ReactionType
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&entities.Reaction{}).
		Select("type, COUNT(*) AS count").
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[enums.ReactionType]int64, len(rows))
	for _, item := range rows {
		counts[item.Type] = item.Count
	}
	return counts, nil
}

func (r *reactionRepository) DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error {
	return db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Delete(&entities.Reaction{}).Error
}

type reputationRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewReputationRepository 是 reputationRepository 的构造函数。
func NewReputationRepository(db *gorm.DB, logger *core.ZapLogger) ReputationRepository {
	return &reputationRepository{db: db, logger: logger}
}

func (r *reputationRepository) AddPoints(ctx context.Context, userID string, delta int64) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"points": gorm.Expr("points + ?", delta)}),
	}).Create(&entities.Reputation{UserID: userID, Points: delta}).Error
	if err != nil {
		r.logger.Error("累加用户声望失败", zap.String("userID", userID), zap.Error(err))
	}
	return err
}

func (r *reputationRepository) GetPoints(ctx context.Context, userID string) (int64, error) {
	var reputation entities.Reputation
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&reputation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return reputation.Points, nil
}
