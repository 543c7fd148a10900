package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
)

// CategoryRepository 定义了分类数据的持久化操作接口。
type CategoryRepository interface {
	// CreateCategory 持久化一个新的分类记录。
	CreateCategory(ctx context.Context, category *entities.Category) error

	// GetCategoryByID 根据 ID 检索分类。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error)

	// ListCategories 返回全部分类。分类数量很小，不做分页。
	ListCategories(ctx context.Context) ([]*entities.Category, error)
}

// TagRepository 定义了标签及其与内容关联关系的持久化操作接口。
// 标签关联是典型的多对多集合，接口语义以“集合替换”为核心:
// 调用方给出目标集合，仓库负责算差集并让最终状态精确等于目标集合。
type TagRepository interface {
	// CreateTag 持久化一个新的标签记录。
	CreateTag(ctx context.Context, tag *entities.Tag) error

	// GetTagByID 根据 ID 检索标签。
	GetTagByID(ctx context.Context, id uint64) (*entities.Tag, error)

	// GetTagsByIDs 批量检索标签，结果顺序不保证。
	GetTagsByIDs(ctx context.Context, ids []uint64) ([]*entities.Tag, error)

	// ListTags 返回全部标签，按使用次数降序。
	ListTags(ctx context.Context) ([]*entities.Tag, error)

	// ReplaceTagSet 把指定内容的标签关联整体替换为 tagIDs（顺序无关）。
	// - 语义是集合替换: 不在新集合中的旧关联被删除，新增的被插入，已存在的不动，
	//   因此不会出现“先全删再全插”期间的空窗，也不会破坏复合唯一约束的幂等性。
	// - tagIDs 可以为空，表示清空全部关联。
	// - 引用了不存在的标签ID时返回包装后的 myErrors.ErrUnknownTag，且不写入任何关联
	//   （全有或全无）。
	// - 同一事务内维护 tags.usage_count 冗余计数。
	// - db 参数是执行操作的数据库句柄，调用方传入事务对象 tx 以便与内容行的
	//   插入/更新共享同一个事务。
	ReplaceTagSet(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64, tagIDs []uint64) error

	// GetTagsForSubject 返回指定内容当前关联的标签对象集合。
	GetTagsForSubject(ctx context.Context, subjectType enums.SubjectType, subjectID uint64) ([]*entities.Tag, error)

	// DeleteAllForSubject 删除指定内容的全部标签关联（内容删除级联的第一步），
	// 并同步扣减 usage_count。
	DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error
}

type categoryRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCategoryRepository 是 categoryRepository 的构造函数。
func NewCategoryRepository(db *gorm.DB, logger *core.ZapLogger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取分类失败", zap.Uint64("categoryID", id), zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		r.logger.Error("获取分类列表失败", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

type tagRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTagRepository 是 tagRepository 的构造函数。
func NewTagRepository(db *gorm.DB, logger *core.ZapLogger) TagRepository {
	return &tagRepository{db: db, logger: logger}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetTagByID(ctx context.Context, id uint64) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取标签失败", zap.Uint64("tagID", id), zap.Error(err))
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetTagsByIDs(ctx context.Context, ids []uint64) ([]*entities.Tag, error) {
	if len(ids) == 0 {
		return []*entities.Tag{}, nil
	}
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		r.logger.Error("批量获取标签失败", zap.Error(err))
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) ListTags(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Order("usage_count DESC").Order("id ASC").Find(&tags).Error; err != nil {
		r.logger.Error("获取标签列表失败", zap.Error(err))
		return nil, err
	}
	return tags, nil
}

// linkColumn 返回 subjectType 对应的关联表模型与外键列名。
// 标签关联目前只对帖子和问题开放。
func linkColumn(subjectType enums.SubjectType) (interface{}, string, error) {
	switch subjectType {
	case enums.SubjectPost:
		return &entities.PostTag{}, "post_id", nil
	case enums.SubjectQuestion:
		return &entities.QuestionTag{}, "question_id", nil
	default:
		return nil, "", fmt.Errorf("%w: %s 不支持标签关联", myErrors.ErrInvalidSubjectType, subjectType)
	}
}

// diffTagSet 计算把 current 关联集合替换为 target 所需的增删差集。
// 两个入参都按集合处理: 重复ID只算一个，顺序无关。replace 完成后剩下的
// 关联恰好等于 target 去重后的集合。
func diffTagSet(current, target []uint64) (toAdd, toRemove []uint64) {
	targetSet := make(map[uint64]struct{}, len(target))
	for _, id := range target {
		targetSet[id] = struct{}{}
	}
	currentSet := make(map[uint64]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	for id := range targetSet {
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if _, ok := targetSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

// ReplaceTagSet 实现标签集合的差量替换。
func (r *tagRepository) ReplaceTagSet(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64, tagIDs []uint64) error {
	model, column, err := linkColumn(subjectType)
	if err != nil {
		return err
	}

	// 1. 先校验所有目标标签都存在，任何未知ID直接失败，不产生部分写入。
	target := make(map[uint64]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		target[id] = struct{}{}
	}
	if len(target) > 0 {
		uniqueIDs := make([]uint64, 0, len(target))
		for id := range target {
			uniqueIDs = append(uniqueIDs, id)
		}
		var found []uint64
		if err := db.WithContext(ctx).Model(&entities.Tag{}).Where("id IN ?", uniqueIDs).Pluck("id", &found).Error; err != nil {
			return fmt.Errorf("校验标签是否存在失败: %w", err)
		}
		if len(found) != len(uniqueIDs) {
			foundSet := make(map[uint64]struct{}, len(found))
			for _, id := range found {
				foundSet[id] = struct{}{}
			}
			var missing []uint64
			for _, id := range uniqueIDs {
				if _, ok := foundSet[id]; !ok {
					missing = append(missing, id)
				}
			}
			// 错误信息逐个列出未知ID，供调用方原样透出给用户。
			return fmt.Errorf("%w: %v", myErrors.ErrUnknownTag, missing)
		}
	}

	// 2. 读出当前关联集合，计算差集。
	var current []uint64
	if err := db.WithContext(ctx).Model(model).Where(column+" = ?", subjectID).Pluck("tag_id", &current).Error; err != nil {
		return fmt.Errorf("读取现有标签关联失败: %w", err)
	}
	toAdd, toRemove := diffTagSet(current, tagIDs)

	// 3. 删除不再需要的关联并扣减 usage_count。
	if len(toRemove) > 0 {
		if err := db.WithContext(ctx).Where(column+" = ? AND tag_id IN ?", subjectID, toRemove).Delete(model).Error; err != nil {
			return fmt.Errorf("删除旧标签关联失败: %w", err)
		}
		if err := db.WithContext(ctx).Model(&entities.Tag{}).
			Where("id IN ? AND usage_count > 0", toRemove).
			UpdateColumn("usage_count", gorm.Expr("usage_count - 1")).Error; err != nil {
			return fmt.Errorf("扣减标签使用计数失败: %w", err)
		}
	}

	// 4. 插入新增关联并累加 usage_count。
	if len(toAdd) > 0 {
		switch subjectType {
		case enums.SubjectPost:
			links := make([]*entities.PostTag, 0, len(toAdd))
			for _, tagID := range toAdd {
				links = append(links, &entities.PostTag{PostID: subjectID, TagID: tagID})
			}
			if err := db.WithContext(ctx).Create(&links).Error; err != nil {
				return fmt.Errorf("插入帖子标签关联失败: %w", err)
			}
		case enums.SubjectQuestion:
			links := make([]*entities.QuestionTag, 0, len(toAdd))
			for _, tagID := range toAdd {
				links = append(links, &entities.QuestionTag{QuestionID: subjectID, TagID: tagID})
			}
			if err := db.WithContext(ctx).Create(&links).Error; err != nil {
				return fmt.Errorf("插入问题标签关联失败: %w", err)
			}
		}
		if err := db.WithContext(ctx).Model(&entities.Tag{}).
			Where("id IN ?", toAdd).
			UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error; err != nil {
			return fmt.Errorf("累加标签使用计数失败: %w", err)
		}
	}

	r.logger.Debug("标签集合替换完成",
		zap.String("subjectType", subjectType.String()),
		zap.Uint64("subjectID", subjectID),
		zap.Int("added", len(toAdd)),
		zap.Int("removed", len(toRemove)),
	)
	return nil
}

func (r *tagRepository) GetTagsForSubject(ctx context.Context, subjectType enums.SubjectType, subjectID uint64) ([]*entities.Tag, error) {
	model, column, err := linkColumn(subjectType)
	if err != nil {
		return nil, err
	}
	var tagIDs []uint64
	if err := r.db.WithContext(ctx).Model(model).Where(column+" = ?", subjectID).Pluck("tag_id", &tagIDs).Error; err != nil {
		r.logger.Error("读取内容标签关联失败",
			zap.String("subjectType", subjectType.String()),
			zap.Uint64("subjectID", subjectID),
			zap.Error(err))
		return nil, err
	}
	return r.GetTagsByIDs(ctx, tagIDs)
}

func (r *tagRepository) DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error {
	// 复用集合替换语义: 目标集合为空即清空全部关联，usage_count 同步回落。
	return r.ReplaceTagSet(ctx, db, subjectType, subjectID, nil)
}
