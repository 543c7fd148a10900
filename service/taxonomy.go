package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// TaxonomyService 定义了分类与标签管理的业务逻辑接口。
type TaxonomyService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error)
	ListCategories(ctx context.Context) ([]*vo.CategoryVO, error)

	// CreateTag 创建标签。Slug 为空时由 Name 自动生成。
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*vo.TagVO, error)
	ListTags(ctx context.Context) ([]vo.TagVO, error)
}

type taxonomyService struct {
	categoryRepo mysql.CategoryRepository
	tagRepo      mysql.TagRepository
	logger       *core.ZapLogger
}

// NewTaxonomyService 是 taxonomyService 的构造函数。
func NewTaxonomyService(categoryRepo mysql.CategoryRepository, tagRepo mysql.TagRepository, logger *core.ZapLogger) TaxonomyService {
	return &taxonomyService{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		logger:       logger,
	}
}

func (s *taxonomyService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error) {
	category := &entities.Category{
		Name:  strings.TrimSpace(req.Name),
		Color: req.Color,
	}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		s.logger.Error("创建分类失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return vo.MapCategoryToVO(category), nil
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]*vo.CategoryVO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]*vo.CategoryVO, 0, len(categories))
	for _, category := range categories {
		vos = append(vos, vo.MapCategoryToVO(category))
	}
	return vos, nil
}

func (s *taxonomyService) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*vo.TagVO, error) {
	name := strings.TrimSpace(req.Name)
	slug := req.Slug
	if slug == "" {
		slug = Slugify(name)
	}

	tag := &entities.Tag{Name: name, Slug: slug}
	if err := s.tagRepo.CreateTag(ctx, tag); err != nil {
		s.logger.Error("创建标签失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &vo.TagVO{ID: tag.ID, Name: tag.Name, Slug: tag.Slug, UsageCount: tag.UsageCount}, nil
}

func (s *taxonomyService) ListTags(ctx context.Context) ([]vo.TagVO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapTagsToVOs(tags), nil
}

// Slugify 把标签名转成 URL 友好的 slug: 小写、字母数字保留、其余合并为单个连字符。
// 非 ASCII 字符（如中文标签名）原样保留，靠唯一索引兜底冲突。
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // 抑制开头的连字符
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
