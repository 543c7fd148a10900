package vo

import "github.com/Xushengqwer/community_service/models/entities"

// CategoryVO 分类响应
type CategoryVO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagVO 标签响应
type TagVO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	UsageCount int64  `json:"usage_count"`
}

// TrendingTagVO 趋势标签响应
// - Score 是统计窗口内的使用次数；回退到静态计数时即为 usage_count
type TrendingTagVO struct {
	TagVO
	Score int64 `json:"score"`
}

// MapCategoryToVO 分类实体转响应 VO。
func MapCategoryToVO(c *entities.Category) *CategoryVO {
	if c == nil {
		return nil
	}
	return &CategoryVO{ID: c.ID, Name: c.Name, Color: c.Color}
}

// MapTagsToVOs 标签实体列表转响应 VO 列表。
// 返回空切片而不是 nil，便于前端处理。
func MapTagsToVOs(tags []*entities.Tag) []TagVO {
	vos := make([]TagVO, 0, len(tags))
	for _, t := range tags {
		if t == nil {
			continue
		}
		vos = append(vos, TagVO{ID: t.ID, Name: t.Name, Slug: t.Slug, UsageCount: t.UsageCount})
	}
	return vos
}
