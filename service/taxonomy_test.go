package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/models/dto"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"简单小写", "Coffee", "coffee"},
		{"空格转连字符", "Hello World", "hello-world"},
		{"连续分隔符合并", "Coffee & Tea!!", "coffee-tea"},
		{"首尾分隔符剔除", "  --Organic Farming-- ", "organic-farming"},
		{"数字保留", "2024 Harvest Report", "2024-harvest-report"},
		{"非 ASCII 原样保留", "咖啡豆 烘焙", "咖啡豆-烘焙"},
		{"空串", "", ""},
		{"纯符号", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestCreateTag_GeneratesSlugWhenMissing(t *testing.T) {
	categories := newFakeCategoryRepo()
	tags := newFakeTagRepo()
	svc := NewTaxonomyService(categories, tags, testLogger(t))
	ctx := context.Background()

	tag, err := svc.CreateTag(ctx, &dto.CreateTagRequest{Name: " Weekend Market "})
	require.NoError(t, err)
	assert.Equal(t, "Weekend Market", tag.Name)
	assert.Equal(t, "weekend-market", tag.Slug)
	assert.NotZero(t, tag.ID)

	// 显式 slug 不被覆盖
	tag, err = svc.CreateTag(ctx, &dto.CreateTagRequest{Name: "Another", Slug: "custom-slug"})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", tag.Slug)
}

func TestCreateCategoryAndList(t *testing.T) {
	categories := newFakeCategoryRepo()
	tags := newFakeTagRepo()
	svc := NewTaxonomyService(categories, tags, testLogger(t))
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: " 活动公告 ", Color: "#4CAF50"})
	require.NoError(t, err)
	assert.Equal(t, "活动公告", created.Name)

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}
