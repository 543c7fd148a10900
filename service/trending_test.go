package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

type trendingFixture struct {
	svc   TrendingService
	agg   *fakeAggregateRepo
	tags  *fakeTagRepo
	cache *fakeTrendingCache
}

func newTrendingFixture(t *testing.T, cfg appConfig.TrendingConfig) *trendingFixture {
	f := &trendingFixture{
		agg:   newFakeAggregateRepo(),
		tags:  newFakeTagRepo(),
		cache: newFakeTrendingCache(),
	}
	f.svc = NewTrendingService(f.agg, f.tags, f.cache, cfg, testLogger(t))
	return f
}

func TestGetTrendingTags_ServedFromCache(t *testing.T) {
	f := newTrendingFixture(t, appConfig.TrendingConfig{WindowHours: 24, Limit: 10})
	coffee := f.tags.addTag("coffee", "coffee")
	mbale := f.tags.addTag("mbale", "mbale")
	f.cache.rank = []mysql.TagUsage{{TagID: coffee.ID, Count: 9}, {TagID: mbale.ID, Count: 4}}
	f.cache.getErr = nil

	result, err := f.svc.GetTrendingTags(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "coffee", result[0].Name)
	assert.Equal(t, int64(9), result[0].Score)
	assert.Equal(t, "mbale", result[1].Name)

	// 命中缓存时不回源数据库
	assert.Zero(t, f.agg.usageCalls)
}

func TestGetTrendingTags_CacheMissFallsBackAndBackfills(t *testing.T) {
	f := newTrendingFixture(t, appConfig.TrendingConfig{WindowHours: 24, Limit: 10})
	tag := f.tags.addTag("harvest", "harvest")
	f.agg.usages = []mysql.TagUsage{{TagID: tag.ID, Count: 5}}

	result, err := f.svc.GetTrendingTags(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "harvest", result[0].Name)
	assert.Equal(t, int64(5), result[0].Score)

	// 回源后回填缓存
	assert.Equal(t, 1, f.agg.usageCalls)
	assert.Equal(t, 1, f.cache.refreshCalls)
	assert.Equal(t, f.agg.usages, f.cache.lastRefresh)
}

func TestGetTrendingTags_CacheFailureIsNotFatal(t *testing.T) {
	f := newTrendingFixture(t, appConfig.TrendingConfig{WindowHours: 24, Limit: 10})
	tag := f.tags.addTag("soil", "soil")
	f.agg.usages = []mysql.TagUsage{{TagID: tag.ID, Count: 2}}
	f.cache.getErr = errors.New("connection refused")

	result, err := f.svc.GetTrendingTags(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "soil", result[0].Name)
}

func TestGetTrendingTags_SkipsDeletedTags(t *testing.T) {
	f := newTrendingFixture(t, appConfig.TrendingConfig{WindowHours: 24, Limit: 10})
	alive := f.tags.addTag("alive", "alive")
	f.cache.rank = []mysql.TagUsage{{TagID: alive.ID, Count: 3}, {TagID: 999, Count: 2}}
	f.cache.getErr = nil

	result, err := f.svc.GetTrendingTags(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "alive", result[0].Name)
}

func TestGetTrendingTags_LimitClamped(t *testing.T) {
	f := newTrendingFixture(t, appConfig.TrendingConfig{WindowHours: 24, Limit: 2})
	first := f.tags.addTag("one", "one")
	second := f.tags.addTag("two", "two")
	third := f.tags.addTag("three", "three")
	f.cache.rank = []mysql.TagUsage{
		{TagID: first.ID, Count: 3},
		{TagID: second.ID, Count: 2},
		{TagID: third.ID, Count: 1},
	}
	f.cache.getErr = nil

	// 请求超过配置上限时按上限截断
	result, err := f.svc.GetTrendingTags(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, result, 2)

	// 非法入参回落到默认上限
	result, err = f.svc.GetTrendingTags(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestRefreshTrendingTags(t *testing.T) {
	f := newTrendingFixture(t, appConfig.TrendingConfig{WindowHours: 24, Limit: 10})
	tag := f.tags.addTag("cron", "cron")
	f.agg.usages = []mysql.TagUsage{{TagID: tag.ID, Count: 8}}

	require.NoError(t, f.svc.RefreshTrendingTags(context.Background()))
	assert.Equal(t, 1, f.cache.refreshCalls)
	assert.Equal(t, f.agg.usages, f.cache.lastRefresh)
}
