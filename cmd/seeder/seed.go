package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// seedCategories 是种子分类名与颜色，幂等性由唯一索引兜底（重复执行时报错被忽略）。
var seedCategories = []dto.CreateCategoryRequest{
	{Name: "活动公告", Color: "#4CAF50"},
	{Name: "经验分享", Color: "#2196F3"},
	{Name: "问题求助", Color: "#FF9800"},
	{Name: "闲聊灌水", Color: "#9E9E9E"},
}

var seedTagNames = []string{
	"新手入门", "周末活动", "线上直播", "读书会", "志愿服务",
	"技术交流", "招募队友", "经验总结", "公益", "户外",
}

// Seed 通过服务层填充测试数据: 先建分类和标签，再并发创建帖子与活动。
func Seed(
	ctx context.Context,
	taxonomySvc service.TaxonomyService,
	postSvc service.PostService,
	eventSvc service.EventService,
	logger *core.ZapLogger,
	numPosts int,
	numEvents int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("帖子", numPosts), zap.Int("活动", numEvents))

	// --- 1. 分类与标签（串行，后续数据需要它们的 ID） ---
	var categoryIDs []uint64
	for _, req := range seedCategories {
		reqCopy := req
		category, err := taxonomySvc.CreateCategory(ctx, &reqCopy)
		if err != nil {
			logger.Warn("创建分类失败（可能已存在）", zap.String("name", req.Name), zap.Error(err))
			continue
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	var tagIDs []uint64
	for _, name := range seedTagNames {
		tag, err := taxonomySvc.CreateTag(ctx, &dto.CreateTagRequest{Name: name})
		if err != nil {
			logger.Warn("创建标签失败（可能已存在）", zap.String("name", name), zap.Error(err))
			continue
		}
		tagIDs = append(tagIDs, tag.ID)
	}
	logger.Info("分类与标签填充完毕", zap.Int("分类", len(categoryIDs)), zap.Int("标签", len(tagIDs)))

	pickCategory := func() *uint64 {
		if len(categoryIDs) == 0 || gofakeit.Bool() {
			return nil
		}
		id := categoryIDs[gofakeit.Number(0, len(categoryIDs)-1)]
		return &id
	}
	pickTags := func() []uint64 {
		if len(tagIDs) == 0 {
			return nil
		}
		count := gofakeit.Number(0, 3)
		picked := make(map[uint64]struct{}, count)
		for len(picked) < count {
			picked[tagIDs[gofakeit.Number(0, len(tagIDs)-1)]] = struct{}{}
		}
		result := make([]uint64, 0, len(picked))
		for id := range picked {
			result = append(result, id)
		}
		return result
	}

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	// --- 2. 帖子 ---
	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			authorID := uuid.New().String()
			createReq := &dto.CreatePostRequest{
				Title:          gofakeit.Sentence(gofakeit.Number(5, 15)),
				Content:        gofakeit.Paragraph(3, 5, 20, "\n\n"),
				AuthorUsername: gofakeit.Username(),
				AuthorAvatar:   gofakeit.ImageURL(100, 100),
				CategoryID:     pickCategory(),
				ImageURL:       gofakeit.ImageURL(640, 480),
				TagIDs:         pickTags(),
			}

			resp, err := postSvc.CreatePost(ctx, authorID, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("author_id", authorID))
			} else {
				logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
					zap.Uint64("post_id", resp.ID),
					zap.String("title", resp.Title))
			}
		}(i)
	}

	// --- 3. 活动 ---
	for i := 0; i < numEvents; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			organizerID := uuid.New().String()
			start := time.Now().Add(time.Duration(gofakeit.Number(24, 24*30)) * time.Hour)
			end := start.Add(time.Duration(gofakeit.Number(1, 8)) * time.Hour)
			var maxParticipants *int
			if gofakeit.Bool() {
				n := gofakeit.Number(5, 200)
				maxParticipants = &n
			}

			createReq := &dto.CreateEventRequest{
				Title:             gofakeit.Sentence(gofakeit.Number(4, 10)),
				Description:       gofakeit.Paragraph(2, 4, 15, "\n\n"),
				OrganizerUsername: gofakeit.Username(),
				Location:          gofakeit.City(),
				StartTime:         start,
				EndTime:           end,
				MaxParticipants:   maxParticipants,
				CategoryID:        pickCategory(),
				Price:             gofakeit.Price(0, 200),
				ImageURL:          gofakeit.ImageURL(640, 480),
			}

			resp, err := eventSvc.CreateEvent(ctx, organizerID, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建活动 %d/%d 失败", itemIndex+1, numEvents),
					zap.Error(err),
					zap.String("title", createReq.Title))
			} else {
				logger.Info(fmt.Sprintf("成功创建活动 %d/%d", itemIndex+1, numEvents),
					zap.Uint64("event_id", resp.ID),
					zap.String("title", resp.Title))
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}
