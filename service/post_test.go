package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
)

// postFixture 只覆盖不经过数据库事务的读路径，事务句柄传 nil。
type postFixture struct {
	svc      PostService
	posts    *fakePostRepo
	comments *fakeCommentRepo
	tags     *fakeTagRepo
	agg      *fakeAggregateRepo
}

func newPostFixture(t *testing.T) *postFixture {
	f := &postFixture{
		posts:    newFakePostRepo(),
		comments: newFakeCommentRepo(),
		tags:     newFakeTagRepo(),
		agg:      newFakeAggregateRepo(),
	}
	f.svc = NewPostService(
		nil,
		f.posts,
		f.comments,
		f.tags,
		newFakeCategoryRepo(),
		newFakeLikeRepo(),
		newFakeBookmarkRepo(),
		newFakeReactionRepo(),
		newFakeReputationRepo(),
		f.agg,
		newFakeNotificationSvc(),
		nil,
		testLogger(t),
	)
	return f
}

func tagIDsOf(tags []vo.TagVO) []uint64 {
	ids := make([]uint64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func TestGetPostDetail_ResolvesTagSet(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	post := f.posts.addPost("user-1")
	coffee := f.tags.addTag("咖啡", "coffee")
	market := f.tags.addTag("市集", "market")

	require.NoError(t, f.tags.ReplaceTagSet(ctx, nil, enums.SubjectPost, post.ID, []uint64{coffee.ID, market.ID}))

	detail, err := f.svc.GetPostDetail(ctx, post.ID, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{coffee.ID, market.ID}, tagIDsOf(detail.Tags))
}

func TestReplaceTagSet_ExactReplacement(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	post := f.posts.addPost("user-1")
	tagA := f.tags.addTag("咖啡", "coffee")
	tagB := f.tags.addTag("市集", "market")
	tagC := f.tags.addTag("烘焙", "roasting")

	// {A,B} 替换为 {B,C} 后，关联恰好是 {B,C}: A 被摘除，B 保留，C 新增。
	require.NoError(t, f.tags.ReplaceTagSet(ctx, nil, enums.SubjectPost, post.ID, []uint64{tagA.ID, tagB.ID}))
	require.NoError(t, f.tags.ReplaceTagSet(ctx, nil, enums.SubjectPost, post.ID, []uint64{tagB.ID, tagC.ID}))

	detail, err := f.svc.GetPostDetail(ctx, post.ID, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{tagB.ID, tagC.ID}, tagIDsOf(detail.Tags))

	// usage_count 跟随关联增减。
	assert.Equal(t, int64(0), tagA.UsageCount)
	assert.Equal(t, int64(1), tagB.UsageCount)
	assert.Equal(t, int64(1), tagC.UsageCount)
}

func TestReplaceTagSet_EmptySetClears(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	post := f.posts.addPost("user-1")
	coffee := f.tags.addTag("咖啡", "coffee")

	require.NoError(t, f.tags.ReplaceTagSet(ctx, nil, enums.SubjectPost, post.ID, []uint64{coffee.ID}))
	require.NoError(t, f.tags.ReplaceTagSet(ctx, nil, enums.SubjectPost, post.ID, nil))

	detail, err := f.svc.GetPostDetail(ctx, post.ID, "")
	require.NoError(t, err)
	assert.Empty(t, detail.Tags)
	assert.Equal(t, int64(0), coffee.UsageCount)
}

func TestReplaceTagSet_UnknownTagLeavesSetUntouched(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	post := f.posts.addPost("user-1")
	coffee := f.tags.addTag("咖啡", "coffee")

	require.NoError(t, f.tags.ReplaceTagSet(ctx, nil, enums.SubjectPost, post.ID, []uint64{coffee.ID}))

	err := f.tags.ReplaceTagSet(ctx, nil, enums.SubjectPost, post.ID, []uint64{coffee.ID, 999})
	require.ErrorIs(t, err, myErrors.ErrUnknownTag)

	// 全有或全无: 失败的替换不产生任何写入。
	detail, detailErr := f.svc.GetPostDetail(ctx, post.ID, "")
	require.NoError(t, detailErr)
	assert.ElementsMatch(t, []uint64{coffee.ID}, tagIDsOf(detail.Tags))
	assert.Equal(t, int64(1), coffee.UsageCount)
}
