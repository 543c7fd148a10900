package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
)

type engagementFixture struct {
	svc       EngagementService
	likes     *fakeLikeRepo
	bookmarks *fakeBookmarkRepo
	reactions *fakeReactionRepo
	rep       *fakeReputationRepo
	posts     *fakePostRepo
	questions *fakeQuestionRepo
	comments  *fakeCommentRepo
	answers   *fakeAnswerRepo
	agg       *fakeAggregateRepo
	notify    *fakeNotificationSvc
}

func newEngagementFixture(t *testing.T) *engagementFixture {
	f := &engagementFixture{
		likes:     newFakeLikeRepo(),
		bookmarks: newFakeBookmarkRepo(),
		reactions: newFakeReactionRepo(),
		rep:       newFakeReputationRepo(),
		posts:     newFakePostRepo(),
		questions: newFakeQuestionRepo(),
		comments:  newFakeCommentRepo(),
		answers:   newFakeAnswerRepo(),
		agg:       newFakeAggregateRepo(),
		notify:    newFakeNotificationSvc(),
	}
	f.svc = NewEngagementService(
		f.likes, f.bookmarks, f.reactions, f.rep,
		f.posts, f.questions, f.comments, f.answers, f.agg,
		f.notify, testLogger(t),
	)
	return f
}

func TestToggleLike_ActivatesThenDeactivates(t *testing.T) {
	f := newEngagementFixture(t)
	post := f.posts.addPost("author-1")
	ctx := context.Background()

	result, err := f.svc.ToggleLike(ctx, enums.SubjectPost, post.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, post.ID, result.SubjectID)

	// 作者收到通知并获得声望
	calls := f.notify.callsFor("author-1")
	require.Len(t, calls, 1)
	assert.Equal(t, constant.NotificationTypeContentLiked, calls[0].notifType)
	points, _ := f.rep.GetPoints(ctx, "author-1")
	assert.Equal(t, int64(constant.ReputationPointsLikeReceived), points)

	// 再次切换熄灭，不追加通知，声望不回收
	result, err = f.svc.ToggleLike(ctx, enums.SubjectPost, post.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.Len(t, f.notify.callsFor("author-1"), 1)
	points, _ = f.rep.GetPoints(ctx, "author-1")
	assert.Equal(t, int64(constant.ReputationPointsLikeReceived), points)
}

func TestToggleLike_SelfLikeSkipsNotification(t *testing.T) {
	f := newEngagementFixture(t)
	post := f.posts.addPost("author-1")

	result, err := f.svc.ToggleLike(context.Background(), enums.SubjectPost, post.ID, "author-1")
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Empty(t, f.notify.calls)
	points, _ := f.rep.GetPoints(context.Background(), "author-1")
	assert.Zero(t, points)
}

func TestToggleLike_UnknownSubject(t *testing.T) {
	f := newEngagementFixture(t)

	_, err := f.svc.ToggleLike(context.Background(), enums.SubjectPost, 999, "user-1")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestToggleLike_InvalidSubjectType(t *testing.T) {
	f := newEngagementFixture(t)

	_, err := f.svc.ToggleLike(context.Background(), enums.SubjectType(42), 1, "user-1")
	assert.ErrorIs(t, err, myErrors.ErrInvalidSubjectType)
}

func TestToggleLike_CommentSyncsDisplayCount(t *testing.T) {
	f := newEngagementFixture(t)
	comment := f.comments.addComment(1, "author-2")
	ctx := context.Background()

	_, err := f.svc.ToggleLike(ctx, enums.SubjectComment, comment.ID, "user-1")
	require.NoError(t, err)
	_, err = f.svc.ToggleLike(ctx, enums.SubjectComment, comment.ID, "user-1")
	require.NoError(t, err)

	require.Equal(t, []int64{1, -1}, f.comments.likeDeltas)
	assert.Equal(t, []uint64{comment.ID, comment.ID}, f.comments.adjustedIDs)
}

func TestToggleBookmark_IsPrivate(t *testing.T) {
	f := newEngagementFixture(t)
	post := f.posts.addPost("author-1")
	ctx := context.Background()

	result, err := f.svc.ToggleBookmark(ctx, enums.SubjectPost, post.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, result.Active)
	// 收藏是私有行为，作者不感知
	assert.Empty(t, f.notify.calls)

	result, err = f.svc.ToggleBookmark(ctx, enums.SubjectPost, post.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, result.Active)
}

func TestSetReaction_RejectsUnknownType(t *testing.T) {
	f := newEngagementFixture(t)
	post := f.posts.addPost("author-1")

	_, err := f.svc.SetReaction(context.Background(), enums.SubjectPost, post.ID, "user-1", enums.ReactionType("angry"))
	assert.ErrorIs(t, err, myErrors.ErrInvalidReactionType)
}

func TestSetReaction_OverwritesPrevious(t *testing.T) {
	f := newEngagementFixture(t)
	post := f.posts.addPost("author-1")
	ctx := context.Background()

	result, err := f.svc.SetReaction(ctx, enums.SubjectPost, post.ID, "user-1", enums.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, string(enums.ReactionLike), result.Type)

	// 同一用户换表态只保留最后一次
	result, err = f.svc.SetReaction(ctx, enums.SubjectPost, post.ID, "user-1", enums.ReactionLove)
	require.NoError(t, err)
	assert.Equal(t, string(enums.ReactionLove), result.Type)

	counts, err := f.reactions.CountReactions(ctx, enums.SubjectPost, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[enums.ReactionLove])
	assert.Zero(t, counts[enums.ReactionLike])
}

func TestClearReaction_Idempotent(t *testing.T) {
	f := newEngagementFixture(t)
	post := f.posts.addPost("author-1")
	ctx := context.Background()

	_, err := f.svc.SetReaction(ctx, enums.SubjectPost, post.ID, "user-1", enums.ReactionHelpful)
	require.NoError(t, err)

	require.NoError(t, f.svc.ClearReaction(ctx, enums.SubjectPost, post.ID, "user-1"))
	// 已清除后再清一次静默成功
	require.NoError(t, f.svc.ClearReaction(ctx, enums.SubjectPost, post.ID, "user-1"))

	record, err := f.reactions.GetReaction(ctx, enums.SubjectPost, post.ID, "user-1")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestListBookmarkedPosts_NewestFirstWithCounts(t *testing.T) {
	f := newEngagementFixture(t)
	first := f.posts.addPost("author-1")
	second := f.posts.addPost("author-2")
	ctx := context.Background()

	_, err := f.svc.ToggleBookmark(ctx, enums.SubjectPost, first.ID, "user-1")
	require.NoError(t, err)
	_, err = f.svc.ToggleBookmark(ctx, enums.SubjectPost, second.ID, "user-1")
	require.NoError(t, err)

	f.agg.commentCounts[second.ID] = 3
	f.agg.likeCounts[second.ID] = 7

	page, err := f.svc.ListBookmarkedPosts(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Posts, 2)
	// 最近收藏的在前
	assert.Equal(t, second.ID, page.Posts[0].ID)
	assert.Equal(t, int64(3), page.Posts[0].CommentsCount)
	assert.Equal(t, int64(7), page.Posts[0].LikesCount)
}
