package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/myErrors"
)

type moderationFixture struct {
	svc       ModerationService
	posts     *fakePostRepo
	questions *fakeQuestionRepo
	notify    *fakeNotificationSvc
}

func newModerationFixture(t *testing.T) *moderationFixture {
	f := &moderationFixture{
		posts:     newFakePostRepo(),
		questions: newFakeQuestionRepo(),
		notify:    newFakeNotificationSvc(),
	}
	f.svc = NewModerationService(f.posts, f.questions, f.notify, testLogger(t))
	return f
}

func TestApplyModerationResult_ApprovesPost(t *testing.T) {
	f := newModerationFixture(t)
	post := f.posts.addPost("author-1")

	err := f.svc.ApplyModerationResult(context.Background(), enums.SubjectPost, post.ID, commonEnums.Approved, "")
	require.NoError(t, err)
	assert.Equal(t, commonEnums.Approved, post.Status)

	calls := f.notify.callsFor("author-1")
	require.Len(t, calls, 1)
	assert.Equal(t, constant.NotificationTypeContentApproved, calls[0].notifType)
}

func TestApplyModerationResult_RejectsQuestionWithReason(t *testing.T) {
	f := newModerationFixture(t)
	question := f.questions.addQuestion("author-2")

	err := f.svc.ApplyModerationResult(context.Background(), enums.SubjectQuestion, question.ID, commonEnums.Rejected, "包含违规内容")
	require.NoError(t, err)
	assert.Equal(t, commonEnums.Rejected, f.questions.lastStatus)
	assert.Equal(t, "包含违规内容", f.questions.lastReason)

	calls := f.notify.callsFor("author-2")
	require.Len(t, calls, 1)
	assert.Equal(t, constant.NotificationTypeContentRejected, calls[0].notifType)
	assert.Equal(t, "包含违规内容", calls[0].payload["reason"])
}

func TestApplyModerationResult_UnknownSubject(t *testing.T) {
	f := newModerationFixture(t)

	err := f.svc.ApplyModerationResult(context.Background(), enums.SubjectPost, 999, commonEnums.Approved, "")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	assert.Empty(t, f.notify.calls)
}

func TestApplyModerationResult_CommentNotModerated(t *testing.T) {
	f := newModerationFixture(t)

	err := f.svc.ApplyModerationResult(context.Background(), enums.SubjectComment, 1, commonEnums.Approved, "")
	assert.ErrorIs(t, err, myErrors.ErrInvalidSubjectType)
}
