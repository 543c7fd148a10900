package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_PersistsJSONPayload(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, testLogger(t))
	ctx := context.Background()

	svc.Notify(ctx, "user-1", "new_comment", map[string]interface{}{
		"post_id":      uint64(42),
		"commenter_id": "user-2",
	})

	require.Len(t, repo.items, 1)
	assert.Equal(t, "user-1", repo.items[0].UserID)
	assert.Equal(t, "new_comment", repo.items[0].Type)
	assert.False(t, repo.items[0].IsRead)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(repo.items[0].Payload), &payload))
	assert.Equal(t, "user-2", payload["commenter_id"])
}

func TestNotify_EmptyUserIDSkipped(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, testLogger(t))

	svc.Notify(context.Background(), "", "new_comment", nil)
	assert.Empty(t, repo.items)
}

func TestListNotifications_PagingAndUnread(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, testLogger(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		svc.Notify(ctx, "user-1", "new_answer", map[string]interface{}{"n": i})
	}
	svc.Notify(ctx, "user-2", "new_answer", nil)

	page, err := svc.ListNotifications(ctx, "user-1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, int64(3), page.UnreadCount)
	require.Len(t, page.Notifications, 2)
	// 最新的在前
	assert.Greater(t, page.Notifications[0].ID, page.Notifications[1].ID)
}

func TestMarkRead_OwnershipEnforced(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, testLogger(t))
	ctx := context.Background()

	svc.Notify(ctx, "user-1", "content_liked", nil)
	id := repo.items[0].ID

	// 别人的通知表现为未找到
	assert.ErrorIs(t, svc.MarkRead(ctx, "user-2", id), commonerrors.ErrRepoNotFound)

	require.NoError(t, svc.MarkRead(ctx, "user-1", id))
	assert.True(t, repo.items[0].IsRead)
}

func TestMarkAllRead(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, testLogger(t))
	ctx := context.Background()

	svc.Notify(ctx, "user-1", "content_liked", nil)
	svc.Notify(ctx, "user-1", "new_comment", nil)

	require.NoError(t, svc.MarkAllRead(ctx, "user-1"))

	page, err := svc.ListNotifications(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, page.UnreadCount)
	for _, item := range page.Notifications {
		assert.True(t, item.IsRead)
	}
}
