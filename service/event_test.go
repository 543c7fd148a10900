package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
)

type eventFixture struct {
	svc    EventService
	events *fakeEventRepo
	agg    *fakeAggregateRepo
	notify *fakeNotificationSvc
}

func newEventFixture(t *testing.T) *eventFixture {
	f := &eventFixture{
		events: newFakeEventRepo(),
		agg:    newFakeAggregateRepo(),
		notify: newFakeNotificationSvc(),
	}
	f.svc = NewEventService(f.events, f.agg, f.notify, testLogger(t))
	return f
}

func intPtr(n int) *int { return &n }

func TestRegister_NotifiesOrganizer(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)

	registration, err := f.svc.Register(context.Background(), event.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, event.ID, registration.EventID)
	assert.Equal(t, "user-1", registration.UserID)
	assert.Equal(t, enums.AttendanceRegistered, registration.Attendance)

	calls := f.notify.callsFor("organizer-1")
	require.Len(t, calls, 1)
	assert.Equal(t, constant.NotificationTypeEventRegistration, calls[0].notifType)
}

func TestRegister_SelfRegistrationSkipsNotification(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)

	_, err := f.svc.Register(context.Background(), event.ID, "organizer-1")
	require.NoError(t, err)
	assert.Empty(t, f.notify.calls)
}

func TestRegister_CapacityEnforced(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", intPtr(1), enums.EventUpcoming)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, event.ID, "user-1")
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, event.ID, "user-2")
	assert.ErrorIs(t, err, myErrors.ErrEventFull)
}

func TestRegister_ConcurrentContendersForLastSeat(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", intPtr(1), enums.EventUpcoming)
	ctx := context.Background()

	const contenders = 16
	errs := make([]error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Register(ctx, event.ID, fmt.Sprintf("user-%d", i))
		}(i)
	}
	wg.Wait()

	var succeeded, full int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, myErrors.ErrEventFull):
			full++
		default:
			t.Fatalf("报名返回了预期之外的错误: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, contenders-1, full)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", intPtr(10), enums.EventUpcoming)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, event.ID, "user-1")
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, event.ID, "user-1")
	assert.ErrorIs(t, err, myErrors.ErrAlreadyRegistered)
}

func TestRegister_LifecycleGuards(t *testing.T) {
	f := newEventFixture(t)
	cancelled := f.events.addEvent("organizer-1", nil, enums.EventCancelled)
	completed := f.events.addEvent("organizer-1", nil, enums.EventCompleted)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, cancelled.ID, "user-1")
	assert.ErrorIs(t, err, myErrors.ErrEventCancelled)

	_, err = f.svc.Register(ctx, completed.ID, "user-1")
	assert.ErrorIs(t, err, myErrors.ErrEventCompleted)

	_, err = f.svc.Register(ctx, 999, "user-1")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestUnregister_FreesSeatForOthers(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", intPtr(1), enums.EventUpcoming)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, event.ID, "user-1")
	require.NoError(t, err)

	require.NoError(t, f.svc.Unregister(ctx, event.ID, "user-1"))
	// 未报名状态下重复取消幂等
	require.NoError(t, f.svc.Unregister(ctx, event.ID, "user-1"))

	// 释放出的名额可以被别人占用
	_, err = f.svc.Register(ctx, event.ID, "user-2")
	require.NoError(t, err)
}

func TestUnregister_EventMustExist(t *testing.T) {
	f := newEventFixture(t)

	err := f.svc.Unregister(context.Background(), 999, "user-1")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestCancelEvent_OrganizerOnly(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)

	err := f.svc.CancelEvent(context.Background(), "someone-else", event.ID)
	assert.ErrorIs(t, err, myErrors.ErrForbidden)
	assert.Equal(t, enums.EventUpcoming, event.Status)
}

func TestCancelEvent_NotifiesParticipants(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, event.ID, "user-1")
	require.NoError(t, err)
	_, err = f.svc.Register(ctx, event.ID, "user-2")
	require.NoError(t, err)
	f.notify.calls = nil

	require.NoError(t, f.svc.CancelEvent(ctx, "organizer-1", event.ID))
	assert.Equal(t, enums.EventCancelled, event.Status)

	require.Len(t, f.notify.calls, 2)
	for _, call := range f.notify.calls {
		assert.Equal(t, constant.NotificationTypeEventCancelled, call.notifType)
	}

	// 重复取消幂等，不再重复通知
	f.notify.calls = nil
	require.NoError(t, f.svc.CancelEvent(ctx, "organizer-1", event.ID))
	assert.Empty(t, f.notify.calls)
}

func TestCancelEvent_CompletedCannotBeCancelled(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", nil, enums.EventCompleted)

	err := f.svc.CancelEvent(context.Background(), "organizer-1", event.ID)
	assert.ErrorIs(t, err, myErrors.ErrEventCompleted)
}

func TestGetEvent_DerivesCapacityState(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", intPtr(2), enums.EventUpcoming)
	ctx := context.Background()

	result, err := f.svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, vo.CapacityOpen, result.CapacityState)
	assert.Zero(t, result.ParticipantsCount)

	_, err = f.svc.Register(ctx, event.ID, "user-1")
	require.NoError(t, err)
	_, err = f.svc.Register(ctx, event.ID, "user-2")
	require.NoError(t, err)

	result, err = f.svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, vo.CapacityFull, result.CapacityState)
	assert.Equal(t, int64(2), result.ParticipantsCount)
}

func TestListParticipants_OrganizerOnly(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, event.ID, "user-1")
	require.NoError(t, err)

	_, err = f.svc.ListParticipants(ctx, "user-1", event.ID)
	assert.ErrorIs(t, err, myErrors.ErrForbidden)

	participants, err := f.svc.ListParticipants(ctx, "organizer-1", event.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "user-1", participants[0].UserID)
}

func TestUpdateAttendance(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, event.ID, "user-1")
	require.NoError(t, err)

	req := &dto.UpdateAttendanceRequest{UserID: "user-1", Attendance: enums.AttendanceAttended}
	assert.ErrorIs(t, f.svc.UpdateAttendance(ctx, "user-1", event.ID, req), myErrors.ErrForbidden)

	require.NoError(t, f.svc.UpdateAttendance(ctx, "organizer-1", event.ID, req))
	registration, err := f.svc.GetMyRegistration(ctx, event.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, enums.AttendanceAttended, registration.Attendance)
}

func TestGetMyRegistration_NilWhenAbsent(t *testing.T) {
	f := newEventFixture(t)
	event := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)

	registration, err := f.svc.GetMyRegistration(context.Background(), event.ID, "user-1")
	require.NoError(t, err)
	assert.Nil(t, registration)
}

func TestCompletePastEvents(t *testing.T) {
	f := newEventFixture(t)
	past := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)
	past.EndTime = time.Now().Add(-time.Hour)
	future := f.events.addEvent("organizer-1", nil, enums.EventUpcoming)
	future.EndTime = time.Now().Add(time.Hour)

	affected, err := f.events.CompletePastEvents(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, enums.EventCompleted, past.Status)
	assert.Equal(t, enums.EventUpcoming, future.Status)
}
