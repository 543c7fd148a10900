package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// 本文件集中存放服务层测试用的内存假仓库。
// 假仓库只实现各接口在文档注释里承诺的契约（未找到错误、幂等语义、唯一约束），
// 不模拟 SQL 细节；事务句柄参数一律忽略。

func testLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

type signalKey struct {
	subjectType enums.SubjectType
	subjectID   uint64
	userID      string
}

// --- LikeRepository ---

type fakeLikeRepo struct {
	likes map[signalKey]struct{}
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[signalKey]struct{})}
}

func (f *fakeLikeRepo) ToggleLike(_ context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error) {
	key := signalKey{subjectType, subjectID, userID}
	if _, ok := f.likes[key]; ok {
		delete(f.likes, key)
		return false, nil
	}
	f.likes[key] = struct{}{}
	return true, nil
}

func (f *fakeLikeRepo) HasLiked(_ context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error) {
	_, ok := f.likes[signalKey{subjectType, subjectID, userID}]
	return ok, nil
}

func (f *fakeLikeRepo) DeleteAllForSubject(_ context.Context, _ *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error {
	for key := range f.likes {
		if key.subjectType == subjectType && key.subjectID == subjectID {
			delete(f.likes, key)
		}
	}
	return nil
}

// --- BookmarkRepository ---

type fakeBookmarkRepo struct {
	entries []signalKey // 按收藏时间排序
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{}
}

func (f *fakeBookmarkRepo) ToggleBookmark(_ context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error) {
	key := signalKey{subjectType, subjectID, userID}
	for i, entry := range f.entries {
		if entry == key {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return false, nil
		}
	}
	f.entries = append(f.entries, key)
	return true, nil
}

func (f *fakeBookmarkRepo) HasBookmarked(_ context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (bool, error) {
	key := signalKey{subjectType, subjectID, userID}
	for _, entry := range f.entries {
		if entry == key {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookmarkRepo) ListBookmarkedIDs(_ context.Context, subjectType enums.SubjectType, userID string, offset, limit int) ([]uint64, int64, error) {
	var ids []uint64
	for i := len(f.entries) - 1; i >= 0; i-- { // 倒序，最新在前
		entry := f.entries[i]
		if entry.subjectType == subjectType && entry.userID == userID {
			ids = append(ids, entry.subjectID)
		}
	}
	total := int64(len(ids))
	if offset >= len(ids) {
		return nil, total, nil
	}
	ids = ids[offset:]
	if limit < len(ids) {
		ids = ids[:limit]
	}
	return ids, total, nil
}

func (f *fakeBookmarkRepo) DeleteAllForSubject(_ context.Context, _ *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error {
	kept := f.entries[:0]
	for _, entry := range f.entries {
		if entry.subjectType != subjectType || entry.subjectID != subjectID {
			kept = append(kept, entry)
		}
	}
	f.entries = kept
	return nil
}

// --- ReactionRepository ---

type fakeReactionRepo struct {
	reactions map[signalKey]*entities.Reaction
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[signalKey]*entities.Reaction)}
}

func (f *fakeReactionRepo) SetReaction(_ context.Context, subjectType enums.SubjectType, subjectID uint64, userID string, reaction enums.ReactionType) error {
	key := signalKey{subjectType, subjectID, userID}
	f.reactions[key] = &entities.Reaction{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		UserID:      userID,
		Type:        reaction,
		UpdatedAt:   time.Now(),
	}
	return nil
}

func (f *fakeReactionRepo) ClearReaction(_ context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) error {
	delete(f.reactions, signalKey{subjectType, subjectID, userID})
	return nil
}

func (f *fakeReactionRepo) GetReaction(_ context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (*entities.Reaction, error) {
	return f.reactions[signalKey{subjectType, subjectID, userID}], nil
}

func (f *fakeReactionRepo) CountReactions(_ context.Context, subjectType enums.SubjectType, subjectID uint64) (map[enums.ReactionType]int64, error) {
	counts := make(map[enums.ReactionType]int64)
	for key, reaction := range f.reactions {
		if key.subjectType == subjectType && key.subjectID == subjectID {
			counts[reaction.Type]++
		}
	}
	return counts, nil
}

func (f *fakeReactionRepo) DeleteAllForSubject(_ context.Context, _ *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error {
	for key := range f.reactions {
		if key.subjectType == subjectType && key.subjectID == subjectID {
			delete(f.reactions, key)
		}
	}
	return nil
}

// --- ReputationRepository ---

type fakeReputationRepo struct {
	points map[string]int64
}

func newFakeReputationRepo() *fakeReputationRepo {
	return &fakeReputationRepo{points: make(map[string]int64)}
}

func (f *fakeReputationRepo) AddPoints(_ context.Context, userID string, delta int64) error {
	f.points[userID] += delta
	return nil
}

func (f *fakeReputationRepo) GetPoints(_ context.Context, userID string) (int64, error) {
	return f.points[userID], nil
}

// --- PostRepository ---

type fakePostRepo struct {
	posts  map[uint64]*entities.Post
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*entities.Post), nextID: 1}
}

func (f *fakePostRepo) addPost(authorID string) *entities.Post {
	post := &entities.Post{AuthorID: authorID, Title: fmt.Sprintf("post-%d", f.nextID)}
	post.ID = f.nextID
	f.nextID++
	f.posts[post.ID] = post
	return post
}

func (f *fakePostRepo) CreatePost(_ context.Context, _ *gorm.DB, post *entities.Post) error {
	post.ID = f.nextID
	f.nextID++
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPostByID(_ context.Context, id uint64) (*entities.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return post, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, _ *gorm.DB, id uint64, updates map[string]interface{}) error {
	if _, ok := f.posts[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (f *fakePostRepo) UpdatePostStatus(_ context.Context, id uint64, status commonEnums.Status, reason string) error {
	post, ok := f.posts[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	post.Status = status
	if reason != "" {
		post.AuditReason.String = reason
		post.AuditReason.Valid = true
	}
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, _ *gorm.DB, id uint64) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) ListPosts(_ context.Context, _ *dto.ListPostsRequest) ([]*entities.Post, int64, error) {
	var result []*entities.Post
	for _, post := range f.posts {
		result = append(result, post)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

func (f *fakePostRepo) GetPostsByIDs(_ context.Context, ids []uint64) ([]*entities.Post, error) {
	var result []*entities.Post
	for _, id := range ids {
		if post, ok := f.posts[id]; ok {
			result = append(result, post)
		}
	}
	return result, nil
}

// --- QuestionRepository ---

type fakeQuestionRepo struct {
	questions  map[uint64]*entities.Question
	nextID     uint64
	lastStatus commonEnums.Status
	lastReason string
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uint64]*entities.Question), nextID: 1}
}

func (f *fakeQuestionRepo) addQuestion(authorID string) *entities.Question {
	question := &entities.Question{AuthorID: authorID}
	question.ID = f.nextID
	f.nextID++
	f.questions[question.ID] = question
	return question
}

func (f *fakeQuestionRepo) CreateQuestion(_ context.Context, _ *gorm.DB, question *entities.Question) error {
	question.ID = f.nextID
	f.nextID++
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) GetQuestionByID(_ context.Context, id uint64) (*entities.Question, error) {
	question, ok := f.questions[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return question, nil
}

func (f *fakeQuestionRepo) UpdateQuestion(_ context.Context, _ *gorm.DB, id uint64, _ map[string]interface{}) error {
	if _, ok := f.questions[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (f *fakeQuestionRepo) UpdateQuestionStatus(_ context.Context, id uint64, status commonEnums.Status, reason string) error {
	question, ok := f.questions[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	question.Status = status
	f.lastStatus = status
	f.lastReason = reason
	return nil
}

func (f *fakeQuestionRepo) DeleteQuestion(_ context.Context, _ *gorm.DB, id uint64) error {
	delete(f.questions, id)
	return nil
}

func (f *fakeQuestionRepo) ListQuestions(_ context.Context, _ *dto.ListQuestionsRequest) ([]*entities.Question, int64, error) {
	return nil, 0, nil
}

// --- CommentRepository ---

type fakeCommentRepo struct {
	comments    map[uint64]*entities.Comment
	nextID      uint64
	likeDeltas  []int64
	adjustedIDs []uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*entities.Comment), nextID: 1}
}

func (f *fakeCommentRepo) addComment(postID uint64, authorID string) *entities.Comment {
	comment := &entities.Comment{PostID: postID, AuthorID: authorID}
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	return comment
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *entities.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetCommentByID(_ context.Context, id uint64) (*entities.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return comment, nil
}

func (f *fakeCommentRepo) ListCommentsByPostID(_ context.Context, postID uint64) ([]*entities.Comment, error) {
	var result []*entities.Comment
	for _, comment := range f.comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) DeleteAllForPost(_ context.Context, _ *gorm.DB, postID uint64) error {
	for id, comment := range f.comments {
		if comment.PostID == postID {
			delete(f.comments, id)
		}
	}
	return nil
}

func (f *fakeCommentRepo) AdjustLikeCount(_ context.Context, id uint64, delta int64) error {
	f.adjustedIDs = append(f.adjustedIDs, id)
	f.likeDeltas = append(f.likeDeltas, delta)
	return nil
}

// --- AnswerRepository ---

type fakeAnswerRepo struct {
	answers map[uint64]*entities.Answer
	nextID  uint64
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[uint64]*entities.Answer), nextID: 1}
}

func (f *fakeAnswerRepo) CreateAnswer(_ context.Context, answer *entities.Answer) error {
	answer.ID = f.nextID
	f.nextID++
	f.answers[answer.ID] = answer
	return nil
}

func (f *fakeAnswerRepo) GetAnswerByID(_ context.Context, id uint64) (*entities.Answer, error) {
	answer, ok := f.answers[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return answer, nil
}

func (f *fakeAnswerRepo) ListAnswersByQuestionID(_ context.Context, questionID uint64) ([]*entities.Answer, error) {
	var result []*entities.Answer
	for _, answer := range f.answers {
		if answer.QuestionID == questionID {
			result = append(result, answer)
		}
	}
	return result, nil
}

func (f *fakeAnswerRepo) DeleteAnswer(_ context.Context, id uint64) error {
	delete(f.answers, id)
	return nil
}

func (f *fakeAnswerRepo) DeleteAllForQuestion(_ context.Context, _ *gorm.DB, questionID uint64) error {
	for id, answer := range f.answers {
		if answer.QuestionID == questionID {
			delete(f.answers, id)
		}
	}
	return nil
}

func (f *fakeAnswerRepo) AdjustLikeCount(_ context.Context, _ uint64, _ int64) error {
	return nil
}

// --- AggregateRepository ---

type fakeAggregateRepo struct {
	commentCounts     map[uint64]int64
	answerCounts      map[uint64]int64
	likeCounts        map[uint64]int64
	bookmarkCounts    map[uint64]int64
	participantCounts map[uint64]int64
	usages            []mysql.TagUsage
	usageCalls        int
}

func newFakeAggregateRepo() *fakeAggregateRepo {
	return &fakeAggregateRepo{
		commentCounts:     make(map[uint64]int64),
		answerCounts:      make(map[uint64]int64),
		likeCounts:        make(map[uint64]int64),
		bookmarkCounts:    make(map[uint64]int64),
		participantCounts: make(map[uint64]int64),
	}
}

func (f *fakeAggregateRepo) CommentCountsByPostIDs(_ context.Context, _ []uint64) (map[uint64]int64, error) {
	return f.commentCounts, nil
}

func (f *fakeAggregateRepo) AnswerCountsByQuestionIDs(_ context.Context, _ []uint64) (map[uint64]int64, error) {
	return f.answerCounts, nil
}

func (f *fakeAggregateRepo) LikeCountsBySubjectIDs(_ context.Context, _ enums.SubjectType, _ []uint64) (map[uint64]int64, error) {
	return f.likeCounts, nil
}

func (f *fakeAggregateRepo) BookmarkCountsBySubjectIDs(_ context.Context, _ enums.SubjectType, _ []uint64) (map[uint64]int64, error) {
	return f.bookmarkCounts, nil
}

func (f *fakeAggregateRepo) ParticipantCountsByEventIDs(_ context.Context, _ []uint64) (map[uint64]int64, error) {
	return f.participantCounts, nil
}

func (f *fakeAggregateRepo) TagUsageSince(_ context.Context, _ time.Time, limit int) ([]mysql.TagUsage, error) {
	f.usageCalls++
	if len(f.usages) > limit {
		return f.usages[:limit], nil
	}
	return f.usages, nil
}

// --- EventRepository ---

type fakeEventRepo struct {
	mu           sync.Mutex
	events       map[uint64]*entities.Event
	participants []*entities.EventParticipant
	nextID       uint64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uint64]*entities.Event), nextID: 1}
}

func (f *fakeEventRepo) addEvent(organizerID string, maxParticipants *int, status enums.EventStatus) *entities.Event {
	event := &entities.Event{
		Title:           fmt.Sprintf("event-%d", f.nextID),
		OrganizerID:     organizerID,
		MaxParticipants: maxParticipants,
		Status:          status,
	}
	event.ID = f.nextID
	f.nextID++
	f.events[event.ID] = event
	return event
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *entities.Event) error {
	event.ID = f.nextID
	f.nextID++
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, id uint64) (*entities.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) ListEvents(_ context.Context, _ *dto.ListEventsRequest) ([]*entities.Event, int64, error) {
	var result []*entities.Event
	for _, event := range f.events {
		result = append(result, event)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

func (f *fakeEventRepo) UpdateEventStatus(_ context.Context, id uint64, status enums.EventStatus) error {
	event, ok := f.events[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	event.Status = status
	return nil
}

func (f *fakeEventRepo) CompletePastEvents(_ context.Context, now time.Time) (int64, error) {
	var affected int64
	for _, event := range f.events {
		if event.Status == enums.EventUpcoming && event.EndTime.Before(now) {
			event.Status = enums.EventCompleted
			affected++
		}
	}
	return affected, nil
}

func (f *fakeEventRepo) RegisterParticipant(_ context.Context, eventID uint64, userID string) (*entities.EventParticipant, error) {
	// 真实实现靠 FOR UPDATE 行锁串行化同一活动的并发报名，这里用互斥锁复现
	// 同样的“检查-插入”原子性。
	f.mu.Lock()
	defer f.mu.Unlock()

	event, ok := f.events[eventID]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	switch event.Status {
	case enums.EventCancelled:
		return nil, myErrors.ErrEventCancelled
	case enums.EventCompleted:
		return nil, myErrors.ErrEventCompleted
	}
	var count int64
	for _, participant := range f.participants {
		if participant.EventID == eventID {
			count++
		}
		if participant.EventID == eventID && participant.UserID == userID {
			return nil, myErrors.ErrAlreadyRegistered
		}
	}
	if event.MaxParticipants != nil && count >= int64(*event.MaxParticipants) {
		return nil, myErrors.ErrEventFull
	}
	participant := &entities.EventParticipant{
		EventID:      eventID,
		UserID:       userID,
		RegisteredAt: time.Now(),
	}
	f.participants = append(f.participants, participant)
	return participant, nil
}

func (f *fakeEventRepo) UnregisterParticipant(_ context.Context, eventID uint64, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, participant := range f.participants {
		if participant.EventID == eventID && participant.UserID == userID {
			f.participants = append(f.participants[:i], f.participants[i+1:]...)
			return nil
		}
	}
	return nil // 未报名幂等
}

func (f *fakeEventRepo) GetRegistration(_ context.Context, eventID uint64, userID string) (*entities.EventParticipant, error) {
	for _, participant := range f.participants {
		if participant.EventID == eventID && participant.UserID == userID {
			return participant, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) ListParticipants(_ context.Context, eventID uint64) ([]*entities.EventParticipant, error) {
	var result []*entities.EventParticipant
	for _, participant := range f.participants {
		if participant.EventID == eventID {
			result = append(result, participant)
		}
	}
	return result, nil
}

func (f *fakeEventRepo) CountParticipants(_ context.Context, eventID uint64) (int64, error) {
	var count int64
	for _, participant := range f.participants {
		if participant.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEventRepo) UpdateAttendance(_ context.Context, eventID uint64, userID string, attendance enums.AttendanceStatus) error {
	for _, participant := range f.participants {
		if participant.EventID == eventID && participant.UserID == userID {
			participant.Attendance = attendance
			return nil
		}
	}
	return commonerrors.ErrRepoNotFound
}

func (f *fakeEventRepo) ListRegisteredEventIDs(_ context.Context, userID string, offset, limit int) ([]uint64, int64, error) {
	var ids []uint64
	for i := len(f.participants) - 1; i >= 0; i-- {
		if f.participants[i].UserID == userID {
			ids = append(ids, f.participants[i].EventID)
		}
	}
	total := int64(len(ids))
	if offset >= len(ids) {
		return nil, total, nil
	}
	ids = ids[offset:]
	if limit < len(ids) {
		ids = ids[:limit]
	}
	return ids, total, nil
}

// --- NotificationRepository ---

type fakeNotificationRepo struct {
	items  []*entities.Notification
	nextID uint64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) CreateNotification(_ context.Context, notification *entities.Notification) error {
	notification.ID = f.nextID
	f.nextID++
	f.items = append(f.items, notification)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string, offset, limit int) ([]*entities.Notification, int64, int64, error) {
	var mine []*entities.Notification
	var unread int64
	for i := len(f.items) - 1; i >= 0; i-- { // 倒序，最新在前
		if f.items[i].UserID != userID {
			continue
		}
		mine = append(mine, f.items[i])
		if !f.items[i].IsRead {
			unread++
		}
	}
	total := int64(len(mine))
	if offset >= len(mine) {
		return nil, total, unread, nil
	}
	mine = mine[offset:]
	if limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, total, unread, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, userID string, id uint64) error {
	for _, item := range f.items {
		if item.ID == id && item.UserID == userID {
			item.IsRead = true
			return nil
		}
	}
	return commonerrors.ErrRepoNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) (int64, error) {
	var affected int64
	for _, item := range f.items {
		if item.UserID == userID && !item.IsRead {
			item.IsRead = true
			affected++
		}
	}
	return affected, nil
}

// --- NotificationService 记录桩 ---

type notifyCall struct {
	userID    string
	notifType string
	payload   map[string]interface{}
}

type fakeNotificationSvc struct {
	calls []notifyCall
}

func newFakeNotificationSvc() *fakeNotificationSvc {
	return &fakeNotificationSvc{}
}

func (f *fakeNotificationSvc) Notify(_ context.Context, userID string, notifType string, payload map[string]interface{}) {
	f.calls = append(f.calls, notifyCall{userID: userID, notifType: notifType, payload: payload})
}

func (f *fakeNotificationSvc) ListNotifications(_ context.Context, _ string, _, _ int) (*vo.ListNotificationsVO, error) {
	return &vo.ListNotificationsVO{}, nil
}

func (f *fakeNotificationSvc) MarkRead(_ context.Context, _ string, _ uint64) error { return nil }

func (f *fakeNotificationSvc) MarkAllRead(_ context.Context, _ string) error { return nil }

// callsFor 返回发给某个用户的全部通知调用。
func (f *fakeNotificationSvc) callsFor(userID string) []notifyCall {
	var result []notifyCall
	for _, call := range f.calls {
		if call.userID == userID {
			result = append(result, call)
		}
	}
	return result
}

// --- CategoryRepository ---

type fakeCategoryRepo struct {
	categories map[uint64]*entities.Category
	nextID     uint64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint64]*entities.Category), nextID: 1}
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, category *entities.Category) error {
	category.ID = f.nextID
	f.nextID++
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetCategoryByID(_ context.Context, id uint64) (*entities.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) ListCategories(_ context.Context) ([]*entities.Category, error) {
	var result []*entities.Category
	for _, category := range f.categories {
		result = append(result, category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// --- TagRepository ---

type tagLinkKey struct {
	subjectType enums.SubjectType
	subjectID   uint64
}

type fakeTagRepo struct {
	tags   map[uint64]*entities.Tag
	links  map[tagLinkKey]map[uint64]struct{}
	nextID uint64
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		tags:   make(map[uint64]*entities.Tag),
		links:  make(map[tagLinkKey]map[uint64]struct{}),
		nextID: 1,
	}
}

func (f *fakeTagRepo) addTag(name, slug string) *entities.Tag {
	tag := &entities.Tag{Name: name, Slug: slug}
	tag.ID = f.nextID
	f.nextID++
	f.tags[tag.ID] = tag
	return tag
}

func (f *fakeTagRepo) CreateTag(_ context.Context, tag *entities.Tag) error {
	tag.ID = f.nextID
	f.nextID++
	f.tags[tag.ID] = tag
	return nil
}

func (f *fakeTagRepo) GetTagByID(_ context.Context, id uint64) (*entities.Tag, error) {
	tag, ok := f.tags[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return tag, nil
}

func (f *fakeTagRepo) GetTagsByIDs(_ context.Context, ids []uint64) ([]*entities.Tag, error) {
	var result []*entities.Tag
	for _, id := range ids {
		if tag, ok := f.tags[id]; ok {
			result = append(result, tag)
		}
	}
	return result, nil
}

func (f *fakeTagRepo) ListTags(_ context.Context) ([]*entities.Tag, error) {
	var result []*entities.Tag
	for _, tag := range f.tags {
		result = append(result, tag)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UsageCount > result[j].UsageCount })
	return result, nil
}

func (f *fakeTagRepo) ReplaceTagSet(_ context.Context, _ *gorm.DB, subjectType enums.SubjectType, subjectID uint64, tagIDs []uint64) error {
	target := make(map[uint64]struct{}, len(tagIDs))
	var missing []uint64
	for _, id := range tagIDs {
		if _, ok := f.tags[id]; !ok {
			missing = append(missing, id)
		}
		target[id] = struct{}{}
	}
	// 全有或全无: 存在未知ID时不做任何写入。
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", myErrors.ErrUnknownTag, missing)
	}

	key := tagLinkKey{subjectType: subjectType, subjectID: subjectID}
	current := f.links[key]
	if current == nil {
		current = make(map[uint64]struct{})
		f.links[key] = current
	}
	for id := range current {
		if _, keep := target[id]; !keep {
			delete(current, id)
			if f.tags[id].UsageCount > 0 {
				f.tags[id].UsageCount--
			}
		}
	}
	for id := range target {
		if _, exists := current[id]; !exists {
			current[id] = struct{}{}
			f.tags[id].UsageCount++
		}
	}
	return nil
}

func (f *fakeTagRepo) GetTagsForSubject(_ context.Context, subjectType enums.SubjectType, subjectID uint64) ([]*entities.Tag, error) {
	var result []*entities.Tag
	for id := range f.links[tagLinkKey{subjectType: subjectType, subjectID: subjectID}] {
		result = append(result, f.tags[id])
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeTagRepo) DeleteAllForSubject(ctx context.Context, db *gorm.DB, subjectType enums.SubjectType, subjectID uint64) error {
	return f.ReplaceTagSet(ctx, db, subjectType, subjectID, nil)
}

// --- TrendingTagCache ---

type fakeTrendingCache struct {
	rank         []mysql.TagUsage
	getErr       error
	refreshCalls int
	lastRefresh  []mysql.TagUsage
}

func newFakeTrendingCache() *fakeTrendingCache {
	return &fakeTrendingCache{getErr: myErrors.ErrCacheMiss}
}

func (f *fakeTrendingCache) RefreshRank(_ context.Context, usages []mysql.TagUsage) error {
	f.refreshCalls++
	f.lastRefresh = usages
	f.rank = usages
	f.getErr = nil
	return nil
}

func (f *fakeTrendingCache) GetRank(_ context.Context, limit int) ([]mysql.TagUsage, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if len(f.rank) > limit {
		return f.rank[:limit], nil
	}
	return f.rank, nil
}
