package mysql

import (
	"context"
	"sort"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// TagUsage 是窗口期内单个标签的使用次数统计结果。
type TagUsage struct {
	TagID uint64
	Count int64
}

// AggregateRepository 定义了面向列表视图的批量计数查询接口。
//
// 计数一律从事实表（评论表、信号表、报名表、关联表）按需聚合，不依赖内容行上的
// 冗余列；一个列表页的所有计数合并成一条 GROUP BY 查询而不是每行一查。
// 未出现在结果 map 中的ID计数为 0，调用方不需要特判。
type AggregateRepository interface {
	// CommentCountsByPostIDs 批量统计帖子的评论数。
	CommentCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)

	// AnswerCountsByQuestionIDs 批量统计问题的回答数。
	AnswerCountsByQuestionIDs(ctx context.Context, questionIDs []uint64) (map[uint64]int64, error)

	// LikeCountsBySubjectIDs 批量统计某类内容的点赞数。
	LikeCountsBySubjectIDs(ctx context.Context, subjectType enums.SubjectType, subjectIDs []uint64) (map[uint64]int64, error)

	// BookmarkCountsBySubjectIDs 批量统计某类内容的收藏数。
	BookmarkCountsBySubjectIDs(ctx context.Context, subjectType enums.SubjectType, subjectIDs []uint64) (map[uint64]int64, error)

	// ParticipantCountsByEventIDs 批量统计活动的报名人数。
	ParticipantCountsByEventIDs(ctx context.Context, eventIDs []uint64) (map[uint64]int64, error)

	// TagUsageSince 统计窗口期内新建的标签关联次数（帖子与问题合并），
	// 按次数降序取前 limit 个。喂给热门标签榜。
	TagUsageSince(ctx context.Context, since time.Time, limit int) ([]TagUsage, error)
}

type aggregateRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewAggregateRepository 是 aggregateRepository 的构造函数。
func NewAggregateRepository(db *gorm.DB, logger *core.ZapLogger) AggregateRepository {
	return &aggregateRepository{db: db, logger: logger}
}

type countRow struct {
	ID    uint64
	Count int64
}

func rowsToMap(rows []countRow) map[uint64]int64 {
	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts
}

func (r *aggregateRepository) CommentCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	if len(postIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	var rows []countRow
	err := r.db.WithContext(ctx).Model(&entities.Comment{}).
		Select("post_id AS id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计评论数失败", zap.Error(err))
		return nil, err
	}
	return rowsToMap(rows), nil
}

func (r *aggregateRepository) AnswerCountsByQuestionIDs(ctx context.Context, questionIDs []uint64) (map[uint64]int64, error) {
	if len(questionIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	var rows []countRow
	err := r.db.WithContext(ctx).Model(&entities.Answer{}).
		Select("question_id AS id, COUNT(*) AS count").
		Where("question_id IN ?", questionIDs).
		Group("question_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计回答数失败", zap.Error(err))
		return nil, err
	}
	return rowsToMap(rows), nil
}

func (r *aggregateRepository) LikeCountsBySubjectIDs(ctx context.Context, subjectType enums.SubjectType, subjectIDs []uint64) (map[uint64]int64, error) {
	if len(subjectIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	var rows []countRow
	err := r.db.WithContext(ctx).Model(&entities.Like{}).
		Select("subject_id AS id, COUNT(*) AS count").
		Where("subject_type = ? AND subject_id IN ?", subjectType, subjectIDs).
		Group("subject_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计点赞数失败", zap.Error(err))
		return nil, err
	}
	return rowsToMap(rows), nil
}

func (r *aggregateRepository) BookmarkCountsBySubjectIDs(ctx context.Context, subjectType enums.SubjectType, subjectIDs []uint64) (map[uint64]int64, error) {
	if len(subjectIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	var rows []countRow
	err := r.db.WithContext(ctx).Model(&entities.Bookmark{}).
		Select("subject_id AS id, COUNT(*) AS count").
		Where("subject_type = ? AND subject_id IN ?", subjectType, subjectIDs).
		Group("subject_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计收藏数失败", zap.Error(err))
		return nil, err
	}
	return rowsToMap(rows), nil
}

func (r *aggregateRepository) ParticipantCountsByEventIDs(ctx context.Context, eventIDs []uint64) (map[uint64]int64, error) {
	if len(eventIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	var rows []countRow
	err := r.db.WithContext(ctx).Model(&entities.EventParticipant{}).
		Select("event_id AS id, COUNT(*) AS count").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计报名人数失败", zap.Error(err))
		return nil, err
	}
	return rowsToMap(rows), nil
}

func (r *aggregateRepository) TagUsageSince(ctx context.Context, since time.Time, limit int) ([]TagUsage, error) {
	// 两张关联表分别聚合再在应用侧合并，避免 UNION 写法对方言的依赖。
	type usageRow struct {
		TagID uint64
		Count int64
	}

	var postRows []usageRow
	err := r.db.WithContext(ctx).Model(&entities.PostTag{}).
		Select("tag_id, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("tag_id").
		Scan(&postRows).Error
	if err != nil {
		r.logger.Error("统计帖子标签使用量失败", zap.Error(err))
		return nil, err
	}

	var questionRows []usageRow
	err = r.db.WithContext(ctx).Model(&entities.QuestionTag{}).
		Select("tag_id, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("tag_id").
		Scan(&questionRows).Error
	if err != nil {
		r.logger.Error("统计问题标签使用量失败", zap.Error(err))
		return nil, err
	}

	merged := make(map[uint64]int64, len(postRows)+len(questionRows))
	for _, row := range postRows {
		merged[row.TagID] += row.Count
	}
	for _, row := range questionRows {
		merged[row.TagID] += row.Count
	}

	usages := make([]TagUsage, 0, len(merged))
	for tagID, count := range merged {
		usages = append(usages, TagUsage{TagID: tagID, Count: count})
	}
	// 次数降序，同次数按ID升序保证结果稳定。
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].Count != usages[j].Count {
			return usages[i].Count > usages[j].Count
		}
		return usages[i].TagID < usages[j].TagID
	})
	if limit > 0 && len(usages) > limit {
		usages = usages[:limit]
	}
	return usages, nil
}
