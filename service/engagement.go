package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// EngagementService 定义了点赞/收藏/表态的业务逻辑接口。
//
// 三种信号共享同一套主语定位逻辑: 先确认内容存在，再落信号。
// 所有操作都是幂等开关或单值覆盖，重复调用不会累积副作用。
type EngagementService interface {
	// ToggleLike 切换点赞状态，返回操作后的最新状态。
	// 点亮时给作者发通知、加声望；给自己点赞不发通知。
	ToggleLike(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (*vo.ToggleResultVO, error)

	// ToggleBookmark 切换收藏状态，返回操作后的最新状态。收藏是私有行为，不通知作者。
	ToggleBookmark(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (*vo.ToggleResultVO, error)

	// SetReaction 设置或覆盖表态，同一用户对同一内容只保留最后一次。
	SetReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string, reaction enums.ReactionType) (*vo.ReactionVO, error)

	// ClearReaction 清除表态，不存在时静默成功。
	ClearReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) error

	// ListBookmarkedPosts 分页返回用户收藏的帖子。
	ListBookmarkedPosts(ctx context.Context, userID string, page, pageSize int) (*vo.ListPostsPageVO, error)
}

type engagementService struct {
	likeRepo        mysql.LikeRepository
	bookmarkRepo    mysql.BookmarkRepository
	reactionRepo    mysql.ReactionRepository
	reputationRepo  mysql.ReputationRepository
	postRepo        mysql.PostRepository
	questionRepo    mysql.QuestionRepository
	commentRepo     mysql.CommentRepository
	answerRepo      mysql.AnswerRepository
	aggregateRepo   mysql.AggregateRepository
	notificationSvc NotificationService
	logger          *core.ZapLogger
}

// NewEngagementService 是 engagementService 的构造函数。
func NewEngagementService(
	likeRepo mysql.LikeRepository,
	bookmarkRepo mysql.BookmarkRepository,
	reactionRepo mysql.ReactionRepository,
	reputationRepo mysql.ReputationRepository,
	postRepo mysql.PostRepository,
	questionRepo mysql.QuestionRepository,
	commentRepo mysql.CommentRepository,
	answerRepo mysql.AnswerRepository,
	aggregateRepo mysql.AggregateRepository,
	notificationSvc NotificationService,
	logger *core.ZapLogger,
) EngagementService {
	return &engagementService{
		likeRepo:        likeRepo,
		bookmarkRepo:    bookmarkRepo,
		reactionRepo:    reactionRepo,
		reputationRepo:  reputationRepo,
		postRepo:        postRepo,
		questionRepo:    questionRepo,
		commentRepo:     commentRepo,
		answerRepo:      answerRepo,
		aggregateRepo:   aggregateRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// resolveAuthor 确认主语内容存在并返回其作者ID。
// 内容不存在时透传仓库层的 ErrRepoNotFound。
func (s *engagementService) resolveAuthor(ctx context.Context, subjectType enums.SubjectType, subjectID uint64) (string, error) {
	switch subjectType {
	case enums.SubjectPost:
		post, err := s.postRepo.GetPostByID(ctx, subjectID)
		if err != nil {
			return "", err
		}
		return post.AuthorID, nil
	case enums.SubjectQuestion:
		question, err := s.questionRepo.GetQuestionByID(ctx, subjectID)
		if err != nil {
			return "", err
		}
		return question.AuthorID, nil
	case enums.SubjectComment:
		comment, err := s.commentRepo.GetCommentByID(ctx, subjectID)
		if err != nil {
			return "", err
		}
		return comment.AuthorID, nil
	case enums.SubjectAnswer:
		answer, err := s.answerRepo.GetAnswerByID(ctx, subjectID)
		if err != nil {
			return "", err
		}
		return answer.AuthorID, nil
	default:
		return "", fmt.Errorf("%w: %d", myErrors.ErrInvalidSubjectType, subjectType)
	}
}

// adjustDenormalizedLikeCount 同步评论/回答行上的展示计数。
// 帖子和问题的点赞数由聚合层实时统计，没有冗余列。
func (s *engagementService) adjustDenormalizedLikeCount(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, delta int64) {
	var err error
	switch subjectType {
	case enums.SubjectComment:
		err = s.commentRepo.AdjustLikeCount(ctx, subjectID, delta)
	case enums.SubjectAnswer:
		err = s.answerRepo.AdjustLikeCount(ctx, subjectID, delta)
	default:
		return
	}
	if err != nil {
		s.logger.Warn("同步点赞展示计数失败",
			zap.String("subjectType", subjectType.String()),
			zap.Uint64("subjectID", subjectID),
			zap.Error(err))
	}
}

func (s *engagementService) ToggleLike(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (*vo.ToggleResultVO, error) {
	authorID, err := s.resolveAuthor(ctx, subjectType, subjectID)
	if err != nil {
		return nil, err
	}

	active, err := s.likeRepo.ToggleLike(ctx, subjectType, subjectID, userID)
	if err != nil {
		return nil, err
	}

	if active {
		s.adjustDenormalizedLikeCount(ctx, subjectType, subjectID, 1)
		if authorID != userID {
			s.notificationSvc.Notify(ctx, authorID, constant.NotificationTypeContentLiked, map[string]interface{}{
				"subject_type": subjectType,
				"subject_id":   subjectID,
				"liker_id":     userID,
			})
			// 声望只进不出，取消点赞不回收。
			if repErr := s.reputationRepo.AddPoints(ctx, authorID, constant.ReputationPointsLikeReceived); repErr != nil {
				s.logger.Warn("累加作者声望失败", zap.String("authorID", authorID), zap.Error(repErr))
			}
		}
	} else {
		s.adjustDenormalizedLikeCount(ctx, subjectType, subjectID, -1)
	}

	return &vo.ToggleResultVO{SubjectID: subjectID, Active: active}, nil
}

func (s *engagementService) ToggleBookmark(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) (*vo.ToggleResultVO, error) {
	if _, err := s.resolveAuthor(ctx, subjectType, subjectID); err != nil {
		return nil, err
	}

	active, err := s.bookmarkRepo.ToggleBookmark(ctx, subjectType, subjectID, userID)
	if err != nil {
		return nil, err
	}
	return &vo.ToggleResultVO{SubjectID: subjectID, Active: active}, nil
}

func (s *engagementService) SetReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string, reaction enums.ReactionType) (*vo.ReactionVO, error) {
	if !reaction.IsValid() {
		return nil, fmt.Errorf("%w: %s", myErrors.ErrInvalidReactionType, reaction)
	}
	if _, err := s.resolveAuthor(ctx, subjectType, subjectID); err != nil {
		return nil, err
	}

	if err := s.reactionRepo.SetReaction(ctx, subjectType, subjectID, userID, reaction); err != nil {
		return nil, err
	}

	record, err := s.reactionRepo.GetReaction(ctx, subjectType, subjectID, userID)
	if err != nil || record == nil {
		// 刚写入就读不到只可能是并发清除，按成功返回请求值。
		return &vo.ReactionVO{SubjectID: subjectID, Type: string(reaction)}, nil
	}
	return &vo.ReactionVO{SubjectID: subjectID, Type: string(record.Type), UpdatedAt: record.UpdatedAt}, nil
}

func (s *engagementService) ClearReaction(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, userID string) error {
	return s.reactionRepo.ClearReaction(ctx, subjectType, subjectID, userID)
}

func (s *engagementService) ListBookmarkedPosts(ctx context.Context, userID string, page, pageSize int) (*vo.ListPostsPageVO, error) {
	offset := (page - 1) * pageSize
	ids, total, err := s.bookmarkRepo.ListBookmarkedIDs(ctx, enums.SubjectPost, userID, offset, pageSize)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetPostsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	commentCounts, err := s.aggregateRepo.CommentCountsByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.aggregateRepo.LikeCountsBySubjectIDs(ctx, enums.SubjectPost, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*vo.PostResponse, 0, len(posts))
	for _, post := range posts {
		item := vo.MapPostToResponseVO(post)
		item.CommentsCount = commentCounts[post.ID]
		item.LikesCount = likeCounts[post.ID]
		items = append(items, item)
	}
	return &vo.ListPostsPageVO{Posts: items, Total: total}, nil
}
