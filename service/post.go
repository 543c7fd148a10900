package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonEnums "github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// PostService 定义了帖子及其评论的核心业务逻辑接口。
type PostService interface {
	// CreatePost 处理用户发布新帖子的业务流程。
	// - 帖子与标签关联在同一事务内原子写入，任何未知标签ID导致整体失败。
	// - 新帖子以待审核状态落库，成功后异步触发 Kafka 事件通知审核服务。
	CreatePost(ctx context.Context, userID string, req *dto.CreatePostRequest) (*vo.PostDetailVO, error)

	// GetPostDetail 获取帖子详情: 正文、分类、标签、评论、实时计数。
	// - viewerID 非空时附带该用户的互动状态（是否点赞/收藏/表态）。
	GetPostDetail(ctx context.Context, postID uint64, viewerID string) (*vo.PostDetailVO, error)

	// UpdatePost 部分更新帖子，仅作者本人可操作。
	// - TagIDs 非 nil 时整体替换标签集合，与字段更新同事务。
	// - 标题或正文变更后帖子回到待审核状态并重新送审。
	UpdatePost(ctx context.Context, userID string, postID uint64, req *dto.UpdatePostRequest) (*vo.PostDetailVO, error)

	// DeletePost 删除帖子，仅作者本人可操作。
	// - 同一事务内级联清理标签关联、评论和全部互动信号，然后软删除帖子本体。
	// - 成功后异步通知下游清理派生数据。
	DeletePost(ctx context.Context, userID string, postID uint64) error

	// ListPosts 按条件分页查询帖子，附带实时评论数与点赞数。
	ListPosts(ctx context.Context, req *dto.ListPostsRequest) (*vo.ListPostsPageVO, error)

	// CreateComment 给帖子添加评论，并通知帖子作者。
	CreateComment(ctx context.Context, userID string, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error)

	// DeleteComment 删除评论。评论作者或帖子作者可操作。
	DeleteComment(ctx context.Context, userID string, commentID uint64) error
}

type postService struct {
	db              *gorm.DB
	postRepo        mysql.PostRepository
	commentRepo     mysql.CommentRepository
	tagRepo         mysql.TagRepository
	categoryRepo    mysql.CategoryRepository
	likeRepo        mysql.LikeRepository
	bookmarkRepo    mysql.BookmarkRepository
	reactionRepo    mysql.ReactionRepository
	reputationRepo  mysql.ReputationRepository
	aggregateRepo   mysql.AggregateRepository
	notificationSvc NotificationService
	kafkaSvc        *producer.KafkaProducer
	logger          *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	commentRepo mysql.CommentRepository,
	tagRepo mysql.TagRepository,
	categoryRepo mysql.CategoryRepository,
	likeRepo mysql.LikeRepository,
	bookmarkRepo mysql.BookmarkRepository,
	reactionRepo mysql.ReactionRepository,
	reputationRepo mysql.ReputationRepository,
	aggregateRepo mysql.AggregateRepository,
	notificationSvc NotificationService,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:              db,
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		tagRepo:         tagRepo,
		categoryRepo:    categoryRepo,
		likeRepo:        likeRepo,
		bookmarkRepo:    bookmarkRepo,
		reactionRepo:    reactionRepo,
		reputationRepo:  reputationRepo,
		aggregateRepo:   aggregateRepo,
		notificationSvc: notificationSvc,
		kafkaSvc:        kafkaSvc,
		logger:          logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, userID string, req *dto.CreatePostRequest) (*vo.PostDetailVO, error) {
	post := &entities.Post{
		Title:          req.Title,
		Content:        req.Content,
		AuthorID:       userID,
		AuthorUsername: req.AuthorUsername,
		AuthorAvatar:   req.AuthorAvatar,
		Status:         commonEnums.Pending,
		CategoryID:     req.CategoryID,
		ImageURL:       req.ImageURL,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.postRepo.CreatePost(ctx, tx, post); err != nil {
			return err
		}
		return s.tagRepo.ReplaceTagSet(ctx, tx, enums.SubjectPost, post.ID, req.TagIDs)
	})
	if err != nil {
		s.logger.Error("创建帖子事务失败", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("帖子创建成功", zap.Uint64("postID", post.ID), zap.String("userID", userID))
	s.submitForModeration(enums.SubjectPost, post.ID, post.Title, post.Content, post.AuthorID, post.AuthorUsername, post.CreatedAt)

	return s.GetPostDetail(ctx, post.ID, userID)
}

// submitForModeration 异步把内容推给审核服务。发送失败只记日志，
// 内容停留在待审核状态，可由管理端重推。
func (s *postService) submitForModeration(subjectType enums.SubjectType, subjectID uint64, title, content, authorID, authorName string, createdAt time.Time) {
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := s.kafkaSvc.SendContentPendingModerationEvent(sendCtx, events.ContentData{
			SubjectType: subjectType,
			SubjectID:   subjectID,
			Title:       title,
			Content:     content,
			AuthorID:    authorID,
			AuthorName:  authorName,
			CreatedAt:   createdAt.UnixMilli(),
		})
		if err != nil {
			s.logger.Error("发送内容待审核事件失败",
				zap.String("subjectType", subjectType.String()),
				zap.Uint64("subjectID", subjectID),
				zap.Error(err))
		}
	}()
}

func (s *postService) GetPostDetail(ctx context.Context, postID uint64, viewerID string) (*vo.PostDetailVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	detail := &vo.PostDetailVO{
		PostResponse: *vo.MapPostToResponseVO(post),
		Content:      post.Content,
	}

	if post.CategoryID != nil {
		category, catErr := s.categoryRepo.GetCategoryByID(ctx, *post.CategoryID)
		if catErr == nil {
			detail.Category = vo.MapCategoryToVO(category)
		}
		// 分类被删不影响帖子详情，静默降级。
	}

	tags, err := s.tagRepo.GetTagsForSubject(ctx, enums.SubjectPost, postID)
	if err != nil {
		return nil, err
	}
	detail.Tags = vo.MapTagsToVOs(tags)

	comments, err := s.commentRepo.ListCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	detail.Comments = make([]vo.CommentVO, 0, len(comments))
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, vo.MapCommentToVO(comment))
	}
	detail.CommentsCount = int64(len(comments))

	likeCounts, err := s.aggregateRepo.LikeCountsBySubjectIDs(ctx, enums.SubjectPost, []uint64{postID})
	if err != nil {
		return nil, err
	}
	detail.LikesCount = likeCounts[postID]

	if viewerID != "" {
		viewer, viewerErr := s.loadViewerState(ctx, enums.SubjectPost, postID, viewerID)
		if viewerErr != nil {
			// 互动状态是附加信息，查不到不阻塞详情。
			s.logger.Warn("加载用户互动状态失败", zap.Uint64("postID", postID), zap.Error(viewerErr))
		} else {
			detail.Viewer = viewer
		}
	}
	return detail, nil
}

func (s *postService) loadViewerState(ctx context.Context, subjectType enums.SubjectType, subjectID uint64, viewerID string) (*vo.ViewerState, error) {
	liked, err := s.likeRepo.HasLiked(ctx, subjectType, subjectID, viewerID)
	if err != nil {
		return nil, err
	}
	bookmarked, err := s.bookmarkRepo.HasBookmarked(ctx, subjectType, subjectID, viewerID)
	if err != nil {
		return nil, err
	}
	state := &vo.ViewerState{Liked: liked, Bookmarked: bookmarked}

	reaction, err := s.reactionRepo.GetReaction(ctx, subjectType, subjectID, viewerID)
	if err != nil {
		return nil, err
	}
	if reaction != nil {
		state.Reaction = string(reaction.Type)
	}
	return state, nil
}

func (s *postService) UpdatePost(ctx context.Context, userID string, postID uint64, req *dto.UpdatePostRequest) (*vo.PostDetailVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, fmt.Errorf("%w: 只有作者可以编辑帖子", myErrors.ErrForbidden)
	}

	updates := make(map[string]interface{})
	needsModeration := false
	if req.Title != nil && *req.Title != post.Title {
		updates["title"] = *req.Title
		needsModeration = true
	}
	if req.Content != nil && *req.Content != post.Content {
		updates["content"] = *req.Content
		needsModeration = true
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if needsModeration {
		updates["status"] = commonEnums.Pending
		updates["audit_reason"] = nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.postRepo.UpdatePost(ctx, tx, postID, updates); err != nil {
			return err
		}
		if req.TagIDs != nil {
			return s.tagRepo.ReplaceTagSet(ctx, tx, enums.SubjectPost, postID, *req.TagIDs)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("更新帖子事务失败", zap.Uint64("postID", postID), zap.Error(err))
		return nil, err
	}

	if needsModeration {
		title, content := post.Title, post.Content
		if req.Title != nil {
			title = *req.Title
		}
		if req.Content != nil {
			content = *req.Content
		}
		s.submitForModeration(enums.SubjectPost, postID, title, content, post.AuthorID, post.AuthorUsername, post.CreatedAt)
	}
	return s.GetPostDetail(ctx, postID, userID)
}

func (s *postService) DeletePost(ctx context.Context, userID string, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return fmt.Errorf("%w: 只有作者可以删除帖子", myErrors.ErrForbidden)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 清理顺序: 关联与信号在前，帖子本体最后。
		if err := s.tagRepo.DeleteAllForSubject(ctx, tx, enums.SubjectPost, postID); err != nil {
			return err
		}
		if err := s.commentRepo.DeleteAllForPost(ctx, tx, postID); err != nil {
			return err
		}
		if err := s.likeRepo.DeleteAllForSubject(ctx, tx, enums.SubjectPost, postID); err != nil {
			return err
		}
		if err := s.bookmarkRepo.DeleteAllForSubject(ctx, tx, enums.SubjectPost, postID); err != nil {
			return err
		}
		if err := s.reactionRepo.DeleteAllForSubject(ctx, tx, enums.SubjectPost, postID); err != nil {
			return err
		}
		return s.postRepo.DeletePost(ctx, tx, postID)
	})
	if err != nil {
		s.logger.Error("删除帖子事务失败", zap.Uint64("postID", postID), zap.Error(err))
		return err
	}

	s.logger.Info("帖子已删除", zap.Uint64("postID", postID), zap.String("userID", userID))
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if sendErr := s.kafkaSvc.SendContentDeletedEvent(sendCtx, enums.SubjectPost, postID); sendErr != nil {
			s.logger.Error("发送内容删除事件失败", zap.Uint64("postID", postID), zap.Error(sendErr))
		}
	}()
	return nil
}

func (s *postService) ListPosts(ctx context.Context, req *dto.ListPostsRequest) (*vo.ListPostsPageVO, error) {
	posts, total, err := s.postRepo.ListPosts(ctx, req)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
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

func (s *postService) CreateComment(ctx context.Context, userID string, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		PostID:         postID,
		AuthorID:       userID,
		AuthorUsername: req.AuthorUsername,
		Content:        req.Content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		s.notificationSvc.Notify(ctx, post.AuthorID, constant.NotificationTypeNewComment, map[string]interface{}{
			"post_id":    postID,
			"comment_id": comment.ID,
			"author_id":  userID,
		})
	}
	if repErr := s.reputationRepo.AddPoints(ctx, userID, constant.ReputationPointsCommentCreated); repErr != nil {
		s.logger.Warn("累加评论者声望失败", zap.String("userID", userID), zap.Error(repErr))
	}

	result := vo.MapCommentToVO(comment)
	return &result, nil
}

func (s *postService) DeleteComment(ctx context.Context, userID string, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		// 帖子作者也有权清理自己帖子下的评论。
		post, postErr := s.postRepo.GetPostByID(ctx, comment.PostID)
		if postErr != nil || post.AuthorID != userID {
			return fmt.Errorf("%w: 无权删除该评论", myErrors.ErrForbidden)
		}
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}
