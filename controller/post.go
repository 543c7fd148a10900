package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// CreatePost 发布新帖子
// @Summary      发布帖子
// @Description  创建新帖子，可附带分类与标签集合。帖子以待审核状态创建，作者ID从请求上下文获取。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "帖子内容"
// @Success      200 {object} vo.PostDetailResponseWrapper "成功响应，包含新帖子详情"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数或未知标签ID"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var reqDTO dto.CreatePostRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := ctrl.postService.CreatePost(c.Request.Context(), userID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "创建帖子失败")
		return
	}
	response.RespondSuccess(c, detail, "帖子创建成功")
}

// GetPostDetail 获取帖子详情
// @Summary      获取帖子详情
// @Description  返回帖子正文、分类、标签、评论和实时计数；已登录用户附带个人互动状态。
// @Tags         posts (帖子)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Success      200 {object} vo.PostDetailResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子ID"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts/{post_id} [get]
func (ctrl *PostController) GetPostDetail(c *gin.Context) {
	postID, ok := parseUint64Param(c, "post_id")
	if !ok {
		return
	}

	detail, err := ctrl.postService.GetPostDetail(c.Request.Context(), postID, optionalUserID(c))
	if err != nil {
		respondServiceError(c, err, "检索帖子详情失败")
		return
	}
	response.RespondSuccess(c, detail, "帖子详情检索成功")
}

// UpdatePost 编辑帖子
// @Summary      编辑帖子
// @Description  部分更新帖子字段；tag_ids 非空时整体替换标签集合。标题或正文变更后帖子回到待审核状态。仅作者可操作。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        request body dto.UpdatePostRequest true "需要更新的字段"
// @Success      200 {object} vo.PostDetailResponseWrapper "成功响应，包含更新后的帖子详情"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数或未知标签ID"
// @Failure      403 {object} vo.BaseResponseWrapper "非作者操作"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/community/posts/{post_id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	postID, ok := parseUint64Param(c, "post_id")
	if !ok {
		return
	}
	var reqDTO dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := ctrl.postService.UpdatePost(c.Request.Context(), userID, postID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "更新帖子失败")
		return
	}
	response.RespondSuccess(c, detail, "帖子更新成功")
}

// DeletePost 删除帖子
// @Summary      删除帖子
// @Description  删除帖子并级联清理标签关联、评论和互动信号。仅作者可操作。
// @Tags         posts (帖子)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "非作者操作"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/community/posts/{post_id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	postID, ok := parseUint64Param(c, "post_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.postService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		respondServiceError(c, err, "删除帖子失败")
		return
	}
	response.RespondSuccess[any](c, nil, "帖子删除成功")
}

// ListPosts 获取帖子列表
// @Summary      获取帖子列表 (公开)
// @Description  分页查询帖子，支持按分类、标签、作者、状态筛选和标题模糊搜索，附带实时评论数与点赞数。
// @Tags         posts (帖子)
// @Produce      json
// @Param        page query int true "页码 (从1开始)" minimum(1) default(1)
// @Param        page_size query int true "每页数量" minimum(1) maximum(100) default(10)
// @Param        category_id query uint64 false "按分类筛选"
// @Param        tag_id query uint64 false "按标签筛选"
// @Param        author_id query string false "按作者筛选"
// @Param        keyword query string false "标题模糊搜索关键词" maxLength(255)
// @Param        status query int false "帖子状态 (0:待审核, 1:审核通过, 2:拒绝)" Enums(0,1,2)
// @Success      200 {object} vo.ListPostsPageResponseWrapper "成功响应，包含帖子列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/community/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var reqDTO dto.ListPostsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	page, err := ctrl.postService.ListPosts(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取帖子列表失败")
		return
	}
	response.RespondSuccess(c, page, "帖子列表获取成功")
}

// CreateComment 给帖子添加评论
// @Summary      发表评论
// @Description  给帖子添加评论，帖子作者会收到站内通知。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        request body dto.CreateCommentRequest true "评论内容"
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含新评论"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/community/posts/{post_id}/comments [post]
func (ctrl *PostController) CreateComment(c *gin.Context) {
	postID, ok := parseUint64Param(c, "post_id")
	if !ok {
		return
	}
	var reqDTO dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	comment, err := ctrl.postService.CreateComment(c.Request.Context(), userID, postID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "发表评论失败")
		return
	}
	response.RespondSuccess(c, comment, "评论发表成功")
}

// DeleteComment 删除评论
// @Summary      删除评论
// @Description  删除一条评论。评论作者或帖子作者可操作。
// @Tags         posts (帖子)
// @Produce      json
// @Param        comment_id path uint64 true "评论ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Router       /api/v1/community/comments/{comment_id} [delete]
func (ctrl *PostController) DeleteComment(c *gin.Context) {
	commentID, ok := parseUint64Param(c, "comment_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.postService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		respondServiceError(c, err, "删除评论失败")
		return
	}
	response.RespondSuccess[any](c, nil, "评论删除成功")
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.POST("", ctrl.CreatePost)                      // POST   /api/v1/community/posts
		posts.GET("", ctrl.ListPosts)                        // GET    /api/v1/community/posts
		posts.GET("/:post_id", ctrl.GetPostDetail)           // GET    /api/v1/community/posts/:post_id
		posts.PUT("/:post_id", ctrl.UpdatePost)              // PUT    /api/v1/community/posts/:post_id
		posts.DELETE("/:post_id", ctrl.DeletePost)           // DELETE /api/v1/community/posts/:post_id
		posts.POST("/:post_id/comments", ctrl.CreateComment) // POST   /api/v1/community/posts/:post_id/comments
	}
	group.DELETE("/comments/:comment_id", ctrl.DeleteComment) // DELETE /api/v1/community/comments/:comment_id
}
