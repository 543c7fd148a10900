package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// EngagementController 定义互动信号控制器的结构体
type EngagementController struct {
	engagementService service.EngagementService
}

// NewEngagementController 构造函数，用于创建 EngagementController 实例
func NewEngagementController(engagementService service.EngagementService) *EngagementController {
	return &EngagementController{engagementService: engagementService}
}

// ToggleLike 切换点赞状态
// @Summary      点赞/取消点赞
// @Description  对帖子/问题/评论/回答切换点赞状态，返回操作后的最新状态。重复调用幂等。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        request body dto.ToggleRequest true "目标内容"
// @Success      200 {object} vo.ToggleResultResponseWrapper "成功响应，active 为操作后状态"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.BaseResponseWrapper "目标内容不存在"
// @Router       /api/v1/community/likes/toggle [post]
func (ctrl *EngagementController) ToggleLike(c *gin.Context) {
	var reqDTO dto.ToggleRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := ctrl.engagementService.ToggleLike(c.Request.Context(), reqDTO.SubjectType, reqDTO.SubjectID, userID)
	if err != nil {
		respondServiceError(c, err, "切换点赞状态失败")
		return
	}
	response.RespondSuccess(c, result, "点赞状态已更新")
}

// ToggleBookmark 切换收藏状态
// @Summary      收藏/取消收藏
// @Description  对帖子/问题切换收藏状态，返回操作后的最新状态。重复调用幂等。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        request body dto.ToggleRequest true "目标内容"
// @Success      200 {object} vo.ToggleResultResponseWrapper "成功响应"
// @Failure      404 {object} vo.BaseResponseWrapper "目标内容不存在"
// @Router       /api/v1/community/bookmarks/toggle [post]
func (ctrl *EngagementController) ToggleBookmark(c *gin.Context) {
	var reqDTO dto.ToggleRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := ctrl.engagementService.ToggleBookmark(c.Request.Context(), reqDTO.SubjectType, reqDTO.SubjectID, userID)
	if err != nil {
		respondServiceError(c, err, "切换收藏状态失败")
		return
	}
	response.RespondSuccess(c, result, "收藏状态已更新")
}

// SetReaction 设置表态
// @Summary      设置表态
// @Description  对内容设置表态（like/love/helpful），同一用户对同一内容只保留最后一次。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        request body dto.SetReactionRequest true "目标内容与表态类型"
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含当前表态"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的表态类型"
// @Failure      404 {object} vo.BaseResponseWrapper "目标内容不存在"
// @Router       /api/v1/community/reactions [post]
func (ctrl *EngagementController) SetReaction(c *gin.Context) {
	var reqDTO dto.SetReactionRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := ctrl.engagementService.SetReaction(c.Request.Context(), reqDTO.SubjectType, reqDTO.SubjectID, userID, reqDTO.Type)
	if err != nil {
		respondServiceError(c, err, "设置表态失败")
		return
	}
	response.RespondSuccess(c, result, "表态已更新")
}

// ClearReaction 清除表态
// @Summary      清除表态
// @Description  清除用户对某内容的表态，不存在时静默成功。
// @Tags         engagement (互动)
// @Accept       json
// @Produce      json
// @Param        request body dto.ClearReactionRequest true "目标内容"
// @Success      200 {object} vo.BaseResponseWrapper "清除成功"
// @Router       /api/v1/community/reactions [delete]
func (ctrl *EngagementController) ClearReaction(c *gin.Context) {
	var reqDTO dto.ClearReactionRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.engagementService.ClearReaction(c.Request.Context(), reqDTO.SubjectType, reqDTO.SubjectID, userID); err != nil {
		respondServiceError(c, err, "清除表态失败")
		return
	}
	response.RespondSuccess[any](c, nil, "表态已清除")
}

// ListMyBookmarks 获取我的收藏
// @Summary      获取我的收藏帖子
// @Description  分页返回当前用户收藏的帖子，按收藏时间倒序。
// @Tags         engagement (互动)
// @Produce      json
// @Param        page query int true "页码 (从1开始)" minimum(1) default(1)
// @Param        page_size query int true "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.ListPostsPageResponseWrapper "成功响应"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Router       /api/v1/community/bookmarks/mine [get]
func (ctrl *EngagementController) ListMyBookmarks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := ctrl.engagementService.ListBookmarkedPosts(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "获取收藏列表失败")
		return
	}
	response.RespondSuccess(c, result, "收藏列表获取成功")
}

// parsePagination 解析 page/page_size 查询参数，缺省为 1/10。
func parsePagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 page 参数")
		return 0, 0, false
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 page_size 参数")
		return 0, 0, false
	}
	return page, pageSize, true
}

// RegisterRoutes 注册 EngagementController 的路由
func (ctrl *EngagementController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/likes/toggle", ctrl.ToggleLike)         // POST   /api/v1/community/likes/toggle
	group.POST("/bookmarks/toggle", ctrl.ToggleBookmark) // POST   /api/v1/community/bookmarks/toggle
	group.GET("/bookmarks/mine", ctrl.ListMyBookmarks)   // GET    /api/v1/community/bookmarks/mine
	group.POST("/reactions", ctrl.SetReaction)           // POST   /api/v1/community/reactions
	group.DELETE("/reactions", ctrl.ClearReaction)       // DELETE /api/v1/community/reactions
}
