package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/service"
)

// NotificationController 定义站内通知控制器的结构体
type NotificationController struct {
	notificationService service.NotificationService
}

// NewNotificationController 构造函数，用于创建 NotificationController 实例
func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications 获取我的通知
// @Summary      获取我的通知
// @Description  分页返回当前用户的站内通知，按时间倒序，附带未读总数。
// @Tags         notifications (通知)
// @Produce      json
// @Param        page query int true "页码 (从1开始)" minimum(1) default(1)
// @Param        page_size query int true "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含通知列表与未读数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Router       /api/v1/community/notifications [get]
func (ctrl *NotificationController) ListNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := ctrl.notificationService.ListNotifications(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "获取通知列表失败")
		return
	}
	response.RespondSuccess(c, result, "通知列表获取成功")
}

// MarkRead 标记通知已读
// @Summary      标记通知已读
// @Description  把当前用户的一条通知置为已读。不属于当前用户的通知表现为不存在。
// @Tags         notifications (通知)
// @Produce      json
// @Param        notification_id path uint64 true "通知ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "标记成功"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Router       /api/v1/community/notifications/{notification_id}/read [put]
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	notificationID, ok := parseUint64Param(c, "notification_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.notificationService.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		respondServiceError(c, err, "标记通知已读失败")
		return
	}
	response.RespondSuccess[any](c, nil, "通知已标记为已读")
}

// MarkAllRead 全部已读
// @Summary      全部通知已读
// @Description  把当前用户的全部未读通知置为已读。
// @Tags         notifications (通知)
// @Produce      json
// @Success      200 {object} vo.BaseResponseWrapper "标记成功"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Router       /api/v1/community/notifications/read-all [put]
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "标记全部已读失败")
		return
	}
	response.RespondSuccess[any](c, nil, "全部通知已标记为已读")
}

// RegisterRoutes 注册 NotificationController 的路由
func (ctrl *NotificationController) RegisterRoutes(group *gin.RouterGroup) {
	notifications := group.Group("/notifications")
	{
		notifications.GET("", ctrl.ListNotifications)              // GET /api/v1/community/notifications
		notifications.PUT("/read-all", ctrl.MarkAllRead)           // PUT /api/v1/community/notifications/read-all
		notifications.PUT("/:notification_id/read", ctrl.MarkRead) // PUT /api/v1/community/notifications/:notification_id/read
	}
}
