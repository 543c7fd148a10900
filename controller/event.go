package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// EventController 定义活动控制器的结构体
type EventController struct {
	eventService service.EventService
}

// NewEventController 构造函数，用于创建 EventController 实例
func NewEventController(eventService service.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent 创建活动
// @Summary      创建活动
// @Description  创建新活动。max_participants 为空表示不限名额。组织者ID从请求上下文获取。
// @Tags         events (活动)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateEventRequest true "活动内容"
// @Success      200 {object} vo.EventResponseWrapper "成功响应，包含新活动"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Router       /api/v1/community/events [post]
func (ctrl *EventController) CreateEvent(c *gin.Context) {
	var reqDTO dto.CreateEventRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	organizerID, ok := currentUserID(c)
	if !ok {
		return
	}

	event, err := ctrl.eventService.CreateEvent(c.Request.Context(), organizerID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "创建活动失败")
		return
	}
	response.RespondSuccess(c, event, "活动创建成功")
}

// GetEvent 获取活动详情
// @Summary      获取活动详情
// @Description  返回活动信息、实时报名数和容量状态（open/full）。
// @Tags         events (活动)
// @Produce      json
// @Param        event_id path uint64 true "活动ID" minimum(1)
// @Success      200 {object} vo.EventResponseWrapper "成功响应"
// @Failure      404 {object} vo.BaseResponseWrapper "活动不存在"
// @Router       /api/v1/community/events/{event_id} [get]
func (ctrl *EventController) GetEvent(c *gin.Context) {
	eventID, ok := parseUint64Param(c, "event_id")
	if !ok {
		return
	}

	event, err := ctrl.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondServiceError(c, err, "检索活动失败")
		return
	}
	response.RespondSuccess(c, event, "活动详情检索成功")
}

// ListEvents 获取活动列表
// @Summary      获取活动列表 (公开)
// @Description  分页查询活动，支持按状态、分类、组织者、开始时间区间筛选和关键词搜索，按开始时间升序。
// @Tags         events (活动)
// @Produce      json
// @Param        page query int true "页码 (从1开始)" minimum(1) default(1)
// @Param        page_size query int true "每页数量" minimum(1) maximum(100) default(10)
// @Param        status query int false "活动状态 (0:未开始, 1:已取消, 2:已完结)" Enums(0,1,2)
// @Param        category_id query uint64 false "按分类筛选"
// @Param        organizer_id query string false "按组织者筛选"
// @Param        from query string false "开始时间下界 (RFC3339)" format(date-time)
// @Param        to query string false "开始时间上界 (RFC3339)" format(date-time)
// @Param        keyword query string false "标题/地点模糊搜索" maxLength(255)
// @Success      200 {object} vo.ListEventsPageResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/v1/community/events [get]
func (ctrl *EventController) ListEvents(c *gin.Context) {
	var reqDTO dto.ListEventsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	page, err := ctrl.eventService.ListEvents(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取活动列表失败")
		return
	}
	response.RespondSuccess(c, page, "活动列表获取成功")
}

// CancelEvent 取消活动
// @Summary      取消活动
// @Description  取消活动，全部已报名用户收到通知。仅组织者可操作，重复取消幂等。
// @Tags         events (活动)
// @Produce      json
// @Param        event_id path uint64 true "活动ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "取消成功"
// @Failure      403 {object} vo.BaseResponseWrapper "非组织者操作"
// @Failure      409 {object} vo.BaseResponseWrapper "活动已完结"
// @Router       /api/v1/community/events/{event_id}/cancel [post]
func (ctrl *EventController) CancelEvent(c *gin.Context) {
	eventID, ok := parseUint64Param(c, "event_id")
	if !ok {
		return
	}
	organizerID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.eventService.CancelEvent(c.Request.Context(), organizerID, eventID); err != nil {
		respondServiceError(c, err, "取消活动失败")
		return
	}
	response.RespondSuccess[any](c, nil, "活动已取消")
}

// Register 报名活动
// @Summary      报名活动
// @Description  为当前用户报名活动。名额已满返回 409 (满员)，重复报名返回 409 (已报名)。
// @Tags         events (活动)
// @Produce      json
// @Param        event_id path uint64 true "活动ID" minimum(1)
// @Success      200 {object} vo.RegistrationResponseWrapper "成功响应，包含报名记录"
// @Failure      404 {object} vo.BaseResponseWrapper "活动不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "名额已满/已报名/活动已取消或完结"
// @Router       /api/v1/community/events/{event_id}/register [post]
func (ctrl *EventController) Register(c *gin.Context) {
	eventID, ok := parseUint64Param(c, "event_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	registration, err := ctrl.eventService.Register(c.Request.Context(), eventID, userID)
	if err != nil {
		respondServiceError(c, err, "报名失败")
		return
	}
	response.RespondSuccess(c, registration, "报名成功")
}

// Unregister 取消报名
// @Summary      取消报名
// @Description  取消当前用户的报名，名额立即释放。未报名时幂等成功。
// @Tags         events (活动)
// @Produce      json
// @Param        event_id path uint64 true "活动ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "取消成功"
// @Failure      404 {object} vo.BaseResponseWrapper "活动不存在"
// @Router       /api/v1/community/events/{event_id}/register [delete]
func (ctrl *EventController) Unregister(c *gin.Context) {
	eventID, ok := parseUint64Param(c, "event_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.eventService.Unregister(c.Request.Context(), eventID, userID); err != nil {
		respondServiceError(c, err, "取消报名失败")
		return
	}
	response.RespondSuccess[any](c, nil, "报名已取消")
}

// GetMyRegistration 查询我的报名状态
// @Summary      查询我的报名状态
// @Description  查询当前用户在某活动的报名记录，未报名时 data 为 null。
// @Tags         events (活动)
// @Produce      json
// @Param        event_id path uint64 true "活动ID" minimum(1)
// @Success      200 {object} vo.RegistrationResponseWrapper "成功响应"
// @Router       /api/v1/community/events/{event_id}/registration [get]
func (ctrl *EventController) GetMyRegistration(c *gin.Context) {
	eventID, ok := parseUint64Param(c, "event_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	registration, err := ctrl.eventService.GetMyRegistration(c.Request.Context(), eventID, userID)
	if err != nil {
		respondServiceError(c, err, "查询报名状态失败")
		return
	}
	response.RespondSuccess(c, registration, "报名状态查询成功")
}

// ListParticipants 查看报名名单
// @Summary      查看报名名单
// @Description  返回活动的全部报名记录，按报名时间升序。仅组织者可查看。
// @Tags         events (活动)
// @Produce      json
// @Param        event_id path uint64 true "活动ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含报名名单"
// @Failure      403 {object} vo.BaseResponseWrapper "非组织者操作"
// @Router       /api/v1/community/events/{event_id}/participants [get]
func (ctrl *EventController) ListParticipants(c *gin.Context) {
	eventID, ok := parseUint64Param(c, "event_id")
	if !ok {
		return
	}
	organizerID, ok := currentUserID(c)
	if !ok {
		return
	}

	participants, err := ctrl.eventService.ListParticipants(c.Request.Context(), organizerID, eventID)
	if err != nil {
		respondServiceError(c, err, "获取报名名单失败")
		return
	}
	response.RespondSuccess(c, participants, "报名名单获取成功")
}

// UpdateAttendance 更新到场状态
// @Summary      更新到场状态
// @Description  活动结束后组织者标记报名者的到场情况（registered/attended/absent）。
// @Tags         events (活动)
// @Accept       json
// @Produce      json
// @Param        event_id path uint64 true "活动ID" minimum(1)
// @Param        request body dto.UpdateAttendanceRequest true "报名者与到场状态"
// @Success      200 {object} vo.BaseResponseWrapper "更新成功"
// @Failure      403 {object} vo.BaseResponseWrapper "非组织者操作"
// @Failure      404 {object} vo.BaseResponseWrapper "报名记录不存在"
// @Router       /api/v1/community/events/{event_id}/attendance [put]
func (ctrl *EventController) UpdateAttendance(c *gin.Context) {
	eventID, ok := parseUint64Param(c, "event_id")
	if !ok {
		return
	}
	var reqDTO dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	organizerID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.eventService.UpdateAttendance(c.Request.Context(), organizerID, eventID, &reqDTO); err != nil {
		respondServiceError(c, err, "更新到场状态失败")
		return
	}
	response.RespondSuccess[any](c, nil, "到场状态已更新")
}

// ListMyEvents 获取我报名的活动
// @Summary      获取我报名的活动
// @Description  分页返回当前用户报名过的活动，按报名时间倒序。
// @Tags         events (活动)
// @Produce      json
// @Param        page query int true "页码 (从1开始)" minimum(1) default(1)
// @Param        page_size query int true "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.ListEventsPageResponseWrapper "成功响应"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Router       /api/v1/community/events/mine [get]
func (ctrl *EventController) ListMyEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := ctrl.eventService.ListMyEvents(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "获取我的活动失败")
		return
	}
	response.RespondSuccess(c, result, "我的活动获取成功")
}

// RegisterRoutes 注册 EventController 的路由
func (ctrl *EventController) RegisterRoutes(group *gin.RouterGroup) {
	events := group.Group("/events")
	{
		events.POST("", ctrl.CreateEvent)                            // POST   /api/v1/community/events
		events.GET("", ctrl.ListEvents)                              // GET    /api/v1/community/events
		events.GET("/mine", ctrl.ListMyEvents)                       // GET    /api/v1/community/events/mine
		events.GET("/:event_id", ctrl.GetEvent)                      // GET    /api/v1/community/events/:event_id
		events.POST("/:event_id/cancel", ctrl.CancelEvent)           // POST   /api/v1/community/events/:event_id/cancel
		events.POST("/:event_id/register", ctrl.Register)            // POST   /api/v1/community/events/:event_id/register
		events.DELETE("/:event_id/register", ctrl.Unregister)        // DELETE /api/v1/community/events/:event_id/register
		events.GET("/:event_id/registration", ctrl.GetMyRegistration) // GET   /api/v1/community/events/:event_id/registration
		events.GET("/:event_id/participants", ctrl.ListParticipants) // GET    /api/v1/community/events/:event_id/participants
		events.PUT("/:event_id/attendance", ctrl.UpdateAttendance)   // PUT    /api/v1/community/events/:event_id/attendance
	}
}
