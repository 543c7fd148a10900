package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// TaxonomyController 定义分类与标签控制器的结构体
type TaxonomyController struct {
	taxonomyService service.TaxonomyService
	trendingService service.TrendingService
}

// NewTaxonomyController 构造函数，用于创建 TaxonomyController 实例
func NewTaxonomyController(taxonomyService service.TaxonomyService, trendingService service.TrendingService) *TaxonomyController {
	return &TaxonomyController{
		taxonomyService: taxonomyService,
		trendingService: trendingService,
	}
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Description  创建新的内容分类。分类名全局唯一。
// @Tags         taxonomy (分类与标签)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "分类内容"
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含新分类"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Router       /api/v1/community/categories [post]
func (ctrl *TaxonomyController) CreateCategory(c *gin.Context) {
	var reqDTO dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	category, err := ctrl.taxonomyService.CreateCategory(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "创建分类失败")
		return
	}
	response.RespondSuccess(c, category, "分类创建成功")
}

// ListCategories 获取全部分类
// @Summary      获取分类列表 (公开)
// @Description  返回全部内容分类，按ID升序。
// @Tags         taxonomy (分类与标签)
// @Produce      json
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含分类列表"
// @Router       /api/v1/community/categories [get]
func (ctrl *TaxonomyController) ListCategories(c *gin.Context) {
	categories, err := ctrl.taxonomyService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取分类列表失败")
		return
	}
	response.RespondSuccess(c, categories, "分类列表获取成功")
}

// CreateTag 创建标签
// @Summary      创建标签
// @Description  创建新标签。slug 缺省时由名称自动生成，名称与 slug 均全局唯一。
// @Tags         taxonomy (分类与标签)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTagRequest true "标签内容"
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含新标签"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Router       /api/v1/community/tags [post]
func (ctrl *TaxonomyController) CreateTag(c *gin.Context) {
	var reqDTO dto.CreateTagRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	tag, err := ctrl.taxonomyService.CreateTag(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "创建标签失败")
		return
	}
	response.RespondSuccess(c, tag, "标签创建成功")
}

// ListTags 获取全部标签
// @Summary      获取标签列表 (公开)
// @Description  返回全部标签，按使用次数降序。
// @Tags         taxonomy (分类与标签)
// @Produce      json
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含标签列表"
// @Router       /api/v1/community/tags [get]
func (ctrl *TaxonomyController) ListTags(c *gin.Context) {
	tags, err := ctrl.taxonomyService.ListTags(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取标签列表失败")
		return
	}
	response.RespondSuccess(c, tags, "标签列表获取成功")
}

// GetTrendingTags 获取热门标签榜
// @Summary      获取热门标签榜 (公开)
// @Description  返回统计窗口内使用最多的标签和使用次数。榜单由 Redis 缓存加速，未命中时回源数据库。
// @Tags         taxonomy (分类与标签)
// @Produce      json
// @Param        limit query int false "返回条数" minimum(1) maximum(20) default(20)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含榜单"
// @Router       /api/v1/community/tags/trending [get]
func (ctrl *TaxonomyController) GetTrendingTags(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 limit 参数")
		return
	}

	tags, err := ctrl.trendingService.GetTrendingTags(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "获取热门标签失败")
		return
	}
	response.RespondSuccess(c, tags, "热门标签获取成功")
}

// RegisterRoutes 注册 TaxonomyController 的路由
func (ctrl *TaxonomyController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/categories", ctrl.CreateCategory)  // POST /api/v1/community/categories
	group.GET("/categories", ctrl.ListCategories)   // GET  /api/v1/community/categories
	tags := group.Group("/tags")
	{
		tags.POST("", ctrl.CreateTag)               // POST /api/v1/community/tags
		tags.GET("", ctrl.ListTags)                 // GET  /api/v1/community/tags
		tags.GET("/trending", ctrl.GetTrendingTags) // GET  /api/v1/community/tags/trending
	}
}
