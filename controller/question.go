package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// QuestionController 定义问答控制器的结构体
type QuestionController struct {
	questionService service.QuestionService
}

// NewQuestionController 构造函数，用于创建 QuestionController 实例
func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion 发布问题
// @Summary      发布问题
// @Description  创建新问题，可附带分类与标签集合。问题以待审核状态创建。
// @Tags         questions (问答)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateQuestionRequest true "问题内容"
// @Success      200 {object} vo.QuestionDetailResponseWrapper "成功响应，包含新问题详情"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数或未知标签ID"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Router       /api/v1/community/questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var reqDTO dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := ctrl.questionService.CreateQuestion(c.Request.Context(), userID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "发布问题失败")
		return
	}
	response.RespondSuccess(c, detail, "问题发布成功")
}

// GetQuestionDetail 获取问题详情
// @Summary      获取问题详情
// @Description  返回问题正文、分类、标签和全部回答，附带实时计数。
// @Tags         questions (问答)
// @Produce      json
// @Param        question_id path uint64 true "问题ID" minimum(1)
// @Success      200 {object} vo.QuestionDetailResponseWrapper "成功响应"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Router       /api/v1/community/questions/{question_id} [get]
func (ctrl *QuestionController) GetQuestionDetail(c *gin.Context) {
	questionID, ok := parseUint64Param(c, "question_id")
	if !ok {
		return
	}

	detail, err := ctrl.questionService.GetQuestionDetail(c.Request.Context(), questionID)
	if err != nil {
		respondServiceError(c, err, "检索问题详情失败")
		return
	}
	response.RespondSuccess(c, detail, "问题详情检索成功")
}

// UpdateQuestion 编辑问题
// @Summary      编辑问题
// @Description  部分更新问题字段；tag_ids 非空时整体替换标签集合。仅提问者可操作。
// @Tags         questions (问答)
// @Accept       json
// @Produce      json
// @Param        question_id path uint64 true "问题ID" minimum(1)
// @Param        request body dto.UpdateQuestionRequest true "需要更新的字段"
// @Success      200 {object} vo.QuestionDetailResponseWrapper "成功响应"
// @Failure      403 {object} vo.BaseResponseWrapper "非提问者操作"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Router       /api/v1/community/questions/{question_id} [put]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	questionID, ok := parseUint64Param(c, "question_id")
	if !ok {
		return
	}
	var reqDTO dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := ctrl.questionService.UpdateQuestion(c.Request.Context(), userID, questionID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "更新问题失败")
		return
	}
	response.RespondSuccess(c, detail, "问题更新成功")
}

// DeleteQuestion 删除问题
// @Summary      删除问题
// @Description  删除问题并级联清理标签关联、回答和互动信号。仅提问者可操作。
// @Tags         questions (问答)
// @Produce      json
// @Param        question_id path uint64 true "问题ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "非提问者操作"
// @Router       /api/v1/community/questions/{question_id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	questionID, ok := parseUint64Param(c, "question_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.questionService.DeleteQuestion(c.Request.Context(), userID, questionID); err != nil {
		respondServiceError(c, err, "删除问题失败")
		return
	}
	response.RespondSuccess[any](c, nil, "问题删除成功")
}

// ListQuestions 获取问题列表
// @Summary      获取问题列表 (公开)
// @Description  分页查询问题，支持按分类、标签、作者、状态筛选和标题模糊搜索，附带实时回答数与点赞数。
// @Tags         questions (问答)
// @Produce      json
// @Param        page query int true "页码 (从1开始)" minimum(1) default(1)
// @Param        page_size query int true "每页数量" minimum(1) maximum(100) default(10)
// @Param        category_id query uint64 false "按分类筛选"
// @Param        tag_id query uint64 false "按标签筛选"
// @Param        author_id query string false "按提问者筛选"
// @Param        keyword query string false "标题模糊搜索关键词" maxLength(255)
// @Param        status query int false "问题状态 (0:待审核, 1:审核通过, 2:拒绝)" Enums(0,1,2)
// @Success      200 {object} vo.ListQuestionsPageResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/v1/community/questions [get]
func (ctrl *QuestionController) ListQuestions(c *gin.Context) {
	var reqDTO dto.ListQuestionsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	page, err := ctrl.questionService.ListQuestions(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取问题列表失败")
		return
	}
	response.RespondSuccess(c, page, "问题列表获取成功")
}

// CreateAnswer 回答问题
// @Summary      回答问题
// @Description  给问题添加回答，提问者会收到站内通知。
// @Tags         questions (问答)
// @Accept       json
// @Produce      json
// @Param        question_id path uint64 true "问题ID" minimum(1)
// @Param        request body dto.CreateAnswerRequest true "回答内容"
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含新回答"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Router       /api/v1/community/questions/{question_id}/answers [post]
func (ctrl *QuestionController) CreateAnswer(c *gin.Context) {
	questionID, ok := parseUint64Param(c, "question_id")
	if !ok {
		return
	}
	var reqDTO dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	answer, err := ctrl.questionService.CreateAnswer(c.Request.Context(), userID, questionID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "回答问题失败")
		return
	}
	response.RespondSuccess(c, answer, "回答发布成功")
}

// DeleteAnswer 删除回答
// @Summary      删除回答
// @Description  删除一条回答，仅回答者本人可操作。
// @Tags         questions (问答)
// @Produce      json
// @Param        answer_id path uint64 true "回答ID" minimum(1)
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Router       /api/v1/community/answers/{answer_id} [delete]
func (ctrl *QuestionController) DeleteAnswer(c *gin.Context) {
	answerID, ok := parseUint64Param(c, "answer_id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.questionService.DeleteAnswer(c.Request.Context(), userID, answerID); err != nil {
		respondServiceError(c, err, "删除回答失败")
		return
	}
	response.RespondSuccess[any](c, nil, "回答删除成功")
}

// RegisterRoutes 注册 QuestionController 的路由
func (ctrl *QuestionController) RegisterRoutes(group *gin.RouterGroup) {
	questions := group.Group("/questions")
	{
		questions.POST("", ctrl.CreateQuestion)                        // POST   /api/v1/community/questions
		questions.GET("", ctrl.ListQuestions)                          // GET    /api/v1/community/questions
		questions.GET("/:question_id", ctrl.GetQuestionDetail)         // GET    /api/v1/community/questions/:question_id
		questions.PUT("/:question_id", ctrl.UpdateQuestion)            // PUT    /api/v1/community/questions/:question_id
		questions.DELETE("/:question_id", ctrl.DeleteQuestion)         // DELETE /api/v1/community/questions/:question_id
		questions.POST("/:question_id/answers", ctrl.CreateAnswer)     // POST   /api/v1/community/questions/:question_id/answers
	}
	group.DELETE("/answers/:answer_id", ctrl.DeleteAnswer) // DELETE /api/v1/community/answers/:answer_id
}
