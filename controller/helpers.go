package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/myErrors"
)

// currentUserID 从 gin.Context 取网关透传、中间件注入的用户ID。
// 取不到时直接写 401 响应并返回 false，调用方应立即 return。
func currentUserID(c *gin.Context) (string, bool) {
	userIDValue, exists := c.Get(string(constants.UserIDKey))
	if !exists {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息 (Context Key Not Found)")
		return "", false
	}
	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID (Invalid UserID in Context)")
		return "", false
	}
	return userID, true
}

// optionalUserID 同上，但未登录时返回空串而不是写 401。公开读接口使用。
func optionalUserID(c *gin.Context) string {
	return c.GetString(string(constants.UserIDKey))
}

// parseUint64Param 解析路径参数为 uint64，非法时写 400 响应并返回 false。
func parseUint64Param(c *gin.Context, name string) (uint64, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 "+name+" 格式")
		return 0, false
	}
	return value, true
}

// respondServiceError 把服务层错误翻译成 HTTP 响应。
// 业务哨兵错误映射到 4xx，其他一律按内部错误处理。
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "资源不存在")
	case errors.Is(err, myErrors.ErrForbidden):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, err.Error())
	case errors.Is(err, myErrors.ErrUnknownTag),
		errors.Is(err, myErrors.ErrInvalidSubjectType),
		errors.Is(err, myErrors.ErrInvalidReactionType):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	case errors.Is(err, myErrors.ErrEventFull),
		errors.Is(err, myErrors.ErrAlreadyRegistered),
		errors.Is(err, myErrors.ErrEventCancelled),
		errors.Is(err, myErrors.ErrEventCompleted):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallbackMsg+": "+err.Error())
	}
}
