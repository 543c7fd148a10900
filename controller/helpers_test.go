package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/community_service/myErrors"
)

func TestRespondServiceError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"资源不存在", commonerrors.ErrRepoNotFound, http.StatusNotFound},
		{"包装过的未找到", fmt.Errorf("get post: %w", commonerrors.ErrRepoNotFound), http.StatusNotFound},
		{"越权操作", myErrors.ErrForbidden, http.StatusForbidden},
		{"未知标签", fmt.Errorf("%w: [99]", myErrors.ErrUnknownTag), http.StatusBadRequest},
		{"非法主语类型", myErrors.ErrInvalidSubjectType, http.StatusBadRequest},
		{"非法表态类型", myErrors.ErrInvalidReactionType, http.StatusBadRequest},
		{"名额已满", myErrors.ErrEventFull, http.StatusConflict},
		{"重复报名", myErrors.ErrAlreadyRegistered, http.StatusConflict},
		{"活动已取消", myErrors.ErrEventCancelled, http.StatusConflict},
		{"活动已结束", myErrors.ErrEventCompleted, http.StatusConflict},
		{"其他错误按内部错误", errors.New("dial tcp: timeout"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			respondServiceError(c, tc.err, "操作失败")
			assert.Equal(t, tc.want, recorder.Code)
		})
	}
}

func TestParseUint64Param(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"合法数字", "42", true},
		{"零非法", "0", false},
		{"非数字", "abc", false},
		{"负数", "-1", false},
		{"空串", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Params = gin.Params{{Key: "post_id", Value: tc.value}}

			_, ok := parseUint64Param(c, "post_id")
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			}
		})
	}
}
