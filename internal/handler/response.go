// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"
	"scholar-ai-go/internal/controller"
	"scholar-ai-go/pkg/log"

	"github.com/gin-gonic/gin"
)

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success", "data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"code": status, "message": message, "data": nil})
}

// failWith 把页面状态返回的错误映射为 HTTP 状态码。
func failWith(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		fail(c, status, "服务器内部错误")
		return
	}
	fail(c, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, controller.ErrEmptyInput), errors.Is(err, controller.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, controller.ErrBusy), errors.Is(err, controller.ErrViewNotMounted):
		return http.StatusConflict
	case errors.Is(err, controller.ErrTaskNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func badRequest(c *gin.Context, err error) {
	log.Warnf("%s %s: invalid request payload, error: %v", c.Request.Method, c.Request.URL.Path, err)
	fail(c, http.StatusBadRequest, "无效的请求负载")
}
