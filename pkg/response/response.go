/*
 * @Description: 统一的 API 响应与错误映射
 * @Author: 墨见寻
 * @Date: 2026-03-02 11:40:17
 * @LastEditTime: 2026-05-20 09:12:44
 * @LastEditors: 墨见寻
 */
package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mojianxun/newshub/pkg/constant"
)

// ErrorBody 是统一的错误响应结构体
type ErrorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// PageResult 是分页列表的统一响应结构体
type PageResult struct {
	Data  interface{} `json:"data"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int64       `json:"total"`
}

// Success 成功响应，返回资源本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应，返回 201 与新资源
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 删除成功响应，返回 204 空响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Page 分页列表响应
func Page(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, PageResult{Data: data, Page: page, Limit: limit, Total: total})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// BindError 将请求体绑定/校验失败渲染为 400 响应。
// validator 的逐字段错误会被展开到 details 中。
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fe.Error())
		}
		c.JSON(http.StatusBadRequest, ErrorBody{Error: "Validation failed", Details: details})
		return
	}
	Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
}

// HandleError 是业务错误到 HTTP 状态码的唯一映射点。
// 未识别的错误一律按 500 处理，细节只记录在服务端日志里。
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrForbidden):
		Fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, constant.ErrConflict):
		// 注册时邮箱/用户名重复属于请求错误
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, constant.ErrBadRequest), errors.Is(err, constant.ErrNothingToUpdate):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, constant.ErrUnauthorized):
		Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, constant.ErrCategoryInUse):
		Fail(c, http.StatusConflict, err.Error())
	default:
		log.Printf("[ERROR] 未预期的内部错误: %v", err)
		Fail(c, http.StatusInternalServerError, constant.ErrInternalServer.Error())
	}
}
