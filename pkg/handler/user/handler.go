/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-06 11:15:09
 * @LastEditTime: 2026-05-22 16:40:12
 * @LastEditors: 墨见寻
 */
package user_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mojianxun/newshub/internal/app/middleware"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/response"
	"github.com/mojianxun/newshub/pkg/service/query"
	user_service "github.com/mojianxun/newshub/pkg/service/user"
)

// UserHandler 封装了所有与用户相关的 HTTP 处理器。
type UserHandler struct {
	svc user_service.UserService
}

// NewUserHandler 是 UserHandler 的构造函数。
func NewUserHandler(svc user_service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// parseID 将路径参数解析为正整数主键，非法输入返回 false。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, http.StatusBadRequest, "ID必须是正整数")
		return 0, false
	}
	return uint(id), true
}

// List 获取用户列表
// @Summary      获取用户列表
// @Description  分页返回用户，只包含 ID、用户名和邮箱
// @Tags         用户
// @Produce      json
// @Param        page  query  int  false  "页码"  default(1)
// @Param        limit query  int  false  "每页数量"  default(10)
// @Success      200  {object}  response.PageResult{data=[]model.UserResponse}
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	p := query.GetPaginationParams(c.Request.URL.Query())
	users, total, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Page(c, users, p.Page, p.Limit, total)
}

// Get 获取单个用户
// @Summary      获取单个用户
// @Tags         用户
// @Produce      json
// @Param        id  path  int  true  "用户ID"
// @Success      200  {object}  model.UserResponse
// @Failure      400  {object}  response.ErrorBody  "ID格式错误"
// @Failure      404  {object}  response.ErrorBody  "用户不存在"
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// Update 全量更新用户资料（仅本人）
// @Summary      更新用户资料
// @Tags         用户
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "用户ID"
// @Param        body  body  model.UpdateUserRequest  true  "用户资料"
// @Success      200  {object}  model.UserResponse
// @Failure      403  {object}  response.ErrorBody  "非本人操作"
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.svc.Update(c.Request.Context(), callerID, id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// Patch 部分更新用户资料（仅本人）
// @Summary      部分更新用户资料
// @Tags         用户
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "用户ID"
// @Param        body  body  model.PatchUserRequest  true  "要更新的字段"
// @Success      200  {object}  model.UserResponse
// @Failure      400  {object}  response.ErrorBody  "没有可更新的字段"
// @Failure      403  {object}  response.ErrorBody  "非本人操作"
// @Router       /users/{id} [patch]
func (h *UserHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
		return
	}

	var req model.PatchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.svc.Patch(c.Request.Context(), callerID, id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// Delete 删除用户（仅本人），其文章与评论级联删除
// @Summary      删除用户
// @Tags         用户
// @Security     BearerAuth
// @Param        id  path  int  true  "用户ID"
// @Success      204  "删除成功"
// @Failure      403  {object}  response.ErrorBody  "非本人操作"
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), callerID, id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.NoContent(c)
}

// ListArticles 获取指定用户提交的文章
func (h *UserHandler) ListArticles(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	articles, err := h.svc.ListArticles(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, articles)
}

// ListComments 获取指定用户发表的评论
func (h *UserHandler) ListComments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	comments, err := h.svc.ListComments(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comments)
}
