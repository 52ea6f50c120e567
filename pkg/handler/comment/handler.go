/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-06 16:02:18
 * @LastEditTime: 2026-05-22 17:40:36
 * @LastEditors: 墨见寻
 */
package comment_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mojianxun/newshub/internal/app/middleware"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/response"
	"github.com/mojianxun/newshub/pkg/service/comment"
	"github.com/mojianxun/newshub/pkg/service/query"
)

// Handler 封装了所有与评论相关的 HTTP 处理器。
type Handler struct {
	svc *comment.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *comment.Service) *Handler {
	return &Handler{svc: svc}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, http.StatusBadRequest, "ID必须是正整数")
		return 0, false
	}
	return uint(id), true
}

// Create 发表评论
// @Summary      发表评论
// @Tags         评论
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        comment body model.CreateCommentRequest true "评论内容"
// @Success      201 {object} model.CommentResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "引用的文章不存在"
// @Router       /comments [post]
func (h *Handler) Create(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, created)
}

// List 获取评论列表
// @Summary      获取评论列表
// @Tags         评论
// @Produce      json
// @Param        page  query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageResult{data=[]model.CommentResponse}
// @Router       /comments [get]
func (h *Handler) List(c *gin.Context) {
	p := query.GetPaginationParams(c.Request.URL.Query())
	comments, total, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Page(c, comments, p.Page, p.Limit, total)
}

// Get 获取单条评论
// @Summary      获取单条评论
// @Tags         评论
// @Produce      json
// @Param        id path int true "评论ID"
// @Success      200 {object} model.CommentResponse
// @Failure      404 {object} response.ErrorBody "评论不存在"
// @Router       /comments/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cm, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, cm)
}

// Update 全量更新评论（仅作者）
// @Summary      更新评论
// @Tags         评论
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                        true "评论ID"
// @Param        comment body model.UpdateCommentRequest true "评论内容"
// @Success      200 {object} model.CommentResponse
// @Failure      403 {object} response.ErrorBody "非评论作者"
// @Router       /comments/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), callerID, id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, updated)
}

// Patch 部分更新评论（仅作者）
// @Summary      部分更新评论
// @Tags         评论
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                       true "评论ID"
// @Param        comment body model.PatchCommentRequest true "要更新的字段"
// @Success      200 {object} model.CommentResponse
// @Failure      400 {object} response.ErrorBody "没有可更新的字段"
// @Failure      403 {object} response.ErrorBody "非评论作者"
// @Router       /comments/{id} [patch]
func (h *Handler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
		return
	}

	var req model.PatchCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	updated, err := h.svc.Patch(c.Request.Context(), callerID, id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, updated)
}

// Delete 删除评论（仅作者）
// @Summary      删除评论
// @Tags         评论
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Success      204 "删除成功"
// @Failure      403 {object} response.ErrorBody "非评论作者"
// @Router       /comments/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
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
