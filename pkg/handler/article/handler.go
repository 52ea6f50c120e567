/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-06 15:10:40
 * @LastEditTime: 2026-05-22 17:25:03
 * @LastEditors: 墨见寻
 */
package article_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mojianxun/newshub/internal/app/middleware"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/response"
	"github.com/mojianxun/newshub/pkg/service/article"
	"github.com/mojianxun/newshub/pkg/service/query"
)

// Handler 封装了所有与文章相关的 HTTP 处理器。
type Handler struct {
	svc *article.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *article.Service) *Handler {
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

// Create 发布新文章
// @Summary      发布新文章
// @Tags         文章
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body model.CreateArticleRequest true "文章内容"
// @Success      201 {object} model.ArticleResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "引用的分类不存在"
// @Router       /articles [post]
func (h *Handler) Create(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
		return
	}

	var req model.CreateArticleRequest
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

// List 获取文章列表
// @Summary      获取文章列表
// @Description  支持分页；sort=category 按分类名排序，sort=author 按作者名排序
// @Tags         文章
// @Produce      json
// @Param        page  query int    false "页码" default(1)
// @Param        limit query int    false "每页数量" default(10)
// @Param        sort  query string false "排序方式" Enums(category, author)
// @Success      200 {object} response.PageResult{data=[]model.ArticleResponse}
// @Router       /articles [get]
func (h *Handler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.GetPaginationParams(values)
	sort := query.GetArticleSort(values)

	articles, total, err := h.svc.List(c.Request.Context(), p, sort)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Page(c, articles, p.Page, p.Limit, total)
}

// Get 获取单篇文章
// @Summary      获取单篇文章
// @Tags         文章
// @Produce      json
// @Param        id path int true "文章ID"
// @Success      200 {object} model.ArticleResponse
// @Failure      404 {object} response.ErrorBody "文章不存在"
// @Router       /articles/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	art, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, art)
}

// Update 全量更新文章（仅作者）
// @Summary      更新文章
// @Tags         文章
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                        true "文章ID"
// @Param        article body model.UpdateArticleRequest true "文章内容"
// @Success      200 {object} model.ArticleResponse
// @Failure      403 {object} response.ErrorBody "非文章作者"
// @Router       /articles/{id} [put]
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

	var req model.UpdateArticleRequest
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

// Patch 部分更新文章（仅作者）
// @Summary      部分更新文章
// @Tags         文章
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                       true "文章ID"
// @Param        article body model.PatchArticleRequest true "要更新的字段"
// @Success      200 {object} model.ArticleResponse
// @Failure      400 {object} response.ErrorBody "没有可更新的字段"
// @Failure      403 {object} response.ErrorBody "非文章作者"
// @Router       /articles/{id} [patch]
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

	var req model.PatchArticleRequest
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

// Delete 删除文章（仅作者），其评论级联删除
// @Summary      删除文章
// @Tags         文章
// @Security     BearerAuth
// @Param        id path int true "文章ID"
// @Success      204 "删除成功"
// @Failure      403 {object} response.ErrorBody "非文章作者"
// @Router       /articles/{id} [delete]
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

// ListComments 获取文章下的评论
func (h *Handler) ListComments(c *gin.Context) {
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
