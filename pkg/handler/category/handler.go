/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-06 14:05:27
 * @LastEditTime: 2026-05-22 17:02:55
 * @LastEditors: 墨见寻
 */
package category_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/response"
	"github.com/mojianxun/newshub/pkg/service/category"
	"github.com/mojianxun/newshub/pkg/service/query"
)

// Handler 封装了所有与文章分类相关的 HTTP 处理器。
type Handler struct {
	svc *category.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *category.Service) *Handler {
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

// Create 创建新分类
// @Summary      创建新文章分类
// @Tags         文章分类
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body model.CreateCategoryRequest true "创建分类的请求体"
// @Success      201 {object} model.CategoryResponse
// @Failure      400 {object} response.ErrorBody "请求参数错误"
// @Failure      401 {object} response.ErrorBody "未授权"
// @Router       /categories [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, created)
}

// List 获取分类列表
// @Summary      获取文章分类列表
// @Tags         文章分类
// @Produce      json
// @Param        page  query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageResult{data=[]model.CategoryResponse}
// @Router       /categories [get]
func (h *Handler) List(c *gin.Context) {
	p := query.GetPaginationParams(c.Request.URL.Query())
	categories, total, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Page(c, categories, p.Page, p.Limit, total)
}

// Get 获取单个分类
// @Summary      获取单个文章分类
// @Tags         文章分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} model.CategoryResponse
// @Failure      404 {object} response.ErrorBody "分类不存在"
// @Router       /categories/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, cat)
}

// Update 全量更新分类
// @Summary      更新文章分类
// @Tags         文章分类
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        category body model.UpdateCategoryRequest true "更新分类的请求体"
// @Success      200 {object} model.CategoryResponse
// @Router       /categories/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, updated)
}

// Patch 部分更新分类
// @Summary      部分更新文章分类
// @Tags         文章分类
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        category body model.PatchCategoryRequest true "要更新的字段"
// @Success      200 {object} model.CategoryResponse
// @Router       /categories/{id} [patch]
func (h *Handler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.PatchCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	updated, err := h.svc.Patch(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, updated)
}

// Delete 删除分类。分类下仍有文章时返回 409。
// @Summary      删除文章分类
// @Tags         文章分类
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      204 "删除成功"
// @Failure      409 {object} response.ErrorBody "分类仍被文章引用"
// @Router       /categories/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.NoContent(c)
}

// ListArticles 获取分类下的文章
func (h *Handler) ListArticles(c *gin.Context) {
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
