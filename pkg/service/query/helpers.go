/*
 * @Description: 列表请求的分页与排序解析
 * @Author: 墨见寻
 * @Date: 2026-03-05 09:12:40
 * @LastEditTime: 2026-04-22 16:38:05
 * @LastEditors: 墨见寻
 */
package query

import (
	"net/url"
	"strconv"

	"github.com/mojianxun/newshub/pkg/domain/repository"
)

// GetPaginationParams 从查询参数中解析分页信息。
// page 与 limit 缺失或不是正整数时回退到默认值 1 / 10，不设上限。
func GetPaginationParams(query url.Values) repository.Pagination {
	page, limit := 1, 10
	if v := query.Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := query.Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			limit = l
		}
	}
	return repository.Pagination{Page: page, Limit: limit}
}

// GetArticleSort 解析文章列表的 sort 参数。
// 仅识别 category 与 author，其余值视为未指定。
func GetArticleSort(query url.Values) repository.ArticleSort {
	switch query.Get("sort") {
	case string(repository.ArticleSortCategory):
		return repository.ArticleSortCategory
	case string(repository.ArticleSortAuthor):
		return repository.ArticleSortAuthor
	default:
		return repository.ArticleSortNone
	}
}
