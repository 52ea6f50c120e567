/*
 * @Description: 列表查询的分页与排序类型
 * @Author: 墨见寻
 * @Date: 2026-03-03 11:02:19
 * @LastEditTime: 2026-04-02 15:44:37
 * @LastEditors: 墨见寻
 */
package repository

// Pagination 描述了列表查询的分页窗口。
// page 与 limit 均为正整数，偏移量由两者推导。
type Pagination struct {
	Page  int
	Limit int
}

// Offset 返回数据库查询使用的偏移量。
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ArticleSort 表示文章列表的排序方式。
type ArticleSort string

const (
	// ArticleSortNone 未指定排序，按主键升序返回
	ArticleSortNone ArticleSort = ""
	// ArticleSortCategory 按关联分类名称升序
	ArticleSortCategory ArticleSort = "category"
	// ArticleSortAuthor 按关联提交者用户名升序
	ArticleSortAuthor ArticleSort = "author"
)
