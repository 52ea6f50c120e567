/*
 * @Description: 业务层标准错误定义
 * @Author: 墨见寻
 * @Date: 2026-03-02 10:18:42
 * @LastEditTime: 2026-04-11 16:02:19
 * @LastEditors: 墨见寻
 */
package constant

import (
	"errors"
	"fmt"
)

// 定义业务逻辑相关的标准错误，由 Handler 统一转换为 HTTP 状态码
var (
	// ErrNotFound 表示资源或被引用的实体未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrForbidden 表示无权操作该资源，可以由 Handler 转换为 403
	ErrForbidden = errors.New("禁止操作：非资源所有者")

	// ErrConflict 表示资源冲突（如邮箱/用户名已被占用），注册场景由 Handler 转换为 400
	ErrConflict = errors.New("资源冲突")

	// ErrEmailTaken / ErrUsernameTaken 是注册冲突的具体形态，均可被识别为 ErrConflict
	ErrEmailTaken    = fmt.Errorf("%w: 该邮箱已被注册", ErrConflict)
	ErrUsernameTaken = fmt.Errorf("%w: 该用户名已被占用", ErrConflict)

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示凭证校验失败，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("账号或密码错误")

	// ErrNothingToUpdate 表示 PATCH 请求体中不包含任何可识别字段，转换为 400
	ErrNothingToUpdate = errors.New("没有可更新的字段")

	// ErrCategoryInUse 表示分类仍被文章引用，删除被数据库外键约束拒绝，转换为 409
	ErrCategoryInUse = errors.New("分类下仍存在文章，无法删除")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")
)
