/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-06 10:20:31
 * @LastEditTime: 2026-05-22 16:03:48
 * @LastEditors: 墨见寻
 */
package auth_handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/response"
	"github.com/mojianxun/newshub/pkg/service/auth"
)

// AuthHandler 封装了注册与登录相关的控制器方法
type AuthHandler struct {
	authSvc auth.AuthService
}

// NewAuthHandler 是 AuthHandler 的构造函数，用于依赖注入
func NewAuthHandler(authSvc auth.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 处理用户注册请求
// @Summary      用户注册
// @Description  通过用户名、邮箱和密码注册新用户
// @Tags         用户认证
// @Accept       json
// @Produce      json
// @Param        body  body      model.RegisterRequest  true  "注册信息"
// @Success      201   {object}  model.UserResponse  "注册成功"
// @Failure      400   {object}  response.ErrorBody  "参数错误或邮箱/用户名已被占用"
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, model.NewUserResponse(user))
}

// Login 处理用户登录请求
// @Summary      用户登录
// @Description  用户通过邮箱和密码进行登录
// @Tags         用户认证
// @Accept       json
// @Produce      json
// @Param        body  body      model.LoginRequest  true  "登录信息"
// @Success      200   {object}  model.LoginResponse  "登录成功"
// @Failure      401   {object}  response.ErrorBody  "认证失败"
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// 无论邮箱是否存在都返回同一条 401，避免账号枚举
		if errors.Is(err, constant.ErrUnauthorized) {
			response.Fail(c, http.StatusUnauthorized, constant.ErrUnauthorized.Error())
			return
		}
		response.HandleError(c, err)
		return
	}

	response.Success(c, model.LoginResponse{
		User:  model.NewUserResponse(user),
		Token: token,
	})
}
