/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-05 10:20:48
 * @LastEditTime: 2026-05-20 14:07:31
 * @LastEditors: 墨见寻
 */
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/mojianxun/newshub/internal/pkg/security"
	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/domain/repository"
)

// AuthService 定义了注册与登录相关的业务逻辑接口
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

// authService 是 AuthService 接口的实现
type authService struct {
	userRepo repository.UserRepository
	tokenSvc TokenService
}

// NewAuthService 是 authService 的构造函数
func NewAuthService(userRepo repository.UserRepository, tokenSvc TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// Register 实现了用户注册的完整业务逻辑。
// 邮箱与用户名都必须未被占用，密码只保存 bcrypt 哈希。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	emailTaken, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("检查邮箱占用失败: %w", err)
	}
	if emailTaken {
		return nil, constant.ErrEmailTaken
	}

	usernameTaken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名占用失败: %w", err)
	}
	if usernameTaken {
		return nil, constant.ErrUsernameTaken
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return user, nil
}

// Login 实现了用户登录的完整业务逻辑。
// 邮箱不存在与密码错误返回完全相同的错误，避免账号枚举。
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("数据库查询失败: %w", err)
	}
	if user == nil || !security.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", constant.ErrUnauthorized
	}

	token, err := s.tokenSvc.IssueAccessToken(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("签发令牌失败: %w", err)
	}
	return user, token, nil
}
