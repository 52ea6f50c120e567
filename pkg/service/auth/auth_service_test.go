package auth

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mojianxun/newshub/internal/infra/persistence/database"
	"github.com/mojianxun/newshub/internal/infra/persistence/gormimpl"
	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
)

func newTestService(t *testing.T) AuthService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return NewAuthService(gormimpl.NewUserRepo(db), NewTokenService("test-secret"))
}

func TestRegister(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.COM",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	// 邮箱统一小写存储
	assert.Equal(t, "alice@example.com", user.Email)
	// 只保存哈希
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	// 大小写不同仍算同一邮箱
	_, err = svc.Register(ctx, &model.RegisterRequest{
		Username: "bob", Email: "ALICE@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, constant.ErrEmailTaken)
	assert.ErrorIs(t, err, constant.ErrConflict)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &model.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, constant.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	// 密码错误
	_, _, errWrongPass := svc.Login(ctx, "alice@example.com", "wrong-pass")
	// 邮箱不存在
	_, _, errNoUser := svc.Login(ctx, "nobody@example.com", "secret123")

	assert.ErrorIs(t, errWrongPass, constant.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, constant.ErrUnauthorized)
	// 两种失败对客户端完全一致，避免账号枚举
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}
