/*
 * @Description: 应用装配与启动
 * @Author: 墨见寻
 * @Date: 2026-03-07 10:30:15
 * @LastEditTime: 2026-05-23 14:52:09
 * @LastEditors: 墨见寻
 */
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mojianxun/newshub/internal/app/middleware"
	"github.com/mojianxun/newshub/internal/infra/persistence/database"
	"github.com/mojianxun/newshub/internal/infra/persistence/gormimpl"
	"github.com/mojianxun/newshub/internal/infra/router"
	"github.com/mojianxun/newshub/pkg/config"
	article_handler "github.com/mojianxun/newshub/pkg/handler/article"
	auth_handler "github.com/mojianxun/newshub/pkg/handler/auth"
	category_handler "github.com/mojianxun/newshub/pkg/handler/category"
	comment_handler "github.com/mojianxun/newshub/pkg/handler/comment"
	user_handler "github.com/mojianxun/newshub/pkg/handler/user"
	article_service "github.com/mojianxun/newshub/pkg/service/article"
	auth_service "github.com/mojianxun/newshub/pkg/service/auth"
	category_service "github.com/mojianxun/newshub/pkg/service/category"
	comment_service "github.com/mojianxun/newshub/pkg/service/comment"
	user_service "github.com/mojianxun/newshub/pkg/service/user"
)

// App 聚合了运行一个服务器实例所需的全部组件。
type App struct {
	cfg    *config.Config
	engine *gin.Engine
	sqlDB  *sql.DB
}

// NewApp 按依赖顺序手动装配整个应用。
// 返回的 cleanup 函数负责释放数据库连接。
func NewApp() (*App, func(), error) {
	// --- Phase 1: 配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("初始化配置失败: %w", err)
	}

	// --- Phase 2: 数据库 ---
	db, err := database.NewGormDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化数据库失败: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取底层数据库连接失败: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	// --- Phase 3: 仓库 ---
	userRepo := gormimpl.NewUserRepo(db)
	categoryRepo := gormimpl.NewCategoryRepo(db)
	articleRepo := gormimpl.NewArticleRepo(db)
	commentRepo := gormimpl.NewCommentRepo(db)
	txManager := gormimpl.NewTransactionManager(db)

	// --- Phase 4: 服务 ---
	tokenSvc := auth_service.NewTokenService(cfg.GetString(config.KeyJWTSecret))
	authSvc := auth_service.NewAuthService(userRepo, tokenSvc)
	userSvc := user_service.NewUserService(userRepo, articleRepo, commentRepo)
	categorySvc := category_service.NewService(categoryRepo, articleRepo)
	articleSvc := article_service.NewService(articleRepo, commentRepo, txManager)
	commentSvc := comment_service.NewService(commentRepo, txManager)

	// --- Phase 5: 处理器与中间件 ---
	authHandler := auth_handler.NewAuthHandler(authSvc)
	userHandler := user_handler.NewUserHandler(userSvc)
	categoryHandler := category_handler.NewHandler(categorySvc)
	articleHandler := article_handler.NewHandler(articleSvc)
	commentHandler := comment_handler.NewHandler(commentSvc)
	mw := middleware.NewMiddleware(tokenSvc)

	appRouter := router.NewRouter(
		authHandler,
		userHandler,
		categoryHandler,
		articleHandler,
		commentHandler,
		mw,
	)

	// --- Phase 6: Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	app := &App{
		cfg:    cfg,
		engine: engine,
		sqlDB:  sqlDB,
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
	}

	return app, cleanup, nil
}

// Run 启动 HTTP 服务器并阻塞，收到 SIGINT/SIGTERM 后优雅退出。
func (a *App) Run() error {
	port := a.cfg.GetInt(config.KeyServerPort)
	if port == 0 {
		port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: a.engine,
	}

	go func() {
		log.Printf("服务器启动，监听端口 %d ...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务器关闭失败: %w", err)
	}

	log.Println("服务器已退出。")
	return nil
}
