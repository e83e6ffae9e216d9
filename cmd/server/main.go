// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"scholar-ai-go/internal/config"
	"scholar-ai-go/internal/controller"
	"scholar-ai-go/internal/handler"
	"scholar-ai-go/internal/repository"
	"scholar-ai-go/internal/service"
	"scholar-ai-go/pkg/database"
	"scholar-ai-go/pkg/llm"
	"scholar-ai-go/pkg/log"
	"scholar-ai-go/pkg/tasks"
	"scholar-ai-go/pkg/token"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 0. 加载 .env（可选），其中的变量会覆盖配置文件
	envErr := godotenv.Load()

	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")
	if envErr != nil {
		log.Info("未找到 .env 文件，使用环境变量")
	}

	// 启动阶段的上下文，收到停机信号前一直有效
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. 初始化偏好存储
	var prefRepo repository.PreferenceRepository
	switch cfg.Preferences.Backend {
	case "redis":
		database.InitRedis(ctx, cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
		prefRepo = repository.NewRedisPreferenceRepository(database.RDB, cfg.Preferences.KeyPrefix)
	case "memory":
		log.Warnf("偏好存储使用内存后端，服务重启后主题、任务和学习计划都会丢失")
		prefRepo = repository.NewMemoryPreferenceRepository()
	default:
		database.InitDB(cfg.Database.Driver, cfg.Database.DSN)
		prefRepo = repository.NewPreferenceRepository(database.DB)
	}
	log.Infow("偏好存储初始化成功", "backend", cfg.Preferences.Backend)

	// 4. 初始化 Service (依赖注入)
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatal("LLM 客户端初始化失败", err)
	}
	generationService := service.NewGenerationService(llmClient, llm.DefaultParams(cfg.LLM.Generation))
	preferenceService := service.NewPreferenceService(prefRepo)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenExpireHours)

	// 5. 访客工作区与后台清理任务
	registry := controller.NewRegistry(preferenceService, generationService)
	scheduler := tasks.NewScheduler()
	idleTTL := time.Duration(cfg.Workspace.IdleTTLMinutes) * time.Minute
	if err := scheduler.Register("workspace-sweep", cfg.Workspace.SweepSpec, func() {
		if n := registry.EvictIdle(idleTTL); n > 0 {
			log.Infof("回收了 %d 个空闲访客工作区，剩余 %d 个", n, registry.Len())
		}
	}); err != nil {
		log.Fatal("注册后台任务失败", err)
	}
	scheduler.Start()

	// 6. 设置 Gin 模式并注册路由
	gin.SetMode(cfg.Server.Mode)
	r := handler.NewRouter(jwtManager, registry)

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	<-ctx.Done()
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	scheduler.Stop()
	database.CloseRedis()
	log.Info("服务已优雅关闭")
}
