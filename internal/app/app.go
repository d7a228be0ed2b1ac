package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"odyssey_backend/internal/config"
	"odyssey_backend/internal/controller"
	"odyssey_backend/internal/repository"
	"odyssey_backend/internal/service"
	"odyssey_backend/internal/util"
	"odyssey_backend/pkg/configwatcher"
	"odyssey_backend/pkg/database"
	"odyssey_backend/pkg/logger"
	"odyssey_backend/pkg/monitoring"
	"odyssey_backend/pkg/security"
	"odyssey_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	generation *service.GenerationService
	session    *service.SessionService
	stats      *service.StatsService
	mentor     *service.MentorService
	briefing   *service.BriefingService
}

type controllers struct {
	auth    *controller.AuthController
	session *controller.SessionController
	roadmap *controller.RoadmapController
	project *controller.ProjectController
	mentor  *controller.MentorController
	stats   *controller.StatsController
	health  *controller.HealthController
}

func (a *App) initServices(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	slotRepo := repository.NewSlotRepository(db)

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(cfg.Auth)
	s.generation = service.NewGenerationService(cfg.AI)

	s.session = service.NewSessionService(slotRepo, s.generation, s.storage)
	s.session.Hydrate()

	s.stats = service.NewStatsService(s.session, rdb)
	s.mentor = service.NewMentorService(s.generation)
	s.briefing = service.NewBriefingService(s.generation, s.storage, s.session)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		session: controller.NewSessionController(s.session),
		roadmap: controller.NewRoadmapController(s.session, s.briefing),
		project: controller.NewProjectController(s.session),
		mentor:  controller.NewMentorController(s.mentor),
		stats:   controller.NewStatsController(s.stats),
		health:  controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig 监听配置文件，运行时热切换生成模型/密钥
func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", func(cfg *config.Config) {
		a.services.generation.Reload(cfg.AI)
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// redis 只承担统计缓存，不可用时降级为直接推导
		logger.Log.Warn("Redis unavailable, stats cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	services := app.initServices(cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("odyssey-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	// 本地存储模式下直接暴露生成产物
	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/artifacts", cfg.Storage.LocalPath)
	}

	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
