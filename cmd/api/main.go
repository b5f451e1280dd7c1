package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-venue-ticket-management/internal/api"
	"github.com/sanosuguru/go-venue-ticket-management/internal/api/handler"
	custommiddleware "github.com/sanosuguru/go-venue-ticket-management/internal/api/middleware"
	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/config"
	"github.com/sanosuguru/go-venue-ticket-management/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-venue-ticket-management/internal/infrastructure/redis"
	"github.com/sanosuguru/go-venue-ticket-management/internal/pkg/logger"
	"github.com/sanosuguru/go-venue-ticket-management/internal/pkg/metrics"
	"github.com/sanosuguru/go-venue-ticket-management/internal/worker"
)

func main() {
	// 設定読み込み
	cfg := config.Load()

	// ロガー初期化
	log := logger.NewLogger(os.Getenv("APP_ENV"))
	logger.Set(log)
	defer logger.Sync()

	// メトリクス初期化
	m := metrics.Init()

	// PostgreSQL接続
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal("データベース接続失敗", zap.Error(err))
	}
	defer db.Close()

	// マイグレーション実行
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	if err := postgres.RunMigrations(db.DB, migrationsPath); err != nil {
		logger.Fatal("マイグレーション失敗", zap.Error(err))
	}

	// Redis接続
	ctx := context.Background()
	redisClient, err := redisinfra.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal("Redis接続失敗", zap.Error(err))
	}
	defer redisClient.Close()

	// インフラストラクチャ層
	txManager := postgres.NewTxManager(db)
	venueRepo := postgres.NewVenueRepository(db)
	layoutRepo := postgres.NewLayoutRepository(db)
	areaRepo := postgres.NewAreaRepository(db)
	seatRepo := postgres.NewSeatRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	eventAreaRepo := postgres.NewEventAreaRepository(db)
	eventSeatRepo := postgres.NewEventSeatRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	userRepo := postgres.NewUserRepository(db)
	lockManager := redisinfra.NewLockManager(redisClient)
	seatCache := redisinfra.NewSeatCache(redisClient)

	// アプリケーション層
	venueService := application.NewVenueService(
		txManager, venueRepo, layoutRepo, areaRepo, seatRepo,
		eventRepo, eventAreaRepo, eventSeatRepo,
	)
	areaService := application.NewAreaService(
		txManager, layoutRepo, areaRepo, seatRepo, eventSeatRepo,
	)
	eventService := application.NewEventService(
		txManager, layoutRepo, areaRepo, seatRepo,
		eventRepo, eventAreaRepo, eventSeatRepo, seatCache,
	)
	bookingService := application.NewBookingService(
		txManager, eventSeatRepo, eventAreaRepo, ticketRepo, userRepo,
		lockManager, seatCache,
		application.BookingConfig{
			LockTTL:       cfg.Booking.LockTTL,
			LockRetries:   cfg.Booking.LockRetries,
			LockRetryWait: cfg.Booking.LockRetryWait,
		},
	)

	// ハンドラー
	healthHandler := handler.NewHealthHandler()
	venueHandler := handler.NewVenueHandler(venueService)
	layoutHandler := handler.NewLayoutHandler(venueService)
	areaHandler := handler.NewAreaHandler(areaService)
	seatHandler := handler.NewSeatHandler(areaService)
	eventHandler := handler.NewEventHandler(eventService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Echoセットアップ
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	custommiddleware.SetupMiddleware(e)
	e.Use(custommiddleware.PrometheusMiddleware(m))

	// ルーティング
	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)

	v1.POST("/venues", venueHandler.Create)
	v1.GET("/venues", venueHandler.List)
	v1.GET("/venues/:id", venueHandler.GetByID)
	v1.PUT("/venues/:id", venueHandler.Update)
	v1.DELETE("/venues/:id", venueHandler.Delete)
	v1.GET("/venues/:id/layouts", layoutHandler.ListByVenue)

	v1.POST("/layouts", layoutHandler.Create)
	v1.GET("/layouts/:id", layoutHandler.GetByID)
	v1.PUT("/layouts/:id", layoutHandler.Update)
	v1.DELETE("/layouts/:id", layoutHandler.Delete)
	v1.GET("/layouts/:id/areas", areaHandler.ListByLayout)
	v1.GET("/layouts/:id/events", eventHandler.ListByLayout)

	v1.POST("/areas", areaHandler.Create)
	v1.GET("/areas/:id", areaHandler.GetByID)
	v1.PUT("/areas/:id", areaHandler.Update)
	v1.DELETE("/areas/:id", areaHandler.Delete)
	v1.GET("/areas/:id/seats", seatHandler.ListByArea)

	v1.POST("/seats", seatHandler.Create)
	v1.POST("/seats/bulk", seatHandler.CreateBulk)
	v1.GET("/seats/:id", seatHandler.GetByID)
	v1.PUT("/seats/:id", seatHandler.Update)
	v1.DELETE("/seats/:id", seatHandler.Delete)

	v1.POST("/events", eventHandler.Create)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/:id", eventHandler.GetByID)
	v1.PUT("/events/:id", eventHandler.Update)
	v1.DELETE("/events/:id", eventHandler.Delete)
	v1.GET("/events/:id/areas", eventHandler.ListAreas)
	v1.GET("/events/:id/free-seats", eventHandler.CountFreeSeats)

	v1.PUT("/event-areas/:id/price", eventHandler.UpdateAreaPrice)
	v1.DELETE("/event-areas/:id", eventHandler.DeleteArea)
	v1.GET("/event-areas/:id/seats", eventHandler.ListSeats)
	v1.DELETE("/event-seats/:id", eventHandler.DeleteSeat)

	v1.POST("/tickets", bookingHandler.Purchase)
	v1.GET("/tickets/:id", bookingHandler.GetByID)
	v1.DELETE("/tickets/:id", bookingHandler.Refund)
	v1.GET("/users/:id/tickets", bookingHandler.ListByUser)

	// Prometheusメトリクスエンドポイント
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), custommiddleware.MetricsBasicAuth())

	// 座席統計ワーカー起動
	collector := worker.NewSeatStatsCollector(
		eventRepo, eventSeatRepo, seatCache, m,
		cfg.Worker.StatsInterval, cfg.Booking.CacheTTL,
	)
	workerCtx, workerCancel := context.WithCancel(ctx)
	go collector.Start(workerCtx)

	// サーバー起動
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("サーバー起動", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	// ワーカー停止
	workerCancel()
	collector.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
