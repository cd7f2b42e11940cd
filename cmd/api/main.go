package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookings/internal/config"
	"bookings/internal/database"
	"bookings/internal/middleware"
	"bookings/internal/modules/availability"
	"bookings/internal/pkg/logger"
	"bookings/internal/repository"
)

func main() {
	_ = godotenv.Load()

	boot := logger.New(false)
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal("load config", zap.Error(err))
	}

	_ = boot.Sync()
	log := logger.New(cfg.InProduction())
	defer func() { _ = log.Sync() }()
	log.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("port", cfg.Port),
		zap.Bool("cookie_secure", cfg.CookieSecure),
		zap.String("cookie_samesite", cfg.CookieSameSite),
	)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	if cfg.InProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CSRF(newRouter(cfg, db, log), cfg, log),
	}

	go func() {
		log.Info("starting availability service", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func newRouter(cfg *config.AppConfig, db *gorm.DB, log *zap.Logger) *gin.Engine {
	reservationRepo := repository.NewReservationRepository(db)
	roomRepo := repository.NewRoomRepository(db)

	availabilityService := availability.NewService(reservationRepo, roomRepo, nil)
	availabilityHandler := availability.NewHandler(availabilityService, log)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(log),
		middleware.CORS(cfg.AllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	availabilityHandler.RegisterRoutes(r, middleware.RateLimit(cfg.RateLimitPerMin, log))
	return r
}
