package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todoapp/internal/auth"
	"todoapp/internal/config"
	"todoapp/internal/handler"
	"todoapp/internal/logger"
	"todoapp/internal/middleware"
	"todoapp/internal/model"
	"todoapp/internal/repository"
	"todoapp/internal/service"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("connected to database", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))

	if err := db.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	keySetCache := auth.NewKeySetCache(
		auth.FetchJWKS(&http.Client{Timeout: 10 * time.Second}, cfg.JWKSURL()),
		cfg.JWKSCacheTTL,
	)
	verifier := auth.NewVerifier(keySetCache, cfg.AuthURL)

	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	taskService := service.NewTaskService(taskRepo, userRepo)
	taskHandler := handler.NewTaskHandler(taskService)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(verifier))

	owner := api.Group("/:user_id")
	owner.Use(middleware.OwnerGuard())
	{
		owner.GET("/tasks", taskHandler.List)
		owner.POST("/tasks", taskHandler.Create)
		owner.GET("/tasks/:id", taskHandler.Get)
		owner.PUT("/tasks/:id", taskHandler.Update)
		owner.DELETE("/tasks/:id", taskHandler.Delete)
		owner.PATCH("/tasks/:id/complete", taskHandler.ToggleComplete)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		logger.Info("server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to listen", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
