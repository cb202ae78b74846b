package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"

	"akkor-hotel-backend/auth"
	"akkor-hotel-backend/config"
	"akkor-hotel-backend/controllers"
	"akkor-hotel-backend/logger"
	"akkor-hotel-backend/middleware"
	"akkor-hotel-backend/routes"
	"akkor-hotel-backend/services"
	"akkor-hotel-backend/storage"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set. Cannot issue or verify tokens.")
	}

	zlog, cleanup := logger.New(cfg.LogLevel, cfg.LogJSON, cfg.LogFile)
	defer cleanup()

	db, err := config.Connect(cfg)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	zlog.Info("database connection established, migrations applied")

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWTSecret),
		TTL:    time.Duration(cfg.TokenTTLMin) * time.Minute,
	}

	roleService := services.NewUserRoleService(db)
	userService := services.NewUserService(db, roleService)
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db, roomService, roleService)

	userController := controllers.NewUserController(userService, roleService, jwter)
	hotelController := controllers.NewHotelController(hotelService)
	roomController := controllers.NewRoomController(roomService, hotelService)
	bookingController := controllers.NewBookingController(bookingService)
	roleController := controllers.NewUserRoleController(roleService, userService)

	authmw := middleware.NewAuthMiddleware(jwter, userService)

	// The object store is optional; it only backs file blobs and is not
	// linked to any entity.
	if cfg.S3.Endpoint != "" {
		store, err := storage.NewObjectStore(cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket, cfg.S3.UseSSL)
		if err != nil {
			zlog.Fatal("object store init failed", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := store.EnsureBucket(ctx); err != nil {
			cancel()
			zlog.Fatal("object store bucket check failed", zap.Error(err))
		}
		cancel()
		zlog.Info("object store ready", zap.String("bucket", cfg.S3.Bucket))
	}

	router := routes.SetupRouter(
		zlog,
		authmw,
		userController,
		hotelController,
		roomController,
		bookingController,
		roleController,
		cfg.CORSOrigins,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zlog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("forced shutdown", zap.Error(err))
	}
	zlog.Info("server stopped gracefully")
}
