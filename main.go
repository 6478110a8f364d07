package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commulink_server/config"
	"commulink_server/routes"
	"commulink_server/services"
	"commulink_server/socket"
	"commulink_server/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Server.Env, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	awsCfg, err := services.LoadAWSConfig(ctx, cfg.AWS.Region)
	if err != nil {
		return err
	}

	// Initialize DynamoDB client and service
	logger.Info("initializing DynamoDB client", zap.String("table", cfg.Table.Name), zap.String("region", cfg.AWS.Region))
	dynamoService := services.NewDynamoService(services.InitializeDynamoDBClient(awsCfg), cfg.Table.Name, logger)
	if !cfg.Table.SkipCheck {
		if err := dynamoService.CheckTable(ctx); err != nil {
			return err
		}
	}

	var blob services.BlobStore
	if cfg.ExternalAvatars() {
		blob = services.NewS3Service(awsCfg, cfg.Avatar.Bucket, cfg.Avatar.PublicBaseURL)
		logger.Info("avatars stored in S3", zap.String("bucket", cfg.Avatar.Bucket))
	} else {
		logger.Info("avatars stored inline in user records")
	}

	// Initialize Services
	svc := routes.Services{
		Identity:      services.NewIdentityService(dynamoService, logger),
		Directory:     services.NewDirectoryService(dynamoService),
		Announcements: services.NewAnnouncementService(dynamoService, logger),
		Profiles:      services.NewUserProfileService(dynamoService, blob, logger),
	}
	svc.Announcements.CollisionGuard = cfg.Announcements.CollisionGuard

	r := mux.NewRouter()
	routes.RegisterRoutes(r, cfg.Server.StaticDir == "")
	routes.RegisterAPIRoutes(r, svc, logger)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Realtime.Enabled {
		socketServer, broadcaster := socket.NewSocketServer(logger)
		svc.Announcements.Notifier = broadcaster
		r.PathPrefix("/socket.io/").Handler(socketServer)

		g.Go(func() error {
			// Serve returns once Close is called.
			if err := socketServer.Serve(); err != nil && gctx.Err() == nil {
				return fmt.Errorf("socket.io server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			return socketServer.Close()
		})
	}

	if cfg.Server.StaticDir != "" {
		routes.RegisterStaticRoutes(r, cfg.Server.StaticDir)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           routes.WithCORS(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		logger.Info("starting server", zap.String("port", cfg.Server.Port), zap.Bool("production", cfg.IsProduction()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
