package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"plantcare-api/internal/ai"
	"plantcare-api/internal/config"
	"plantcare-api/internal/model"
	"plantcare-api/internal/platform/gcs"
	mysqlClient "plantcare-api/internal/platform/mysql"
	rabbitmqClient "plantcare-api/internal/platform/rabbitmq"
	redisClient "plantcare-api/internal/platform/redis"
	"plantcare-api/internal/platform/secrets"
	"plantcare-api/internal/repository"
	"plantcare-api/internal/vision"
	"plantcare-api/internal/worker"
)

// App holds every process-scoped client and the loaded model registry.
// Everything here is constructed exactly once at startup and injected
// into the request handlers; nothing is ambient.
type App struct {
	Config      *config.Config
	MySQL       *gorm.DB
	Redis       *redis.Client
	MQConn      *amqp.Connection
	Uploader    *gcs.Uploader
	Gemini      *ai.GeminiClient
	Advisor     *ai.TreatmentAdvisor
	Registry    *vision.Registry
	EventWorker *worker.ScanEventWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	serviceAccountKey, err := secrets.AccessSecret(ctx, cfg.SecretResourceName())
	if err != nil {
		return nil, fmt.Errorf("resolve service account key failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.Prediction{}, &model.ScanEvent{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	uploader, err := gcs.NewUploader(ctx, serviceAccountKey, cfg.GCP.Bucket)
	if err != nil {
		return nil, err
	}

	gemini, err := ai.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	registry, err := vision.NewRegistry(cfg.ModelPaths(), cfg.Vision.ONNXSharedLibPath)
	if err != nil {
		return nil, fmt.Errorf("load model registry failed: %w", err)
	}

	eventRepo := repository.NewScanEventRepository(mysqlDB)
	eventWorker := worker.NewScanEventWorker(mqConn, eventRepo, cfg.RabbitMQ.ScanEventQueue)
	if err := eventWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start scan event worker failed: %w", err)
	}

	return &App{
		Config:      cfg,
		MySQL:       mysqlDB,
		Redis:       redisCli,
		MQConn:      mqConn,
		Uploader:    uploader,
		Gemini:      gemini,
		Advisor:     ai.NewTreatmentAdvisor(gemini),
		Registry:    registry,
		EventWorker: eventWorker,
		StartedAt:   time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.EventWorker != nil {
		a.EventWorker.Close()
	}
	if a.Registry != nil {
		a.Registry.Close()
	}
	if a.Gemini != nil {
		if err := a.Gemini.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Uploader != nil {
		if err := a.Uploader.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
