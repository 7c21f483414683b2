package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paani/remedial-learning-app/internal/cache"
	"github.com/paani/remedial-learning-app/internal/catalogue"
	"github.com/paani/remedial-learning-app/internal/config"
	"github.com/paani/remedial-learning-app/internal/data"
	"github.com/paani/remedial-learning-app/internal/data/memory"
	"github.com/paani/remedial-learning-app/internal/db"
	"github.com/paani/remedial-learning-app/internal/handler"
	"github.com/paani/remedial-learning-app/internal/metrics"
	"github.com/paani/remedial-learning-app/internal/password"
	"github.com/paani/remedial-learning-app/internal/service"
	"github.com/paani/remedial-learning-app/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type repositories struct {
	users       service.UserRepository
	sessions    service.SessionRepository
	students    service.StudentRepository
	assessments service.AssessmentRepository
	materials   service.MaterialRepository
	progress    service.ProgressRepository
	daily       service.DailyProgressRepository
	feedback    service.FeedbackRepository
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	if cfg.IsProduction() {
		zapLogger, err = zap.NewProduction()
		if err != nil {
			panic(err)
		}
		logger = logging.New(zapLogger)
	}
	defer logger.Sync()

	var repos repositories
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn(ctx, "using in-memory storage, data is lost on shutdown")
		store := memory.NewStore()
		repos = repositories{store, store, store, store, store, store, store, store}
	default:
		pool, err := db.New(ctx, cfg, logger)
		if err != nil {
			logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
		}
		defer pool.Close()
		repos = repositories{
			users:       data.NewUserRepository(pool),
			sessions:    data.NewSessionRepository(pool),
			students:    data.NewStudentRepository(pool),
			assessments: data.NewAssessmentRepository(pool),
			materials:   data.NewMaterialRepository(pool),
			progress:    data.NewProgressRepository(pool),
			daily:       data.NewDailyProgressRepository(pool),
			feedback:    data.NewFeedbackRepository(pool),
		}
	}

	var sessionCache service.SessionCache
	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal(ctx, "cannot connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		sessionCache = cache.NewRedisCache(rdb)
	}

	identityService := service.NewIdentityService(
		repos.users,
		repos.sessions,
		password.NewBcryptHasher(cfg.BcryptCost),
		sessionCache,
		cfg.SessionCacheTTL,
		cfg.SessionTTLDays,
	)
	rosterService := service.NewRosterService(repos.users, repos.students)
	assessmentService := service.NewAssessmentService(repos.students, repos.assessments, catalogue.Default())
	trackerService := service.NewTrackerService(repos.students, repos.materials, repos.progress, repos.daily, repos.feedback)

	r := handler.NewRouter(handler.RouterConfig{
		Logger:         logger,
		Metrics:        metrics.New(prometheus.DefaultRegisterer),
		Gatherer:       prometheus.DefaultGatherer,
		Identity:       identityService,
		Roster:         rosterService,
		Assessments:    assessmentService,
		Tracker:        trackerService,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port), zap.String("storage", cfg.StorageDriver))

	srv := &http.Server{
		Addr:              port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}
