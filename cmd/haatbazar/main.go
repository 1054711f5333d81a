package main

import (
	"context"
	"log/slog"
	"os"

	"haatbazar/config"
	"haatbazar/internal/delivery"
	"haatbazar/internal/delivery/api"
	"haatbazar/internal/delivery/api/middleware"
	"haatbazar/internal/delivery/api/router/handler"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/domain/service"
	"haatbazar/internal/infra/auth"
	"haatbazar/internal/infra/blob"
	"haatbazar/internal/infra/cache"
	logs "haatbazar/internal/infra/log"
	"haatbazar/internal/infra/persistence/postgres"
	"haatbazar/internal/infra/pubsub"
	"haatbazar/internal/infra/qrcode"
	"haatbazar/internal/usecase"
	"haatbazar/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
		blob.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBuyerRepository,
			postgres.NewSellerRepository,
			postgres.NewAdminRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewReviewRepository,
			postgres.NewComplaintRepository,
			postgres.NewTransactionManager,
			newStatisticsRepository,
		),
	)
}

// newStatisticsRepository fronts the count queries with Redis when it is configured.
func newStatisticsRepository(db *gorm.DB, rdb *redis.Client, cfg *config.Config, logger *slog.Logger) repository.StatisticsRepository {
	repo := postgres.NewStatisticsRepository(db)
	if rdb == nil {
		return repo
	}

	return cache.NewCachedStatisticsRepository(repo, rdb, cfg.Redis.TTL, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			blob.NewBlobStore,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBuyerService,
			impl.NewSellerService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewTransactionService,
			impl.NewReviewService,
			impl.NewComplaintService,
			impl.NewReportService,
			impl.NewStatisticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUploadReader,
			handler.NewUploadHandler,
			handler.NewAuthHandler,
			handler.NewBuyerHandler,
			handler.NewSellerHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewTransactionHandler,
			handler.NewReviewHandler,
			handler.NewComplaintHandler,
			handler.NewAdminHandler,
			handler.NewStatisticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedAdmin creates the configured admin once the store is reachable and migrated.
func seedAdmin(lc fx.Lifecycle, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return authUC.SeedAdmin(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
