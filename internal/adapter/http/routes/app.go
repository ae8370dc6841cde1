package routes

import (
	"context"
	"fmt"

	"bookshop_billing/internal/adapter/persistence/memory"
	"bookshop_billing/internal/adapter/persistence/repository"
	"bookshop_billing/internal/infrastructure/config"
	"bookshop_billing/internal/infrastructure/database"
	"bookshop_billing/internal/infrastructure/payments"
	"bookshop_billing/internal/infrastructure/seed"
	"bookshop_billing/internal/usecase"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the use cases served over HTTP.
type App struct {
	Customers       usecase.ICustomerUseCase
	Items           usecase.IItemUseCase
	Cart            usecase.ICartUseCase
	Reports         usecase.IReportUseCase
	Payments        usecase.IBillingPaymentUseCase
	PaymentMockMode bool

	redis *redis.Client
}

// Close releases connections opened by Build.
func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
}

type repositories struct {
	customers interfaces.ICustomerRepository
	items     interfaces.IItemRepository
	bills     interfaces.IBillRepository
	payments  interfaces.IBillingPaymentRepository
	sequence  interfaces.IBillSequence
}

// Build selects the storage and sequence backends named by cfg, wires the use
// cases on top of them and loads the sample data when asked to.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{PaymentMockMode: cfg.PaymentGatewayMock}

	repos, err := buildRepositories(ctx, cfg, app, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	app.Customers = usecase.NewCustomerUseCase(repos.customers, logger)
	app.Items = usecase.NewItemUseCase(repos.items, logger)
	app.Cart = usecase.NewCartUseCase(repos.items, repos.customers, repos.bills, repos.sequence, cfg.TaxRate, logger)
	app.Reports = usecase.NewReportUseCase(repos.bills, repos.items, repos.customers)
	app.Payments = usecase.NewBillingPaymentUseCase(repos.payments, repos.bills, gateway, usecase.PaymentOptions{
		MockMode:       cfg.PaymentGatewayMock,
		TestPayerEmail: cfg.TestPayerEmail,
	}, logger)

	if cfg.SeedSampleData {
		if err := seed.Load(ctx, app.Customers, app.Items, logger); err != nil {
			app.Close()
			return nil, fmt.Errorf("seed sample data: %w", err)
		}
	}
	return app, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, app *App, logger *zap.Logger) (repositories, error) {
	var repos repositories

	var ddb repository.DynamoAPI
	if cfg.StorageBackend == config.BackendDynamoDB || cfg.SequenceBackend == config.BackendDynamoDB {
		client, err := database.NewDynamoDBClient(ctx, database.DynamoDBOptions{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		ddb = client
	}

	switch cfg.StorageBackend {
	case config.BackendDynamoDB:
		repos.customers = repository.NewCustomerDynamoRepository(ddb)
		repos.items = repository.NewItemDynamoRepository(ddb)
		repos.bills = repository.NewBillDynamoRepository(ddb)
		repos.payments = repository.NewBillingPaymentDynamoRepository(ddb)
	default:
		repos.customers = memory.NewCustomerMemoryRepository()
		repos.items = memory.NewItemMemoryRepository()
		repos.bills = memory.NewBillMemoryRepository()
		repos.payments = memory.NewBillingPaymentMemoryRepository()
	}

	switch cfg.SequenceBackend {
	case config.BackendDynamoDB:
		repos.sequence = repository.NewBillSequenceDynamo(ddb)
	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return repositories{}, fmt.Errorf("connect redis: %w", err)
		}
		app.redis = client
		repos.sequence = repository.NewBillSequenceRedis(client)
	default:
		repos.sequence = memory.NewBillSequence()
	}

	logger.Info("backends selected",
		zap.String("storage", cfg.StorageBackend),
		zap.String("sequence", cfg.SequenceBackend),
	)
	return repos, nil
}
