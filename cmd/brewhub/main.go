package main

import (
	"context"
	"log/slog"
	"os"

	"brewhub/config"
	"brewhub/internal/delivery"
	"brewhub/internal/delivery/http"
	"brewhub/internal/delivery/http/router/handler"
	logs "brewhub/internal/infra/log"
	"brewhub/internal/infra/persistence/postgres"
	"brewhub/internal/usecase/impl"

	"go.uber.org/fx"
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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewStoreRepository,
			postgres.NewEmployeeRepository,
			postgres.NewCustomerRepository,
			postgres.NewProductRepository,
			postgres.NewPromotionRepository,
			postgres.NewOrderRepository,
			postgres.NewReportRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewStoreService,
			impl.NewEmployeeService,
			impl.NewCustomerService,
			impl.NewProductService,
			impl.NewPromotionService,
			impl.NewReportService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStoreHandler,
			handler.NewEmployeeHandler,
			handler.NewCustomerHandler,
			handler.NewProductHandler,
			handler.NewPromotionHandler,
			handler.NewOrderHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
