package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/display"
	"storefront/internal/domain/repository"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/media"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type readyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger

	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	Carts      repository.CartRepository
	TxManager  repository.TransactionManager
	Media      media.ReferenceStore
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		fx.Invoke(
			announceReady,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		media.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewCartRepository,
			postgres.NewTransactionManager,
		),
	)
}

// announceReady forces the full repository graph to build; the schema
// migration itself runs in the postgres lifecycle hook.
func announceReady(params readyParams) {
	params.Logger.Info("storefront schema layer ready",
		slog.String("service", params.Config.Env.ServiceName),
		slog.String("env", params.Config.Env.Env),
	)

	for _, name := range []string{
		display.EntityUser,
		display.EntityCategory,
		display.EntityProduct,
		display.EntityOrder,
		display.EntityCart,
		display.EntityCartItem,
	} {
		params.Logger.Debug("display labels loaded",
			slog.String("entity", name),
			slog.Int("fields", len(display.FieldLabels(display.LocaleEnglish, name))),
		)
	}
}
