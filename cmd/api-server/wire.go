//go:build wireinject
// +build wireinject

package main

import (
	"EcomCredits/config"
	"EcomCredits/dao"
	"EcomCredits/dao/cache"
	"EcomCredits/handler"
	"EcomCredits/pkg/client"
	"EcomCredits/pkg/database"
	"EcomCredits/pkg/server"
	"EcomCredits/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.NewBalanceCache,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Ledger), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Video), "*"),
		wire.Struct(new(handler.Referral), "*"),
		wire.Struct(new(handler.Order), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
