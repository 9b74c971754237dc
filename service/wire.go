package service

import (
	"EcomCredits/dao"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(txFinder), new(*dao.Ledger)),
	wire.Bind(new(productStore), new(*dao.Product)),
	wire.Bind(new(orderStore), new(*dao.Order)),

	wire.Struct(new(LedgerService), "*"),
	wire.Bind(new(ILedgerService), new(*LedgerService)),

	wire.Struct(new(RewardService), "*"),
	wire.Bind(new(IRewardService), new(*RewardService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(ReferralService), "*"),
	wire.Bind(new(IReferralService), new(*ReferralService)),

	wire.Struct(new(VideoService), "*"),
	wire.Bind(new(IVideoService), new(*VideoService)),

	wire.Struct(new(CheckoutService), "*"),
	wire.Bind(new(ICheckoutService), new(*CheckoutService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)
