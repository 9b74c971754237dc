//go:build wireinject
// +build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewLedger,
	NewUser,
	NewProduct,
	NewReferral,
	NewVideo,
	NewOrder,
)
