package server

import (
	"EcomCredits/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Ledger   *handler.Ledger
	Catalog  *handler.Catalog
	Video    *handler.Video
	Referral *handler.Referral
	Order    *handler.Order
}
