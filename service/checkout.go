package service

import (
	"EcomCredits/config"
	"EcomCredits/models"
	"EcomCredits/pkg/log"
	"EcomCredits/pkg/snowflake"
	"EcomCredits/types"
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// productStore 结算所需的商品操作面
type productStore interface {
	FindByID(ctx context.Context, id uint64) (*models.Product, error)
	DecrStock(ctx context.Context, productID uint64, quantity uint32) (int64, error)
	IncrStock(ctx context.Context, productID uint64, quantity uint32) error
}

// orderStore 结算所需的订单操作面
type orderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindBySn(ctx context.Context, orderSn string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderSn string, from, to int8) (int64, error)
	ListByUser(ctx context.Context, userID uint64, cursor uint64, limit int) ([]*models.Order, error)
}

// CheckoutService 下单结算：积分抵扣 / 现金支付 + 购物返现
type CheckoutService struct {
	Config     *config.Config
	DB         *gorm.DB
	OrderDAO   orderStore
	ProductDAO productStore
	Reward     IRewardService
	Ledger     ILedgerService
}

var _ ICheckoutService = (*CheckoutService)(nil)

type ICheckoutService interface {
	PlaceOrder(ctx context.Context, userID uint64, req *types.PlaceOrderReq) (*types.PlaceOrderResp, error)
	Refund(ctx context.Context, userID uint64, orderSn string) error
	ListOrders(ctx context.Context, userID uint64, cursor uint64, limit int) (*types.ListOrdersResp, error)
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint64, req *types.PlaceOrderReq) (*types.PlaceOrderResp, error) {
	product, err := s.ProductDAO.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, validationf("商品不存在")
	}
	if product.Status != 1 {
		return nil, validationf("商品已下架")
	}

	rows, err := s.ProductDAO.DecrStock(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, validationf("商品库存不足")
	}

	total := product.Price * req.Quantity
	orderSn := snowflake.GenOrderSn()

	order := &models.Order{
		ID:          snowflake.GenUserID(),
		OrderSn:     orderSn,
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.ProductName,
		Quantity:    req.Quantity,
		TotalAmount: total,
		PayMethod:   req.PayMethod,
		Status:      models.OrderStatusCreated,
	}

	resp := &types.PlaceOrderResp{
		OrderSn:     orderSn,
		TotalAmount: total,
	}

	switch req.PayMethod {
	case models.PayMethodCredits:
		// 固定汇率抵扣，余额不足由账本按策略拒绝
		tx, err := s.Reward.ApplyEvent(ctx, &types.RewardEvent{
			Kind:        types.RewardRedeemCredits,
			UserID:      userID,
			OrderAmount: int64(total),
			SourceID:    orderSn,
		})
		if err != nil {
			// 支付没成，扣掉的库存必须补回来
			s.restoreStock(ctx, req.ProductID, req.Quantity)
			return nil, err
		}
		order.CreditsUsed = tx.Amount
		resp.CreditsUsed = tx.Amount

	case models.PayMethodMoney:
		percent := req.CashbackPercent
		if percent == 0 {
			percent = s.Config.Rewards.CashbackPercentMin
		}
		tx, err := s.Reward.ApplyEvent(ctx, &types.RewardEvent{
			Kind:            types.RewardPurchaseCash,
			UserID:          userID,
			OrderAmount:     int64(total),
			CashbackPercent: percent,
			SourceID:        orderSn,
		})
		if err != nil {
			s.restoreStock(ctx, req.ProductID, req.Quantity)
			return nil, err
		}
		order.CashbackPercent = uint8(percent)
		order.CashbackCredits = tx.Amount
		resp.CashbackCredits = tx.Amount
	}

	order.Status = models.OrderStatusPaid
	if err := s.OrderDAO.Create(ctx, order); err != nil {
		return nil, err
	}
	return resp, nil
}

// restoreStock 支付失败后的库存补偿，补偿失败只能记日志等人工对账
func (s *CheckoutService) restoreStock(ctx context.Context, productID uint64, quantity uint32) {
	if err := s.ProductDAO.IncrStock(ctx, productID, quantity); err != nil {
		log.L.Error("restore stock failed",
			zap.Uint64("productID", productID),
			zap.Uint32("quantity", quantity),
			zap.Error(err))
	}
}

// Refund 退款：积分订单按 refund 类型原数返还
func (s *CheckoutService) Refund(ctx context.Context, userID uint64, orderSn string) error {
	order, err := s.OrderDAO.FindBySn(ctx, orderSn)
	if err != nil {
		return validationf("订单不存在")
	}
	if order.UserID != userID {
		return validationf("无权操作该订单")
	}

	rows, err := s.OrderDAO.UpdateStatus(ctx, orderSn, models.OrderStatusPaid, models.OrderStatusRefunded)
	if err != nil {
		return err
	}
	if rows == 0 {
		return validationf("订单状态不允许退款")
	}

	if order.PayMethod == models.PayMethodCredits && order.CreditsUsed > 0 {
		_, err = s.Ledger.AppendTransaction(ctx, &models.CreditTransaction{
			UserID:      userID,
			Type:        models.TxTypeRefund,
			Amount:      order.CreditsUsed,
			SourceID:    fmt.Sprintf("refund:%s", orderSn),
			Description: fmt.Sprintf("订单退款返还 %s", orderSn),
		})
		return err
	}
	return nil
}

func (s *CheckoutService) ListOrders(ctx context.Context, userID uint64, cursor uint64, limit int) (*types.ListOrdersResp, error) {
	if limit <= 0 || limit > 20 {
		limit = 10
	}
	orders, err := s.OrderDAO.ListByUser(ctx, userID, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	resp := &types.ListOrdersResp{
		Orders: make([]types.OrderItem, 0),
	}
	if len(orders) > limit {
		resp.HasMore = true
		orders = orders[:limit]
		resp.NextCursor = orders[len(orders)-1].ID
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, types.OrderItem{
			OrderSn:         o.OrderSn,
			ProductName:     o.ProductName,
			Quantity:        o.Quantity,
			TotalAmount:     o.TotalAmount,
			PayMethod:       o.PayMethod,
			CreditsUsed:     o.CreditsUsed,
			CashbackCredits: o.CashbackCredits,
			Status:          o.Status,
			CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}
