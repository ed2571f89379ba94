package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/logger"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/queue"
	"github.com/yemeknerede/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	cfg            *config.Config
	db             *gorm.DB
	orderRepo      repository.OrderRepository
	menuItemRepo   repository.MenuItemRepository
	restaurantRepo repository.RestaurantRepository
	couponService  *CouponService
	queueClient    *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	cfg *config.Config,
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	menuItemRepo repository.MenuItemRepository,
	restaurantRepo repository.RestaurantRepository,
	couponService *CouponService,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		cfg:            cfg,
		db:             db,
		orderRepo:      orderRepo,
		menuItemRepo:   menuItemRepo,
		restaurantRepo: restaurantRepo,
		couponService:  couponService,
		queueClient:    queueClient,
	}
}

// OrderItemParams 下单明细参数
type OrderItemParams struct {
	MenuItemID uint
	Quantity   int
}

// CreateOrderParams 下单参数
type CreateOrderParams struct {
	UserID          uint
	RestaurantID    uint
	Items           []OrderItemParams
	DeliveryAddress string
	PaymentMethod   string
	Note            string
	CouponCode      string
}

// orderStatusFlow 允许的状态流转
var orderStatusFlow = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusConfirmed, constants.OrderStatusCancelled},
	constants.OrderStatusConfirmed: {constants.OrderStatusPreparing, constants.OrderStatusCancelled},
	constants.OrderStatusPreparing: {constants.OrderStatusOnTheWay, constants.OrderStatusCancelled},
	constants.OrderStatusOnTheWay:  {constants.OrderStatusDelivered, constants.OrderStatusCancelled},
}

// Create 下单：计算金额、可选核销优惠券、入库并投递通知
func (s *OrderService) Create(params CreateOrderParams) (*models.Order, error) {
	if len(params.Items) == 0 {
		return nil, ErrOrderItemInvalid
	}

	restaurant, err := s.restaurantRepo.GetByID(params.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, ErrRestaurantNotFound
	}

	ids := make([]uint, 0, len(params.Items))
	for _, item := range params.Items {
		if item.MenuItemID == 0 || item.Quantity < 1 {
			return nil, ErrOrderItemInvalid
		}
		ids = append(ids, item.MenuItemID)
	}
	menuItems, err := s.menuItemRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	menuByID := make(map[uint]*models.MenuItem, len(menuItems))
	for i := range menuItems {
		menuByID[menuItems[i].ID] = &menuItems[i]
	}

	subtotal := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(params.Items))
	for _, item := range params.Items {
		menuItem, ok := menuByID[item.MenuItemID]
		if !ok || menuItem.RestaurantID != params.RestaurantID || !menuItem.IsAvailable {
			return nil, ErrOrderItemInvalid
		}
		lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   item.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(lineTotal.Round(2)),
		})
	}

	subtotalMoney := models.NewMoneyFromDecimal(subtotal.Round(2))
	serviceFee := models.NewMoneyFromFloat(s.cfg.Order.ServiceFee)
	deliveryFee := restaurant.DeliveryFee

	paymentMethod := params.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	order := &models.Order{
		OrderNo:         newOrderNo(),
		UserID:          params.UserID,
		RestaurantID:    params.RestaurantID,
		Status:          constants.OrderStatusConfirmed,
		Subtotal:        subtotalMoney,
		DeliveryFee:     deliveryFee,
		ServiceFee:      serviceFee,
		DeliveryAddress: params.DeliveryAddress,
		PaymentMethod:   paymentMethod,
		Note:            params.Note,
		Items:           orderItems,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		discount := models.NewMoneyFromDecimal(decimal.Zero)
		if params.CouponCode != "" {
			usage, err := s.couponService.RedeemWithTx(tx, RedeemParams{
				Code:         params.CouponCode,
				UserID:       params.UserID,
				RestaurantID: params.RestaurantID,
				OrderAmount:  subtotalMoney,
			})
			if err != nil {
				return err
			}
			discount = usage.DiscountAmount
			order.CouponCode = strings.ToUpper(strings.TrimSpace(params.CouponCode))
		}

		order.Discount = discount
		total := subtotalMoney.Add(deliveryFee.Decimal).Add(serviceFee.Decimal).Sub(discount.Decimal)
		if total.IsNegative() {
			total = decimal.Zero
		}
		order.Total = models.NewMoneyFromDecimal(total.Round(2))

		return s.orderRepo.WithTx(tx).Create(order)
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatus(order)
	return order, nil
}

// GetForUser 获取用户自己的订单
func (s *OrderService) GetForUser(id, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDWithItems(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Get 获取订单（后台）
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDWithItems(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListForUser 查询用户订单
func (s *OrderService) ListForUser(userID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{UserID: userID, Status: status}, page, pageSize)
}

// List 分页查询订单（后台）
func (s *OrderService) List(filter repository.OrderListFilter, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter, page, pageSize)
}

// UpdateStatus 推进订单状态并通知用户
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(order.Status, status) {
		return nil, ErrOrderStatusInvalid
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.notifyStatus(order)
	return order, nil
}

// CancelForUser 用户取消订单，仅限未开始配送的订单
func (s *OrderService) CancelForUser(id, userID uint) (*models.Order, error) {
	order, err := s.GetForUser(id, userID)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case constants.OrderStatusPending, constants.OrderStatusConfirmed:
	default:
		return nil, ErrOrderStatusInvalid
	}

	order.Status = constants.OrderStatusCancelled
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.notifyStatus(order)
	return order, nil
}

func isValidTransition(from, to string) bool {
	for _, allowed := range orderStatusFlow[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// notifyStatus 投递订单状态通知，队列不可用时仅记录日志
func (s *OrderService) notifyStatus(order *models.Order) {
	if !s.queueClient.Enabled() {
		return
	}
	err := s.queueClient.EnqueueNotificationDispatch(queue.NotificationDispatchPayload{
		UserID: order.UserID,
		Type:   constants.NotificationTypeOrder,
		Title:  orderStatusTitle(order.Status),
		Body:   fmt.Sprintf("Sipariş %s: %s", order.OrderNo, orderStatusTitle(order.Status)),
		RefID:  order.ID,
	})
	if err != nil {
		logger.Warnw("order_notify_enqueue_failed", "order_id", order.ID, "error", err)
	}
}

func orderStatusTitle(status string) string {
	switch status {
	case constants.OrderStatusConfirmed:
		return "Siparişiniz onaylandı"
	case constants.OrderStatusPreparing:
		return "Siparişiniz hazırlanıyor"
	case constants.OrderStatusOnTheWay:
		return "Siparişiniz yolda"
	case constants.OrderStatusDelivered:
		return "Siparişiniz teslim edildi"
	case constants.OrderStatusCancelled:
		return "Siparişiniz iptal edildi"
	default:
		return "Sipariş durumu güncellendi"
	}
}

func newOrderNo() string {
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), randomCode(8))
}
