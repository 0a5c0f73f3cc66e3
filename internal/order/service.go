// AngelaMos | 2026
// service.go

package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/gearstore/internal/cart"
	"github.com/angelamos/gearstore/internal/core"
)

// CartProvider supplies the cart checkout consumes. Satisfied by
// cart.Service.
type CartProvider interface {
	GetCart(ctx context.Context, userID string) (*cart.Cart, error)
}

type Service struct {
	repo  Repository
	carts CartProvider

	// checkoutLocks serializes checkout per user. Single-instance
	// deployment, so an in-process lock is sufficient.
	checkoutLocks sync.Map
}

func NewService(repo Repository, carts CartProvider) *Service {
	return &Service{repo: repo, carts: carts}
}

// Checkout turns the user's cart into an immutable order and clears the
// cart, both in one transaction. The total is computed server-side from
// the snapshot prices; nothing from the request body influences it.
func (s *Service) Checkout(
	ctx context.Context,
	userID string,
	req CreateOrderRequest,
) (*Order, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		return nil, fmt.Errorf("checkout: %w", core.ErrEmptyCart)
	}

	items := make([]OrderItem, 0, len(c.Items))
	for _, line := range c.Items {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
		})
	}

	order := &Order{
		UserID:        userID,
		Items:         items,
		Total:         c.Total(),
		Status:        StatusProcessing,
		FullName:      req.ShippingAddress.FullName,
		Address:       req.ShippingAddress.Address,
		City:          req.ShippingAddress.City,
		State:         req.ShippingAddress.State,
		ZipCode:       req.ShippingAddress.ZipCode,
		Country:       req.ShippingAddress.Country,
		PaymentMethod: req.PaymentMethod,
	}

	// The order number carries a random suffix; on the rare collision
	// a fresh number gets one retry.
	for attempt := 0; attempt < 2; attempt++ {
		order.ID = uuid.New().String()
		order.OrderNumber = GenerateOrderNumber()

		err = s.repo.CreateWithCartClear(ctx, order, c.ID)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, core.ErrDuplicateKey) {
			return nil, err
		}
	}

	return nil, err
}

func (s *Service) GetOrders(
	ctx context.Context,
	userID string,
) ([]Order, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// GetOrder enforces ownership: reading another user's order is
// forbidden, not hidden.
func (s *Service) GetOrder(
	ctx context.Context,
	userID, orderID string,
) (*Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, fmt.Errorf("get order: %w", core.ErrForbidden)
	}

	return order, nil
}

// UpdateStatus overwrites the order status with any of the four known
// values. There is no transition graph.
func (s *Service) UpdateStatus(
	ctx context.Context,
	orderID, status string,
) (*Order, error) {
	if !IsValidStatus(status) {
		return nil, fmt.Errorf(
			"update status: unknown status %q: %w",
			status, core.ErrInvalidInput,
		)
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}

func (s *Service) userLock(userID string) *sync.Mutex {
	lock, _ := s.checkoutLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateOrderNumber builds ORD-<base36 ms timestamp>-<5 base36
// chars>, uppercased.
func GenerateOrderNumber() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}

	return strings.ToUpper(
		fmt.Sprintf("ORD-%s-%s", timestamp, string(suffix)))
}
