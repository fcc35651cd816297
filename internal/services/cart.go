package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, lineKey string) (*models.Cart, error)
}

type cartService struct {
	repo     repository.CartRepository
	products ProductService
}

func NewCartService(repo repository.CartRepository, products ProductService) CartService {
	return &cartService{repo: repo, products: products}
}

// GetCart returns the user's cart, creating an empty one on first use.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}

	if !isNoRows(err) {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	cart = &models.Cart{
		ID:        uuid.New(),
		UserID:    userID,
		Items:     make(map[string]models.CartLine),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.CreateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

// AddItem runs the request through a Selector so the same completeness and
// stock rules apply as on the product page. The quantity bound covers what
// is already in the cart for the same size and color.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("productId", req.ProductID.String()))

	product, err := s.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		metrics.RecordCartAddition(metrics.OutcomeError)
		return nil, err
	}

	if product.Status != models.ProductStatusActive {
		return nil, productNotFound(nil)
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		metrics.RecordCartAddition(metrics.OutcomeError)
		return nil, err
	}

	selector := catalog.NewSelector(product)

	if err := selector.SelectSize(req.Size); err != nil {
		return nil, s.rejectSelection(err)
	}

	if err := selector.SelectColor(req.Color); err != nil {
		return nil, s.rejectSelection(err)
	}

	if err := selector.Ready(); err != nil {
		return nil, s.rejectSelection(err)
	}

	if !selector.HasStock() {
		return nil, s.rejectSelection(catalog.ErrOutOfStock)
	}

	existing := cart.Items[models.LineKey(product.ID, req.Size, req.Color)].Quantity
	if existing+req.Quantity > selector.Available() {
		logger.Info("Cart quantity bound reached", slog.Int("inCart", existing), slog.Int("requested", req.Quantity), slog.Int("available", selector.Available()))
		return nil, s.rejectSelection(catalog.ErrQuantityLimit)
	}

	if err := selector.SetQuantity(req.Quantity); err != nil {
		return nil, s.rejectSelection(err)
	}

	result, err := selector.AddToCart(ctx, &cartLineStore{repo: s.repo, cart: cart})
	if err != nil {
		var appErr *errors.AppError
		if stdErrors.As(err, &appErr) {
			metrics.RecordCartAddition(metrics.OutcomeError)
			return nil, err
		}

		return nil, s.rejectSelection(err)
	}

	if !result.Success {
		return nil, s.rejectSelection(catalog.ErrOutOfStock)
	}

	metrics.RecordCartAddition(metrics.OutcomeAdded)
	logger.Info("Item added to cart", slog.String("lineKey", result.Line.Key()), slog.Int("quantity", result.Line.Quantity))

	return &models.CartResponse{Cart: cart, Message: result.Message}, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	line, exists := cart.Items[req.LineKey]
	if !exists {
		return nil, errors.NotFoundError("Item not found in the cart").WithKey(i18n.KeyCartItemNotFound)
	}

	if req.Quantity == 0 {
		delete(cart.Items, req.LineKey)
	} else {
		product, err := s.products.GetProductByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		if req.Quantity > catalog.AvailableStock(product, line.SelectedSize, line.SelectedColor) {
			return nil, errors.OutOfStockError("Requested quantity exceeds available stock").WithKey(i18n.KeyQuantityLimit)
		}

		line.Quantity = req.Quantity
		line.TotalPrice = line.UnitPrice * float64(line.Quantity)
		cart.Items[req.LineKey] = line
	}

	return s.save(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, lineKey string) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, exists := cart.Items[lineKey]; !exists {
		return nil, errors.NotFoundError("Item not found in the cart").WithKey(i18n.KeyCartItemNotFound)
	}

	delete(cart.Items, lineKey)

	return s.save(ctx, cart)
}

func (s *cartService) save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {

	cart.Total = calculateTotal(cart.Items)

	if err := s.repo.UpdateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

// rejectSelection turns a catalog failure into the user-facing error and
// counts it.
func (s *cartService) rejectSelection(err error) error {

	switch {
	case stdErrors.Is(err, catalog.ErrSelectionIncomplete):
		metrics.RecordCartAddition(metrics.OutcomeIncomplete)
		return errors.SelectionIncompleteError("Size and color are required").WithKey(i18n.KeySelectionIncomplete).WithError(err)
	case stdErrors.Is(err, catalog.ErrQuantityLimit):
		metrics.RecordCartAddition(metrics.OutcomeQuantityCap)
		return errors.OutOfStockError("Requested quantity exceeds available stock").WithKey(i18n.KeyQuantityLimit).WithError(err)
	case stdErrors.Is(err, catalog.ErrQuantityMinimum):
		return errors.ValidationError("Quantity must be at least 1").WithKey(i18n.KeyQuantityMinimum).WithError(err)
	case stdErrors.Is(err, catalog.ErrUnknownOption):
		return errors.BadRequestError("Unknown size or color").WithKey(i18n.KeyOptionUnavailable).WithError(err)
	case stdErrors.Is(err, catalog.ErrOptionUnavailable), stdErrors.Is(err, catalog.ErrOutOfStock):
		metrics.RecordCartAddition(metrics.OutcomeOutOfStock)
		return errors.OutOfStockError("Selection is out of stock").WithKey(i18n.KeyOutOfStock).WithError(err)
	default:
		metrics.RecordCartAddition(metrics.OutcomeError)
		return errors.InternalError("Failed to add item to cart").WithError(err)
	}
}

// cartLineStore merges composed lines into a loaded cart and persists it.
type cartLineStore struct {
	repo repository.CartRepository
	cart *models.Cart
}

func (c *cartLineStore) AddLine(ctx context.Context, line models.CartLine) error {

	key := line.Key()

	if existing, ok := c.cart.Items[key]; ok {
		line.Quantity += existing.Quantity
		line.TotalPrice = line.UnitPrice * float64(line.Quantity)
	}

	c.cart.Items[key] = line
	c.cart.Total = calculateTotal(c.cart.Items)

	if err := c.repo.UpdateCart(ctx, c.cart); err != nil {
		return errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return nil
}

func calculateTotal(items map[string]models.CartLine) float64 {

	var totalPrice float64

	for _, item := range items {
		totalPrice += item.TotalPrice
	}

	return totalPrice
}
