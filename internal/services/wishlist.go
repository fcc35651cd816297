package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/google/uuid"
)

type WishlistService interface {
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistEntry, error)
	AddItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error
	RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error
	AddAllToCart(ctx context.Context, userID uuid.UUID, req *models.AddAllToCartRequest) (*models.BulkCartResult, error)
}

type wishlistService struct {
	repo     repository.WishlistRepository
	products ProductService
	carts    CartService
}

func NewWishlistService(repo repository.WishlistRepository, products ProductService, carts CartService) WishlistService {
	return &wishlistService{repo: repo, products: products, carts: carts}
}

// ListItems joins each entry with its product. Products removed since they
// were saved are listed without a view.
func (s *wishlistService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistEntry, error) {

	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch wishlist").WithError(err)
	}

	entries := make([]models.WishlistEntry, 0, len(items))

	for _, item := range items {
		entry := models.WishlistEntry{ProductID: item.ProductID, AddedAt: item.CreatedAt}

		product, err := s.products.GetProductByID(ctx, item.ProductID)
		if err == nil {
			entry.Product = catalog.View(product)
		} else if appErr, ok := errors.IsAppError(err); !ok || appErr.Code != errors.ErrCodeNotFound {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *wishlistService) AddItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {

	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		return err
	}

	if err := s.repo.AddItem(ctx, &models.WishlistItem{UserID: userID, ProductID: productID}); err != nil {
		return errors.DatabaseError("Failed to add wishlist item").WithError(err)
	}

	return nil
}

func (s *wishlistService) RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {

	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		if isNoRows(err) {
			return errors.NotFoundError("Wishlist item not found").WithKey(i18n.KeyNotFound).WithError(err)
		}

		return errors.DatabaseError("Failed to remove wishlist item").WithError(err)
	}

	return nil
}

// AddAllToCart moves wishlist products to the cart one at a time. Without
// explicit selections every wishlist item is tried with quantity 1. A failing
// item, or a selection for a product not on the wishlist, is reported in the
// result and does not stop the rest.
func (s *wishlistService) AddAllToCart(ctx context.Context, userID uuid.UUID, req *models.AddAllToCartRequest) (*models.BulkCartResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch wishlist").WithError(err)
	}

	wishlisted := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		wishlisted[item.ProductID] = true
	}

	selections := req.Selections
	if len(selections) == 0 {
		for _, item := range items {
			selections = append(selections, models.WishlistSelection{ProductID: item.ProductID})
		}
	}

	result := &models.BulkCartResult{Items: make([]models.BulkCartItemResult, 0, len(selections))}

	for _, sel := range selections {
		if !wishlisted[sel.ProductID] {
			result.Skipped++
			result.Items = append(result.Items, models.BulkCartItemResult{
				ProductID: sel.ProductID,
				Code:      errors.ErrCodeNotFound,
				Message:   i18n.TC(ctx, i18n.KeyNotFound),
			})
			logger.Warn("Selection is not on the wishlist", slog.String("productId", sel.ProductID.String()))

			continue
		}

		quantity := sel.Quantity
		if quantity < 1 {
			quantity = 1
		}

		itemResult := models.BulkCartItemResult{ProductID: sel.ProductID}

		resp, err := s.carts.AddItem(ctx, userID, &models.AddItemRequest{
			ProductID: sel.ProductID,
			Size:      sel.Size,
			Color:     sel.Color,
			Quantity:  quantity,
		})

		if err != nil {
			appErr, ok := errors.IsAppError(err)
			if !ok || appErr.StatusCode >= 500 {
				return nil, err
			}

			itemResult.Code = appErr.Code
			itemResult.Message = i18n.TC(ctx, appErr.Key)
			if appErr.Key == "" {
				itemResult.Message = appErr.Message
			}

			result.Skipped++
			logger.Info("Wishlist item skipped", slog.String("productId", sel.ProductID.String()), slog.String("code", appErr.Code))
		} else {
			itemResult.Success = true
			result.Cart = resp.Cart
			result.Added++
		}

		result.Items = append(result.Items, itemResult)
	}

	if result.Cart == nil {
		cart, err := s.carts.GetCart(ctx, userID)
		if err != nil {
			return nil, err
		}

		result.Cart = cart
	}

	if result.Added > 0 {
		result.Message = i18n.TC(ctx, i18n.KeyWishlistAddedAll)
	}

	return result, nil
}
