package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/cache"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const productCacheTTL = 10 * time.Minute

type ProductService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.ProductView, int, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.ProductView, error)
	CheckAvailability(ctx context.Context, slug string, req *models.AvailabilityRequest) (*models.AvailabilityResponse, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
	policy       *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, c cache.Cache) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, cache: c, policy: bluemonday.StrictPolicy()}
}

func productNotFound(err error) *errors.AppError {
	return errors.NotFoundError("Product not found").WithKey(i18n.KeyProductNotFound).WithError(err)
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.ProductView, int, error) {

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	views := make([]*models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, catalog.View(p))
	}

	return views, total, nil
}

// loadBySlug reads through the cache. Only active products are visible on
// the storefront.
func (s *productService) loadBySlug(ctx context.Context, slug string) (*models.Product, error) {

	product, err := cache.Fetch(ctx, s.cache, cache.Key(cache.ProductSlugKeyPrefix, slug), productCacheTTL,
		func(ctx context.Context) (*models.Product, error) {
			return s.repo.GetProductBySlug(ctx, slug)
		})
	if err != nil {
		if isNoRows(err) {
			return nil, productNotFound(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.Status != models.ProductStatusActive {
		return nil, productNotFound(nil)
	}

	return product, nil
}

func (s *productService) GetProductBySlug(ctx context.Context, slug string) (*models.ProductView, error) {

	product, err := s.loadBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return catalog.View(product), nil
}

// CheckAvailability replays a shopper's choice through a Selector: size
// first, then color, then quantity.
func (s *productService) CheckAvailability(ctx context.Context, slug string, req *models.AvailabilityRequest) (*models.AvailabilityResponse, error) {

	product, err := s.loadBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	selector := catalog.NewSelector(product)
	resp := &models.AvailabilityResponse{}

	if err := selector.SelectSize(req.Size); err != nil {
		resp.Message = i18n.TC(ctx, selectionErrorKey(err))
	} else if err := selector.SelectColor(req.Color); err != nil {
		resp.Message = i18n.TC(ctx, selectionErrorKey(err))
	}

	if req.Quantity > 0 {
		if err := selector.SetQuantity(req.Quantity); err != nil && resp.Message == "" {
			resp.Message = i18n.TC(ctx, selectionErrorKey(err))
		}
	}

	resp.Selection = selector.Selection()
	resp.HasStock = selector.HasStock()
	resp.AvailableStock = selector.Available()
	resp.SizeOptions = selector.SizeOptions()
	resp.ColorOptions = selector.ColorOptions()
	resp.CanAddToCart = resp.HasStock && selector.Ready() == nil

	if resp.Message == "" && !resp.HasStock {
		resp.Message = i18n.TC(ctx, i18n.KeyOutOfStock)
	}

	return resp, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	product, err := cache.Fetch(ctx, s.cache, cache.Key(cache.ProductKeyPrefix, id.String()), productCacheTTL,
		func(ctx context.Context) (*models.Product, error) {
			return s.repo.GetProductByID(ctx, id)
		})
	if err != nil {
		if isNoRows(err) {
			return nil, productNotFound(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

// loadFresh bypasses the cache for read-modify-write paths.
func (s *productService) loadFresh(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, productNotFound(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		ID:                  uuid.New(),
		CategoryID:          req.CategoryID,
		Name:                strings.TrimSpace(req.Name),
		NameAr:              strings.TrimSpace(req.NameAr),
		Slug:                strings.ToLower(strings.TrimSpace(req.Slug)),
		Description:         s.policy.Sanitize(req.Description),
		DescriptionAr:       s.policy.Sanitize(req.DescriptionAr),
		Price:               req.Price,
		SalePrice:           req.SalePrice,
		StockQuantity:       req.StockQuantity,
		SKU:                 req.SKU,
		Image:               req.Image,
		Status:              models.ProductStatusActive,
		Variants:            req.Variants,
		VariantCombinations: assignCombinationIDs(req.VariantCombinations),
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Product created", slog.String("productId", product.ID.String()), slog.String("slug", product.Slug))

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.loadFresh(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.NameAr != nil {
		product.NameAr = strings.TrimSpace(*req.NameAr)
	}
	if req.Description != nil {
		product.Description = s.policy.Sanitize(*req.Description)
	}
	if req.DescriptionAr != nil {
		product.DescriptionAr = s.policy.Sanitize(*req.DescriptionAr)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.SalePrice != nil {
		// zero clears the sale
		if *req.SalePrice == 0 {
			product.SalePrice = nil
		} else {
			product.SalePrice = req.SalePrice
		}
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Variants != nil {
		product.Variants = *req.Variants
	}
	if req.VariantCombinations != nil {
		product.VariantCombinations = assignCombinationIDs(*req.VariantCombinations)
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, product)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	product, err := s.loadFresh(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, product)

	return nil
}

func (s *productService) ListCategories(ctx context.Context) ([]*models.Category, error) {

	categories, err := cache.Fetch(ctx, s.cache, cache.CategoryListKey, productCacheTTL, s.categoryRepo.ListCategories)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *productService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	category := &models.Category{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		NameAr:      strings.TrimSpace(req.NameAr),
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Description: s.policy.Sanitize(req.Description),
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	s.dropKeys(ctx, cache.CategoryListKey)

	return category, nil
}

func (s *productService) DeleteCategory(ctx context.Context, id uuid.UUID) error {

	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		if isNoRows(err) {
			return errors.NotFoundError("Category not found").WithKey(i18n.KeyNotFound).WithError(err)
		}

		return errors.DatabaseError("Failed to delete category").WithError(err)
	}

	s.dropKeys(ctx, cache.CategoryListKey)

	return nil
}

func (s *productService) invalidate(ctx context.Context, product *models.Product) {
	s.dropKeys(ctx, cache.Key(cache.ProductSlugKeyPrefix, product.Slug), cache.Key(cache.ProductKeyPrefix, product.ID.String()))
}

// dropKeys is best effort; entries expire on their own within productCacheTTL.
func (s *productService) dropKeys(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

func validateProduct(p *models.Product) error {
	if problems := catalog.ValidateProduct(p); len(problems) > 0 {
		return errors.ValidationError("Invalid product").WithKey(i18n.KeyValidationFailed).WithDetail(strings.Join(problems, "; "))
	}

	return nil
}

func assignCombinationIDs(rows []models.VariantCombination) []models.VariantCombination {
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
	}

	return rows
}

// selectionErrorKey maps catalog sentinel errors to user-facing messages.
func selectionErrorKey(err error) string {
	switch {
	case stdErrors.Is(err, catalog.ErrSelectionIncomplete):
		return i18n.KeySelectionIncomplete
	case stdErrors.Is(err, catalog.ErrOutOfStock):
		return i18n.KeyOutOfStock
	case stdErrors.Is(err, catalog.ErrQuantityLimit):
		return i18n.KeyQuantityLimit
	case stdErrors.Is(err, catalog.ErrQuantityMinimum):
		return i18n.KeyQuantityMinimum
	case stdErrors.Is(err, catalog.ErrOptionUnavailable), stdErrors.Is(err, catalog.ErrUnknownOption):
		return i18n.KeyOptionUnavailable
	default:
		return i18n.KeyInternal
	}
}

func isNoRows(err error) bool {
	return stdErrors.Is(err, sql.ErrNoRows)
}
