package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.category_id, p.name, p.name_ar, p.slug, p.description, p.description_ar,
		p.price, p.sale_price, p.stock_quantity, p.sku, p.image, p.status,
		p.variants, p.variant_combinations, p.created_at, p.updated_at,
		c.id, c.name, c.name_ar, c.slug`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}
	category := &models.Category{}

	var (
		salePrice    sql.NullFloat64
		variantsJSON []byte
		combosJSON   []byte
	)

	err := row.Scan(&product.ID, &product.CategoryID, &product.Name, &product.NameAr, &product.Slug, &product.Description, &product.DescriptionAr,
		&product.Price, &salePrice, &product.StockQuantity, &product.SKU, &product.Image, &product.Status,
		&variantsJSON, &combosJSON, &product.CreatedAt, &product.UpdatedAt,
		&category.ID, &category.Name, &category.NameAr, &category.Slug)
	if err != nil {
		return nil, err
	}

	if salePrice.Valid {
		product.SalePrice = &salePrice.Float64
	}

	if len(variantsJSON) > 0 {
		if err := json.Unmarshal(variantsJSON, &product.Variants); err != nil {
			return nil, fmt.Errorf("failed to unmarshal variants: %w", err)
		}
	}

	if len(combosJSON) > 0 {
		if err := json.Unmarshal(combosJSON, &product.VariantCombinations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal variant combinations: %w", err)
		}
	}

	product.Category = category

	return product, nil
}

func marshalVariants(product *models.Product) ([]byte, []byte, error) {
	variants := product.Variants
	if variants == nil {
		variants = []models.Variant{}
	}

	combos := product.VariantCombinations
	if combos == nil {
		combos = []models.VariantCombination{}
	}

	variantsJSON, err := json.Marshal(variants)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal variants: %w", err)
	}

	combosJSON, err := json.Marshal(combos)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal variant combinations: %w", err)
	}

	return variantsJSON, combosJSON, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	variantsJSON, combosJSON, err := marshalVariants(product)
	if err != nil {
		return err
	}

	query := `INSERT INTO products (id, category_id, name, name_ar, slug, description, description_ar, price, sale_price,
				stock_quantity, sku, image, status, variants, variant_combinations)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			  RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.ID, product.CategoryID, product.Name, product.NameAr, product.Slug, product.Description, product.DescriptionAr,
		product.Price, product.SalePrice, product.StockQuantity, product.SKU, product.Image, product.Status, variantsJSON, combosJSON).Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.slug = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	variantsJSON, combosJSON, err := marshalVariants(product)
	if err != nil {
		return err
	}

	query := `
		UPDATE products SET category_id = $1, name = $2, name_ar = $3, description = $4, description_ar = $5, price = $6,
			sale_price = $7, stock_quantity = $8, image = $9, status = $10, variants = $11, variant_combinations = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.CategoryID, product.Name, product.NameAr, product.Description, product.DescriptionAr, product.Price,
		product.SalePrice, product.StockQuantity, product.Image, product.Status, variantsJSON, combosJSON, product.ID).Scan(&product.UpdatedAt)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		conditions []string
		args       []any
	)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)))
	}

	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		conditions = append(conditions, fmt.Sprintf("c.slug = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int

	countQuery := `SELECT COUNT(*) FROM products p JOIN categories c ON p.category_id = c.id` + where

	err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id` + where +
		fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, filter.PageSize, offset)...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
