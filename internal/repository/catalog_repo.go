package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"github.com/caribtel/storefront-api/internal/models"
)

// CatalogRepository handles data access for the product catalog.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetNewest returns the newest active products, fully assembled with their
// prices, category and variants.
func (r *CatalogRepository) GetNewest(limit int) ([]models.StorefrontProduct, error) {
	if limit <= 0 {
		limit = 12
	}

	const q = `
        SELECT id, title, subtitle, description, handle, sku, product_type,
               primary_currency_code, default_unit, default_media_url, is_active
        FROM catalog_products
        WHERE is_active = true
        ORDER BY created_at DESC
        LIMIT $1`

	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var rows []models.ProductRow
	if err := stmt.Select(&rows, limit); err != nil {
		return nil, err
	}

	products := make([]models.StorefrontProduct, 0, len(rows))
	for i := range rows {
		p, err := r.assemble(&rows[i])
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

// GetByHandle returns a single active product by its URL handle.
// Returns sql.ErrNoRows when no such product exists.
func (r *CatalogRepository) GetByHandle(handle string) (*models.StorefrontProduct, error) {
	const q = `
        SELECT id, title, subtitle, description, handle, sku, product_type,
               primary_currency_code, default_unit, default_media_url, is_active
        FROM catalog_products
        WHERE handle = $1 AND is_active = true
        LIMIT 1`

	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var row models.ProductRow
	if err := stmt.Get(&row, handle); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return r.assemble(&row)
}

// assemble loads prices, category and variants for a product row and maps it
// to the storefront shape.
func (r *CatalogRepository) assemble(row *models.ProductRow) (*models.StorefrontProduct, error) {
	p := &models.StorefrontProduct{
		ID:                  row.ID,
		Title:               row.Title,
		Subtitle:            row.Subtitle,
		Description:         row.Description,
		Handle:              row.Handle,
		SKU:                 row.SKU,
		ProductType:         row.ProductType,
		PrimaryCurrencyCode: row.PrimaryCurrencyCode,
		DefaultUnit:         row.DefaultUnit,
		DefaultMediaURL:     row.DefaultMediaURL,
		IsActive:            row.IsActive,
		CurrencyCode:        models.DefaultCurrency,
		Variants:            []models.StorefrontVariant{},
	}
	if row.PrimaryCurrencyCode != nil && *row.PrimaryCurrencyCode != "" {
		p.CurrencyCode = *row.PrimaryCurrencyCode
	}

	// Base price: the product-level price row, if any.
	const priceQ = `
        SELECT product_id, variant_id, regular_amount, sale_amount, currency_code
        FROM catalog_prices
        WHERE product_id = $1 AND variant_id IS NULL
        LIMIT 1`
	var base models.PriceRow
	if err := r.db.Get(&base, priceQ, row.ID); err != nil {
		if err != sql.ErrNoRows {
			return nil, err
		}
	} else {
		p.RegularPrice = base.RegularAmount
		p.SalePrice = base.SaleAmount
		if base.CurrencyCode != "" {
			p.CurrencyCode = base.CurrencyCode
		}
	}

	// First assigned category, if any.
	const catQ = `
        SELECT c.name, c.path
        FROM catalog_categories c
        JOIN catalog_category_assignments a ON a.category_id = c.id
        WHERE a.product_id = $1
        ORDER BY a.position
        LIMIT 1`
	var cat models.CategoryRow
	if err := r.db.Get(&cat, catQ, row.ID); err != nil {
		if err != sql.ErrNoRows {
			return nil, err
		}
	} else {
		p.CategoryName = &cat.Name
		p.CategoryPath = cat.Path
	}

	variants, err := r.getVariants(row.ID)
	if err != nil {
		return nil, err
	}
	p.Variants = variants
	p.VariantCount = len(variants)
	return p, nil
}

// getVariants returns all variants of a product with their own prices.
func (r *CatalogRepository) getVariants(productID string) ([]models.StorefrontVariant, error) {
	const q = `
        SELECT id, product_id, name, sku, option_values, is_default
        FROM catalog_variants
        WHERE product_id = $1
        ORDER BY is_default DESC, name`

	var rows []models.VariantRow
	if err := r.db.Select(&rows, q, productID); err != nil {
		return nil, err
	}

	const priceQ = `
        SELECT product_id, variant_id, regular_amount, sale_amount, currency_code
        FROM catalog_prices
        WHERE variant_id = $1
        LIMIT 1`

	variants := make([]models.StorefrontVariant, 0, len(rows))
	for i := range rows {
		v := models.StorefrontVariant{
			ID:           rows[i].ID,
			Name:         rows[i].Name,
			SKU:          rows[i].SKU,
			IsDefault:    rows[i].IsDefault,
			OptionValues: map[string]string{},
			CurrencyCode: models.DefaultCurrency,
		}
		if len(rows[i].OptionValues) > 0 {
			if err := json.Unmarshal(rows[i].OptionValues, &v.OptionValues); err != nil {
				return nil, err
			}
		}

		var price models.PriceRow
		if err := r.db.Get(&price, priceQ, rows[i].ID); err != nil {
			if err != sql.ErrNoRows {
				return nil, err
			}
		} else {
			v.RegularPrice = price.RegularAmount
			v.SalePrice = price.SaleAmount
			if price.CurrencyCode != "" {
				v.CurrencyCode = price.CurrencyCode
			}
		}
		variants = append(variants, v)
	}
	return variants, nil
}
