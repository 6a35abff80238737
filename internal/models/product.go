package models

// StorefrontProduct is the outward-facing catalog record consumed by the
// storefront pages and by addItem calls.
type StorefrontProduct struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Subtitle            *string             `json:"subtitle"`
	Description         *string             `json:"description"`
	Handle              *string             `json:"handle"`
	SKU                 *string             `json:"sku"`
	ProductType         string              `json:"productType"`
	PrimaryCurrencyCode *string             `json:"primaryCurrencyCode"`
	DefaultUnit         *string             `json:"defaultUnit"`
	DefaultMediaURL     *string             `json:"defaultMediaUrl"`
	IsActive            bool                `json:"isActive"`
	RegularPrice        *float64            `json:"regularPrice"`
	SalePrice           *float64            `json:"salePrice"`
	CurrencyCode        string              `json:"currencyCode"`
	CategoryName        *string             `json:"categoryName"`
	CategoryPath        *string             `json:"categoryPath"`
	VariantCount        int                 `json:"variantCount"`
	Variants            []StorefrontVariant `json:"variants"`
}

// StorefrontVariant is one purchasable variation of a configurable product.
type StorefrontVariant struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	SKU          *string           `json:"sku"`
	OptionValues map[string]string `json:"optionValues"`
	IsDefault    bool              `json:"isDefault"`
	RegularPrice *float64          `json:"regularPrice"`
	SalePrice    *float64          `json:"salePrice"`
	CurrencyCode string            `json:"currencyCode"`
}

// ActivePrice returns the effective unit price: sale price when present,
// otherwise regular price, otherwise zero.
func (p *StorefrontProduct) ActivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	if p.RegularPrice != nil {
		return *p.RegularPrice
	}
	return 0
}

// ProductRow mirrors the catalog_products table.
type ProductRow struct {
	ID                  string  `db:"id"`
	Title               string  `db:"title"`
	Subtitle            *string `db:"subtitle"`
	Description         *string `db:"description"`
	Handle              *string `db:"handle"`
	SKU                 *string `db:"sku"`
	ProductType         string  `db:"product_type"`
	PrimaryCurrencyCode *string `db:"primary_currency_code"`
	DefaultUnit         *string `db:"default_unit"`
	DefaultMediaURL     *string `db:"default_media_url"`
	IsActive            bool    `db:"is_active"`
}

// VariantRow mirrors the catalog_variants table. Option values are stored as
// a JSON object keyed by option name.
type VariantRow struct {
	ID           string  `db:"id"`
	ProductID    string  `db:"product_id"`
	Name         string  `db:"name"`
	SKU          *string `db:"sku"`
	OptionValues []byte  `db:"option_values"`
	IsDefault    bool    `db:"is_default"`
}

// PriceRow mirrors the catalog_prices table. A row belongs either to a
// product (base price) or to one of its variants.
type PriceRow struct {
	ProductID     *string  `db:"product_id"`
	VariantID     *string  `db:"variant_id"`
	RegularAmount *float64 `db:"regular_amount"`
	SaleAmount    *float64 `db:"sale_amount"`
	CurrencyCode  string   `db:"currency_code"`
}

// CategoryRow mirrors the catalog_categories table joined through the
// product assignment table.
type CategoryRow struct {
	Name string  `db:"name"`
	Path *string `db:"path"`
}
