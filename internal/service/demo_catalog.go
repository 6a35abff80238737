package service

import "github.com/caribtel/storefront-api/internal/models"

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

// demoCatalog is served when the catalog database is unreachable or empty, so
// a fresh checkout of the repo renders a browsable storefront with no backing
// data. Handles are stable; the cart and checkout flows work against these
// products exactly as against database-backed ones.
var demoCatalog = []models.StorefrontProduct{
	{
		ID:           "demo-atlas-runner-midnight",
		Title:        "Atlas Runner",
		Subtitle:     strPtr("Lightweight everyday trainer"),
		Description:  strPtr("A breathable knit trainer built for daily miles, with a responsive foam midsole and a heel counter that locks in without rubbing."),
		Handle:       strPtr("atlas-runner-midnight"),
		SKU:          strPtr("DEMO-ATLAS-MID"),
		ProductType:  "simple",
		IsActive:     true,
		RegularPrice: f64Ptr(680),
		SalePrice:    f64Ptr(545),
		CurrencyCode: models.DefaultCurrency,
		CategoryName: strPtr("Footwear"),
		Variants:     []models.StorefrontVariant{},
	},
	{
		ID:           "demo-atlas-runner-glacier",
		Title:        "Atlas Runner Glacier",
		Subtitle:     strPtr("Lightweight everyday trainer"),
		Description:  strPtr("The Atlas Runner in a glacier colorway. Same responsive midsole, same fit, a cooler palette."),
		Handle:       strPtr("atlas-runner-glacier"),
		SKU:          strPtr("DEMO-ATLAS-GLA"),
		ProductType:  "simple",
		IsActive:     true,
		RegularPrice: f64Ptr(680),
		CurrencyCode: models.DefaultCurrency,
		CategoryName: strPtr("Footwear"),
		Variants:     []models.StorefrontVariant{},
	},
	{
		ID:           "demo-aurora-wrap-rosewood",
		Title:        "Aurora Wrap",
		Subtitle:     strPtr("Merino blend wrap"),
		Description:  strPtr("A generous merino blend wrap in rosewood. Soft enough for the plane, structured enough for the office."),
		Handle:       strPtr("aurora-wrap-rosewood"),
		SKU:          strPtr("DEMO-AURORA-ROS"),
		ProductType:  "configurable",
		IsActive:     true,
		RegularPrice: f64Ptr(320),
		CurrencyCode: models.DefaultCurrency,
		CategoryName: strPtr("Apparel"),
		VariantCount: 2,
		Variants: []models.StorefrontVariant{
			{
				ID:           "demo-aurora-wrap-rosewood-s",
				Name:         "Small",
				OptionValues: map[string]string{"size": "S"},
				IsDefault:    true,
				RegularPrice: f64Ptr(320),
				CurrencyCode: models.DefaultCurrency,
			},
			{
				ID:           "demo-aurora-wrap-rosewood-l",
				Name:         "Large",
				OptionValues: map[string]string{"size": "L"},
				RegularPrice: f64Ptr(340),
				CurrencyCode: models.DefaultCurrency,
			},
		},
	},
	{
		ID:           "demo-aurora-wrap-celestial",
		Title:        "Aurora Wrap Celestial",
		Subtitle:     strPtr("Merino blend wrap"),
		Description:  strPtr("The Aurora Wrap in a deep celestial blue with a tonal selvedge edge."),
		Handle:       strPtr("aurora-wrap-celestial"),
		SKU:          strPtr("DEMO-AURORA-CEL"),
		ProductType:  "simple",
		IsActive:     true,
		RegularPrice: f64Ptr(320),
		SalePrice:    f64Ptr(275),
		CurrencyCode: models.DefaultCurrency,
		CategoryName: strPtr("Apparel"),
		Variants:     []models.StorefrontVariant{},
	},
	{
		ID:           "demo-service-hairdresser",
		Title:        "Salon Session",
		Subtitle:     strPtr("45 minute appointment"),
		Description:  strPtr("A 45 minute cut and style session at a partner salon. Booked per session."),
		Handle:       strPtr("salon-session"),
		SKU:          strPtr("DEMO-SVC-HAIR"),
		ProductType:  "service",
		DefaultUnit:  strPtr("session"),
		IsActive:     true,
		RegularPrice: f64Ptr(180),
		CurrencyCode: models.DefaultCurrency,
		CategoryName: strPtr("Services"),
		Variants:     []models.StorefrontVariant{},
	},
	{
		ID:           "demo-service-massage",
		Title:        "Deep Tissue Massage",
		Subtitle:     strPtr("60 minute appointment"),
		Description:  strPtr("A 60 minute deep tissue massage at a partner studio. Booked per session."),
		Handle:       strPtr("deep-tissue-massage"),
		SKU:          strPtr("DEMO-SVC-MASSAGE"),
		ProductType:  "service",
		DefaultUnit:  strPtr("session"),
		IsActive:     true,
		RegularPrice: f64Ptr(250),
		CurrencyCode: models.DefaultCurrency,
		CategoryName: strPtr("Services"),
		Variants:     []models.StorefrontVariant{},
	},
}
