package service

import (
	"database/sql"
	"errors"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/repository"
	"github.com/caribtel/storefront-api/internal/utils"
)

// handlePattern allows lowercase slugs only; handles reach SQL and URLs.
var handlePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CatalogService serves storefront products, falling back to a built-in demo
// catalog when the database is unreachable or holds no products.
type CatalogService struct {
	repo *repository.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListProducts returns the newest active products, at most limit of them.
func (s *CatalogService) ListProducts(limit int) []models.StorefrontProduct {
	if s.repo != nil {
		products, err := s.repo.GetNewest(limit)
		if err != nil {
			log.Warn().Err(err).Msg("Catalog query failed, serving demo catalog")
		} else if len(products) > 0 {
			return products
		}
	}

	if limit <= 0 || limit > len(demoCatalog) {
		limit = len(demoCatalog)
	}
	out := make([]models.StorefrontProduct, limit)
	copy(out, demoCatalog[:limit])
	return out
}

// GetProductByHandle returns one active product by its URL handle.
func (s *CatalogService) GetProductByHandle(handle string) (*models.StorefrontProduct, error) {
	if !handlePattern.MatchString(handle) {
		return nil, utils.ErrInvalidHandle
	}

	if s.repo != nil {
		product, err := s.repo.GetByHandle(handle)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Str("handle", handle).Msg("Catalog query failed, checking demo catalog")
		}
	}

	for i := range demoCatalog {
		if demoCatalog[i].Handle != nil && *demoCatalog[i].Handle == handle {
			p := demoCatalog[i]
			return &p, nil
		}
	}
	return nil, utils.ErrProductNotFound
}
