package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribtel/storefront-api/internal/utils"
)

func TestCatalogServiceDemoFallback(t *testing.T) {
	// No repository wired: the service serves the demo catalog.
	svc := NewCatalogService(nil)

	t.Run("lists demo products", func(t *testing.T) {
		products := svc.ListProducts(0)
		require.NotEmpty(t, products)
		for i := range products {
			assert.True(t, products[i].IsActive)
			assert.NotNil(t, products[i].Handle)
		}
	})

	t.Run("limit caps the list", func(t *testing.T) {
		products := svc.ListProducts(2)
		assert.Len(t, products, 2)
	})

	t.Run("finds demo product by handle", func(t *testing.T) {
		product, err := svc.GetProductByHandle("atlas-runner-midnight")
		require.NoError(t, err)
		assert.Equal(t, "Atlas Runner", product.Title)
		assert.Equal(t, 545.0, product.ActivePrice())
	})

	t.Run("unknown handle", func(t *testing.T) {
		_, err := svc.GetProductByHandle("no-such-product")
		assert.ErrorIs(t, err, utils.ErrProductNotFound)
	})

	t.Run("rejects malformed handles before hitting storage", func(t *testing.T) {
		for _, handle := range []string{"UPPER", "has space", "semi;colon", "--", "trailing-"} {
			_, err := svc.GetProductByHandle(handle)
			assert.ErrorIs(t, err, utils.ErrInvalidHandle, "handle %q", handle)
		}
	})
}
