package home

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/fashion-storefront/internal/i18n"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

type stubLister struct {
	failSale bool
}

func (s stubLister) Section(_ context.Context, sortBy string, sale bool, limit int) ([]product.Product, error) {
	if sale && s.failSale {
		return nil, errors.New("upstream down")
	}
	return []product.Product{{ID: sortBy, Title: sortBy}}, nil
}

func TestBuild_FailingSectionIsEmpty(t *testing.T) {
	page := NewService(stubLister{failSale: true}).Build(context.Background(), i18n.English)

	require.Len(t, page.Sections, 4)
	assert.Equal(t, "Best Sellers", page.Sections[0].Title)
	assert.Equal(t, "bestsellers", page.Sections[0].Products[0].ID)
	assert.Equal(t, "flashSale", page.Sections[3].Key)
	assert.NotNil(t, page.Sections[3].Products)
	assert.Empty(t, page.Sections[3].Products)
	assert.Len(t, page.Slides, 3)
	assert.Len(t, page.Circles, 5)
}

func TestHomePage(t *testing.T) {
	repo := product.NewInMemoryRepository([]product.Product{{ID: "p1", Title: "Abaya", Price: 500, Sold: 3}})
	app := fiber.New()
	NewHandler(NewService(product.NewService(repo))).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/bff/pages/home", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var body struct {
		Dir      string    `json:"dir"`
		Sections []Section `json:"sections"`
	}
	b, _ := io.ReadAll(res.Body)
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, "rtl", body.Dir)
	require.Len(t, body.Sections, 4)
	assert.Len(t, body.Sections[0].Products, 1)
	assert.Empty(t, body.Sections[3].Products)
}
