package category

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

func seedRepo() *InMemoryRepository {
	return NewInMemoryRepository(
		[]Category{{ID: "c1", Name: "Abayas", Slug: "abayas"}, {ID: "c2", Name: "Dresses", Slug: "dresses"}},
		[]Subcategory{{ID: "s1", Name: "Open abayas", Category: "c1"}, {ID: "s2", Name: "Maxi", Category: "c2"}},
		[]Brand{{ID: "b1", Name: "Ayman Besher"}},
	)
}

func TestService_ServesStaleSnapshotWhenRefreshFails(t *testing.T) {
	repo := seedRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx))
	repo.SetFail(errs.ErrUpstream)

	err := svc.Refresh(ctx)
	assert.True(t, errors.Is(err, errs.ErrUpstream))

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 2)
	brands, err := svc.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ayman Besher", brands[0].Name)
}

func TestService_LazyLoadAndResolve(t *testing.T) {
	svc := NewService(seedRepo())
	ctx := context.Background()

	assert.True(t, svc.RefreshedAt().IsZero())
	assert.Equal(t, "c1", svc.ResolveID(ctx, "abayas"))
	assert.False(t, svc.RefreshedAt().IsZero())
	assert.Equal(t, "unknown", svc.ResolveID(ctx, "unknown"))
	assert.Equal(t, "", svc.ResolveID(ctx, ""))

	cat, err := svc.Get(ctx, "dresses")
	require.NoError(t, err)
	assert.Equal(t, "c2", cat.ID)
}

func TestCircles_Localized(t *testing.T) {
	ar := Circles("ar")
	en := Circles("en")
	require.Len(t, ar, 5)
	assert.Equal(t, "عباءات", ar[0].Name)
	assert.Equal(t, "Abayas", en[0].Name)
	assert.Equal(t, "/shop?category=abayas", en[0].Href)
}

func TestCategoryRoutes(t *testing.T) {
	mgr := session.NewManager(session.NewInMemoryRepository(), session.Options{})
	h := NewHandler(NewService(seedRepo()), web.NewResponder(mgr))
	app := fiber.New()
	h.RegisterPublicRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/bff/categories/c1", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Open abayas") || strings.Contains(string(b), "Maxi") {
		t.Fatalf("expected only c1 subcategories, got %s", b)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/bff/categories/zzz", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown category, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/bff/categories/circles", nil))
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), "sportswear") {
		t.Fatalf("expected circles, got %s", b)
	}
}
