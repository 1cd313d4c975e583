package admin

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

var productSorts = map[string]string{
	"newest":     "-createdAt",
	"oldest":     "createdAt",
	"price-low":  "price",
	"price-high": "-price",
	"name":       "title",
}

// ProductSort maps a back-office sort choice onto the API's sort field.
// Unknown choices sort newest first.
func ProductSort(choice string) string {
	if s, ok := productSorts[choice]; ok {
		return s
	}
	return productSorts["newest"]
}

// Products lists the catalog for the back-office. The search term is
// matched locally against title and description.
func (s *Service) Products(ctx context.Context, q Query) (apiclient.List[product.Product], error) {
	q.Sort = ProductSort(q.Sort)
	res, err := list[product.Product](ctx, s.api, "/products", q.values())
	if err != nil {
		return res, err
	}
	res.Data = MatchProducts(res.Data, q.Search)
	return res, nil
}

func MatchProducts(products []product.Product, term string) []product.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) Product(ctx context.Context, id string) (product.Product, error) {
	p, err := one[product.Product](ctx, s.api, "/products/"+id)
	if apiclient.IsNotFound(err) {
		return product.Product{}, product.ErrNotFound
	}
	return p, err
}

// ProductForm is the product editor's submission.
type ProductForm struct {
	Title       string
	Description string
	Price       float64
	// Discount is a percentage off Price.
	Discount    float64
	Quantity    int
	Category    string
	Subcategory string
	Brand       string
	Colors      []string
	Sizes       []string
	Cover       *apiclient.File
	Images      []apiclient.File
}

// FinalPrice is the price after the discount percentage.
func (f ProductForm) FinalPrice() float64 {
	if f.Discount <= 0 {
		return f.Price
	}
	return round2(f.Price - f.Price*f.Discount/100)
}

func (f ProductForm) validate(creating bool) error {
	if creating && f.Cover == nil {
		return ErrCoverRequired
	}
	if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Description) == "" ||
		f.Category == "" || f.Price <= 0 || f.Quantity < 0 || f.Discount < 0 || f.Discount >= 100 {
		return ErrMissingFields
	}
	return nil
}

func (f ProductForm) multipart() *apiclient.Multipart {
	m := &apiclient.Multipart{}
	m.Add("title", strings.TrimSpace(f.Title))
	m.Add("description", strings.TrimSpace(f.Description))
	m.Add("price", formatFloat(f.Price))
	if f.Discount > 0 {
		m.Add("priceAfterDiscount", formatFloat(f.FinalPrice()))
	}
	m.Add("quantity", strconv.Itoa(f.Quantity))
	m.Add("category", f.Category)
	if f.Subcategory != "" {
		m.Add("subcategories", f.Subcategory)
	}
	if f.Brand != "" {
		m.Add("brand", f.Brand)
	}
	if f.Cover != nil {
		cover := *f.Cover
		cover.Field = "imageCover"
		m.AddFile(cover)
	}
	for _, img := range f.Images {
		img.Field = "images"
		m.AddFile(img)
	}
	for _, c := range f.Colors {
		m.Add("colors[]", c)
	}
	for _, sz := range f.Sizes {
		m.Add("sizes[]", sz)
	}
	return m
}

func (s *Service) CreateProduct(ctx context.Context, f ProductForm) (product.Product, error) {
	if err := f.validate(true); err != nil {
		return product.Product{}, err
	}
	var out apiclient.Envelope[product.Product]
	err := s.api.PostForm(ctx, "/products", f.multipart(), &out)
	return out.Data, err
}

// UpdateProduct replaces the editable fields. Without a new cover the
// current one is kept.
func (s *Service) UpdateProduct(ctx context.Context, id string, f ProductForm) (product.Product, error) {
	if err := f.validate(false); err != nil {
		return product.Product{}, err
	}
	var out apiclient.Envelope[product.Product]
	err := s.api.PutForm(ctx, "/products/"+id, f.multipart(), &out)
	if apiclient.IsNotFound(err) {
		return product.Product{}, product.ErrNotFound
	}
	return out.Data, err
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	err := s.api.Delete(ctx, "/products/"+id, nil)
	if apiclient.IsNotFound(err) {
		return product.ErrNotFound
	}
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
