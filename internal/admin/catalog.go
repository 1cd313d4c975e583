package admin

import (
	"context"
	"strings"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/category"
)

// ImageForm creates or renames a category or a brand.
type ImageForm struct {
	Name  string
	Image *apiclient.File
}

func (f ImageForm) multipart() (*apiclient.Multipart, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, ErrMissingFields
	}
	m := &apiclient.Multipart{}
	m.Add("name", name)
	if f.Image != nil {
		img := *f.Image
		img.Field = "image"
		m.AddFile(img)
	}
	return m, nil
}

type SubcategoryInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (in SubcategoryInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || in.Category == "" {
		return ErrMissingFields
	}
	return nil
}

func (s *Service) Categories(ctx context.Context) ([]category.Category, error) {
	res, err := list[category.Category](ctx, s.api, "/categories", nil)
	return res.Data, err
}

func (s *Service) SaveCategory(ctx context.Context, id string, f ImageForm) (category.Category, error) {
	return saveImageEntity[category.Category](ctx, s, "/categories", id, f)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteCatalogEntry(ctx, "/categories/"+id)
}

func (s *Service) Brands(ctx context.Context) ([]category.Brand, error) {
	res, err := list[category.Brand](ctx, s.api, "/brands", nil)
	return res.Data, err
}

func (s *Service) SaveBrand(ctx context.Context, id string, f ImageForm) (category.Brand, error) {
	return saveImageEntity[category.Brand](ctx, s, "/brands", id, f)
}

func (s *Service) DeleteBrand(ctx context.Context, id string) error {
	return s.deleteCatalogEntry(ctx, "/brands/"+id)
}

// Subcategories lists every subcategory, or those of one category.
func (s *Service) Subcategories(ctx context.Context, categoryID string) ([]category.Subcategory, error) {
	path := "/subcategories"
	if categoryID != "" {
		path = "/categories/" + categoryID + "/subcategories"
	}
	res, err := list[category.Subcategory](ctx, s.api, path, nil)
	if apiclient.IsNotFound(err) {
		return []category.Subcategory{}, nil
	}
	return res.Data, err
}

func (s *Service) SaveSubcategory(ctx context.Context, id string, in SubcategoryInput) (category.Subcategory, error) {
	if err := in.validate(); err != nil {
		return category.Subcategory{}, err
	}
	in.Name = strings.TrimSpace(in.Name)

	var (
		out apiclient.Envelope[category.Subcategory]
		err error
	)
	if id == "" {
		err = s.api.Post(ctx, "/subcategories", in, &out)
	} else {
		err = s.api.Put(ctx, "/subcategories/"+id, in, &out)
	}
	return out.Data, err
}

func (s *Service) DeleteSubcategory(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/subcategories/"+id, nil)
}

// saveImageEntity creates when id is empty and updates otherwise.
func saveImageEntity[T any](ctx context.Context, s *Service, base, id string, f ImageForm) (T, error) {
	var out apiclient.Envelope[T]
	form, err := f.multipart()
	if err != nil {
		return out.Data, err
	}
	if id == "" {
		err = s.api.PostForm(ctx, base, form, &out)
	} else {
		err = s.api.PutForm(ctx, base+"/"+id, form, &out)
	}
	if err != nil {
		return out.Data, err
	}
	refreshCatalog(ctx, s.catalog)
	return out.Data, nil
}

func (s *Service) deleteCatalogEntry(ctx context.Context, path string) error {
	if err := s.api.Delete(ctx, path, nil); err != nil {
		return err
	}
	refreshCatalog(ctx, s.catalog)
	return nil
}
