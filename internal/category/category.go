package category

type Category struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug,omitempty"`
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Subcategory struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Category string `json:"category,omitempty"`
}

type Brand struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Image string `json:"image,omitempty"`
}

// Circle is a home page category shortcut linking into the shop.
type Circle struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Slug  string `json:"slug"`
	Href  string `json:"href"`
}

var circleSlugs = []struct {
	slug, image string
}{
	{"abayas", "/elegant-burgundy-coat.jpg"},
	{"hijabs", "/modest-black-abaya-hijab.jpg"},
	{"dresses", "/dresses.jpg"},
	{"sportswear", "/sportswear.jpg"},
	{"accessories", "/modest-oversize-shirt.jpg"},
}
