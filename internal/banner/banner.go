// Package banner serves the home page hero slides.
package banner

import "github.com/wichananm65/fashion-storefront/internal/i18n"

type Slide struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Button   string `json:"button"`
	Link     string `json:"link"`
	Image    string `json:"image"`
}

type copyText struct {
	title, subtitle, button string
}

var slides = []struct {
	link, image string
	text        map[string]copyText
}{
	{
		link:  "/shop",
		image: "/slider-1.jpg",
		text: map[string]copyText{
			i18n.Arabic:  {"اكتشفي", "أناقتك الخاصة", "تسوقي الآن"},
			i18n.English: {"Discover", "Your Unique Style", "Shop Now"},
		},
	},
	{
		link:  "/shop?sale=true",
		image: "/slider-2.jpg",
		text: map[string]copyText{
			i18n.Arabic:  {"احصلي على", "50% خصم", "اكتشفي العروض"},
			i18n.English: {"Get", "50% Off", "Discover Offers"},
		},
	},
	{
		link:  "/shop?category=abayas",
		image: "/slider-3.jpg",
		text: map[string]copyText{
			i18n.Arabic:  {"عبايات", "محتشمة وعصرية", "اعرفي المزيد"},
			i18n.English: {"Abayas", "Modest & Modern", "Learn More"},
		},
	},
}

// Slides returns the hero slides in lang, limited to limit when limit > 0.
func Slides(lang string, limit int) []Slide {
	lang = i18n.Normalize(lang)
	if lang == "" {
		lang = i18n.Arabic
	}
	out := make([]Slide, 0, len(slides))
	for i, s := range slides {
		if limit > 0 && i >= limit {
			break
		}
		t := s.text[lang]
		out = append(out, Slide{
			ID:       i + 1,
			Title:    t.title,
			Subtitle: t.subtitle,
			Button:   t.button,
			Link:     s.link,
			Image:    s.image,
		})
	}
	return out
}
