package review

import (
	"math"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
)

type Review struct {
	ID        string         `json:"_id"`
	Title     string         `json:"title"`
	Ratings   float64        `json:"ratings"`
	User      *apiclient.Ref `json:"user,omitempty"`
	Product   apiclient.Ref  `json:"product"`
	Approved  *bool          `json:"approved,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty"`
}

type Input struct {
	Title   string  `json:"title"`
	Ratings float64 `json:"ratings"`
	Product string  `json:"product,omitempty"`
}

type Bucket struct {
	Stars      int     `json:"stars"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Summary struct {
	Average      float64  `json:"average"`
	Count        int      `json:"count"`
	Distribution []Bucket `json:"distribution"`
}

var (
	ErrInvalidRating = errs.WithKey(errs.ErrValidation, "invalidRating")
	ErrMissingFields = errs.WithKey(errs.ErrValidation, "requiredFields")
)

// Summarize computes the average (one decimal) and the 5..1 star histogram.
func Summarize(reviews []Review) Summary {
	s := Summary{Count: len(reviews), Distribution: make([]Bucket, 0, 5)}
	counts := [6]int{}
	total := 0.0
	for _, r := range reviews {
		total += r.Ratings
		stars := int(math.Round(r.Ratings))
		if stars < 1 {
			stars = 1
		}
		if stars > 5 {
			stars = 5
		}
		counts[stars]++
	}
	if s.Count > 0 {
		s.Average = math.Round(total/float64(s.Count)*10) / 10
	}
	for stars := 5; stars >= 1; stars-- {
		b := Bucket{Stars: stars, Count: counts[stars]}
		if s.Count > 0 {
			b.Percentage = math.Round(float64(counts[stars])/float64(s.Count)*1000) / 10
		}
		s.Distribution = append(s.Distribution, b)
	}
	return s
}

// FilterByRating keeps reviews whose rounded rating equals stars; 0 keeps all.
func FilterByRating(reviews []Review, stars int) []Review {
	if stars <= 0 {
		return reviews
	}
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if int(math.Round(r.Ratings)) == stars {
			out = append(out, r)
		}
	}
	return out
}
