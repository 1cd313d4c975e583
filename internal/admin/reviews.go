package admin

import (
	"context"
	"net/url"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/review"
)

// ReviewPage is the moderation screen: the summary covers every review,
// the list only those matching the star filter.
type ReviewPage struct {
	Reviews []review.Review `json:"reviews"`
	Summary review.Summary  `json:"summary"`
}

func (s *Service) Reviews(ctx context.Context, q Query, productID string, stars int) (ReviewPage, error) {
	if productID != "" {
		if q.Extra == nil {
			q.Extra = url.Values{}
		}
		q.Extra.Set("product", productID)
	}
	res, err := list[review.Review](ctx, s.api, "/reviews", q.values())
	if err != nil {
		if apiclient.IsNotFound(err) {
			return ReviewPage{Reviews: []review.Review{}, Summary: review.Summarize(nil)}, nil
		}
		return ReviewPage{}, err
	}
	return ReviewPage{
		Reviews: review.FilterByRating(res.Data, stars),
		Summary: review.Summarize(res.Data),
	}, nil
}

func (s *Service) DeleteReview(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/reviews/"+id, nil)
}

func (s *Service) ApproveReview(ctx context.Context, id string) (review.Review, error) {
	var out apiclient.Envelope[review.Review]
	err := s.api.Put(ctx, "/reviews/"+id+"/approve", nil, &out)
	return out.Data, err
}
