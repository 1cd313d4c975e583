package apiclient

// Pagination mirrors the paginationResult block of list endpoints.
type Pagination struct {
	CurrentPage   int `json:"currentPage"`
	Limit         int `json:"limit"`
	NumberOfPages int `json:"numberOfPages"`
	Next          int `json:"next,omitempty"`
	Prev          int `json:"prev,omitempty"`
}

type List[T any] struct {
	Results          int        `json:"results"`
	PaginationResult Pagination `json:"paginationResult"`
	Data             []T        `json:"data"`
}

type Envelope[T any] struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// TotalPages never reports less than one page.
func (p Pagination) TotalPages() int {
	if p.NumberOfPages < 1 {
		return 1
	}
	return p.NumberOfPages
}
