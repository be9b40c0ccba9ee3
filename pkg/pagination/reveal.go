package pagination

// RevealRequest is a 1-indexed page request against a cumulative-reveal
// collection.
type RevealRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size,omitempty"`
}

// Validate normalizes the request in place.
func (r *RevealRequest) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageSize
	}
	return nil
}

// RevealResult is a cumulative page: advancing the page grows the visible
// slice, it never swaps it out. The first page's items stay in place as
// later pages reveal more.
type RevealResult[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Visible    int `json:"visible"`

	Links []Link `json:"links,omitempty"`
}

// Reveal slices collection[0 : page*size]. Pages past the end reveal the
// whole collection.
func Reveal[T any](items []T, req RevealRequest) *RevealResult[T] {
	_ = req.Validate()

	total := len(items)
	totalPages := (total + req.Size - 1) / req.Size
	visible := req.Page * req.Size
	if visible > total {
		visible = total
	}

	return &RevealResult[T]{
		Items:      items[:visible],
		Page:       req.Page,
		Size:       req.Size,
		Total:      total,
		TotalPages: totalPages,
		Visible:    visible,
		Links:      Links(totalPages, req.Page),
	}
}

// HasMore reports whether advancing the page would reveal anything new.
func (r *RevealResult[T]) HasMore() bool {
	return r.Visible < r.Total
}
