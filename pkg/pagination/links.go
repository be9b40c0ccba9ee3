package pagination

// Link is one entry in a compressed page-link strip. Ellipsis entries
// carry no page number.
type Link struct {
	Page     int  `json:"page,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Links builds the page-link strip: first and last pages always show, a
// window around the current page shows, and runs in between compress to
// a single ellipsis.
func Links(totalPages, current int) []Link {
	if totalPages <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	var links []Link
	lastShown := 0
	for page := 1; page <= totalPages; page++ {
		if !showPage(page, current, totalPages) {
			continue
		}
		if lastShown != 0 && page-lastShown > 1 {
			links = append(links, Link{Ellipsis: true})
		}
		links = append(links, Link{Page: page, Current: page == current})
		lastShown = page
	}
	return links
}

func showPage(page, current, totalPages int) bool {
	if page == 1 || page == totalPages {
		return true
	}
	return page >= current-linkWindow && page <= current+linkWindow
}
