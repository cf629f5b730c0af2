package pagination

// MaxPages caps the page count. The search API cannot page past its first
// thousand results no matter what total it reports.
const MaxPages = 100

// TotalPages returns min(ceil(count/perPage), MaxPages).
func TotalPages(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	pages := (count + perPage - 1) / perPage
	if pages > MaxPages {
		return MaxPages
	}
	return pages
}

// Kind identifies a pagination control.
type Kind int

const (
	Previous Kind = iota
	Page
	Ellipsis
	Next
)

func (k Kind) String() string {
	switch k {
	case Previous:
		return "previous"
	case Page:
		return "page"
	case Ellipsis:
		return "ellipsis"
	case Next:
		return "next"
	}
	return "unknown"
}

// Control is one element of the page window. Page is the target page for
// Previous, Next and Page controls and zero for Ellipsis.
type Control struct {
	Kind     Kind
	Page     int
	Current  bool
	Disabled bool
}

// Window lays out the controls for the current page: Previous, the first
// page and an ellipsis when far from the start, the pages around current,
// an ellipsis and the last page when far from the end, then Next.
func Window(current, total int) []Control {
	if total < 1 {
		return nil
	}
	controls := []Control{{Kind: Previous, Page: current - 1, Disabled: current <= 1}}

	if current > 2 {
		controls = append(controls, Control{Kind: Page, Page: 1})
		if current > 3 {
			controls = append(controls, Control{Kind: Ellipsis})
		}
	}
	if current > 1 {
		controls = append(controls, Control{Kind: Page, Page: current - 1})
	}
	controls = append(controls, Control{Kind: Page, Page: current, Current: true, Disabled: true})
	if current < total {
		controls = append(controls, Control{Kind: Page, Page: current + 1})
	}
	if current < total-1 {
		if current < total-2 {
			controls = append(controls, Control{Kind: Ellipsis})
		}
		controls = append(controls, Control{Kind: Page, Page: total})
	}

	return append(controls, Control{Kind: Next, Page: current + 1, Disabled: current >= total})
}
