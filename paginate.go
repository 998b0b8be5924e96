package ask

// Paginate returns the page of items containing selected, and the position
// of selected within that page.
//
// Pages are aligned to multiples of pageSize rather than centered on the
// selection, so the window only moves when the selection crosses a page
// boundary. When items fit in one page, or pageSize is not positive, the
// whole list is returned and selected is unchanged.
func Paginate[T any](pageSize int, items []T, selected int) ([]T, int) {
	if pageSize <= 0 || len(items) <= pageSize {
		return items, selected
	}
	if selected < 0 {
		selected = 0
	}
	if selected >= len(items) {
		selected = len(items) - 1
	}

	start := (selected / pageSize) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end], selected - start
}
