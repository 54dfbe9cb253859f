package trivia

// Paginate returns the 1-indexed page of items holding size entries. Pages before
// the first or past the last yield an empty slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 || page-1 > len(items)/size {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	stop := min(start+size, len(items))
	return items[start:stop]
}
