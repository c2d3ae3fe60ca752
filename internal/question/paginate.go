package question

// Paginate slices items into the 1-based page of the given size. It is a pure
// function: the caller establishes ordering, and out-of-range pages (including
// zero and negative ones) yield an empty slice rather than an error. Callers
// must treat an empty slice as "no more content".
//
// totalPages is the approximation len(items)/size + 1, so the last reported
// page may legitimately be empty.
func Paginate[T any](items []T, page, size int) (slice []T, currentPage, totalPages int) {
	totalPages = len(items)/size + 1

	start := (page - 1) * size
	end := start + size

	if start < 0 || start >= len(items) {
		return []T{}, page, totalPages
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}
