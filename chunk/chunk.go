// Package chunk groups work into bounded batches.
package chunk

// Split partitions ids into contiguous groups of at most size elements,
// preserving order. A non-positive size yields a single group. An empty
// input yields no groups.
func Split(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]string{ids}
	}

	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}
