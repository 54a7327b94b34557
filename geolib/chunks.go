package geolib

// chunk is a contiguous range of rows [start, end).
type chunk struct {
	start int
	end   int
}

func (c chunk) Len() int {
	return c.end - c.start
}

// splitChunks partitions [0, length) into chunks of size. The last
// chunk may be shorter.
func splitChunks(length, size int) []chunk {
	if length <= 0 || size <= 0 {
		return nil
	}

	rv := make([]chunk, 0, (length+size-1)/size)

	for start := 0; start < length; start += size {
		end := start + size
		if end > length {
			end = length
		}

		rv = append(rv, chunk{start: start, end: end})
	}

	return rv
}
