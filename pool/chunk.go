package pool

import "math"

// chunk describes a contiguous sub-range of the dispatched elements.
type chunk struct {
	start  int
	length int
}

// chunkLen is the target number of elements per task: roughly three
// chunks per worker, trading submission overhead against load-balance
// granularity.
func chunkLen(total, workers int) int {
	per := float64(total) / float64(workers) / 3.0
	if n := int(math.Round(per)); n > 1 {
		return n
	}
	return 1
}

// partition splits [0, total) into consecutive chunks of
// chunkLen(total, workers) elements; the final chunk may be shorter.
// Chunk lengths sum to total and starts are strictly increasing.
func partition(total, workers int) []chunk {
	if total <= 0 {
		return nil
	}

	size := chunkLen(total, workers)
	chunks := make([]chunk, 0, (total+size-1)/size)
	for start := 0; start < total; start += size {
		chunks = append(chunks, chunk{start: start, length: min(size, total-start)})
	}
	return chunks
}
