package points

// MaxBatchSize is the largest number of transforms submitted in one
// instanced draw call.
const MaxBatchSize = 1024

// Chunk is the half-open vertex index range [Start, End).
type Chunk struct {
	Start int
	End   int
}

func (c Chunk) Len() int {
	return c.End - c.Start
}

// ChunkCount returns the number of chunks needed to cover count indices.
func ChunkCount(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// ForEachChunk partitions [0, count) into consecutive chunks of at most size
// indices and calls fn for each one, in order.
func ForEachChunk(count, size int, fn func(Chunk)) {
	if size <= 0 {
		return
	}
	for start := 0; start < count; {
		end := min(start+size, count)
		fn(Chunk{Start: start, End: end})
		start = end
	}
}

// Chunks returns the partition produced by ForEachChunk.
func Chunks(count, size int) []Chunk {
	res := make([]Chunk, 0, ChunkCount(count, size))
	ForEachChunk(count, size, func(c Chunk) {
		res = append(res, c)
	})
	return res
}
