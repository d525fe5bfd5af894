package points

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Batch is the transient list of transforms for the current chunk.
type Batch struct {
	transforms []mgl32.Mat4
}

func NewBatch(capacity int) *Batch {
	return &Batch{transforms: make([]mgl32.Mat4, 0, capacity)}
}

func (b *Batch) Append(m mgl32.Mat4) {
	if len(b.transforms) >= MaxBatchSize {
		panic("points: batch exceeds MaxBatchSize")
	}
	b.transforms = append(b.transforms, m)
}

func (b *Batch) Len() int {
	return len(b.transforms)
}

func (b *Batch) Last() mgl32.Mat4 {
	return b.transforms[len(b.transforms)-1]
}

// Transforms returns the batch contents. The slice is only valid until the
// next Reset.
func (b *Batch) Transforms() []mgl32.Mat4 {
	return b.transforms
}

func (b *Batch) Reset() {
	b.transforms = b.transforms[:0]
}
