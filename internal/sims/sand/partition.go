package sand

// Span is a half-open column range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len reports the number of columns in the span.
func (s Span) Len() int {
	if s.Hi < s.Lo {
		return 0
	}
	return s.Hi - s.Lo
}

// Contains reports whether column x lies in the span.
func (s Span) Contains(x int) bool { return x >= s.Lo && x < s.Hi }

// ChunkSpec describes one chunk of a layout. Update is the band of columns
// whose particles the chunk's worker updates; Extent adds the halo columns
// the worker can see and move particles into.
type ChunkSpec struct {
	Index  int
	Update Span
	Extent Span
}

// Phase reports which half-step of a tick the chunk runs in. Chunks sharing a
// phase run concurrently; their extents never overlap.
func (c ChunkSpec) Phase() int { return c.Index % 2 }

// Partition splits width columns into bands of ceil(width/chunks) columns.
// The aligned layout starts its first band at column 0; the staggered layout
// shifts every boundary by half a band, so columns near an aligned seam sit
// in the middle of a staggered band.
//
// The halo is half a band wide. Two bands of the same phase are separated by
// a full band, so their extents stay disjoint.
func Partition(width, chunks int, staggered bool) []ChunkSpec {
	if width <= 0 {
		return nil
	}
	if chunks < 1 {
		chunks = 1
	}
	if chunks > width {
		chunks = width
	}
	band := (width + chunks - 1) / chunks
	halo := band / 2

	starts := make([]int, 0, chunks+1)
	first := 0
	if staggered && halo > 0 {
		starts = append(starts, 0)
		first = halo
	}
	for lo := first; lo < width; lo += band {
		starts = append(starts, lo)
	}

	specs := make([]ChunkSpec, 0, len(starts))
	for i, lo := range starts {
		hi := width
		if i+1 < len(starts) {
			hi = starts[i+1]
		}
		specs = append(specs, ChunkSpec{
			Index:  i,
			Update: Span{Lo: lo, Hi: hi},
			Extent: Span{Lo: max(0, lo-halo), Hi: min(width, hi+halo)},
		})
	}
	return specs
}
