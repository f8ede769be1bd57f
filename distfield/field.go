package distfield

import (
	"fmt"

	"github.com/PennIARC/GridTesting/terrain"
)

// Build runs a multi-source BFS from sources over a width×height grid.
// Source i receives owner id i. A source repeated later in the roster keeps
// the id of its first occurrence. An empty roster yields an empty field.
func Build(width, height int, sources []terrain.Point) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Build(%d,%d): %w", width, height, ErrEmptyGrid)
	}
	n := width * height
	f := &Field{
		Width:   width,
		Height:  height,
		dist:    make([]int32, n),
		owner:   make([]int32, n),
		sources: len(sources),
	}
	for i := range f.owner {
		f.owner[i] = noOwner
	}

	queue := make([]int, 0, n)
	for id, s := range sources {
		if !f.inBounds(s.X, s.Y) {
			return nil, fmt.Errorf("Build: source %d at %v: %w", id, s, ErrSourceOutOfBounds)
		}
		i := s.Y*width + s.X
		if f.owner[i] != noOwner {
			continue
		}
		f.owner[i] = int32(id)
		f.dist[i] = 0
		queue = append(queue, i)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := u%width, u/width
		for _, d := range terrain.Offsets4 {
			vx, vy := ux+d[0], uy+d[1]
			if !f.inBounds(vx, vy) {
				continue
			}
			v := vy*width + vx
			if f.owner[v] != noOwner {
				continue
			}
			f.dist[v] = f.dist[u] + 1
			f.owner[v] = f.owner[u]
			queue = append(queue, v)
		}
	}
	f.reached = len(queue)

	return f, nil
}

func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Len returns the number of reached cells.
func (f *Field) Len() int { return f.reached }

// Sources returns the roster size the field was built from.
func (f *Field) Sources() int { return f.sources }

// Distance returns the step distance from p to its nearest source.
// ok is false, and d is Unreached, for cells the BFS never reached.
func (f *Field) Distance(p terrain.Point) (d int, ok bool) {
	return f.DistanceAt(f.index(p))
}

// DistanceAt is Distance for a row-major index; -1 reads as unreached.
func (f *Field) DistanceAt(idx int) (d int, ok bool) {
	if idx < 0 || idx >= len(f.owner) || f.owner[idx] == noOwner {
		return Unreached, false
	}
	return int(f.dist[idx]), true
}

// Owner returns the id of the source owning p.
func (f *Field) Owner(p terrain.Point) (id int, ok bool) {
	return f.OwnerAt(f.index(p))
}

// OwnerAt is Owner for a row-major index.
func (f *Field) OwnerAt(idx int) (id int, ok bool) {
	if idx < 0 || idx >= len(f.owner) || f.owner[idx] == noOwner {
		return noOwner, false
	}
	return int(f.owner[idx]), true
}

// Within reports whether p lies within radius steps of its nearest source,
// returning that source's id.
func (f *Field) Within(p terrain.Point, radius int) (id int, ok bool) {
	return f.WithinAt(f.index(p), radius)
}

// WithinAt is Within for a row-major index.
func (f *Field) WithinAt(idx int, radius int) (id int, ok bool) {
	d, reached := f.DistanceAt(idx)
	if !reached || d > radius {
		return noOwner, false
	}
	return int(f.owner[idx]), true
}

func (f *Field) index(p terrain.Point) int {
	if !f.inBounds(p.X, p.Y) {
		return -1
	}
	return p.Y*f.Width + p.X
}
