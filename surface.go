package main

import "github.com/go-gl/mathgl/mgl32"

// surface is a plane grid mesh with fixed topology. base holds the undeformed
// positions and is never written after construction; displaced is rewritten
// by the displacement backend every frame.
type surface struct {
	width, height float32
	segments      int
	columns       int
	rows          int

	base      []float32
	displaced []float32
	normals   []float32
	triangles []uint32
	edges     []uint32
}

// newSurface lays out (segments+1)^2 vertices row-major from the top-left
// corner: x grows right, y falls from +height/2 to -height/2, z is 0.
func newSurface(width, height float32, segments int) *surface {
	cols := segments + 1
	rows := segments + 1
	count := cols * rows
	s := &surface{
		width: width, height: height,
		segments:  segments,
		columns:   cols,
		rows:      rows,
		base:      make([]float32, count*3),
		displaced: make([]float32, count*3),
		normals:   make([]float32, count*3),
	}
	segW := width / float32(segments)
	segH := height / float32(segments)
	for iy := 0; iy < rows; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix < cols; ix++ {
			x := float32(ix)*segW - width/2
			i := (iy*cols + ix) * 3
			s.base[i] = x
			s.base[i+1] = -y
			s.normals[i+2] = 1
		}
	}
	copy(s.displaced, s.base)

	s.triangles = make([]uint32, 0, segments*segments*6)
	for iy := 0; iy < segments; iy++ {
		for ix := 0; ix < segments; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			s.triangles = append(s.triangles, a, b, d, b, c, d)
		}
	}
	s.edges = uniqueEdges(s.triangles)
	return s
}

// uniqueEdges returns each triangle edge once as index pairs.
func uniqueEdges(triangles []uint32) []uint32 {
	seen := make(map[uint64]struct{}, len(triangles))
	edges := make([]uint32, 0, len(triangles))
	for t := 0; t+2 < len(triangles); t += 3 {
		tri := triangles[t : t+3]
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := uint64(a)<<32 | uint64(b)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, a, b)
		}
	}
	return edges
}

func (s *surface) vertexCount() int {
	return s.columns * s.rows
}

func (s *surface) basePosition(v int) mgl32.Vec3 {
	i := v * 3
	return mgl32.Vec3{s.base[i], s.base[i+1], s.base[i+2]}
}

func (s *surface) displacedPosition(v int) mgl32.Vec3 {
	i := v * 3
	return mgl32.Vec3{s.displaced[i], s.displaced[i+1], s.displaced[i+2]}
}

func (s *surface) normal(v int) mgl32.Vec3 {
	i := v * 3
	return mgl32.Vec3{s.normals[i], s.normals[i+1], s.normals[i+2]}
}
