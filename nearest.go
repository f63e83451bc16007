package scissor

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	_ kdtree.Interface  = kdKeys{}
	_ kdtree.Comparable = kdKey{}
	_ kdtree.SortSlicer = kdPlane{}
)

// NearestKey returns the attachment key whose point in sol is closest to pt
// and the distance to it. ok is false if sol has no finite points.
func NearestKey(sol Solution, pt r2.Vec) (key Key, dist float64, ok bool) {
	keys := EnumerateKeys(len(sol.Stages))
	pts := make(kdKeys, 0, len(keys))
	for _, k := range keys {
		v, _ := Resolve(sol, k)
		if !IsFinite(v.X) || !IsFinite(v.Y) {
			continue
		}
		pts = append(pts, kdKey{key: k, p: v})
	}
	if len(pts) == 0 {
		return Key{}, math.NaN(), false
	}
	tree := kdtree.New(pts, false)
	got, d2 := tree.Nearest(kdKey{p: pt})
	return got.(kdKey).key, math.Sqrt(d2), true
}

// kdKey is an addressable mechanism point stored in a k-d tree.
type kdKey struct {
	key Key
	p   r2.Vec
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a kdKey) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdKey), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdKey) Dims() int { return 2 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdKey) Distance(b kdtree.Comparable) float64 {
	return r2.Norm2(r2.Sub(a.p, b.(kdKey).p))
}

func kdComp(a, b kdKey, dim int) float64 {
	if dim == 0 {
		return a.p.X - b.p.X
	}
	return a.p.Y - b.p.Y
}

type kdKeys []kdKey

func (k kdKeys) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdKeys) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdKeys) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), keys: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdKeys) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

type kdPlane struct {
	dim  int
	keys kdKeys
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.keys[i], p.keys[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.keys[i], p.keys[j] = p.keys[j], p.keys[i]
}
func (p kdPlane) Len() int {
	return len(p.keys)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.keys = p.keys[start:end]
	return p
}
