/*geom contains the exact rational geometry kernel: vectors, points,
lines, rays, line segments, planes, triangles, rectangles, tetrahedra,
axis aligned bounding boxes and convex polygonal areas, together with the
intersection, distance, containment and rigid transform routines that
connect them.

Coordinates are big.Rat rationals and never lose information on their
own. Every predicate that has to decide something about nearly equal
values (equality, parallelism, membership) takes an order of magnitude
and a rounding mode from math/rnum, so callers control exactly how
aggressive the comparisons are and results are reproducible.

Entities copy the values handed to their constructors. Sharing is opt-in
through the explicitly named Sharing constructors. Translate and
SetOffset mutate their receiver and return it for chaining; every other
transform returns a new value.
*/
package geom

// Geometry is the result type of the intersection routines. The concrete
// types behind it are exactly *Point, *Line, *Ray, *LineSegment, *Plane,
// *Triangle, *Rectangle, *ConvexArea, *Tetrahedron and *AABB. A nil
// Geometry means the operands do not meet. Callers switch on the concrete
// type to recover the intersection's dimensionality.
type Geometry interface {
	geometry()
}

// sumGuard is the number of extra orders of magnitude carried by the
// terms of a rounded sum, such as a perimeter or a summed area, so the
// accumulated term errors stay below the final rounding step.
const sumGuard = 4

func (*Point) geometry()       {}
func (*Line) geometry()        {}
func (*Ray) geometry()         {}
func (*LineSegment) geometry() {}
func (*Plane) geometry()       {}
func (*Triangle) geometry()    {}
func (*Rectangle) geometry()   {}
func (*ConvexArea) geometry()  {}
func (*Tetrahedron) geometry() {}
func (*AABB) geometry()        {}
