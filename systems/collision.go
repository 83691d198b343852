package systems

import (
	"github.com/alindqvist/blackwhite/tags"
	"github.com/solarlune/resolv"
)

// Blocked reports whether moving obj by (dx, dy) would overlap geometry that
// is solid for the white or black character. Geometry of the other color is
// passed through.
func Blocked(obj *resolv.Object, dx, dy float64, white bool) bool {
	return len(Blockers(obj, dx, dy, white)) > 0
}

// Blockers returns the objects solid for the given character that obj would
// overlap after moving by (dx, dy).
func Blockers(obj *resolv.Object, dx, dy float64, white bool) []*resolv.Object {
	solid := tags.SolidFor(white)
	check := obj.Check(dx, dy, solid)
	if check == nil {
		return nil
	}

	var out []*resolv.Object
	for _, o := range check.ObjectsByTags(solid) {
		if overlaps(obj.X+dx, obj.Y+dy, obj.W, obj.H, o) {
			out = append(out, o)
		}
	}
	return out
}

// overlaps is a strict AABB test: touching edges do not count.
func overlaps(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && o.X < x+w && y < o.Y+o.H && o.Y < y+h
}
