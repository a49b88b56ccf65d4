package history

// GroupScope provides a convenient way to group operations using defer.
// Usage:
//
//	func replaceSelection(h *History[M], ...) {
//	    defer h.GroupScope("replace").End()
//	    // ... delete, then insert ...
//	}
type GroupScope[M any] struct {
	history *History[M]
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
// If a group is already open, the scope does nothing and the outer
// group collects the operations.
func (h *History[M]) GroupScope(name string) *GroupScope[M] {
	if h.grouping {
		return &GroupScope[M]{history: h}
	}
	h.BeginGroup(name)
	return &GroupScope[M]{
		history: h,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope[M]) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}
