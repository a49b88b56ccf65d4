package history

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/gridedit/internal/engine/grid"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Default configuration values.
const (
	DefaultThreshold  = 500
	DefaultMaxEntries = 1000
)

// undoGroup is a set of operations undone and redone together.
type undoGroup[M any] struct {
	id  uuid.UUID
	ops []*Operation[M]
}

func (g *undoGroup[M]) last() *Operation[M] {
	return g.ops[len(g.ops)-1]
}

// History manages the undo/redo stacks of a grid.
//
// Operations pushed close together in time are grouped: a new operation
// joins the most recent group when the gap between its timestamp and the
// group's last operation is below the threshold and both are forward
// character insertions at adjacent positions. Everything else starts a
// new group. History is not safe for concurrent use.
type History[M any] struct {
	undoStack []*undoGroup[M]
	redoStack []*undoGroup[M]

	// Explicit grouping state
	grouping  bool
	groupName string
	groupOps  []*Operation[M]

	// Configuration
	threshold  int64
	maxEntries int
	groupAll   bool
}

// Option configures a History.
type Option func(*settings)

type settings struct {
	threshold  int64
	maxEntries int
	groupAll   bool
}

// WithThreshold sets the grouping time gate in clock units.
func WithThreshold(t int64) Option {
	return func(s *settings) {
		if t >= 0 {
			s.threshold = t
		}
	}
}

// WithMaxGroups limits the number of undo groups kept.
func WithMaxGroups(max int) Option {
	return func(s *settings) {
		if max > 0 {
			s.maxEntries = max
		}
	}
}

// WithGroupAllEdits makes every operation within the threshold join the
// previous group, whatever its kind.
func WithGroupAllEdits(enabled bool) Option {
	return func(s *settings) {
		s.groupAll = enabled
	}
}

// New creates a new history manager.
func New[M any](opts ...Option) *History[M] {
	s := settings{
		threshold:  DefaultThreshold,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &History[M]{
		threshold:  s.threshold,
		maxEntries: s.maxEntries,
		groupAll:   s.groupAll,
	}
}

// Push adds an operation to the undo stack and clears the redo stack.
func (h *History[M]) Push(op *Operation[M]) {
	h.redoStack = nil

	if h.grouping {
		h.groupOps = append(h.groupOps, op)
		return
	}

	if top := h.top(); top != nil && h.joins(top.last(), op) {
		top.ops = append(top.ops, op)
		return
	}
	h.pushGroup(&undoGroup[M]{id: uuid.New(), ops: []*Operation[M]{op}})
}

func (h *History[M]) top() *undoGroup[M] {
	if len(h.undoStack) == 0 {
		return nil
	}
	return h.undoStack[len(h.undoStack)-1]
}

// joins reports whether next belongs to the group ending with prev.
func (h *History[M]) joins(prev, next *Operation[M]) bool {
	gap := next.Timestamp - prev.Timestamp
	if gap < 0 || gap >= h.threshold {
		return false
	}
	return h.groupAll || prev.Continues(next)
}

func (h *History[M]) pushGroup(g *undoGroup[M]) {
	h.undoStack = append(h.undoStack, g)

	// Enforce max entries
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		for i := 0; i < excess; i++ {
			h.undoStack[i] = nil
		}
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent group on g, newest operation first.
// It returns the selection recorded before the group's first operation.
func (h *History[M]) Undo(g *grid.Grid[M]) (Selection, error) {
	if len(h.undoStack) == 0 {
		return Selection{}, ErrNothingToUndo
	}

	group := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	for i := len(group.ops) - 1; i >= 0; i-- {
		group.ops[i].Revert(g)
	}

	h.redoStack = append(h.redoStack, group)
	return group.ops[0].SelectionBefore, nil
}

// Redo reapplies the most recently undone group on g, oldest operation
// first. It returns the selection recorded after the group's last operation.
func (h *History[M]) Redo(g *grid.Grid[M]) (Selection, error) {
	if len(h.redoStack) == 0 {
		return Selection{}, ErrNothingToRedo
	}

	group := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	for _, op := range group.ops {
		op.Apply(g)
	}

	h.undoStack = append(h.undoStack, group)
	return group.last().SelectionAfter, nil
}

// CanUndo returns true if undo is available.
func (h *History[M]) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History[M]) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo groups available.
func (h *History[M]) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo groups available.
func (h *History[M]) RedoCount() int {
	return len(h.redoStack)
}

// BeginGroup starts an explicit group.
// Operations pushed until EndGroup form a single undo unit.
func (h *History[M]) BeginGroup(name string) {
	if h.grouping {
		// Already grouping, ignore nested calls
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupOps = nil
}

// EndGroup finishes an explicit group and pushes it as a new undo unit.
func (h *History[M]) EndGroup() {
	if !h.grouping {
		return
	}

	h.grouping = false
	if len(h.groupOps) > 0 {
		h.pushGroup(&undoGroup[M]{id: uuid.New(), ops: h.groupOps})
	}
	h.groupOps = nil
}

// IsGrouping returns true if an explicit group is open.
func (h *History[M]) IsGrouping() bool {
	return h.grouping
}

// Clear removes all undo/redo history.
func (h *History[M]) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupOps = nil
}

// Threshold returns the grouping time gate.
func (h *History[M]) Threshold() int64 {
	return h.threshold
}

// SetMaxEntries changes the maximum number of undo groups.
// If the current stack is larger, oldest groups are removed.
func (h *History[M]) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max

	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo groups.
func (h *History[M]) MaxEntries() int {
	return h.maxEntries
}

// OperationInfo provides read-only info about an undo group.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	ID          uuid.UUID
	Description string // Human-readable description
	Timestamp   int64  // Logical time of the group's last operation
	Operations  int    // Number of operations in the group
}

func (g *undoGroup[M]) info() OperationInfo {
	kinds := make([]string, 0, len(g.ops))
	for i, op := range g.ops {
		if i > 0 && op.Kind == g.ops[i-1].Kind {
			continue
		}
		kinds = append(kinds, op.Kind.String())
	}
	return OperationInfo{
		ID:          g.id,
		Description: strings.Join(kinds, "+"),
		Timestamp:   g.last().Timestamp,
		Operations:  len(g.ops),
	}
}

// UndoInfo returns info about available undo groups, oldest first.
func (h *History[M]) UndoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.undoStack))
	for i, g := range h.undoStack {
		result[i] = g.info()
	}
	return result
}

// RedoInfo returns info about available redo groups, oldest undone last.
func (h *History[M]) RedoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.redoStack))
	for i, g := range h.redoStack {
		result[i] = g.info()
	}
	return result
}

// PeekUndo returns info about the next undo group without removing it.
func (h *History[M]) PeekUndo() (OperationInfo, bool) {
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns info about the next redo group without removing it.
func (h *History[M]) PeekRedo() (OperationInfo, bool) {
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}
