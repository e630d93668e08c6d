package anchors

import (
	"go/types"
	"maps"
	"slices"

	"golang.org/x/tools/go/ssa"
)

// Matcher maps known callees to anchor groups.
type Matcher struct {
	refs map[Reference]string
}

// NewMatcher creates a matcher knowing no callees.
func NewMatcher() *Matcher {
	return &Matcher{refs: map[Reference]string{}}
}

// Register binds the callee to the group. A later registration of the same reference
// replaces the earlier one.
func (m *Matcher) Register(ref Reference, group string) {
	m.refs[ref] = group
}

// Groups returns registered group names in ascending order.
func (m *Matcher) Groups() []string {
	res := slices.Collect(maps.Values(m.refs))
	slices.Sort(res)
	return slices.Compact(res)
}

// Len returns the number of registered references.
func (m *Matcher) Len() int {
	return len(m.refs)
}

// GroupOf returns the group of the called function. Only static calls of functions and
// methods and interface method invocations can be matched.
func (m *Matcher) GroupOf(call *ssa.CallCommon) (string, bool) {
	ref, ok := callReference(call)
	if !ok {
		return "", false
	}

	group, ok := m.refs[ref]
	return group, ok
}

func callReference(call *ssa.CallCommon) (Reference, bool) {
	var obj *types.Func
	switch {
	case call.IsInvoke():
		obj = call.Method
	default:
		callee := call.StaticCallee()
		if callee == nil {
			return Reference{}, false
		}
		fn, ok := callee.Object().(*types.Func)
		if !ok {
			// Closures and synthetic wrappers have no object.
			return Reference{}, false
		}
		obj = fn
	}

	return funcReference(obj.Origin())
}

func funcReference(obj *types.Func) (Reference, bool) {
	pkg := obj.Pkg()
	if pkg == nil {
		return Reference{}, false
	}

	ref := Reference{
		Package: pkg.Path(),
		Name:    obj.Name(),
	}

	sig, ok := obj.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return ref, true
	}

	recv := sig.Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}
	named, ok := recv.(*types.Named)
	if !ok {
		// Methods of unnamed interfaces.
		return Reference{}, false
	}
	ref.Type = named.Obj().Name()

	return ref, true
}
