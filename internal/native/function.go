package native

// CallFunc is the native calling convention: the engine passes the call-site
// record (and sometimes extra arguments) and expects a wire value back.
type CallFunc func(args ...any) (any, error)

// Function is a thunk stored in the tree. It remembers the host callback it
// was built from so every view of the node can read the registration back.
type Function struct {
	call CallFunc
	host any
}

// NewFunction wraps call as a native thunk. host is the callback the thunk
// forwards to and may be nil.
func NewFunction(host any, call CallFunc) *Function {
	return &Function{call: call, host: host}
}

// Call invokes the thunk.
func (f *Function) Call(args ...any) (any, error) {
	if f == nil || f.call == nil {
		return nil, ErrNotCallable
	}
	return f.call(args...)
}

// Host returns the host callback this thunk forwards to.
func (f *Function) Host() any {
	if f == nil {
		return nil
	}
	return f.host
}
