package shimmer

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

var (
	// ErrRenderPanic wraps a panic recovered from a component's render step.
	ErrRenderPanic = errors.New("component render panicked")
	// ErrNotComponent is returned when a component reference holds a value
	// that has no render contract.
	ErrNotComponent = errors.New("value is not a component")
)

// ChildrenProp is the Props key under which declared children are passed
// to a component's render step.
const ChildrenProp = "children"

// Props are the input attributes a component is rendered with.
type Props map[string]any

// Children returns the declared children passed to the component.
func (p Props) Children() []Node {
	c := p[ChildrenProp]
	if c == nil {
		return nil
	}
	if seq, ok := Sequence(c); ok {
		return seq
	}
	return []Node{c}
}

// String returns the string prop at key, or "".
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Bool returns the bool prop at key, or false.
func (p Props) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Int returns the int prop at key, or 0.
func (p Props) Int(key string) int {
	i, _ := p[key].(int)
	return i
}

// Stateful is a class-like component: an instance built from props that
// exposes a render operation.
type Stateful interface {
	Render() Node
}

// ComponentElement is a reference to a user-defined component together with
// the props and children it was declared with. The component is not
// rendered until something asks for its output.
//
// The render value decides what kind of component this is:
//
//	func() Node                   function component, ignores props
//	func(Props) Node              function component
//	func(Props) (Node, error)     function component that can fail
//	func(Props) Stateful          stateful component constructor
//
// Any other value makes the reference opaque.
type ComponentElement struct {
	render   any
	props    Props
	children []Node
	key      string
}

// Component creates a reference to a user-defined component.
func Component(render any, props Props, children ...Node) *ComponentElement {
	return &ComponentElement{
		render:   render,
		props:    props,
		children: children,
	}
}

// WithKey returns a copy of c carrying the identity key.
func (c *ComponentElement) WithKey(key string) *ComponentElement {
	cp := *c
	cp.key = key
	return &cp
}

// Key returns the identity key, or "" if none was set.
func (c *ComponentElement) Key() string {
	return c.key
}

// Children returns the declared children.
func (c *ComponentElement) Children() []Node {
	return c.children
}

// Props returns a copy of the declared props with the declared children
// stored under ChildrenProp.
func (c *ComponentElement) Props() Props {
	props := make(Props, len(c.props)+1)
	for k, v := range c.props {
		props[k] = v
	}
	if len(c.children) > 0 {
		props[ChildrenProp] = c.children
	}
	return props
}

// Name returns a readable name for the component's render value.
func (c *ComponentElement) Name() string {
	if c.render == nil {
		return "<nil>"
	}
	v := reflect.ValueOf(c.render)
	if v.Kind() == reflect.Func && !v.IsNil() {
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			name := fn.Name()
			if i := strings.LastIndex(name, "/"); i >= 0 {
				name = name[i+1:]
			}
			return name
		}
	}
	return fmt.Sprintf("%T", c.render)
}

// Render runs the component's render step with its original props and
// returns the output. Returned errors and panics are both failures.
// Stateful components are constructed fresh for each call, so no state
// carries over between renders.
func (c *ComponentElement) Render() (out Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %s: %v", ErrRenderPanic, c.Name(), r)
		}
	}()

	switch fn := c.render.(type) {
	case func() Node:
		if fn != nil {
			return fn(), nil
		}
	case func(Props) Node:
		if fn != nil {
			return fn(c.Props()), nil
		}
	case func(Props) (Node, error):
		if fn != nil {
			return fn(c.Props())
		}
	case func(Props) Stateful:
		if fn != nil {
			instance := fn(c.Props())
			if instance == nil {
				return nil, nil
			}
			return instance.Render(), nil
		}
	default:
		if Classify(c) != KindOther {
			return c.call()
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotComponent, c.Name())
}

// call invokes a render func whose signature was accepted by
// classifySignature but is not one of the common forms.
func (c *ComponentElement) call() (Node, error) {
	fn := reflect.ValueOf(c.render)
	var args []reflect.Value
	if fn.Type().NumIn() == 1 {
		args = []reflect.Value{reflect.ValueOf(c.Props())}
	}
	results := fn.Call(args)
	if len(results) == 2 {
		if err, _ := results[1].Interface().(error); err != nil {
			return nil, err
		}
	}
	out := results[0]
	if isNilValue(out) {
		return nil, nil
	}
	if instance, ok := out.Interface().(Stateful); ok {
		return instance.Render(), nil
	}
	return out.Interface(), nil
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
