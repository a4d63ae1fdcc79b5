package shimmer

import "reflect"

// Kind is the renderable kind of a tree node.
type Kind uint8

const (
	// KindOther is an absent, opaque, or unrecognised node.
	KindOther Kind = iota
	// KindText is the primitive text leaf.
	KindText
	// KindContainer is the primitive container.
	KindContainer
	// KindFunction is a user-defined function component.
	KindFunction
	// KindStateful is a user-defined stateful component.
	KindStateful
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindContainer:
		return "container"
	case KindFunction:
		return "function-component"
	case KindStateful:
		return "stateful-component"
	default:
		return "other"
	}
}

// Classify determines the renderable kind of node. It is derived fresh on
// every call; nothing is cached, since trees are rebuilt on every render.
// Sequences are not nodes and classify as KindOther; callers map over them.
func Classify(node Node) Kind {
	switch n := node.(type) {
	case *Element:
		if n == nil {
			return KindOther
		}
		switch n.typ {
		case ElementText:
			return KindText
		case ElementView:
			return KindContainer
		}
	case *ComponentElement:
		if n == nil {
			return KindOther
		}
		return classifyRender(n.render)
	}
	return KindOther
}

func classifyRender(render any) Kind {
	switch fn := render.(type) {
	case func() Node:
		if fn != nil {
			return KindFunction
		}
	case func(Props) Node:
		if fn != nil {
			return KindFunction
		}
	case func(Props) (Node, error):
		if fn != nil {
			return KindFunction
		}
	case func(Props) Stateful:
		if fn != nil {
			return KindStateful
		}
	default:
		v := reflect.ValueOf(render)
		if v.Kind() == reflect.Func && !v.IsNil() {
			return classifySignature(v.Type())
		}
	}
	return KindOther
}

var (
	propsType    = reflect.TypeOf(Props(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	statefulType = reflect.TypeOf((*Stateful)(nil)).Elem()
)

// classifySignature accepts any function taking nothing or a single
// parameter Props can be passed as, and returning one result or a result
// and an error. Concrete result types are fine: a func(Props) *Element is a
// function component, and a result type implementing Stateful makes it a
// stateful component.
func classifySignature(t reflect.Type) Kind {
	if t.IsVariadic() {
		return KindOther
	}
	switch t.NumIn() {
	case 0:
	case 1:
		if !propsType.AssignableTo(t.In(0)) {
			return KindOther
		}
	default:
		return KindOther
	}
	switch t.NumOut() {
	case 1:
		if t.Out(0) == errorType {
			return KindOther
		}
	case 2:
		if t.Out(1) != errorType {
			return KindOther
		}
	default:
		return KindOther
	}
	if t.Out(0).Implements(statefulType) {
		return KindStateful
	}
	return KindFunction
}
