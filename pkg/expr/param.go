package expr

// Kind is the value type of a controller parameter.
type Kind string

const (
	KindBool  Kind = "bool"
	KindInt   Kind = "int"
	KindFloat Kind = "float"
)

// Handle is an opaque reference to a controller parameter.
type Handle interface {
	Name() string
	Kind() Kind
}

// Bool references a boolean parameter.
type Bool struct{ name string }

// Int references an integer parameter.
type Int struct{ name string }

// Float references a float parameter.
type Float struct{ name string }

// NewBoolHandle wraps an already registered boolean parameter name.
func NewBoolHandle(name string) Bool { return Bool{name: name} }

// NewIntHandle wraps an already registered integer parameter name.
func NewIntHandle(name string) Int { return Int{name: name} }

// NewFloatHandle wraps an already registered float parameter name.
func NewFloatHandle(name string) Float { return Float{name: name} }

func (b Bool) Name() string { return b.name }
func (b Bool) Kind() Kind { return KindBool }

// IsTrue is satisfied while the parameter is set.
func (b Bool) IsTrue() Cond { return Cond{op: OpBoolTrue, param: b.name} }

// IsFalse is satisfied while the parameter is cleared.
func (b Bool) IsFalse() Cond { return b.IsTrue().Not() }

func (i Int) Name() string { return i.name }
func (i Int) Kind() Kind { return KindInt }

func (i Int) IsEqualTo(v int) Cond {
	return Cond{op: OpIntEqual, param: i.name, value: float64(v)}
}

func (i Int) IsNotEqualTo(v int) Cond { return i.IsEqualTo(v).Not() }

func (i Int) IsGreaterThan(v int) Cond {
	return Cond{op: OpIntGreater, param: i.name, value: float64(v)}
}

func (i Int) IsLessThan(v int) Cond {
	return Cond{op: OpIntLess, param: i.name, value: float64(v)}
}

func (f Float) Name() string { return f.name }
func (f Float) Kind() Kind { return KindFloat }

func (f Float) IsGreaterThan(v float64) Cond {
	return Cond{op: OpFloatGreater, param: f.name, value: v}
}

func (f Float) IsLessThan(v float64) Cond {
	return Cond{op: OpFloatLess, param: f.name, value: v}
}
