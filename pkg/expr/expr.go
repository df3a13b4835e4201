package expr

import (
	"strconv"
	"strings"
)

// Op identifies the kind of a condition node.
type Op int

const (
	OpAlways Op = iota
	OpNever
	OpBoolTrue
	OpIntEqual
	OpIntGreater
	OpIntLess
	OpFloatGreater
	OpFloatLess
	OpAnd
	OpOr
	OpNot
)

// Cond is an immutable boolean expression over named parameters.
// The zero value is Always.
type Cond struct {
	op       Op
	param    string
	value    float64
	children []Cond
}

// Always returns a condition that is always satisfied.
func Always() Cond { return Cond{op: OpAlways} }

// Never returns a condition that is never satisfied.
func Never() Cond { return Cond{op: OpNever} }

// Op returns the node kind.
func (c Cond) Op() Op { return c.op }

// IsAlways reports whether c is the literal Always.
func (c Cond) IsAlways() bool { return c.op == OpAlways }

// IsNever reports whether c is the literal Never.
func (c Cond) IsNever() bool { return c.op == OpNever }

// And combines c with other. Literals are folded so chains seeded with Always stay readable.
func (c Cond) And(other Cond) Cond {
	switch {
	case c.op == OpAlways:
		return other
	case other.op == OpAlways:
		return c
	case c.op == OpNever || other.op == OpNever:
		return Never()
	}
	return Cond{op: OpAnd, children: append(flatten(c, OpAnd), flatten(other, OpAnd)...)}
}

// Or combines c with other.
func (c Cond) Or(other Cond) Cond {
	switch {
	case c.op == OpNever:
		return other
	case other.op == OpNever:
		return c
	case c.op == OpAlways || other.op == OpAlways:
		return Always()
	}
	return Cond{op: OpOr, children: append(flatten(c, OpOr), flatten(other, OpOr)...)}
}

// Not negates c.
func (c Cond) Not() Cond {
	switch c.op {
	case OpAlways:
		return Never()
	case OpNever:
		return Always()
	case OpNot:
		return c.children[0]
	}
	return Cond{op: OpNot, children: []Cond{c}}
}

func flatten(c Cond, op Op) []Cond {
	if c.op == op {
		out := make([]Cond, len(c.children))
		copy(out, c.children)
		return out
	}
	return []Cond{c}
}

// Params returns the distinct parameter names referenced by c, in first-seen order.
func (c Cond) Params() []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(Cond)
	walk = func(n Cond) {
		if n.param != "" && !seen[n.param] {
			seen[n.param] = true
			names = append(names, n.param)
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(c)
	return names
}

// Env supplies parameter values during evaluation.
// Booleans are read as non-zero numbers.
type Env interface {
	Value(name string) float64
}

// Values is a map-backed Env. Missing parameters read as zero.
type Values map[string]float64

// Value implements Env.
func (v Values) Value(name string) float64 { return v[name] }

// Eval evaluates c against env.
func (c Cond) Eval(env Env) bool {
	switch c.op {
	case OpAlways:
		return true
	case OpNever:
		return false
	case OpBoolTrue:
		return env.Value(c.param) != 0
	case OpIntEqual:
		return int(env.Value(c.param)) == int(c.value)
	case OpIntGreater:
		return int(env.Value(c.param)) > int(c.value)
	case OpIntLess:
		return int(env.Value(c.param)) < int(c.value)
	case OpFloatGreater:
		return env.Value(c.param) > c.value
	case OpFloatLess:
		return env.Value(c.param) < c.value
	case OpAnd:
		for _, child := range c.children {
			if !child.Eval(env) {
				return false
			}
		}
		return true
	case OpOr:
		for _, child := range c.children {
			if child.Eval(env) {
				return true
			}
		}
		return false
	case OpNot:
		return !c.children[0].Eval(env)
	}
	return false
}

// String renders c in a compact infix form, e.g. `Shirt && !VF_Outfit_Lock`.
func (c Cond) String() string {
	var sb strings.Builder
	c.write(&sb, false)
	return sb.String()
}

func (c Cond) write(sb *strings.Builder, nested bool) {
	switch c.op {
	case OpAlways:
		sb.WriteString("true")
	case OpNever:
		sb.WriteString("false")
	case OpBoolTrue:
		sb.WriteString(c.param)
	case OpIntEqual:
		sb.WriteString(c.param + " == " + formatNumber(c.value))
	case OpIntGreater, OpFloatGreater:
		sb.WriteString(c.param + " > " + formatNumber(c.value))
	case OpIntLess, OpFloatLess:
		sb.WriteString(c.param + " < " + formatNumber(c.value))
	case OpNot:
		inner := c.children[0]
		if inner.op == OpBoolTrue {
			sb.WriteString("!" + inner.param)
			return
		}
		sb.WriteString("!(")
		inner.write(sb, false)
		sb.WriteString(")")
	case OpAnd, OpOr:
		sep := " && "
		if c.op == OpOr {
			sep = " || "
		}
		if nested {
			sb.WriteString("(")
		}
		for i, child := range c.children {
			if i > 0 {
				sb.WriteString(sep)
			}
			child.write(sb, true)
		}
		if nested {
			sb.WriteString(")")
		}
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
