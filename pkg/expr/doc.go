/*
Package expr models the boolean conditions a host animation controller can evaluate.

Conditions are immutable trees built from parameter comparisons and combined with And, Or and
Not. They render to a compact infix string for inspection and can be evaluated against a set of
parameter values, which is how the compiler's gating logic is exercised in tests:

	shirt := expr.NewBoolHandle("Shirt")
	lock := expr.NewBoolHandle("VF_Outfit_Lock")
	on := shirt.IsTrue().And(lock.IsFalse())

	on.String()                                             // "Shirt && !VF_Outfit_Lock"
	on.Eval(expr.Values{"Shirt": 1, "VF_Outfit_Lock": 1})   // false
*/
package expr
