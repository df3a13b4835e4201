/*
Package dsl provides a Go DSL for programmatically constructing toggle projects.

It allows developers to declare toggles with a type-safe, fluent builder instead of relying on
YAML or JSON files. This is particularly useful for generated projects and unit tests.

Example usage:

	b := dsl.New("wardrobe")

	b.Toggle().
		Menu("Clothing/Hat").
		Show(domain.SetObject("Hat", true)).
		Exclusive("Head").
		Saved()

	b.Toggle().
		Gesture(domain.HandLeft, domain.SignFist).
		Show(domain.PlayClip("angry", domain.MuscleOther))

	project, err := b.Build()
	// ... pass project to toggler.Compile(...)
*/
package dsl
