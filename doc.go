/*
Package toggler compiles declarative avatar toggles into a host animation controller.

A project lists toggles: a condition built from menu items, hand gestures and global booleans,
plus the visual state to show while the condition holds. The compiler allocates the parameters,
wires mutual exclusion between toggles sharing a tag (switching to one shared integer per group
once a group outgrows booleans), synthesizes one layer of states and transitions per toggle and
registers the menu items that drive them.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/toggler"
	)

	func main() {
		c, err := toggler.New()
		if err != nil {
			log.Fatal(err)
		}

		result, err := c.CompileFile(context.Background(), "avatar.yaml")
		if err != nil {
			log.Fatal(err)
		}
		log.Println(result.Summary)
	}

Projects can also be declared in Go with package dsl, stored with the adapters under
pkg/adapters and served over HTTP with pkg/adapters/http.

# Observability

Compilation reports through structured logging (log/slog), lifecycle hooks
(domain.LifecycleHooks) and optional Prometheus metrics (WithMetrics).
*/
package toggler
