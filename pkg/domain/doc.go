/*
Package domain contains the declarative toggle model and the compiled graph snapshot produced by
the toggle compiler.

It is kept pure and free of I/O, following the same hexagonal split as the rest of the module:
adapters load projects and persist artifacts, the compiler transforms one into the other.

# Key Entities

  - Project: every toggle compiled together in one pass, plus icon overrides and security lock.
  - Toggle: one user-controllable switch with its activation Condition and visual States.
  - Condition: OR of AndConditions, each an ordered list of Triggers (menu, global, gesture).
  - Graph: the compiled layers, states, transitions and parameters.
  - Artifact: a serialisable compile result, as stored by the artifact stores.
*/
package domain
