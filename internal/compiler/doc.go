/*
Package compiler turns declarative toggles into layers, states, transitions and parameter drivers.

A pass runs in fixed phases, always iterating toggles in declaration order:

 1. Every toggle gets a compilation unit: its name, its exclusive tags and, once all units exist,
    its primary tag.
 2. Each unit is sized against its exclusive group, gets its parameter and menu entries, has its
    condition evaluated and its state graph synthesized.
 3. Exclusive units are wired into their tag's parameter layer.
 4. Drive-toggle actions and float drive requests are resolved.
 5. Resting clips and icon overrides are applied.

The compiler only talks to the host through the ports package.
*/
package compiler
