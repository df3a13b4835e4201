/*
Package ports defines the driven ports (interfaces) of the toggle compiler.

These interfaces decouple the compiler from the host animation controller, the menu system and
the resting-pose collector, and from wherever compiled artifacts are persisted.

# Key Interfaces

  - Controller: the host animation graph (layers, states, transitions, parameters).
  - Menu: registers menu controls bound to parameters.
  - RestingState: collects clips shown in the avatar's resting pose.
  - SecurityLock: optional gate for security-enabled toggles.
  - ArtifactStore: persists compiled artifacts.
*/
package ports
