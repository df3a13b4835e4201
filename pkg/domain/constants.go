package domain

// Exclusive group limits.
const (
	// MaxBooleanGroupSize is the largest group kept on one boolean parameter per member.
	MaxBooleanGroupSize = 8
	// MaxExclusiveGroupSize is the representable range of the shared integer encoding.
	MaxExclusiveGroupSize = 256
)

// Implicit exclusive tags derived from the body regions a toggle animates.
const (
	TagEmote     = "VF_EMOTE"
	TagLeftHand  = "VF_LEFT_HAND"
	TagRightHand = "VF_RIGHT_HAND"
)

// Encoding describes how an exclusive group stores its members' on state.
type Encoding string

const (
	EncodingBoolean Encoding = "boolean"
	EncodingIndexed Encoding = "indexed-integer"
)
