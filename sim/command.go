package sim

//go:generate go tool stringer -type=Command -trimprefix=Command

// Command is one player input. At most one is consumed per tick.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandRotate
	CommandQuit
)

// RotateStep is the rotation applied by CommandRotate, in degrees.
const RotateStep = 90
