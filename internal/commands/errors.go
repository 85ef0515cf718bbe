package commands

import "errors"

var (
	// ErrUnknownCommand indicates the command name is not recognised.
	ErrUnknownCommand = errors.New("commands: unknown command")
	// ErrUsage indicates missing or malformed command arguments.
	ErrUsage = errors.New("commands: invalid arguments")
)
