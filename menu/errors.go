package menu

import (
	"errors"
	"fmt"
)

var (
	ErrNameCollision   = errors.New("menu: child name already exists")
	ErrNotFound        = errors.New("menu: not found")
	ErrEmptyStack      = errors.New("menu: stack is empty")
	ErrOutOfBounds     = errors.New("menu: out of bounds")
	ErrInvalidHandle   = errors.New("menu: invalid handle")
	ErrAlreadyAttached = errors.New("menu: node already has a parent")
	ErrCycle           = errors.New("menu: node is an ancestor of the parent")
	ErrAlreadyOpen     = errors.New("menu: node is already open")
	ErrDuplicateID     = errors.New("menu: duplicate node id")
	ErrNotFinalized    = errors.New("menu: node changed since last Finalize")
	ErrDisabled        = errors.New("menu: item is disabled")

	// ErrRootLocked is returned when closing the last open menu.
	ErrRootLocked = fmt.Errorf("%w: root menu cannot be closed", ErrEmptyStack)
)
