package menu

import "fmt"

// Stack is the ordered list of open menus, bottom first. It holds handles
// into a Tree that must outlive it and never owns nodes.
type Stack struct {
	tree    *Tree
	entries []Handle
}

func NewStack(tree *Tree) *Stack {
	return &Stack{tree: tree}
}

// Tree returns the tree the stack points into.
func (s *Stack) Tree() *Tree {
	return s.tree
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Entries returns the open menus from bottom to top.
func (s *Stack) Entries() []Handle {
	out := make([]Handle, len(s.entries))
	copy(out, s.entries)
	return out
}

// Top returns the menu receiving input.
func (s *Stack) Top() (Handle, error) {
	if len(s.entries) == 0 {
		return NoHandle, ErrEmptyStack
	}
	return s.entries[len(s.entries)-1], nil
}

// Open pushes h and makes it the input target.
func (s *Stack) Open(h Handle) error {
	n, err := s.tree.node(h)
	if err != nil {
		return err
	}
	for _, e := range s.entries {
		if e == h {
			return fmt.Errorf("%w: %q", ErrAlreadyOpen, n.name)
		}
	}
	s.entries = append(s.entries, h)
	return nil
}

// Close pops the top menu. The last open menu is the root and stays open.
func (s *Stack) Close() (Handle, error) {
	switch len(s.entries) {
	case 0:
		return NoHandle, ErrEmptyStack
	case 1:
		return NoHandle, ErrRootLocked
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, nil
}

// Reset closes everything above the root.
func (s *Stack) Reset() {
	if len(s.entries) > 1 {
		s.entries = s.entries[:1]
	}
}

// Dispatch routes a to the top menu. Entering a submenu opens it and a
// cancel closes the top menu; leaf activations are returned to the caller.
func (s *Stack) Dispatch(a Action) (Result, error) {
	top, err := s.Top()
	if err != nil {
		return Result{}, err
	}

	res, err := s.tree.Apply(top, a)
	if err != nil {
		return Result{}, err
	}

	switch res.Kind {
	case ResultEnteredSubmenu:
		if err := s.Open(res.Node); err != nil {
			return Result{}, err
		}
	case ResultCloseRequested:
		if _, err := s.Close(); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}
