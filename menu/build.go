package menu

import "fmt"

// Spec declares a menu subtree. Rows and Cols set the viewport when either
// is non-zero; otherwise a node with children lists them in one column.
type Spec struct {
	Name     string
	ID       int
	Rows     int
	Cols     int
	Disabled bool
	Hidden   bool
	Children []Spec
}

// Build creates a tree from spec, finalizes it and returns the root handle.
func Build(spec Spec) (*Tree, Handle, error) {
	t := NewTree()
	root := t.NewNode(spec.Name, spec.ID)
	if err := t.apply(root, spec); err != nil {
		return nil, NoHandle, err
	}
	if err := t.Finalize(root); err != nil {
		return nil, NoHandle, err
	}
	return t, root, nil
}

func (t *Tree) apply(h Handle, spec Spec) error {
	for _, cs := range spec.Children {
		c, err := t.Add(h, cs.Name, cs.ID)
		if err != nil {
			return fmt.Errorf("build %q: %w", spec.Name, err)
		}
		if err := t.apply(c, cs); err != nil {
			return err
		}
	}
	if spec.Rows != 0 || spec.Cols != 0 {
		if err := t.SetViewportSize(h, spec.Rows, spec.Cols); err != nil {
			return fmt.Errorf("build %q: %w", spec.Name, err)
		}
	}
	if spec.Disabled {
		_ = t.SetEnabled(h, false)
	}
	if spec.Hidden {
		_ = t.SetVisible(h, false)
	}
	return nil
}
