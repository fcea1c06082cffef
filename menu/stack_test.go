package menu

import (
	"errors"
	"testing"
)

func newDemoStack(t *testing.T) (*Stack, *Tree, Handle) {
	t.Helper()
	tr, root := newRoot(t)
	settings, _ := tr.FindChildByName(root, "settings")
	for i, name := range []string{"font color", "background color", "overscan color"} {
		if _, err := tr.Add(settings, name, 201+i); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.Finalize(root); err != nil {
		t.Fatal(err)
	}
	s := NewStack(tr)
	if err := s.Open(root); err != nil {
		t.Fatal(err)
	}
	return s, tr, root
}

func TestStackEmpty(t *testing.T) {
	tr, _ := newRoot(t)
	s := NewStack(tr)
	if _, err := s.Top(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Top err = %v", err)
	}
	if _, err := s.Close(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Close err = %v", err)
	}
	if _, err := s.Dispatch(ActionDown); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Dispatch err = %v", err)
	}
}

func TestDispatchSelectOpensSubmenu(t *testing.T) {
	s, tr, root := newDemoStack(t)
	settings, _ := tr.FindChildByName(root, "settings")

	res, err := s.Dispatch(ActionSelect)
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != ResultEnteredSubmenu || res.Node != settings {
		t.Fatalf("Dispatch(select) = %+v", res)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if top, _ := s.Top(); top != settings {
		t.Errorf("Top = %d, want settings %d", top, settings)
	}
}

func TestDispatchRoutesToTop(t *testing.T) {
	s, tr, root := newDemoStack(t)
	settings, _ := tr.FindChildByName(root, "settings")
	_, _ = s.Dispatch(ActionSelect)

	if _, err := s.Dispatch(ActionDown); err != nil {
		t.Fatal(err)
	}
	if _, y := mustGet(t, tr, settings).Cursor(); y != 1 {
		t.Errorf("settings cursor_y = %d, want 1", y)
	}
	if _, y := mustGet(t, tr, root).Cursor(); y != 0 {
		t.Errorf("root cursor moved to %d", y)
	}
}

func TestDispatchCancel(t *testing.T) {
	s, _, root := newDemoStack(t)

	if _, err := s.Dispatch(ActionCancel); !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("cancel at root err = %v, want ErrEmptyStack class", err)
	}
	if !errors.Is(ErrRootLocked, ErrEmptyStack) {
		t.Fatal("ErrRootLocked should match ErrEmptyStack")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d after rejected cancel", s.Len())
	}

	_, _ = s.Dispatch(ActionSelect)
	res, err := s.Dispatch(ActionCancel)
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != ResultCloseRequested {
		t.Errorf("kind = %v", res.Kind)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if top, _ := s.Top(); top != root {
		t.Errorf("Top = %d, want root", top)
	}
}

func TestDispatchLeafDoesNotPush(t *testing.T) {
	s, tr, root := newDemoStack(t)
	_, _ = s.Dispatch(ActionDown)

	res, err := s.Dispatch(ActionSelect)
	if err != nil {
		t.Fatal(err)
	}
	demos, _ := tr.FindChildByName(root, "demos")
	if res.Kind != ResultActivatedLeaf || res.Node != demos {
		t.Errorf("Dispatch = %+v, want activated demos", res)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestOpenRejectsDuplicates(t *testing.T) {
	s, tr, root := newDemoStack(t)
	if err := s.Open(root); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("err = %v, want ErrAlreadyOpen", err)
	}
	if err := s.Open(Handle(tr.Len())); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("err = %v, want ErrInvalidHandle", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestCloseSizes(t *testing.T) {
	s, tr, root := newDemoStack(t)
	demos, _ := tr.FindChildByName(root, "demos")
	games, _ := tr.FindChildByName(root, "games")
	_ = s.Open(demos)
	_ = s.Open(games)

	h, err := s.Close()
	if err != nil || h != games {
		t.Fatalf("Close = %d, %v", h, err)
	}
	if got := s.Entries(); len(got) != 2 || got[0] != root || got[1] != demos {
		t.Errorf("Entries = %v", got)
	}
}

func TestReset(t *testing.T) {
	s, _, root := newDemoStack(t)
	_, _ = s.Dispatch(ActionSelect)
	s.Reset()
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
	if top, _ := s.Top(); top != root {
		t.Errorf("Top = %d", top)
	}
}
