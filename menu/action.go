package menu

// Action is a discrete navigation event routed to the open menu.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSelect:
		return "select"
	case ActionCancel:
		return "cancel"
	}
	return "unknown"
}

// ResultKind tells the caller what a handled action asks for.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultMoved
	ResultEnteredSubmenu
	ResultActivatedLeaf
	ResultCloseRequested
)

func (k ResultKind) String() string {
	switch k {
	case ResultMoved:
		return "moved"
	case ResultEnteredSubmenu:
		return "entered-submenu"
	case ResultActivatedLeaf:
		return "activated-leaf"
	case ResultCloseRequested:
		return "close-requested"
	}
	return "none"
}

// Result is returned by node handlers. Node is the chosen child for
// ResultEnteredSubmenu and ResultActivatedLeaf, otherwise the handling node.
type Result struct {
	Kind ResultKind
	Node Handle
}
