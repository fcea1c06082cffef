package factory

import (
	"fmt"

	"github.com/automoto/glyphterm/archetypes"
	"github.com/automoto/glyphterm/components"
	"github.com/automoto/glyphterm/menu"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMenuStack builds the menu tree and opens its root.
func CreateMenuStack(ecs *ecs.ECS, spec menu.Spec) (*donburi.Entry, error) {
	tree, root, err := menu.Build(spec)
	if err != nil {
		return nil, fmt.Errorf("build menu %q: %w", spec.Name, err)
	}
	stack := menu.NewStack(tree)
	if err := stack.Open(root); err != nil {
		return nil, err
	}

	entry := archetypes.Menu.Spawn(ecs)
	components.MenuStack.SetValue(entry, components.MenuStackData{
		Tree:  tree,
		Root:  root,
		Stack: stack,
	})
	return entry, nil
}
