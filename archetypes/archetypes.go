package archetypes

import (
	"github.com/automoto/glyphterm/components"
	cfg "github.com/automoto/glyphterm/config"
	"github.com/automoto/glyphterm/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Panel = newArchetype(
		tags.Panel,
		components.Panel,
	)
	StatusPanel = newArchetype(
		tags.Panel,
		tags.Status,
		components.Panel,
	)
	Menu = newArchetype(
		tags.Menu,
		components.MenuStack,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
