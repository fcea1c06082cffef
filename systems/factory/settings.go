package factory

import (
	"github.com/automoto/glyphterm/archetypes"
	"github.com/automoto/glyphterm/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS, s components.SettingsData) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, s)
	return entry
}
