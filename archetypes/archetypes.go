package archetypes

import (
	"github.com/automoto/notmarioland/components"
	"github.com/automoto/notmarioland/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
	)
	Saw = newArchetype(
		tags.Saw,
		components.Saw,
		components.Body,
		components.Object,
	)
	SawLauncher = newArchetype(
		tags.SawLauncher,
		components.Launcher,
		components.Body,
	)
	ArrowRespawn = newArchetype(
		tags.ArrowRespawn,
		components.ArrowRespawn,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
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

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := world.Entry(world.Create(
		append(a.components, cs...)...,
	))
	return e
}
