// Package rpgtoolkit connects rpg-sheet to the rpg-toolkit modules: characters
// are exposed as core entities and toolkit dice rollers back dice.Source.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

const (
	// EntityTypeCharacter is the core.Entity type of a character sheet
	EntityTypeCharacter = "character"
	// EntityTypeDraft is a character still in the creation wizard
	EntityTypeDraft = "draft"
	// EntityTypeOther is used when the caller only knows an id
	EntityTypeOther = "entity"
)

// CharacterEntity wraps dnd5e.Character to implement core.Entity interface
type CharacterEntity struct {
	*dnd5e.Character
}

// NewCharacterEntity wraps character
func NewCharacterEntity(character *dnd5e.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// Compile-time check that our entity wrapper implements core.Entity
var _ core.Entity = (*CharacterEntity)(nil)

// Entity is a core.Entity known only by id and type
type Entity struct {
	id         string
	entityType string
}

// NewEntity builds an entity; a blank type becomes EntityTypeOther
func NewEntity(entityType, id string) *Entity {
	if entityType == "" {
		entityType = EntityTypeOther
	}
	return &Entity{id: id, entityType: entityType}
}

// GetID returns the entity's ID
func (e *Entity) GetID() string {
	return e.id
}

// GetType returns the entity's type
func (e *Entity) GetType() string {
	return e.entityType
}

var _ core.Entity = (*Entity)(nil)
