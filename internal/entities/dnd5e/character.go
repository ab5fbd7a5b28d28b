// Package dnd5e holds the character sheet record and the fixed ability and
// skill catalogs. Derived numbers (modifiers, proficiency, skill bonuses)
// are computed by the engine package, not stored here.
package dnd5e

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// SpellSlotLevels is the number of spell levels tracked on a sheet
const SpellSlotLevels = 9

// Ability score bounds
const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
)

// Values the creation wizard falls back to for fields left blank
const (
	DefaultName       = "Unnamed"
	DefaultClass      = "Fighter"
	DefaultRace       = "Human"
	DefaultLevel      = 1
	DefaultHP         = 10
	DefaultArmorClass = 10
	DefaultSpeed      = 30
	DefaultScore      = 10
)

// LevelRange is the inclusive range of levels a character may have
type LevelRange struct {
	Min int
	Max int
}

// DefaultLevelRange returns levels 1 through 20
func DefaultLevelRange() LevelRange {
	return LevelRange{Min: 1, Max: 20}
}

// Contains reports whether level is inside the range
func (r LevelRange) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

// Validate checks the range itself is usable
func (r LevelRange) Validate() error {
	if r.Min < 1 || r.Max < r.Min {
		return errors.InvalidArgumentf("invalid level range %d-%d", r.Min, r.Max)
	}
	return nil
}

func (r LevelRange) orDefault() LevelRange {
	if r == (LevelRange{}) {
		return DefaultLevelRange()
	}
	return r
}

// AbilityScores holds one score per ability
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for ability
func (s AbilityScores) Get(ability Ability) int {
	switch ability {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	default:
		return 0
	}
}

func (s *AbilityScores) set(ability Ability, score int) {
	switch ability {
	case AbilityStrength:
		s.Strength = score
	case AbilityDexterity:
		s.Dexterity = score
	case AbilityConstitution:
		s.Constitution = score
	case AbilityIntelligence:
		s.Intelligence = score
	case AbilityWisdom:
		s.Wisdom = score
	case AbilityCharisma:
		s.Charisma = score
	}
}

// InventoryItem is a carried item
type InventoryItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

// String renders "Rope" or "Torch x5"
func (i InventoryItem) String() string {
	if i.Quantity > 1 {
		return i.Name + " x" + strconv.Itoa(i.Quantity)
	}
	return i.Name
}

// ParseInventoryItem reads "Rope" or "Torch x3". A trailing xN word sets
// the quantity; anything else is part of the name.
func ParseInventoryItem(text string) InventoryItem {
	text = strings.TrimSpace(text)
	item := InventoryItem{Name: text, Quantity: 1}

	idx := strings.LastIndex(text, " ")
	if idx < 0 {
		return item
	}
	suffix := strings.ToLower(text[idx+1:])
	if !strings.HasPrefix(suffix, "x") {
		return item
	}
	if n, err := strconv.Atoi(suffix[1:]); err == nil {
		item.Name = strings.TrimSpace(text[:idx])
		item.Quantity = n
	}
	return item
}

// Character is a complete character sheet.
// Current HP may go below zero; keeping it at or under MaxHP is left to the UI.
type Character struct {
	ID                 string
	Name               string
	Class              string
	Race               string
	Level              int
	AbilityScores      AbilityScores
	CurrentHP          int
	MaxHP              int
	ArmorClass         int
	Speed              int
	SkillProficiencies []Skill
	SpellSlots         []int
	Inventory          []InventoryItem
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewCharacterInput carries every field of a new sheet
type NewCharacterInput struct {
	ID    string
	Name  string
	Class string
	Race  string
	Level int
	// Abilities must contain all six abilities
	Abilities  map[Ability]int
	MaxHP      int
	CurrentHP  *int // defaults to MaxHP
	ArmorClass int
	Speed      int
	// SkillProficiencies are skill names as typed; see ParseSkill
	SkillProficiencies []string
	SpellSlots         []int
	Inventory          []InventoryItem
	Notes              string
	// LevelRange defaults to DefaultLevelRange when zero
	LevelRange LevelRange
}

// NewCharacter validates input and builds a character.
// Returns errors.CodeInvalidCharacter with per-field details if:
//   - the name is blank
//   - any of the six ability scores is missing or outside 1-30
//   - the level is outside the level range
//   - max HP is below 1, or armor class or speed is negative
//   - a skill proficiency names an unknown skill
//   - a spell slot count is negative or there are more than nine levels
//   - an inventory item has no name or a quantity below 1
func NewCharacter(input *NewCharacterInput) (*Character, error) {
	if input == nil {
		return nil, errors.InvalidCharacter("input is required")
	}

	levels := input.LevelRange.orDefault()
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", input.Name, vb)
	validateLevel(input.Level, levels, vb)

	var scores AbilityScores
	for _, ability := range abilityOrder {
		score, ok := input.Abilities[ability]
		if !ok {
			vb.Fieldf("abilities", "%s is required", ability.Name())
			continue
		}
		errors.ValidateRange(strings.ToLower(ability.Name()), score, MinAbilityScore, MaxAbilityScore, vb)
		scores.set(ability, score)
	}
	for ability := range input.Abilities {
		if _, ok := abilityNames[ability]; !ok {
			vb.Fieldf("abilities", "unknown ability %q", string(ability))
		}
	}

	errors.ValidateMin("max_hp", input.MaxHP, 1, vb)
	errors.ValidateMin("armor_class", input.ArmorClass, 0, vb)
	errors.ValidateMin("speed", input.Speed, 0, vb)

	proficiencies := make([]Skill, 0, len(input.SkillProficiencies))
	for _, name := range input.SkillProficiencies {
		skill, err := ParseSkill(name)
		if err != nil {
			vb.Field("skill_proficiencies", errors.GetMessage(err))
			continue
		}
		proficiencies = append(proficiencies, skill)
	}

	slots, slotProblem := normalizeSpellSlots(input.SpellSlots)
	if slotProblem != "" {
		vb.Field("spell_slots", slotProblem)
	}

	inventory := make([]InventoryItem, 0, len(input.Inventory))
	for _, item := range input.Inventory {
		normalized, problem := normalizeItem(item)
		if problem != "" {
			vb.Field("inventory", problem)
			continue
		}
		inventory = append(inventory, normalized)
	}

	if err := vb.BuildWithCode(errors.CodeInvalidCharacter); err != nil {
		return nil, err
	}

	current := input.MaxHP
	if input.CurrentHP != nil {
		current = *input.CurrentHP
	}

	return &Character{
		ID:                 input.ID,
		Name:               strings.TrimSpace(input.Name),
		Class:              strings.TrimSpace(input.Class),
		Race:               strings.TrimSpace(input.Race),
		Level:              input.Level,
		AbilityScores:      scores,
		CurrentHP:          current,
		MaxHP:              input.MaxHP,
		ArmorClass:         input.ArmorClass,
		Speed:              input.Speed,
		SkillProficiencies: uniqueSkills(proficiencies),
		SpellSlots:         slots,
		Inventory:          inventory,
		Notes:              input.Notes,
	}, nil
}

// HasProficiency reports whether the character is proficient in skill
func (c *Character) HasProficiency(skill Skill) bool {
	for _, s := range c.SkillProficiencies {
		if s == skill {
			return true
		}
	}
	return false
}

// AdjustHP adds delta to current HP. The result may be negative.
func (c *Character) AdjustHP(delta int) {
	c.CurrentHP += delta
}

// SetHP replaces current HP
func (c *Character) SetHP(hp int) {
	c.CurrentHP = hp
}

// SetMaxHP replaces maximum HP. Current HP is left alone.
func (c *Character) SetMaxHP(maxHP int) error {
	if maxHP < 1 {
		return fieldError("max_hp", "must be at least 1")
	}
	c.MaxHP = maxHP
	return nil
}

// SetLevel replaces the level after checking it against levels
func (c *Character) SetLevel(level int, levels LevelRange) error {
	vb := errors.NewValidationBuilder()
	validateLevel(level, levels.orDefault(), vb)
	if err := vb.BuildWithCode(errors.CodeInvalidCharacter); err != nil {
		return err
	}
	c.Level = level
	return nil
}

// LevelUp raises the level by one
func (c *Character) LevelUp(levels LevelRange) error {
	return c.SetLevel(c.Level+1, levels)
}

// SetSpellSlots replaces the slot counts. Shorter sequences are padded with
// zeros up to nine levels.
func (c *Character) SetSpellSlots(slots []int) error {
	normalized, problem := normalizeSpellSlots(slots)
	if problem != "" {
		return fieldError("spell_slots", problem)
	}
	c.SpellSlots = normalized
	return nil
}

// AdjustSpellSlot adds delta to the slots of spell level (1-9), stopping at zero
func (c *Character) AdjustSpellSlot(level, delta int) error {
	if level < 1 || level > SpellSlotLevels {
		return fieldError("spell_slots", "level must be between 1 and 9")
	}
	if len(c.SpellSlots) < SpellSlotLevels {
		c.SpellSlots, _ = normalizeSpellSlots(c.SpellSlots)
	}
	c.SpellSlots[level-1] = max(c.SpellSlots[level-1]+delta, 0)
	return nil
}

// AddItem appends an item to the inventory. A zero quantity becomes 1.
func (c *Character) AddItem(item InventoryItem) error {
	normalized, problem := normalizeItem(item)
	if problem != "" {
		return fieldError("inventory", problem)
	}
	c.Inventory = append(c.Inventory, normalized)
	return nil
}

// RemoveItem removes and returns the item at index
func (c *Character) RemoveItem(index int) (InventoryItem, error) {
	if index < 0 || index >= len(c.Inventory) {
		return InventoryItem{}, fieldError("inventory", "no item at index "+strconv.Itoa(index))
	}
	item := c.Inventory[index]
	c.Inventory = append(c.Inventory[:index:index], c.Inventory[index+1:]...)
	return item, nil
}

// RemoveLastItem removes and returns the most recently added item
func (c *Character) RemoveLastItem() (InventoryItem, error) {
	return c.RemoveItem(len(c.Inventory) - 1)
}

// SetNotes replaces the free-text notes
func (c *Character) SetNotes(notes string) {
	c.Notes = notes
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.SkillProficiencies = append([]Skill(nil), c.SkillProficiencies...)
	out.SpellSlots = append([]int(nil), c.SpellSlots...)
	out.Inventory = append([]InventoryItem(nil), c.Inventory...)
	return &out
}

func validateLevel(level int, levels LevelRange, vb *errors.ValidationBuilder) {
	errors.ValidateRange("level", level, levels.Min, levels.Max, vb)
}

func fieldError(field, message string) error {
	return errors.NewValidationBuilder().
		Field(field, message).
		BuildWithCode(errors.CodeInvalidCharacter)
}

func normalizeSpellSlots(slots []int) ([]int, string) {
	if len(slots) > SpellSlotLevels {
		return nil, "at most 9 spell levels are tracked"
	}
	out := make([]int, SpellSlotLevels)
	for i, n := range slots {
		if n < 0 {
			return nil, "slot counts cannot be negative"
		}
		out[i] = n
	}
	return out, ""
}

func normalizeItem(item InventoryItem) (InventoryItem, string) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return item, "item name is required"
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Quantity < 0 {
		return item, "item quantity must be at least 1"
	}
	return item, ""
}

// uniqueSkills drops duplicates and orders skills like the catalog
func uniqueSkills(skills []Skill) []Skill {
	seen := make(map[Skill]bool, len(skills))
	out := make([]Skill, 0, len(skills))
	for _, s := range skills {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
