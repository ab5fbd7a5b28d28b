package character

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character/migrations"
	"github.com/KirkDiggler/rpg-sheet/internal/storage/sqlitemigrate"
)

const (
	memoryPath = ":memory:"

	selectColumns = `id, name, class_name, race, level,
       hp_current, hp_max, armor_class, speed,
       strength, dexterity, constitution, intelligence, wisdom, charisma,
       spell_slots, inventory, skill_proficiencies, notes,
       created_at, updated_at`
)

// SQLiteConfig contains configuration for the SQLite character repository
type SQLiteConfig struct {
	// Path to the database file, or ":memory:"
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("database path cannot be empty")
	}
	return nil
}

// SQLiteRepository stores characters in an embedded SQLite database
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens (creating if needed) the database at cfg.Path and applies
// the embedded migrations
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	db, err := sql.Open("sqlite", dsn(cfg.Path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if cfg.Path == memoryPath {
		// each pooled connection to :memory: would see its own database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if err := sqlitemigrate.Apply(ctx, db, migrations.FS, ""); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	slog.DebugContext(ctx, "opened character store", "path", cfg.Path)

	return &SQLiteRepository{db: db, clock: c}, nil
}

func dsn(path string) string {
	if path == memoryPath {
		return path
	}
	return filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
}

// now is truncated to the millisecond precision stored in the table
func (r *SQLiteRepository) now() time.Time {
	return fromMillis(toMillis(r.clock.Now()))
}

// Close closes the SQLite handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Create inserts one character
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	char := input.Character.Clone()
	now := r.now()
	char.CreatedAt = now
	char.UpdatedAt = now

	row, err := toRow(char)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO characters (`+selectColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.args()...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("character with ID %s already exists", char.ID)
		}
		return nil, errors.Wrap(err, "failed to create character")
	}

	return &CreateOutput{Character: char}, nil
}

// Get retrieves one character by ID
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM characters WHERE id = ?`, input.ID)
	char, err := scanCharacter(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character %s not found", input.ID).
				WithMeta("character_id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetOutput{Character: char}, nil
}

// Update replaces every stored field except CreatedAt
func (r *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	char := input.Character.Clone()
	char.UpdatedAt = r.now()

	row, err := toRow(char)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE characters SET
		   name = ?, class_name = ?, race = ?, level = ?,
		   hp_current = ?, hp_max = ?, armor_class = ?, speed = ?,
		   strength = ?, dexterity = ?, constitution = ?, intelligence = ?, wisdom = ?, charisma = ?,
		   spell_slots = ?, inventory = ?, skill_proficiencies = ?, notes = ?,
		   updated_at = ?
		 WHERE id = ?`,
		row.name, row.className, row.race, row.level,
		row.hpCurrent, row.hpMax, row.armorClass, row.speed,
		row.strength, row.dexterity, row.constitution, row.intelligence, row.wisdom, row.charisma,
		row.spellSlots, row.inventory, row.skills, row.notes,
		row.updatedAt,
		row.id,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, errors.NotFoundf("character %s not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	return &UpdateOutput{Character: char}, nil
}

// Delete removes one character by ID
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, errors.NotFoundf("character %s not found", input.ID).
			WithMeta("character_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

// List returns every character ordered by name, then ID
func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM characters ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := make([]*dnd5e.Character, 0)
	for rows.Next() {
		char, err := scanCharacter(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan character")
		}
		characters = append(characters, char)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListOutput{Characters: characters}, nil
}

// characterRow is the flat column layout of the characters table
type characterRow struct {
	id, name, className, race                                         string
	level, hpCurrent, hpMax, armorClass, speed                        int
	strength, dexterity, constitution, intelligence, wisdom, charisma int
	spellSlots, inventory, skills, notes                              string
	createdAt, updatedAt                                              int64
}

func (row *characterRow) args() []any {
	return []any{
		row.id, row.name, row.className, row.race, row.level,
		row.hpCurrent, row.hpMax, row.armorClass, row.speed,
		row.strength, row.dexterity, row.constitution, row.intelligence, row.wisdom, row.charisma,
		row.spellSlots, row.inventory, row.skills, row.notes,
		row.createdAt, row.updatedAt,
	}
}

func toRow(char *dnd5e.Character) (*characterRow, error) {
	slots, err := marshalColumn(char.SpellSlots, []int{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spell slots")
	}
	inventory, err := marshalColumn(char.Inventory, []dnd5e.InventoryItem{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal inventory")
	}
	skills, err := marshalColumn(char.SkillProficiencies, []dnd5e.Skill{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal skill proficiencies")
	}

	scores := char.AbilityScores
	return &characterRow{
		id:           char.ID,
		name:         char.Name,
		className:    char.Class,
		race:         char.Race,
		level:        char.Level,
		hpCurrent:    char.CurrentHP,
		hpMax:        char.MaxHP,
		armorClass:   char.ArmorClass,
		speed:        char.Speed,
		strength:     scores.Strength,
		dexterity:    scores.Dexterity,
		constitution: scores.Constitution,
		intelligence: scores.Intelligence,
		wisdom:       scores.Wisdom,
		charisma:     scores.Charisma,
		spellSlots:   slots,
		inventory:    inventory,
		skills:       skills,
		notes:        char.Notes,
		createdAt:    toMillis(char.CreatedAt),
		updatedAt:    toMillis(char.UpdatedAt),
	}, nil
}

// marshalColumn encodes value as JSON, writing empty instead of null for nil slices
func marshalColumn[T any](value []T, empty []T) (string, error) {
	if value == nil {
		value = empty
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(s scanner) (*dnd5e.Character, error) {
	var row characterRow
	err := s.Scan(
		&row.id, &row.name, &row.className, &row.race, &row.level,
		&row.hpCurrent, &row.hpMax, &row.armorClass, &row.speed,
		&row.strength, &row.dexterity, &row.constitution, &row.intelligence, &row.wisdom, &row.charisma,
		&row.spellSlots, &row.inventory, &row.skills, &row.notes,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		return nil, err
	}

	char := &dnd5e.Character{
		ID:        row.id,
		Name:      row.name,
		Class:     row.className,
		Race:      row.race,
		Level:     row.level,
		CurrentHP: row.hpCurrent,
		MaxHP:     row.hpMax,
		AbilityScores: dnd5e.AbilityScores{
			Strength:     row.strength,
			Dexterity:    row.dexterity,
			Constitution: row.constitution,
			Intelligence: row.intelligence,
			Wisdom:       row.wisdom,
			Charisma:     row.charisma,
		},
		ArmorClass: row.armorClass,
		Speed:      row.speed,
		Notes:      row.notes,
		CreatedAt:  fromMillis(row.createdAt),
		UpdatedAt:  fromMillis(row.updatedAt),
	}

	if err := json.Unmarshal([]byte(row.spellSlots), &char.SpellSlots); err != nil {
		return nil, errors.Wrapf(err, "invalid spell slots for character %s", row.id)
	}
	if err := json.Unmarshal([]byte(row.inventory), &char.Inventory); err != nil {
		return nil, errors.Wrapf(err, "invalid inventory for character %s", row.id)
	}
	if err := json.Unmarshal([]byte(row.skills), &char.SkillProficiencies); err != nil {
		return nil, errors.Wrapf(err, "invalid skill proficiencies for character %s", row.id)
	}

	return char, nil
}

func validateCharacter(char *dnd5e.Character) error {
	if char == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if char.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
