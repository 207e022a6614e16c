package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/collurgy/collurgy/internal/models"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/google/uuid"
)

// Theme repository errors.
var (
	ErrThemeNotFound     = errors.New("theme not found")
	ErrThemeExists       = errors.New("theme already exists")
	ErrInvalidSavedTheme = errors.New("invalid saved theme")
)

// ThemeRepository handles theme library persistence. Themes are stored as
// TOML documents.
type ThemeRepository struct {
	db *DB
}

// NewThemeRepository creates a new ThemeRepository.
func NewThemeRepository(db *DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

func validateSaved(saved *models.SavedTheme) error {
	if saved == nil || strings.TrimSpace(saved.Name) == "" || saved.Theme == nil {
		return ErrInvalidSavedTheme
	}
	return nil
}

// Create inserts a new library entry. Returns ErrThemeExists when the name
// is taken.
func (r *ThemeRepository) Create(ctx context.Context, saved *models.SavedTheme) error {
	if err := validateSaved(saved); err != nil {
		return err
	}
	saved.Name = strings.TrimSpace(saved.Name)

	document, err := theme.Marshal(saved.Theme, theme.FormatTOML)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSavedTheme, err)
	}

	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO saved_themes (
			id, name, model, format, document, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		saved.ID,
		saved.Name,
		saved.Theme.Model.String(),
		string(theme.FormatTOML),
		string(document),
		saved.CreatedAt.Format(time.RFC3339Nano),
		saved.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", ErrThemeExists, saved.Name)
		}
		return fmt.Errorf("failed to insert theme: %w", err)
	}
	return nil
}

// Update replaces the stored record for saved.ID.
func (r *ThemeRepository) Update(ctx context.Context, saved *models.SavedTheme) error {
	if err := validateSaved(saved); err != nil {
		return err
	}
	if saved.ID == "" {
		return ErrInvalidSavedTheme
	}

	document, err := theme.Marshal(saved.Theme, theme.FormatTOML)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSavedTheme, err)
	}
	saved.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, `
		UPDATE saved_themes
		SET name = ?, model = ?, document = ?, updated_at = ?
		WHERE id = ?
	`,
		strings.TrimSpace(saved.Name),
		saved.Theme.Model.String(),
		string(document),
		saved.UpdatedAt.Format(time.RFC3339Nano),
		saved.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", ErrThemeExists, saved.Name)
		}
		return fmt.Errorf("failed to update theme: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrThemeNotFound
	}
	return nil
}

// Save stores t under name, replacing an existing entry with that name.
func (r *ThemeRepository) Save(ctx context.Context, name string, t *theme.Theme) (*models.SavedTheme, error) {
	existing, err := r.GetByName(ctx, name)
	switch {
	case err == nil:
		existing.Theme = t
		if err := r.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, ErrThemeNotFound):
		saved := &models.SavedTheme{Name: name, Theme: t}
		if err := r.Create(ctx, saved); err != nil {
			return nil, err
		}
		return saved, nil
	default:
		return nil, err
	}
}

// Get retrieves an entry by ID.
func (r *ThemeRepository) Get(ctx context.Context, id string) (*models.SavedTheme, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, format, document, created_at, updated_at
		FROM saved_themes WHERE id = ?
	`, id)
	return r.scanTheme(row)
}

// GetByName retrieves an entry by name.
func (r *ThemeRepository) GetByName(ctx context.Context, name string) (*models.SavedTheme, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, format, document, created_at, updated_at
		FROM saved_themes WHERE name = ?
	`, strings.TrimSpace(name))
	return r.scanTheme(row)
}

// List returns summaries of every entry ordered by name.
func (r *ThemeRepository) List(ctx context.Context) ([]*models.SavedThemeSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, model, updated_at
		FROM saved_themes ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer rows.Close()

	var summaries []*models.SavedThemeSummary
	for rows.Next() {
		var (
			summary   models.SavedThemeSummary
			updatedAt string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Model, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		if summary.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating themes: %w", err)
	}
	return summaries, nil
}

// Delete removes an entry by name.
func (r *ThemeRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_themes WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrThemeNotFound
	}
	return nil
}

func (r *ThemeRepository) scanTheme(row *sql.Row) (*models.SavedTheme, error) {
	var (
		saved     models.SavedTheme
		format    string
		document  string
		createdAt string
		updatedAt string
	)

	err := row.Scan(&saved.ID, &saved.Name, &format, &document, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrThemeNotFound
		}
		return nil, fmt.Errorf("failed to scan theme: %w", err)
	}

	saved.Theme, err = theme.Unmarshal([]byte(document), theme.Format(format))
	if err != nil {
		return nil, fmt.Errorf("stored theme %q: %w", saved.Name, err)
	}
	if saved.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if saved.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &saved, nil
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", value, err)
	}
	return t, nil
}
