package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driven"
)

// projectStore implements driven.ProjectStore.
type projectStore struct {
	store *Store
}

var _ driven.ProjectStore = (*projectStore)(nil)

const projectColumns = `id, name, document_path, doc_width, doc_height, scale, reference,
	paper, orientation, gutter_mm, created_at, updated_at`

// Save stores or updates a project.
func (s *projectStore) Save(ctx context.Context, project domain.Project) error {
	var reference sql.NullString
	if project.Reference != nil {
		data, err := json.Marshal(project.Reference)
		if err != nil {
			return fmt.Errorf("marshalling reference: %w", err)
		}
		reference = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			document_path = excluded.document_path,
			doc_width = excluded.doc_width,
			doc_height = excluded.doc_height,
			scale = excluded.scale,
			reference = excluded.reference,
			paper = excluded.paper,
			orientation = excluded.orientation,
			gutter_mm = excluded.gutter_mm,
			updated_at = excluded.updated_at
	`, project.ID, project.Name, project.DocumentPath, project.DocWidth, project.DocHeight,
		float64(project.Scale), reference, project.PaperName, string(project.Orientation),
		project.GutterMM, project.CreatedAt.UTC(), project.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// Get retrieves a project by ID.
func (s *projectStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

// List returns all projects, most recently updated first.
func (s *projectStore) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.store.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	return projects, nil
}

// Delete removes a project.
func (s *projectStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var project domain.Project
	var scale float64
	var orientation string
	var reference sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&project.ID, &project.Name, &project.DocumentPath,
		&project.DocWidth, &project.DocHeight, &scale, &reference,
		&project.PaperName, &orientation, &project.GutterMM, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	project.Scale = domain.ScaleFactor(scale)
	project.Orientation = domain.Orientation(orientation)
	if reference.Valid && reference.String != "" {
		var ref domain.Reference
		if err := json.Unmarshal([]byte(reference.String), &ref); err != nil {
			return nil, fmt.Errorf("unmarshaling reference: %w", err)
		}
		project.Reference = &ref
	}
	if createdAt.Valid {
		project.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		project.UpdatedAt = updatedAt.Time
	}

	return &project, nil
}
