package postgres

import (
	"context"
	"database/sql"
	"time"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetSection(ctx context.Context, sectionKey string) (*domain.SiteContent, error) {
	content := &domain.SiteContent{}
	query := `SELECT section_key, content, updated_on FROM site_content WHERE section_key = $1`
	err := r.db.QueryRowContext(ctx, query, sectionKey).Scan(&content.SectionKey, &content.Content, &content.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return content, nil
}

func (r *contentRepository) UpsertSection(ctx context.Context, content *domain.SiteContent) error {
	query := `INSERT INTO site_content (section_key, content, updated_on) VALUES ($1, $2, $3)
	          ON CONFLICT (section_key) DO UPDATE SET content = EXCLUDED.content, updated_on = EXCLUDED.updated_on`
	_, err := r.db.ExecContext(ctx, query, content.SectionKey, []byte(content.Content), time.Now())
	return err
}

func (r *contentRepository) ListSections(ctx context.Context) ([]domain.SiteContent, error) {
	query := `SELECT section_key, content, updated_on FROM site_content ORDER BY section_key ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []domain.SiteContent
	for rows.Next() {
		var content domain.SiteContent
		var raw []byte
		if err := rows.Scan(&content.SectionKey, &raw, &content.UpdatedOn); err != nil {
			return nil, err
		}
		content.Content = raw
		sections = append(sections, content)
	}
	return sections, rows.Err()
}
