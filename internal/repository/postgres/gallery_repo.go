package postgres

import (
	"context"
	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const selectPhotosQuery = `SELECT id::text, title, description, image_url, created_at
              FROM ` + domain.CollectionPhotos + ` ORDER BY created_at DESC`

const selectAutomationsQuery = `SELECT id::text, title, description, image_url, tools, created_at
              FROM ` + domain.CollectionAutomations + ` ORDER BY created_at DESC`

type photoRepo struct {
	db *pgxpool.Pool
}

func NewPhotoRepository(db *pgxpool.Pool) domain.PhotoRepository {
	return &photoRepo{db: db}
}

// FetchAll returns the whole photos collection, newest first. No filter, no paging.
func (r *photoRepo) FetchAll(ctx context.Context) ([]domain.Photo, error) {
	rows, err := r.db.Query(ctx, selectPhotosQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []domain.Photo{}
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return photos, nil
}

type automationRepo struct {
	db *pgxpool.Pool
}

func NewAutomationRepository(db *pgxpool.Pool) domain.AutomationRepository {
	return &automationRepo{db: db}
}

// FetchAll returns the whole automations collection, newest first.
func (r *automationRepo) FetchAll(ctx context.Context) ([]domain.Automation, error) {
	rows, err := r.db.Query(ctx, selectAutomationsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	automations := []domain.Automation{}
	for rows.Next() {
		var a domain.Automation
		var tools []string
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.ImageURL, pq.Array(&tools), &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Tools = tools
		automations = append(automations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return automations, nil
}
