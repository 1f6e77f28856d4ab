package postgres

import (
	"context"
	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insertContactQuery = `INSERT INTO ` + domain.CollectionContactMessages + ` (name, email, phone, service_type, message)
              VALUES ($1, $2, $3, $4, $5)`

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

// Insert stores one contact message. id and created_at are assigned by the store
// and never read back.
func (r *contactRepo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	_, err := r.db.Exec(ctx, insertContactQuery, msg.Name, msg.Email, msg.Phone, string(msg.ServiceType), msg.Message)
	return err
}
