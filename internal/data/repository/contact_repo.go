package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindAll(ctx context.Context) ([]*entity.Contact, error)
}

type contactRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewContactRepository(db database.Querier, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (contact_id, user_phone, first_name, last_name, date_of_birth,
		                      email, gender, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		contact.ContactID,
		contact.UserPhone,
		contact.FirstName,
		contact.LastName,
		contact.DateOfBirth,
		contact.Email,
		contact.Gender,
		contact.Comment,
		contact.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create contact",
			zap.Error(err),
			zap.String("contact_id", contact.ContactID),
		)
		return fmt.Errorf("create contact %s: %w", contact.ContactID, err)
	}

	return nil
}

func (r *contactRepository) FindAll(ctx context.Context) ([]*entity.Contact, error) {
	query := `
		SELECT contact_id, user_phone, first_name, last_name, date_of_birth,
		       email, gender, comment, created_at
		FROM contacts
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list contacts", zap.Error(err))
		return nil, fmt.Errorf("find all contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		err := rows.Scan(
			&c.ContactID,
			&c.UserPhone,
			&c.FirstName,
			&c.LastName,
			&c.DateOfBirth,
			&c.Email,
			&c.Gender,
			&c.Comment,
			&c.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan contact row", zap.Error(err))
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}

	return contacts, nil
}
