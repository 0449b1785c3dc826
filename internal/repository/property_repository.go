package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Priya1724/RealEstateFinal/internal/model"
)

type PropertyRepository struct {
	DB *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

// Create inserts a new property and fills in its generated id.
func (r *PropertyRepository) Create(ctx context.Context, p *model.Property) error {
	const q = `
        INSERT INTO properties
            (title, description, price, type, location, image_url, contact_email, contact_phone, status, date_listed, owner_id)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `
	err := r.DB.QueryRowxContext(ctx, q,
		p.Title, p.Description, p.Price, p.Type, p.Location,
		p.ImageURL, p.ContactEmail, p.ContactPhone, p.Status, p.DateListed, p.OwnerID,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("PropertyRepository.Create: %w", err)
	}
	return nil
}

// Update overwrites all mutable columns. Owner and date_listed are immutable
// after creation and are deliberately absent here.
func (r *PropertyRepository) Update(ctx context.Context, p *model.Property) error {
	const q = `
        UPDATE properties SET
            title         = :title,
            description   = :description,
            price         = :price,
            type          = :type,
            location      = :location,
            image_url     = :image_url,
            contact_email = :contact_email,
            contact_phone = :contact_phone,
            status        = :status
        WHERE id = :id
    `
	if _, err := r.DB.NamedExecContext(ctx, q, p); err != nil {
		return fmt.Errorf("PropertyRepository.Update: %w", err)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id); err != nil {
		return fmt.Errorf("PropertyRepository.Delete: %w", err)
	}
	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*model.Property, error) {
	var p model.Property
	if err := r.DB.GetContext(ctx, &p, `SELECT * FROM properties WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateStatus sets the moderation status unconditionally.
func (r *PropertyRepository) UpdateStatus(ctx context.Context, id int64, status model.PropertyStatus) error {
	if _, err := r.DB.ExecContext(ctx, `UPDATE properties SET status = $1 WHERE id = $2`, status, id); err != nil {
		return fmt.Errorf("PropertyRepository.UpdateStatus: %w", err)
	}
	return nil
}

func (r *PropertyRepository) ListByStatus(ctx context.Context, status model.PropertyStatus, limit, offset int) ([]model.Property, error) {
	var list []model.Property
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM properties
		WHERE status = $1
		ORDER BY date_listed DESC
		LIMIT $2 OFFSET $3
	`, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("PropertyRepository.ListByStatus: %w", err)
	}
	return list, nil
}

func (r *PropertyRepository) CountByStatus(ctx context.Context, status model.PropertyStatus) (int64, error) {
	var count int64
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM properties WHERE status = $1`, status); err != nil {
		return 0, fmt.Errorf("PropertyRepository.CountByStatus: %w", err)
	}
	return count, nil
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Property, error) {
	var list []model.Property
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM properties
		WHERE owner_id = $1
		ORDER BY date_listed DESC
		LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("PropertyRepository.ListByOwner: %w", err)
	}
	return list, nil
}

func (r *PropertyRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM properties WHERE owner_id = $1`, ownerID); err != nil {
		return 0, fmt.Errorf("PropertyRepository.CountByOwner: %w", err)
	}
	return count, nil
}

// Search returns one page of approved listings matching the criteria.
func (r *PropertyRepository) Search(ctx context.Context, c SearchCriteria, limit, offset int) ([]model.Property, error) {
	where, args := buildSearchWhere(c)
	query := fmt.Sprintf(
		"SELECT * FROM properties WHERE %s ORDER BY date_listed DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	var list []model.Property
	if err := r.DB.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("PropertyRepository.Search: %w", err)
	}
	return list, nil
}

// CountSearch returns the total number of listings matching the criteria.
func (r *PropertyRepository) CountSearch(ctx context.Context, c SearchCriteria) (int64, error) {
	where, args := buildSearchWhere(c)
	query := fmt.Sprintf("SELECT COUNT(*) FROM properties WHERE %s", where)

	var count int64
	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("PropertyRepository.CountSearch: %w", err)
	}
	return count, nil
}
