package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Priya1724/RealEstateFinal/internal/apperr"
	"github.com/Priya1724/RealEstateFinal/internal/model"
	"github.com/Priya1724/RealEstateFinal/internal/repository"
)

// ImageStore stores raw image bytes and returns a publicly servable reference.
type ImageStore interface {
	Upload(data []byte, filename string) (string, error)
}

// PropertyInput carries the mutable content fields of a listing. Status,
// owner and listing date are never taken from the caller.
type PropertyInput struct {
	Title        string
	Description  string
	Price        float64
	Type         model.PropertyType
	Location     string
	ContactEmail string
	ContactPhone string
}

// PropertyService owns listing CRUD, ownership checks and the moderation
// reset on every content change.
type PropertyService struct {
	properties *repository.PropertyRepository
	users      *repository.UserRepository
	images     ImageStore
}

func NewPropertyService(
	pr *repository.PropertyRepository,
	ur *repository.UserRepository,
	images ImageStore,
) *PropertyService {
	return &PropertyService{
		properties: pr,
		users:      ur,
		images:     images,
	}
}

// Create persists a new listing for ownerID. Status is forced to PENDING and
// the listing date is stamped here, whatever the caller sent.
func (s *PropertyService) Create(ctx context.Context, ownerID int64, in PropertyInput, image []byte, imageName string) (*model.Property, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("PropertyService.Create: %w", err)
	}

	p := &model.Property{
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		Type:         in.Type,
		Location:     in.Location,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Status:       model.StatusPending,
		DateListed:   time.Now().UTC(),
		OwnerID:      ownerID,
	}

	if len(image) > 0 {
		url, err := s.images.Upload(image, imageName)
		if err != nil {
			return nil, apperr.BadRequest("Unable to upload image: " + err.Error())
		}
		p.ImageURL = url
	}

	if err := s.properties.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("PropertyService.Create: %w", err)
	}
	return p, nil
}

// Update overwrites the listing content and sends it back to moderation.
// A missing image part leaves the stored reference untouched.
func (s *PropertyService) Update(ctx context.Context, propertyID, callerID int64, in PropertyInput, image []byte, imageName string) (*model.Property, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Property not found")
		}
		return nil, fmt.Errorf("PropertyService.Update: %w", err)
	}
	if p.OwnerID != callerID {
		return nil, apperr.Unauthorized("You are not allowed to update this property")
	}

	p.Title = in.Title
	p.Description = in.Description
	p.Price = in.Price
	p.Type = in.Type
	p.Location = in.Location
	p.ContactEmail = in.ContactEmail
	p.ContactPhone = in.ContactPhone
	p.Status = model.StatusPending

	if len(image) > 0 {
		url, err := s.images.Upload(image, imageName)
		if err != nil {
			return nil, apperr.BadRequest("Unable to upload image: " + err.Error())
		}
		p.ImageURL = url
	}

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("PropertyService.Update: %w", err)
	}
	return p, nil
}

// Delete removes the listing after the same ownership check as Update.
func (s *PropertyService) Delete(ctx context.Context, propertyID, callerID int64) error {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Property not found")
		}
		return fmt.Errorf("PropertyService.Delete: %w", err)
	}
	if p.OwnerID != callerID {
		return apperr.Unauthorized("You are not allowed to delete this property")
	}

	if err := s.properties.Delete(ctx, propertyID); err != nil {
		return fmt.Errorf("PropertyService.Delete: %w", err)
	}
	return nil
}

// Get fetches a listing by id regardless of its moderation status.
func (s *PropertyService) Get(ctx context.Context, propertyID int64) (*model.Property, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Property not found")
		}
		return nil, fmt.Errorf("PropertyService.Get: %w", err)
	}
	return p, nil
}

// GetApproved returns one page of publicly visible listings.
func (s *PropertyService) GetApproved(ctx context.Context, page, size int) (model.Page[model.Property], error) {
	total, err := s.properties.CountByStatus(ctx, model.StatusApproved)
	if err != nil {
		return model.Page[model.Property]{}, fmt.Errorf("PropertyService.GetApproved: %w", err)
	}
	items, err := s.properties.ListByStatus(ctx, model.StatusApproved, size, page*size)
	if err != nil {
		return model.Page[model.Property]{}, fmt.Errorf("PropertyService.GetApproved: %w", err)
	}
	return model.NewPage(items, page, size, total), nil
}

// Search returns one page of approved listings matching the criteria.
func (s *PropertyService) Search(ctx context.Context, criteria repository.SearchCriteria, page, size int) (model.Page[model.Property], error) {
	total, err := s.properties.CountSearch(ctx, criteria)
	if err != nil {
		return model.Page[model.Property]{}, fmt.Errorf("PropertyService.Search: %w", err)
	}
	items, err := s.properties.Search(ctx, criteria, size, page*size)
	if err != nil {
		return model.Page[model.Property]{}, fmt.Errorf("PropertyService.Search: %w", err)
	}
	return model.NewPage(items, page, size, total), nil
}

// GetUserProperties returns one page of the owner's listings, any status.
func (s *PropertyService) GetUserProperties(ctx context.Context, ownerID int64, page, size int) (model.Page[model.Property], error) {
	total, err := s.properties.CountByOwner(ctx, ownerID)
	if err != nil {
		return model.Page[model.Property]{}, fmt.Errorf("PropertyService.GetUserProperties: %w", err)
	}
	items, err := s.properties.ListByOwner(ctx, ownerID, size, page*size)
	if err != nil {
		return model.Page[model.Property]{}, fmt.Errorf("PropertyService.GetUserProperties: %w", err)
	}
	return model.NewPage(items, page, size, total), nil
}
