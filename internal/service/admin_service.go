package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Priya1724/RealEstateFinal/internal/apperr"
	"github.com/Priya1724/RealEstateFinal/internal/model"
	"github.com/Priya1724/RealEstateFinal/internal/repository"
)

// AdminService owns the moderation queue and user administration.
type AdminService struct {
	properties *repository.PropertyRepository
	users      *repository.UserRepository
}

func NewAdminService(pr *repository.PropertyRepository, ur *repository.UserRepository) *AdminService {
	return &AdminService{properties: pr, users: ur}
}

// ApproveProperty makes the listing publicly visible. The transition is
// unconditional, so re-approving or approving a rejected listing succeeds.
func (s *AdminService) ApproveProperty(ctx context.Context, propertyID int64) (*model.Property, error) {
	return s.setStatus(ctx, propertyID, model.StatusApproved)
}

// RejectProperty removes the listing from the public surface.
func (s *AdminService) RejectProperty(ctx context.Context, propertyID int64) (*model.Property, error) {
	return s.setStatus(ctx, propertyID, model.StatusRejected)
}

func (s *AdminService) setStatus(ctx context.Context, propertyID int64, status model.PropertyStatus) (*model.Property, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Property not found")
		}
		return nil, fmt.Errorf("AdminService.setStatus: %w", err)
	}

	if err := s.properties.UpdateStatus(ctx, propertyID, status); err != nil {
		return nil, fmt.Errorf("AdminService.setStatus: %w", err)
	}
	p.Status = status
	return p, nil
}

// GetPendingProperties returns one page of the moderation queue.
func (s *AdminService) GetPendingProperties(ctx context.Context, page, size int) (model.Page[model.Property], error) {
	total, err := s.properties.CountByStatus(ctx, model.StatusPending)
	if err != nil {
		return model.Page[model.Property]{}, fmt.Errorf("AdminService.GetPendingProperties: %w", err)
	}
	items, err := s.properties.ListByStatus(ctx, model.StatusPending, size, page*size)
	if err != nil {
		return model.Page[model.Property]{}, fmt.Errorf("AdminService.GetPendingProperties: %w", err)
	}
	return model.NewPage(items, page, size, total), nil
}

// GetUsers returns one page of all registered users.
func (s *AdminService) GetUsers(ctx context.Context, page, size int) (model.Page[model.User], error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return model.Page[model.User]{}, fmt.Errorf("AdminService.GetUsers: %w", err)
	}
	items, err := s.users.List(ctx, size, page*size)
	if err != nil {
		return model.Page[model.User]{}, fmt.Errorf("AdminService.GetUsers: %w", err)
	}
	return model.NewPage(items, page, size, total), nil
}

// UpdateUserRole overwrites the user's role. There is no self-demotion guard.
func (s *AdminService) UpdateUserRole(ctx context.Context, userID int64, role model.Role) (*model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("AdminService.UpdateUserRole: %w", err)
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("AdminService.UpdateUserRole: %w", err)
	}
	u.Role = role
	return u, nil
}

// DeleteUser removes the account and, via the schema's cascade, every
// property it owns.
func (s *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("User not found")
		}
		return fmt.Errorf("AdminService.DeleteUser: %w", err)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("AdminService.DeleteUser: %w", err)
	}
	return nil
}
