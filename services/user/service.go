package user

import (
	"context"

	"logistics-requests/constants"
	"logistics-requests/errs"
	userModel "logistics-requests/models/user"
	"logistics-requests/services/access"
)

type Service struct {
	repo        Repository
	systemOwner string
}

// NewService takes the username of the seeded system owner.
func NewService(repo Repository, systemOwner string) *Service {
	return &Service{repo: repo, systemOwner: systemOwner}
}

// List returns a page of real (non-system) accounts. Managers only.
func (s *Service) List(ctx context.Context, actor access.Actor, offset, limit int) ([]userModel.User, int64, error) {
	if err := access.RequireManager(actor); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, offset, limit)
}

// UpdateRoleInput changes a role and optionally the active flag.
type UpdateRoleInput struct {
	Role     string
	IsActive *bool
}

// UpdateRole is the only way a user gains or loses the manager role.
func (s *Service) UpdateRole(ctx context.Context, actor access.Actor, id uint, in UpdateRoleInput) (*userModel.User, error) {
	if err := access.RequireManager(actor); err != nil {
		return nil, err
	}
	if !constants.IsValidRole(in.Role) {
		return nil, errs.Validation("role must be one of employee, manager")
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsSystem {
		return nil, errs.Forbidden("the system account cannot be changed")
	}
	if u.ID == actor.UserID {
		if in.Role != constants.RoleManager {
			return nil, errs.Validation("you cannot remove your own manager role")
		}
		if in.IsActive != nil && !*in.IsActive {
			return nil, errs.Validation("you cannot deactivate your own account")
		}
	}

	u.Role = in.Role
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// OwnerForPhone finds the account a public request should belong to.
func (s *Service) OwnerForPhone(ctx context.Context, phone string) (*userModel.User, error) {
	return s.repo.FindActiveByPhone(ctx, phone)
}

// SystemOwner loads the seeded account that owns unmatched public requests.
// It is looked up on every call so a seed run takes effect without a restart.
func (s *Service) SystemOwner(ctx context.Context) (*userModel.User, error) {
	u, err := s.repo.FindByUsername(ctx, s.systemOwner)
	if err != nil {
		return nil, err
	}
	if !u.IsSystem {
		return nil, errs.NotFound("system owner")
	}
	return u, nil
}
