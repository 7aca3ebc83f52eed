package user

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/auth"
)

type Repository interface {
	Create(u *User) error
	GetByID(id string) (*User, error)
	GetAll() ([]*User, error)
	Update(u *User) error
	ExistsByUsernameOrEmail(username, email string) (bool, error)
}

// PasswordHasher is implemented by the auth service.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a new account. Only admins reach this path; the route is
// gated by RequireRole(RoleAdmin).
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("registration validation failed", "error", err, "username", dto.Username)
		return nil, err
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(dto.Username, dto.Email)
	if err != nil {
		s.logger.Error("registration existence check failed", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.ErrDuplicateUser
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	u := &User{
		ID:           uuid.NewString(),
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         auth.Role(dto.Role),
		Department:   dto.Department,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", u.ID, "username", u.Username, "role", u.Role)
	return u, nil
}

func (s *Service) GetByID(id string) (*User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetAll() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// UpdateProfile applies a self-service update to the calling user.
func (s *Service) UpdateProfile(id string, dto UpdateProfileDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Department != nil {
		u.Department = *dto.Department
	}
	if dto.Password != nil {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password", err)
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update profile", "error", err, "user_id", id)
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", id)
	return u, nil
}

// AdminUpdate applies an admin-side update: role changes, activation
// toggles, email/department/password resets. Deactivation is the deletion
// substitute; accounts are never hard-deleted.
func (s *Service) AdminUpdate(id string, dto AdminUpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Role != nil {
		u.Role = auth.Role(*dto.Role)
	}
	if dto.Department != nil {
		u.Department = *dto.Department
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}
	if dto.Password != nil {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password", err)
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return nil, err
	}

	s.logger.Info("user updated", "user_id", id, "is_active", u.IsActive, "role", u.Role)
	return u, nil
}
