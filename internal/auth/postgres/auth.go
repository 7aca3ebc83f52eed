package postgres

import (
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/auth"
	userDatamodel "github.com/frahmantamala/asset-inventory/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByLogin resolves a username or email to a credential record.
func (r *Repository) GetByLogin(login string) (*auth.Credential, error) {
	var dm userDatamodel.User
	err := r.db.Where("username = ? OR email = ?", login, login).First(&dm).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return toCredential(&dm), nil
}

func (r *Repository) GetByID(id string) (*auth.Credential, error) {
	var dm userDatamodel.User
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return toCredential(&dm), nil
}

func (r *Repository) UpdateLastLogin(id string, at time.Time) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_login": at,
			"updated_at": time.Now(),
		}).Error
}

func toCredential(dm *userDatamodel.User) *auth.Credential {
	return &auth.Credential{
		ID:           dm.ID,
		Username:     dm.Username,
		Email:        dm.Email,
		PasswordHash: dm.PasswordHash,
		Role:         auth.Role(dm.Role),
		Department:   dm.Department,
		IsActive:     dm.IsActive,
	}
}
