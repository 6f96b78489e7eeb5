package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func NewProfileService(db *gorm.DB) *profileServiceImpl {
	return &profileServiceImpl{
		db:       db,
		validate: validator.New(),
	}
}

type profileServiceImpl struct {
	db       *gorm.DB
	validate *validator.Validate
}

// ProfileGet returns the user's profile, creating a default EMPLOYEE one
// on first access. Calling it twice yields the same profile id.
func (p *profileServiceImpl) ProfileGet(ctx context.Context, userID uint) (*dashboard_core.UserProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user id must be set", dashboard_core.ErrValidation)
	}

	db := p.db.WithContext(ctx)

	var profile dashboard_core.UserProfile
	err := db.
		Where("user_id = ?", userID).
		Find(&profile).
		Error
	if err != nil {
		return nil, err
	}

	if profile.ID != 0 {
		return &profile, nil
	}

	profile = dashboard_core.UserProfile{
		UserID: userID,
		Role:   dashboard_core.RoleEmployee,
	}
	err = db.Create(&profile).Error
	if err != nil {
		// a concurrent first access won the unique index, use its row
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = db.
				Where("user_id = ?", userID).
				Find(&profile).
				Error
			if err != nil {
				return nil, err
			}
			return &profile, nil
		}
		return nil, err
	}

	return &profile, nil
}

type ProfileUpdateRequest struct {
	UserID     uint   `json:"user_id" validate:"required"`
	Department string `json:"department" validate:"max=100"`
	Phone      string `json:"phone" validate:"max=15"`
}

// ProfileUpdate mutates department and phone in place. Role is not
// client-writable.
func (p *profileServiceImpl) ProfileUpdate(ctx context.Context, pay *ProfileUpdateRequest) (*dashboard_core.UserProfile, error) {
	if err := p.validate.Struct(pay); err != nil {
		return nil, fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err)
	}

	profile, err := p.ProfileGet(ctx, pay.UserID)
	if err != nil {
		return nil, err
	}

	err = p.db.
		WithContext(ctx).
		Model(profile).
		Select("department", "phone").
		Updates(dashboard_core.UserProfile{
			Department: pay.Department,
			Phone:      pay.Phone,
		}).
		Error
	if err != nil {
		return nil, err
	}

	profile.Department = pay.Department
	profile.Phone = pay.Phone
	return profile, nil
}
