package dao

import (
	"EcomCredits/models"
	"context"

	"gorm.io/gorm"
)

type User struct {
	Repo[models.User]
}

func NewUser(db *gorm.DB) *User {
	return &User{
		Repo: NewRepo[models.User](db),
	}
}

func (u *User) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.Db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *User) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := u.Db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (u *User) UpdateReferralCode(ctx context.Context, userID uint64, code string) error {
	return u.Db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("referral_code", code).Error
}
