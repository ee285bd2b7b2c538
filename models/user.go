package models

import (
	"errors"

	"gallery/db"
	"gallery/utils"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
	Username  string `gorm:"type:varchar(255);index:uniq_username,unique" json:"username"`
	Email     string `gorm:"type:varchar(255);index:uniq_email,unique" json:"email"`
	Password  string `gorm:"type:varchar(100)" json:"-"`
}

// UserCreate registers a new user with a bcrypt-hashed password.
// An already-taken email or username yields ErrDuplicateIdentity.
func UserCreate(username, email, plainTextPassword string) (u User, err error) {
	var count int64
	err = db.Instance.Model(&User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return User{}, err
	}
	if count > 0 {
		return User{}, ErrDuplicateIdentity
	}
	u.Username = username
	u.Email = email
	if u.Password, err = utils.HashPassword(plainTextPassword); err != nil {
		return User{}, err
	}
	return u, db.Instance.Create(&u).Error
}

// UserLogin authenticates by email and password. An unknown email and a wrong
// password both come back as ErrInvalidCredentials.
func UserLogin(email, plainTextPassword string) (u User, err error) {
	result := db.Instance.First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, ErrInvalidCredentials
	}
	if !utils.CheckPassword(plainTextPassword, u.Password) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

// SetPassword re-hashes and stores a new password for the user.
func (u *User) SetPassword(plainTextPassword string) error {
	hash, err := utils.HashPassword(plainTextPassword)
	if err != nil {
		return err
	}
	u.Password = hash
	return db.Instance.Model(u).Update("password", u.Password).Error
}
