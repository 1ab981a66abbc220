package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PhoneNumber string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Role        string    `gorm:"type:varchar(32);not null;default:consumer"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Devices       []UserDeviceModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
