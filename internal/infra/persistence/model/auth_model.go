package model

import (
	"time"

	"github.com/google/uuid"
)

// OTPChallengeModel mirrors the 'otp_challenges' table. Only the bcrypt hash of a code is stored.
type OTPChallengeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PhoneNumber string    `gorm:"type:varchar(32);not null;index:idx_otp_phone_created,priority:1"`
	CodeHash    string    `gorm:"type:varchar(255);not null"`
	Purpose     string    `gorm:"type:varchar(16);not null"`
	Name        string    `gorm:"type:varchar(100)"`
	Role        string    `gorm:"type:varchar(32)"`
	Attempts    int       `gorm:"not null;default:0"`
	ExpiresAt   time.Time `gorm:"not null"`
	ConsumedAt  *time.Time
	CreatedAt   time.Time `gorm:"index:idx_otp_phone_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (OTPChallengeModel) TableName() string {
	return "otp_challenges"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. UUID columns align with PostgreSQL schema.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
