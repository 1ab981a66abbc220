package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. license_number is the natural key.
type BusinessModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Address        string    `gorm:"type:text;not null"`
	Phone          string    `gorm:"type:varchar(32);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	LicenseNumber  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_businesses_license_number"`
	BusinessType   string    `gorm:"type:varchar(100);not null"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerName      string    `gorm:"type:varchar(255);not null"`
	OwnerPhotoURL  string    `gorm:"type:text"`
	LogoURL        string    `gorm:"type:text"`
	TradeLicense   string    `gorm:"type:varchar(100);not null"`
	GSTNumber      string    `gorm:"type:varchar(100);not null"`
	FireSafetyCert string    `gorm:"type:varchar(100);not null"`
	LiquorLicense  *string   `gorm:"type:varchar(100)"`
	MusicLicense   *string   `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`

	Inspections          []InspectionModel          `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	HygieneRatings       []HygieneRatingModel       `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	LabReports           []LabReportModel           `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Certifications       []CertificationModel       `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	TeamMembers          []TeamMemberModel          `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	FacilityPhotos       []FacilityPhotoModel       `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Reviews              []ReviewModel              `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	ManufacturingDetails *ManufacturingDetailsModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	BatchProductions     []BatchProductionModel     `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	RawMaterialSuppliers []RawMaterialSupplierModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	PackagingCompliance  *PackagingComplianceModel  `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
