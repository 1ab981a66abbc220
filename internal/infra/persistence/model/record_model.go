package model

import (
	"time"

	"github.com/google/uuid"
)

// RecordColumns are shared by every table whose rows hang off a business.
type RecordColumns struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SingletonColumns are RecordColumns for kinds holding at most one row per business.
type SingletonColumns struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InspectionModel mirrors the 'inspections' table.
type InspectionModel struct {
	RecordColumns
	InspectorID uuid.UUID `gorm:"type:uuid;not null"`
	Date        time.Time `gorm:"not null"`
	Rating      int       `gorm:"not null"`
	Comments    string    `gorm:"type:text"`
}

func (InspectionModel) TableName() string {
	return "inspections"
}

// HygieneRatingModel mirrors the 'hygiene_ratings' table.
type HygieneRatingModel struct {
	RecordColumns
	Rating int       `gorm:"not null"`
	Date   time.Time `gorm:"not null"`
}

func (HygieneRatingModel) TableName() string {
	return "hygiene_ratings"
}

// LabReportModel mirrors the 'lab_reports' table.
type LabReportModel struct {
	RecordColumns
	ReportType string    `gorm:"type:varchar(100);not null"`
	Date       time.Time `gorm:"not null"`
	Result     string    `gorm:"type:text;not null"`
	FileURL    *string   `gorm:"type:text"`
}

func (LabReportModel) TableName() string {
	return "lab_reports"
}

// CertificationModel mirrors the 'certifications' table.
type CertificationModel struct {
	RecordColumns
	CertificationType string    `gorm:"type:varchar(100);not null"`
	IssueDate         time.Time `gorm:"not null"`
	ExpiryDate        time.Time `gorm:"not null"`
	CertificateNumber string    `gorm:"type:varchar(100);not null"`
}

func (CertificationModel) TableName() string {
	return "certifications"
}

// TeamMemberModel mirrors the 'team_members' table.
type TeamMemberModel struct {
	RecordColumns
	Name     string `gorm:"type:varchar(255);not null"`
	Role     string `gorm:"type:varchar(100);not null"`
	PhotoURL string `gorm:"type:text"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}

// FacilityPhotoModel mirrors the 'facility_photos' table.
type FacilityPhotoModel struct {
	RecordColumns
	AreaName string `gorm:"type:varchar(255);not null"`
	PhotoURL string `gorm:"type:text;not null"`
}

func (FacilityPhotoModel) TableName() string {
	return "facility_photos"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	RecordColumns
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	Date       time.Time `gorm:"not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// ManufacturingDetailsModel mirrors the 'manufacturing_details' table.
type ManufacturingDetailsModel struct {
	SingletonColumns
	ProductionCapacity   string  `gorm:"type:varchar(255);not null"`
	ManufacturingLicense string  `gorm:"type:varchar(100);not null"`
	ISOCertification     *string `gorm:"type:varchar(100)"`
	HACCPCertification   *string `gorm:"type:varchar(100)"`
	Description          string  `gorm:"type:text"`
}

func (ManufacturingDetailsModel) TableName() string {
	return "manufacturing_details"
}

// BatchProductionModel mirrors the 'batch_production_details' table.
type BatchProductionModel struct {
	RecordColumns
	BatchNumber        string    `gorm:"type:varchar(100);not null"`
	ManufacturingDate  time.Time `gorm:"not null"`
	ExpiryDate         time.Time `gorm:"not null"`
	ProductionFacility string    `gorm:"type:varchar(255);not null"`
	QualityReportURL   *string   `gorm:"type:text"`
	Supervisor         string    `gorm:"type:varchar(255);not null"`
	TestingParameters  string    `gorm:"type:text;not null"`
	StorageConditions  string    `gorm:"type:text;not null"`
}

func (BatchProductionModel) TableName() string {
	return "batch_production_details"
}

// RawMaterialSupplierModel mirrors the 'raw_material_suppliers' table.
type RawMaterialSupplierModel struct {
	RecordColumns
	SupplierName          string `gorm:"type:varchar(255);not null"`
	SupplierCertification string `gorm:"type:varchar(255);not null"`
	ContactInfo           string `gorm:"type:text;not null"`
	MaterialsProvided     string `gorm:"type:text;not null"`
	OriginCountry         string `gorm:"type:varchar(100);not null"`
	TraceabilityInfo      string `gorm:"type:text;not null"`
	ComplianceStatus      string `gorm:"type:varchar(100);not null"`
}

func (RawMaterialSupplierModel) TableName() string {
	return "raw_material_suppliers"
}

// PackagingComplianceModel mirrors the 'packaging_compliance' table.
type PackagingComplianceModel struct {
	SingletonColumns
	MaterialType            string  `gorm:"type:varchar(255);not null"`
	FSSAICompliant          bool    `gorm:"not null;default:false"`
	TamperProofMethod       string  `gorm:"type:varchar(255);not null"`
	LabelingDetails         string  `gorm:"type:text;not null"`
	SustainabilityInfo      string  `gorm:"type:text;not null"`
	Barcode                 string  `gorm:"type:varchar(100);not null"`
	QRCode                  *string `gorm:"type:text"`
	ShelfLifeInfo           string  `gorm:"type:varchar(255);not null"`
	RegulatoryCertification string  `gorm:"type:varchar(255);not null"`
}

func (PackagingComplianceModel) TableName() string {
	return "packaging_compliance"
}

// All lists every persistence model in foreign-key order, for schema migration and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&OTPChallengeModel{},
		&RefreshTokenModel{},
		&UserDeviceModel{},
		&BusinessModel{},
		&InspectionModel{},
		&HygieneRatingModel{},
		&LabReportModel{},
		&CertificationModel{},
		&TeamMemberModel{},
		&FacilityPhotoModel{},
		&ReviewModel{},
		&ManufacturingDetailsModel{},
		&BatchProductionModel{},
		&RawMaterialSupplierModel{},
		&PackagingComplianceModel{},
	}
}
