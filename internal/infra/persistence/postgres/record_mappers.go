package postgres

import (
	"foodsafe/internal/domain/entity"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewInspectionRepository stores inspections.
func NewInspectionRepository(db *gorm.DB) repository.RecordRepository[entity.Inspection] {
	return newRecordRepository(db, "inspection", toInspectionDomain, fromInspectionDomain)
}

func NewHygieneRatingRepository(db *gorm.DB) repository.RecordRepository[entity.HygieneRating] {
	return newRecordRepository(db, "hygiene rating", toHygieneRatingDomain, fromHygieneRatingDomain)
}

func NewLabReportRepository(db *gorm.DB) repository.RecordRepository[entity.LabReport] {
	return newRecordRepository(db, "lab report", toLabReportDomain, fromLabReportDomain)
}

func NewCertificationRepository(db *gorm.DB) repository.RecordRepository[entity.Certification] {
	return newRecordRepository(db, "certification", toCertificationDomain, fromCertificationDomain)
}

func NewTeamMemberRepository(db *gorm.DB) repository.RecordRepository[entity.TeamMember] {
	return newRecordRepository(db, "team member", toTeamMemberDomain, fromTeamMemberDomain)
}

func NewFacilityPhotoRepository(db *gorm.DB) repository.RecordRepository[entity.FacilityPhoto] {
	return newRecordRepository(db, "facility photo", toFacilityPhotoDomain, fromFacilityPhotoDomain)
}

func NewReviewRepository(db *gorm.DB) repository.RecordRepository[entity.Review] {
	return newRecordRepository(db, "review", toReviewDomain, fromReviewDomain)
}

// NewManufacturingDetailsRepository stores the single manufacturing profile of a business.
func NewManufacturingDetailsRepository(db *gorm.DB) repository.RecordRepository[entity.ManufacturingDetails] {
	return newRecordRepository(db, "manufacturing details", toManufacturingDetailsDomain, fromManufacturingDetailsDomain)
}

func NewBatchProductionRepository(db *gorm.DB) repository.RecordRepository[entity.BatchProduction] {
	return newRecordRepository(db, "batch production", toBatchProductionDomain, fromBatchProductionDomain)
}

func NewRawMaterialSupplierRepository(db *gorm.DB) repository.RecordRepository[entity.RawMaterialSupplier] {
	return newRecordRepository(db, "raw material supplier", toRawMaterialSupplierDomain, fromRawMaterialSupplierDomain)
}

// NewPackagingComplianceRepository stores the single packaging profile of a business.
func NewPackagingComplianceRepository(db *gorm.DB) repository.RecordRepository[entity.PackagingCompliance] {
	return newRecordRepository(db, "packaging compliance", toPackagingComplianceDomain, fromPackagingComplianceDomain)
}

// --- Mapper Functions ---

func toRecordBase(c model.RecordColumns) entity.RecordBase {
	return entity.RecordBase{ID: c.ID, BusinessID: c.BusinessID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func fromRecordBase(b entity.RecordBase) model.RecordColumns {
	return model.RecordColumns{ID: b.ID, BusinessID: b.BusinessID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func singletonToRecordBase(c model.SingletonColumns) entity.RecordBase {
	return entity.RecordBase{ID: c.ID, BusinessID: c.BusinessID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func singletonFromRecordBase(b entity.RecordBase) model.SingletonColumns {
	return model.SingletonColumns{ID: b.ID, BusinessID: b.BusinessID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func toInspectionDomain(data *model.InspectionModel) *entity.Inspection {
	return &entity.Inspection{
		RecordBase:  toRecordBase(data.RecordColumns),
		InspectorID: data.InspectorID,
		Date:        data.Date,
		Rating:      data.Rating,
		Comments:    data.Comments,
	}
}

func fromInspectionDomain(data *entity.Inspection) *model.InspectionModel {
	return &model.InspectionModel{
		RecordColumns: fromRecordBase(data.RecordBase),
		InspectorID:   data.InspectorID,
		Date:          data.Date,
		Rating:        data.Rating,
		Comments:      data.Comments,
	}
}

func toHygieneRatingDomain(data *model.HygieneRatingModel) *entity.HygieneRating {
	return &entity.HygieneRating{
		RecordBase: toRecordBase(data.RecordColumns),
		Rating:     data.Rating,
		Date:       data.Date,
	}
}

func fromHygieneRatingDomain(data *entity.HygieneRating) *model.HygieneRatingModel {
	return &model.HygieneRatingModel{
		RecordColumns: fromRecordBase(data.RecordBase),
		Rating:        data.Rating,
		Date:          data.Date,
	}
}

func toLabReportDomain(data *model.LabReportModel) *entity.LabReport {
	return &entity.LabReport{
		RecordBase: toRecordBase(data.RecordColumns),
		ReportType: data.ReportType,
		Date:       data.Date,
		Result:     data.Result,
		FileURL:    data.FileURL,
	}
}

func fromLabReportDomain(data *entity.LabReport) *model.LabReportModel {
	return &model.LabReportModel{
		RecordColumns: fromRecordBase(data.RecordBase),
		ReportType:    data.ReportType,
		Date:          data.Date,
		Result:        data.Result,
		FileURL:       data.FileURL,
	}
}

func toCertificationDomain(data *model.CertificationModel) *entity.Certification {
	return &entity.Certification{
		RecordBase:        toRecordBase(data.RecordColumns),
		CertificationType: data.CertificationType,
		IssueDate:         data.IssueDate,
		ExpiryDate:        data.ExpiryDate,
		CertificateNumber: data.CertificateNumber,
	}
}

func fromCertificationDomain(data *entity.Certification) *model.CertificationModel {
	return &model.CertificationModel{
		RecordColumns:     fromRecordBase(data.RecordBase),
		CertificationType: data.CertificationType,
		IssueDate:         data.IssueDate,
		ExpiryDate:        data.ExpiryDate,
		CertificateNumber: data.CertificateNumber,
	}
}

func toTeamMemberDomain(data *model.TeamMemberModel) *entity.TeamMember {
	return &entity.TeamMember{
		RecordBase: toRecordBase(data.RecordColumns),
		Name:       data.Name,
		Role:       data.Role,
		PhotoURL:   data.PhotoURL,
	}
}

func fromTeamMemberDomain(data *entity.TeamMember) *model.TeamMemberModel {
	return &model.TeamMemberModel{
		RecordColumns: fromRecordBase(data.RecordBase),
		Name:          data.Name,
		Role:          data.Role,
		PhotoURL:      data.PhotoURL,
	}
}

func toFacilityPhotoDomain(data *model.FacilityPhotoModel) *entity.FacilityPhoto {
	return &entity.FacilityPhoto{
		RecordBase: toRecordBase(data.RecordColumns),
		AreaName:   data.AreaName,
		PhotoURL:   data.PhotoURL,
	}
}

func fromFacilityPhotoDomain(data *entity.FacilityPhoto) *model.FacilityPhotoModel {
	return &model.FacilityPhotoModel{
		RecordColumns: fromRecordBase(data.RecordBase),
		AreaName:      data.AreaName,
		PhotoURL:      data.PhotoURL,
	}
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		RecordBase: toRecordBase(data.RecordColumns),
		ReviewerID: data.ReviewerID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		Date:       data.Date,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		RecordColumns: fromRecordBase(data.RecordBase),
		ReviewerID:    data.ReviewerID,
		Rating:        data.Rating,
		Comment:       data.Comment,
		Date:          data.Date,
	}
}

func toManufacturingDetailsDomain(data *model.ManufacturingDetailsModel) *entity.ManufacturingDetails {
	return &entity.ManufacturingDetails{
		RecordBase:           singletonToRecordBase(data.SingletonColumns),
		ProductionCapacity:   data.ProductionCapacity,
		ManufacturingLicense: data.ManufacturingLicense,
		ISOCertification:     data.ISOCertification,
		HACCPCertification:   data.HACCPCertification,
		Description:          data.Description,
	}
}

func fromManufacturingDetailsDomain(data *entity.ManufacturingDetails) *model.ManufacturingDetailsModel {
	return &model.ManufacturingDetailsModel{
		SingletonColumns:     singletonFromRecordBase(data.RecordBase),
		ProductionCapacity:   data.ProductionCapacity,
		ManufacturingLicense: data.ManufacturingLicense,
		ISOCertification:     data.ISOCertification,
		HACCPCertification:   data.HACCPCertification,
		Description:          data.Description,
	}
}

func toBatchProductionDomain(data *model.BatchProductionModel) *entity.BatchProduction {
	return &entity.BatchProduction{
		RecordBase:         toRecordBase(data.RecordColumns),
		BatchNumber:        data.BatchNumber,
		ManufacturingDate:  data.ManufacturingDate,
		ExpiryDate:         data.ExpiryDate,
		ProductionFacility: data.ProductionFacility,
		QualityReportURL:   data.QualityReportURL,
		Supervisor:         data.Supervisor,
		TestingParameters:  data.TestingParameters,
		StorageConditions:  data.StorageConditions,
	}
}

func fromBatchProductionDomain(data *entity.BatchProduction) *model.BatchProductionModel {
	return &model.BatchProductionModel{
		RecordColumns:      fromRecordBase(data.RecordBase),
		BatchNumber:        data.BatchNumber,
		ManufacturingDate:  data.ManufacturingDate,
		ExpiryDate:         data.ExpiryDate,
		ProductionFacility: data.ProductionFacility,
		QualityReportURL:   data.QualityReportURL,
		Supervisor:         data.Supervisor,
		TestingParameters:  data.TestingParameters,
		StorageConditions:  data.StorageConditions,
	}
}

func toRawMaterialSupplierDomain(data *model.RawMaterialSupplierModel) *entity.RawMaterialSupplier {
	return &entity.RawMaterialSupplier{
		RecordBase:            toRecordBase(data.RecordColumns),
		SupplierName:          data.SupplierName,
		SupplierCertification: data.SupplierCertification,
		ContactInfo:           data.ContactInfo,
		MaterialsProvided:     data.MaterialsProvided,
		OriginCountry:         data.OriginCountry,
		TraceabilityInfo:      data.TraceabilityInfo,
		ComplianceStatus:      data.ComplianceStatus,
	}
}

func fromRawMaterialSupplierDomain(data *entity.RawMaterialSupplier) *model.RawMaterialSupplierModel {
	return &model.RawMaterialSupplierModel{
		RecordColumns:         fromRecordBase(data.RecordBase),
		SupplierName:          data.SupplierName,
		SupplierCertification: data.SupplierCertification,
		ContactInfo:           data.ContactInfo,
		MaterialsProvided:     data.MaterialsProvided,
		OriginCountry:         data.OriginCountry,
		TraceabilityInfo:      data.TraceabilityInfo,
		ComplianceStatus:      data.ComplianceStatus,
	}
}

func toPackagingComplianceDomain(data *model.PackagingComplianceModel) *entity.PackagingCompliance {
	return &entity.PackagingCompliance{
		RecordBase:              singletonToRecordBase(data.SingletonColumns),
		MaterialType:            data.MaterialType,
		FSSAICompliant:          data.FSSAICompliant,
		TamperProofMethod:       data.TamperProofMethod,
		LabelingDetails:         data.LabelingDetails,
		SustainabilityInfo:      data.SustainabilityInfo,
		Barcode:                 data.Barcode,
		QRCode:                  data.QRCode,
		ShelfLifeInfo:           data.ShelfLifeInfo,
		RegulatoryCertification: data.RegulatoryCertification,
	}
}

func fromPackagingComplianceDomain(data *entity.PackagingCompliance) *model.PackagingComplianceModel {
	return &model.PackagingComplianceModel{
		SingletonColumns:        singletonFromRecordBase(data.RecordBase),
		MaterialType:            data.MaterialType,
		FSSAICompliant:          data.FSSAICompliant,
		TamperProofMethod:       data.TamperProofMethod,
		LabelingDetails:         data.LabelingDetails,
		SustainabilityInfo:      data.SustainabilityInfo,
		Barcode:                 data.Barcode,
		QRCode:                  data.QRCode,
		ShelfLifeInfo:           data.ShelfLifeInfo,
		RegulatoryCertification: data.RegulatoryCertification,
	}
}
