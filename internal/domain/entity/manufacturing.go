package entity

import "time"

// ManufacturingDetails describes a manufacturing business. One row per business.
type ManufacturingDetails struct {
	RecordBase
	ProductionCapacity   string  `json:"production_capacity" validate:"required"`
	ManufacturingLicense string  `json:"manufacturing_license" validate:"required"`
	ISOCertification     *string `json:"iso_certification"`
	HACCPCertification   *string `json:"haccp_certification"`
	Description          string  `json:"description"`
}

// BatchProduction is a single production batch.
type BatchProduction struct {
	RecordBase
	BatchNumber        string    `json:"batch_number" validate:"required"`
	ManufacturingDate  time.Time `json:"manufacturing_date" validate:"required"`
	ExpiryDate         time.Time `json:"expiry_date" validate:"required"`
	ProductionFacility string    `json:"production_facility" validate:"required"`
	QualityReportURL   *string   `json:"quality_report_url"`
	Supervisor         string    `json:"supervisor" validate:"required"`
	TestingParameters  string    `json:"testing_parameters" validate:"required"`
	StorageConditions  string    `json:"storage_conditions" validate:"required"`
}

// RawMaterialSupplier is an upstream supplier with its traceability data.
type RawMaterialSupplier struct {
	RecordBase
	SupplierName          string `json:"supplier_name" validate:"required"`
	SupplierCertification string `json:"supplier_certification" validate:"required"`
	ContactInfo           string `json:"contact_info" validate:"required"`
	MaterialsProvided     string `json:"materials_provided" validate:"required"`
	OriginCountry         string `json:"origin_country" validate:"required"`
	TraceabilityInfo      string `json:"traceability_info" validate:"required"`
	ComplianceStatus      string `json:"compliance_status" validate:"required"`
}

// PackagingCompliance describes packaging and labeling. One row per business.
type PackagingCompliance struct {
	RecordBase
	MaterialType            string  `json:"material_type" validate:"required"`
	FSSAICompliant          bool    `json:"fssai_compliant"`
	TamperProofMethod       string  `json:"tamper_proof_method" validate:"required"`
	LabelingDetails         string  `json:"labeling_details" validate:"required"`
	SustainabilityInfo      string  `json:"sustainability_info" validate:"required"`
	Barcode                 string  `json:"barcode" validate:"required"`
	QRCode                  *string `json:"qr_code"`
	ShelfLifeInfo           string  `json:"shelf_life_info" validate:"required"`
	RegulatoryCertification string  `json:"regulatory_certification" validate:"required"`
}
