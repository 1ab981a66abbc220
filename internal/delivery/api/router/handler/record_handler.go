package handler

import (
	"net/http"

	"foodsafe/internal/delivery/api/middleware"
	"foodsafe/internal/delivery/api/response"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteRegistrar mounts its routes on an authenticated group.
type RouteRegistrar interface {
	Register(g *echo.Group)
}

// RecordRoutes describes how one record kind is exposed.
type RecordRoutes struct {
	Name      string // Used in response messages.
	Singular  string // POST path.
	Plural    string // GET and PUT path prefix, followed by /:business_id.
	Singleton bool   // GET returns the one row instead of a list.
	Updatable bool
}

// Route table of the record kinds.
var (
	InspectionRoutes           = RecordRoutes{Name: "Inspection", Singular: "/inspection", Plural: "/inspections"}
	HygieneRatingRoutes        = RecordRoutes{Name: "Hygiene rating", Singular: "/hygiene-rating", Plural: "/hygiene-ratings"}
	LabReportRoutes            = RecordRoutes{Name: "Lab report", Singular: "/lab-report", Plural: "/lab-reports"}
	CertificationRoutes        = RecordRoutes{Name: "Certification", Singular: "/certification", Plural: "/certifications"}
	TeamMemberRoutes           = RecordRoutes{Name: "Team member", Singular: "/team-member", Plural: "/team-members"}
	FacilityPhotoRoutes        = RecordRoutes{Name: "Facility photo", Singular: "/facility-photo", Plural: "/facility-photos"}
	ReviewRoutes               = RecordRoutes{Name: "Review", Singular: "/review", Plural: "/reviews"}
	BatchProductionRoutes      = RecordRoutes{Name: "Batch production", Singular: "/batch-production", Plural: "/batch-production"}
	RawMaterialSupplierRoutes  = RecordRoutes{Name: "Raw material supplier", Singular: "/raw-material-supplier", Plural: "/raw-material-suppliers"}
	PackagingComplianceRoutes  = RecordRoutes{Name: "Packaging compliance", Singular: "/packaging-compliance", Plural: "/packaging-compliance", Singleton: true}
	ManufacturingDetailsRoutes = RecordRoutes{
		Name:      "Manufacturing details",
		Singular:  "/manufacturing-details",
		Plural:    "/manufacturing-details",
		Singleton: true,
		Updatable: true,
	}
)

// RecordHandler serves one record kind through the generic registry.
type RecordHandler[E any] struct {
	routes   RecordRoutes
	recordUC usecase.RecordUsecase[E]
}

// NewRecordHandler binds a route description to the usecase of its kind.
func NewRecordHandler[E any](routes RecordRoutes, recordUC usecase.RecordUsecase[E]) *RecordHandler[E] {
	return &RecordHandler[E]{routes: routes, recordUC: recordUC}
}

// Register mounts the kind's routes.
func (h *RecordHandler[E]) Register(g *echo.Group) {
	g.POST(h.routes.Singular, h.Create)

	byBusiness := h.routes.Plural + "/:business_id"
	if h.routes.Singleton {
		g.GET(byBusiness, h.Get)
	} else {
		g.GET(byBusiness, h.List)
	}
	if h.routes.Updatable {
		g.PUT(byBusiness, h.Update)
	}
}

// Create handles POST <singular>.
func (h *RecordHandler[E]) Create(c echo.Context) error {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	record := new(E)
	if err := c.Bind(record); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	created, err := h.recordUC.Create(c.Request().Context(), caller, record)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, created, h.routes.Name+" created successfully")
}

// List handles GET <plural>/:business_id.
func (h *RecordHandler[E]) List(c echo.Context) error {
	businessID, err := uuidParam(c, "business_id")
	if err != nil {
		return err
	}

	records, err := h.recordUC.ListByBusiness(c.Request().Context(), businessID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records, "")
}

// Get handles GET <plural>/:business_id for single-row kinds.
func (h *RecordHandler[E]) Get(c echo.Context) error {
	businessID, err := uuidParam(c, "business_id")
	if err != nil {
		return err
	}

	record, err := h.recordUC.GetByBusiness(c.Request().Context(), businessID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, record, "")
}

// Update handles PUT <plural>/:business_id.
func (h *RecordHandler[E]) Update(c echo.Context) error {
	businessID, err := uuidParam(c, "business_id")
	if err != nil {
		return err
	}

	record := new(E)
	if err := c.Bind(record); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	updated, err := h.recordUC.UpdateByBusiness(c.Request().Context(), businessID, record)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, h.routes.Name+" updated successfully")
}

// RecordHandlersParams collects the usecase of every record kind.
type RecordHandlersParams struct {
	fx.In

	Inspections          usecase.RecordUsecase[entity.Inspection]
	HygieneRatings       usecase.RecordUsecase[entity.HygieneRating]
	LabReports           usecase.RecordUsecase[entity.LabReport]
	Certifications       usecase.RecordUsecase[entity.Certification]
	TeamMembers          usecase.RecordUsecase[entity.TeamMember]
	FacilityPhotos       usecase.RecordUsecase[entity.FacilityPhoto]
	Reviews              usecase.RecordUsecase[entity.Review]
	ManufacturingDetails usecase.RecordUsecase[entity.ManufacturingDetails]
	BatchProduction      usecase.RecordUsecase[entity.BatchProduction]
	RawMaterialSuppliers usecase.RecordUsecase[entity.RawMaterialSupplier]
	PackagingCompliance  usecase.RecordUsecase[entity.PackagingCompliance]
}

// RecordHandlers is the set of record kinds mounted by the router.
type RecordHandlers []RouteRegistrar

// NewRecordHandlers builds a handler per record kind.
func NewRecordHandlers(params RecordHandlersParams) RecordHandlers {
	return RecordHandlers{
		NewRecordHandler(InspectionRoutes, params.Inspections),
		NewRecordHandler(HygieneRatingRoutes, params.HygieneRatings),
		NewRecordHandler(LabReportRoutes, params.LabReports),
		NewRecordHandler(CertificationRoutes, params.Certifications),
		NewRecordHandler(TeamMemberRoutes, params.TeamMembers),
		NewRecordHandler(FacilityPhotoRoutes, params.FacilityPhotos),
		NewRecordHandler(ReviewRoutes, params.Reviews),
		NewRecordHandler(ManufacturingDetailsRoutes, params.ManufacturingDetails),
		NewRecordHandler(BatchProductionRoutes, params.BatchProduction),
		NewRecordHandler(RawMaterialSupplierRoutes, params.RawMaterialSuppliers),
		NewRecordHandler(PackagingComplianceRoutes, params.PackagingCompliance),
	}
}
