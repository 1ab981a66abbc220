package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodsafe/internal/delivery/api/middleware"
	"foodsafe/internal/delivery/api/router/handler"
	"foodsafe/internal/delivery/api/validator"
	deliverymiddleware "foodsafe/internal/delivery/middleware"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	mockSvc "foodsafe/internal/mocks/service"
	mockUC "foodsafe/internal/mocks/usecase"
	"foodsafe/internal/usecase"
	"foodsafe/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "access-token"

type apiFixtures struct {
	e             *echo.Echo
	user          *entity.User
	authUC        *mockUC.MockAuthUsecase
	businessUC    *mockUC.MockBusinessUsecase
	onboardingUC  *mockUC.MockOnboardingUsecase
	deviceUC      *mockUC.MockDeviceUsecase
	inspections   *mockUC.MockRecordUsecase[entity.Inspection]
	manufacturing *mockUC.MockRecordUsecase[entity.ManufacturingDetails]
	packaging     *mockUC.MockRecordUsecase[entity.PackagingCompliance]
	blobs         *mockSvc.MockBlobStorage
}

func createTestAPI(t *testing.T) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixtures{
		user:          &entity.User{ID: uuid.New(), Name: "Asha", PhoneNumber: "+15550001111", Role: entity.RoleBusinessOwner},
		authUC:        mockUC.NewMockAuthUsecase(t),
		businessUC:    mockUC.NewMockBusinessUsecase(t),
		onboardingUC:  mockUC.NewMockOnboardingUsecase(t),
		deviceUC:      mockUC.NewMockDeviceUsecase(t),
		inspections:   mockUC.NewMockRecordUsecase[entity.Inspection](t),
		manufacturing: mockUC.NewMockRecordUsecase[entity.ManufacturingDetails](t),
		packaging:     mockUC.NewMockRecordUsecase[entity.PackagingCompliance](t),
		blobs:         mockSvc.NewMockBlobStorage(t),
	}

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New(validation.New())
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)

	NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC}),
		BusinessHandler:   handler.NewBusinessHandler(handler.BusinessHandlerParams{BusinessUC: f.businessUC}),
		OnboardingHandler: handler.NewOnboardingHandler(handler.OnboardingHandlerParams{OnboardingUC: f.onboardingUC}),
		DeviceHandler:     handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.deviceUC}),
		FileHandler:       handler.NewFileHandler(handler.FileHandlerParams{Blobs: f.blobs}),
		RecordHandlers: handler.NewRecordHandlers(handler.RecordHandlersParams{
			Inspections:          f.inspections,
			HygieneRatings:       mockUC.NewMockRecordUsecase[entity.HygieneRating](t),
			LabReports:           mockUC.NewMockRecordUsecase[entity.LabReport](t),
			Certifications:       mockUC.NewMockRecordUsecase[entity.Certification](t),
			TeamMembers:          mockUC.NewMockRecordUsecase[entity.TeamMember](t),
			FacilityPhotos:       mockUC.NewMockRecordUsecase[entity.FacilityPhoto](t),
			Reviews:              mockUC.NewMockRecordUsecase[entity.Review](t),
			ManufacturingDetails: f.manufacturing,
			BatchProduction:      mockUC.NewMockRecordUsecase[entity.BatchProduction](t),
			RawMaterialSuppliers: mockUC.NewMockRecordUsecase[entity.RawMaterialSupplier](t),
			PackagingCompliance:  f.packaging,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: f.authUC}),
	}).RegisterRoutes(e)

	f.e = e

	return f
}

func (f *apiFixtures) signedIn() {
	f.authUC.EXPECT().ResolveSession(mock.Anything, testToken).Return(f.user, nil)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func (f *apiFixtures) do(t *testing.T, method, target string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if !strings.Contains(target, "token=") {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (f *apiFixtures) doJSON(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	return f.do(t, method, target, bytes.NewReader(raw), echo.MIMEApplicationJSON)
}

func TestRouter_Health(t *testing.T) {
	f := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_MissingTokenIsUnauthenticated(t *testing.T) {
	f := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/inspections/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Empty(t, env.Error.Details, "auth failures carry no details")
}

func TestRouter_InvalidTokenIsUnauthenticated(t *testing.T) {
	f := createTestAPI(t)
	f.authUC.EXPECT().ResolveSession(mock.Anything, "stale").Return(nil, domainerrors.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodPost, "/business", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_MeAcceptsTokenQueryParam(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()

	rec, env := f.do(t, http.MethodGet, "/auth/me?token="+testToken, nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var user entity.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, f.user.ID, user.ID)
	assert.Equal(t, entity.RoleBusinessOwner, user.Role)
	assert.Contains(t, string(env.Data), `"user_type":"business_owner"`)
}

func TestRouter_SignupSendsOTP(t *testing.T) {
	f := createTestAPI(t)
	f.authUC.EXPECT().
		RequestSignupOTP(mock.Anything, usecase.SignupOTPInput{Name: "Asha", PhoneNumber: "+15550001111", Role: entity.RoleConsumer}).
		Return(&usecase.OTPDispatch{PhoneNumber: "+15550001111"}, nil)

	rec, env := f.doJSON(t, http.MethodPost, "/auth/signup", map[string]string{
		"name":         "Asha",
		"phone_number": "+15550001111",
		"user_type":    "consumer",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "OTP sent to phone for verification.", env.Message)
}

func TestRouter_SignupRejectsUnknownUserType(t *testing.T) {
	f := createTestAPI(t)

	rec, env := f.doJSON(t, http.MethodPost, "/auth/signup", map[string]string{
		"name":         "Asha",
		"phone_number": "+15550001111",
		"user_type":    "inspector",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "user_type")
}

func TestRouter_VerifyOTP(t *testing.T) {
	f := createTestAPI(t)
	f.authUC.EXPECT().VerifyOTP(mock.Anything, "+15550001111", "123456").
		Return(&entity.Session{User: f.user, AccessToken: "a", RefreshToken: "r"}, nil)

	rec, env := f.doJSON(t, http.MethodPost, "/auth/verify-otp", map[string]string{
		"phone_number": "+15550001111",
		"otp":          "123456",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var session entity.Session
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "a", session.AccessToken)
	assert.Equal(t, "r", session.RefreshToken)
}

func TestRouter_RefreshTokenFromHeader(t *testing.T) {
	f := createTestAPI(t)
	f.authUC.EXPECT().RefreshSession(mock.Anything, "refresh-1").
		Return(&entity.Session{User: f.user, AccessToken: "a2", RefreshToken: "refresh-2"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	req.Header.Set("Refresh-Token", "refresh-1")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh-2")
}

func TestRouter_LogoutRequiresToken(t *testing.T) {
	f := createTestAPI(t)

	rec, env := f.do(t, http.MethodPost, "/auth/logout", nil, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_REQUIRED_FIELDS", env.Error.Code)
}

func TestRouter_ErrorKindsMapToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		hasCause bool
	}{
		{"validation", domainerrors.ErrValidationFailed.WithDetails("name failed on required"), http.StatusBadRequest, "VALIDATION_FAILED", true},
		{"not found", domainerrors.ErrBusinessNotFound, http.StatusNotFound, "BUSINESS_NOT_FOUND", false},
		{"conflict", domainerrors.ErrBusinessAlreadyExists.WithDetails("FSSAI/1"), http.StatusConflict, "BUSINESS_ALREADY_EXISTS", true},
		{"upload", errors.Wrap(domainerrors.ErrUploadFailed.WithDetails("logo"), "business logo"), http.StatusInternalServerError, "UPLOAD_FAILED", false},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t)
			f.signedIn()
			id := uuid.New()
			f.businessUC.EXPECT().GetBusiness(mock.Anything, id).Return(nil, tt.err)

			rec, env := f.do(t, http.MethodGet, "/business/"+id.String(), nil, "")

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Equal(t, tt.hasCause, env.Error.Details != "")
			assert.NotEmpty(t, env.Meta.RequestID)
		})
	}
}

func TestRouter_BusinessInvalidID(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()

	rec, env := f.do(t, http.MethodGet, "/business/42", nil, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouter_CreateBusinessPassesCaller(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	f.businessUC.EXPECT().
		CreateBusiness(mock.Anything, f.user, mock.MatchedBy(func(b *entity.Business) bool {
			return b.Name == "Spice Route"
		})).
		Return(&entity.Business{ID: uuid.New(), Name: "Spice Route", OwnerID: f.user.ID}, nil)

	rec, env := f.doJSON(t, http.MethodPost, "/business", map[string]string{"name": "Spice Route"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Business created successfully", env.Message)
}

func TestRouter_BusinessByLicense(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	f.businessUC.EXPECT().GetBusinessByLicense(mock.Anything, "FSSAI-001").
		Return(&entity.Business{ID: uuid.New(), LicenseNumber: "FSSAI-001"}, nil)

	rec, _ := f.do(t, http.MethodGet, "/business/license/FSSAI-001", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_BusinessQRCode(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	id := uuid.New()
	f.businessUC.EXPECT().VerificationQR(mock.Anything, id).Return([]byte("\x89PNG"), nil)

	rec, _ := f.do(t, http.MethodGet, "/business/"+id.String()+"/qrcode", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestRouter_RecordCreateStampsCaller(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	businessID := uuid.New()
	f.inspections.EXPECT().
		Create(mock.Anything, f.user, mock.MatchedBy(func(in *entity.Inspection) bool {
			return in.BusinessID == businessID && in.Rating == 4
		})).
		Return(&entity.Inspection{RecordBase: entity.RecordBase{ID: uuid.New(), BusinessID: businessID}, Rating: 4}, nil)

	rec, env := f.doJSON(t, http.MethodPost, "/inspection", map[string]any{
		"business_id": businessID,
		"date":        "2026-01-02T00:00:00Z",
		"rating":      4,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Inspection created successfully", env.Message)
}

func TestRouter_RecordListReturnsEmptyArray(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	businessID := uuid.New()
	f.inspections.EXPECT().ListByBusiness(mock.Anything, businessID).Return([]*entity.Inspection{}, nil)

	rec, env := f.do(t, http.MethodGet, "/inspections/"+businessID.String(), nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestRouter_SingletonRoutes(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	businessID := uuid.New()
	details := &entity.ManufacturingDetails{
		RecordBase:           entity.RecordBase{ID: uuid.New(), BusinessID: businessID},
		ProductionCapacity:   "500 kg/day",
		ManufacturingLicense: "ML-1",
	}
	f.manufacturing.EXPECT().GetByBusiness(mock.Anything, businessID).Return(details, nil)
	f.manufacturing.EXPECT().UpdateByBusiness(mock.Anything, businessID, mock.Anything).Return(details, nil)
	f.packaging.EXPECT().GetByBusiness(mock.Anything, businessID).Return(nil, domainerrors.ErrNotFound.WithDetails("packaging_compliance"))

	rec, _ := f.do(t, http.MethodGet, "/manufacturing-details/"+businessID.String(), nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := f.doJSON(t, http.MethodPut, "/manufacturing-details/"+businessID.String(), details)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Manufacturing details updated successfully", env.Message)

	rec, _ = f.do(t, http.MethodGet, "/packaging-compliance/"+businessID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_NonUpdatableKindHasNoPut(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()

	rec, _ := f.doJSON(t, http.MethodPut, "/inspections/"+uuid.NewString(), map[string]any{})

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_Onboard(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	businessID := uuid.New()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range map[string]string{
		"business_name":             "Spice Route",
		"address":                   "12 Market Rd",
		"phone":                     "+15550002222",
		"email":                     "owner@spice.test",
		"license_number":            "FSSAI/2024/001",
		"team_member_names":         "Ravi, Meena",
		"team_member_roles":         `["Chef", "Server"]`,
		"facility_photo_area_names": "",
	} {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, file := range []struct{ field, name string }{
		{"business_logo", "logo.png"},
		{"owner_photo", "owner.jpg"},
		{"team_member_photos", "ravi.jpg"},
		{"team_member_photos", "meena.jpg"},
	} {
		part, err := w.CreateFormFile(file.field, file.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	var captured *usecase.OnboardingInput
	f.onboardingUC.EXPECT().
		Onboard(mock.Anything, f.user, mock.MatchedBy(func(in *usecase.OnboardingInput) bool {
			captured = in

			return true
		})).
		Return(&usecase.OnboardingOutput{BusinessID: businessID, TeamMembers: 2}, nil)

	rec, env := f.do(t, http.MethodPost, "/business/onboard", body, w.FormDataContentType())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Business onboarded successfully", env.Message)
	assert.Contains(t, string(env.Data), `"businessId":"`+businessID.String()+`"`)

	require.NotNil(t, captured)
	assert.Equal(t, "Spice Route", captured.BusinessName)
	assert.Equal(t, []string{"Ravi", "Meena"}, captured.TeamMemberNames)
	assert.Equal(t, []string{"Chef", "Server"}, captured.TeamMemberRoles)
	assert.Empty(t, captured.FacilityAreaNames)
	assert.Empty(t, captured.FacilityPhotos)
	require.Len(t, captured.TeamMemberPhotos, 2)
	assert.Equal(t, "meena.jpg", captured.TeamMemberPhotos[1].Filename)
	require.NotNil(t, captured.Logo)
	assert.Nil(t, captured.LiquorLicense)

	rc, err := captured.Logo.Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "logo.png", string(content))
}

func TestRouter_OnboardRejectsMalformedList(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("team_member_names", `["Ravi"`))
	require.NoError(t, w.Close())

	rec, env := f.do(t, http.MethodPost, "/business/onboard", body, w.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Details, "team_member_names")
}

func TestRouter_OnboardManufacturing(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	businessID := uuid.New()
	f.onboardingUC.EXPECT().
		OnboardManufacturing(mock.Anything, mock.MatchedBy(func(in *usecase.ManufacturingOnboardingInput) bool {
			return in.BusinessID == businessID && in.Details != nil && in.Details.ManufacturingLicense == "ML-1"
		})).
		Return(&entity.ManufacturingDetails{RecordBase: entity.RecordBase{ID: uuid.New(), BusinessID: businessID}}, nil)

	rec, _ := f.doJSON(t, http.MethodPost, "/business/manufacturing/onboard", map[string]any{
		"businessId": businessID,
		"manufacturing_details": map[string]string{
			"production_capacity":   "500 kg/day",
			"manufacturing_license": "ML-1",
		},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_Devices(t *testing.T) {
	f := createTestAPI(t)
	f.signedIn()
	deviceID := uuid.New()
	f.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, f.user.ID, &usecase.DeviceInfo{FCMToken: "fcm", DeviceID: "pixel", Platform: "android"}).
		Return(&entity.UserDevice{ID: deviceID, UserID: f.user.ID, FCMToken: "fcm"}, nil)
	f.deviceUC.EXPECT().DeactivateDevice(mock.Anything, f.user.ID, deviceID).
		Return(domainerrors.ErrForbidden.WithDetails("device belongs to another user"))

	rec, _ := f.doJSON(t, http.MethodPost, "/devices", map[string]string{
		"fcm_token": "fcm",
		"device_id": "pixel",
		"platform":  "android",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := f.do(t, http.MethodDelete, "/devices/"+deviceID.String(), nil, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, env.Error.Details)
}

func TestRouter_FilesArePublic(t *testing.T) {
	f := createTestAPI(t)
	f.blobs.EXPECT().Open(mock.Anything, "uploads/business_1_logo.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)

	req := httptest.NewRequest(http.MethodGet, "/files/uploads/business_1_logo.png", nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestRouter_FilesRejectTraversal(t *testing.T) {
	f := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/files/uploads/../secret", nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
