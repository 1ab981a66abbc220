package postgres

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

var (
	uuidType = reflect.TypeOf(uuid.UUID{})
	timeType = reflect.TypeOf(time.Time{})
)

// fillFields sets every field reachable from v to a distinct non-zero value.
func fillFields(t *testing.T, v reflect.Value, seq *int) {
	t.Helper()
	*seq++

	switch {
	case v.Type() == uuidType:
		v.Set(reflect.ValueOf(uuid.New()))
	case v.Type() == timeType:
		v.Set(reflect.ValueOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(*seq) * time.Hour)))
	default:
		switch v.Kind() {
		case reflect.Struct:
			for i := range v.NumField() {
				fillFields(t, v.Field(i), seq)
			}
		case reflect.Pointer:
			v.Set(reflect.New(v.Type().Elem()))
			fillFields(t, v.Elem(), seq)
		case reflect.String:
			v.SetString(fmt.Sprintf("value-%d", *seq))
		case reflect.Int, reflect.Int32, reflect.Int64:
			v.SetInt(int64(*seq))
		case reflect.Float32, reflect.Float64:
			v.SetFloat(float64(*seq) + 0.5)
		case reflect.Bool:
			v.SetBool(true)
		case reflect.Slice:
			v.Set(reflect.MakeSlice(v.Type(), 2, 2))
			for i := range v.Len() {
				fillFields(t, v.Index(i), seq)
			}
		default:
			t.Fatalf("unsupported field kind %s", v.Kind())
		}
	}
}

func assertRoundTrip[E any, M any](t *testing.T, toDomain func(*M) *E, fromDomain func(*E) *M) {
	t.Helper()

	want := new(E)
	seq := 0
	fillFields(t, reflect.ValueOf(want).Elem(), &seq)

	got := toDomain(fromDomain(want))
	assert.Equal(t, want, got)
}

func TestMappers_RoundTripEveryField(t *testing.T) {
	cases := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"business", func(t *testing.T) { assertRoundTrip(t, toBusinessDomain, fromBusinessDomain) }},
		{"inspection", func(t *testing.T) { assertRoundTrip(t, toInspectionDomain, fromInspectionDomain) }},
		{"hygiene rating", func(t *testing.T) { assertRoundTrip(t, toHygieneRatingDomain, fromHygieneRatingDomain) }},
		{"lab report", func(t *testing.T) { assertRoundTrip(t, toLabReportDomain, fromLabReportDomain) }},
		{"certification", func(t *testing.T) { assertRoundTrip(t, toCertificationDomain, fromCertificationDomain) }},
		{"team member", func(t *testing.T) { assertRoundTrip(t, toTeamMemberDomain, fromTeamMemberDomain) }},
		{"facility photo", func(t *testing.T) { assertRoundTrip(t, toFacilityPhotoDomain, fromFacilityPhotoDomain) }},
		{"review", func(t *testing.T) { assertRoundTrip(t, toReviewDomain, fromReviewDomain) }},
		{"manufacturing details", func(t *testing.T) {
			assertRoundTrip(t, toManufacturingDetailsDomain, fromManufacturingDetailsDomain)
		}},
		{"batch production", func(t *testing.T) { assertRoundTrip(t, toBatchProductionDomain, fromBatchProductionDomain) }},
		{"raw material supplier", func(t *testing.T) {
			assertRoundTrip(t, toRawMaterialSupplierDomain, fromRawMaterialSupplierDomain)
		}},
		{"packaging compliance", func(t *testing.T) {
			assertRoundTrip(t, toPackagingComplianceDomain, fromPackagingComplianceDomain)
		}},
	}

	for _, tt := range cases {
		t.Run(tt.name, tt.check)
	}
}

func TestBusinessMapper_OptionalLicensesStayNil(t *testing.T) {
	business := &entity.Business{
		ID:            uuid.New(),
		Name:          "Green Leaf Bistro",
		LicenseNumber: "FSSAI/2024/001",
		OwnerID:       uuid.New(),
	}

	got := toBusinessDomain(fromBusinessDomain(business))
	assert.Nil(t, got.LiquorLicense)
	assert.Nil(t, got.MusicLicense)
	assert.Equal(t, business, got)
}

// newFailingDB returns a connectionless gorm handle whose queries and deletes fail with cause.
func newFailingDB(t *testing.T, cause error) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	fail := func(tx *gorm.DB) { _ = tx.AddError(cause) }
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:fail_query", fail))
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_delete", fail))

	return db
}

func TestRecordRepository_ReadAndDeleteFailuresArePersistenceErrors(t *testing.T) {
	cause := errors.New("connection reset by peer")
	repo := NewReviewRepository(newFailingDB(t, cause))
	ctx := context.Background()

	_, listErr := repo.FindByBusiness(ctx, uuid.New())
	_, findErr := repo.FindOneByBusiness(ctx, uuid.New())
	deleteErr := repo.Delete(ctx, uuid.New())

	for name, err := range map[string]error{"list": listErr, "find": findErr, "delete": deleteErr} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, err)
			assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
			assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestBusinessRepository_LookupFailureIsPersistenceError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	repo := NewBusinessRepository(newFailingDB(t, cause))

	_, err := repo.FindByLicenseNumber(context.Background(), "FSSAI/2024/001")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
	assert.ErrorIs(t, err, cause)
}
