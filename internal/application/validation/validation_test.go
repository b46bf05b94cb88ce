package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
)

func TestRecordMovement(t *testing.T) {
	ok := dto.RecordMovementRequest{LocationID: 1, ItemVariantID: 5, Type: "consumo", Quantity: 4}
	assert.True(t, validation.RecordMovement(ok).Valid)

	cases := map[string]struct {
		mutate func(*dto.RecordMovementRequest)
		field  string
	}{
		"sin puesto":              {func(r *dto.RecordMovementRequest) { r.LocationID = 0 }, "puesto_id"},
		"sin elemento":            {func(r *dto.RecordMovementRequest) { r.ItemVariantID = 0 }, "item_variante_id"},
		"tipo invalido":           {func(r *dto.RecordMovementRequest) { r.Type = "venta" }, "tipo_movimiento"},
		"cantidad cero":           {func(r *dto.RecordMovementRequest) { r.Quantity = 0 }, "cantidad"},
		"cantidad fuera de rango": {func(r *dto.RecordMovementRequest) { r.Quantity = 3_000_000_000 }, "cantidad"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := ok
			tc.mutate(&in)
			res := validation.RecordMovement(in)
			assert.False(t, res.Valid)
			assert.Equal(t, tc.field, res.Field)
			assert.True(t, errors.Is(res.Err(), domain.ErrInvalidInput))
		})
	}
}

func TestResultErr_ValidoEsNil(t *testing.T) {
	assert.NoError(t, validation.OK().Err())
}

func TestCreateCheckpoint(t *testing.T) {
	lat := 4.65
	badLng := 200.0
	assert.True(t, validation.CreateCheckpoint(dto.CreateCheckpointRequest{RoundID: 1, Order: 1, Name: "Portería", Latitude: &lat}).Valid)
	assert.Equal(t, "orden", validation.CreateCheckpoint(dto.CreateCheckpointRequest{RoundID: 1, Order: 0, Name: "x"}).Field)
	assert.Equal(t, "longitud", validation.CreateCheckpoint(dto.CreateCheckpointRequest{RoundID: 1, Order: 2, Name: "x", Longitude: &badLng}).Field)
}

func TestFeatureKey(t *testing.T) {
	assert.True(t, validation.FeatureKey("rondas.qr_obligatorio").Valid)
	assert.False(t, validation.FeatureKey("Con Espacios").Valid)
	assert.False(t, validation.FeatureKey("").Valid)
}

func TestUpdateFeatureFlag_PatchVacio(t *testing.T) {
	assert.False(t, validation.UpdateFeatureFlag(dto.UpdateFeatureFlagRequest{}).Valid)
	on := true
	assert.True(t, validation.UpdateFeatureFlag(dto.UpdateFeatureFlagRequest{Enabled: &on}).Valid)
}

func TestCreateShift(t *testing.T) {
	in := dto.CreateShiftRequest{EmployeeID: 1, SubPostID: 2, Date: time.Now(), StartTime: "06:00", EndTime: "18:00", Type: "diurno"}
	assert.True(t, validation.CreateShift(in).Valid)

	in.EndTime = "24:00"
	assert.Equal(t, "hora_fin", validation.CreateShift(in).Field)
}

func TestCreateSalary(t *testing.T) {
	assert.True(t, validation.CreateSalary(dto.CreateSalaryRequest{Name: "Guarda base", Amount: decimal.NewFromInt(1_423_500), Year: 2026}).Valid)
	assert.Equal(t, "valor", validation.CreateSalary(dto.CreateSalaryRequest{Name: "x", Amount: decimal.Zero, Year: 2026}).Field)
}

func TestCreateClient(t *testing.T) {
	assert.True(t, validation.CreateClient(dto.CreateClientRequest{NIT: "900123456-7", BusinessName: "Conjunto Los Pinos"}).Valid)
	assert.Equal(t, "nit", validation.CreateClient(dto.CreateClientRequest{NIT: "abc", BusinessName: "x"}).Field)
}

func TestRegister(t *testing.T) {
	assert.True(t, validation.Register(dto.RegisterRequest{Email: "a@b.co", Password: "12345678", Role: "supervisor"}).Valid)
	assert.Equal(t, "password", validation.Register(dto.RegisterRequest{Email: "a@b.co", Password: "123"}).Field)
	assert.Equal(t, "role", validation.Register(dto.RegisterRequest{Email: "a@b.co", Password: "12345678", Role: "root"}).Field)
}
