package http_test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/inventory"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Vigilancia-api/internal/interfaces/http"
)

// fakeInventory implementa los repos de stock y movimientos sobre mapas.
type fakeInventory struct {
	stock     map[repository.StockKey]entity.StockSnapshot
	movements []entity.MovementRecord
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{stock: map[repository.StockKey]entity.StockSnapshot{}}
}

func (f *fakeInventory) seed(loc, item int64, qty, min int) {
	k := repository.StockKey{LocationID: loc, ItemVariantID: item, Condition: entity.ConditionGood}
	f.stock[k] = entity.StockSnapshot{LocationID: loc, ItemVariantID: item, Condition: entity.ConditionGood, CurrentQuantity: qty, MinimumQuantity: min}
}

func (f *fakeInventory) Get(_ context.Context, key repository.StockKey) (*entity.StockSnapshot, error) {
	s, ok := f.stock[key]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeInventory) GetForUpdate(ctx context.Context, key repository.StockKey) (*entity.StockSnapshot, error) {
	return f.Get(ctx, key)
}

func (f *fakeInventory) Upsert(_ context.Context, s *entity.StockSnapshot) error {
	f.stock[repository.StockKey{LocationID: s.LocationID, ItemVariantID: s.ItemVariantID, Condition: s.Condition}] = *s
	return nil
}

func (f *fakeInventory) ListByLocation(_ context.Context, loc int64) ([]*entity.StockSnapshot, error) {
	var out []*entity.StockSnapshot
	for _, s := range f.stock {
		if s.LocationID == loc {
			s := s
			out = append(out, &s)
		}
	}
	return out, nil
}

func (f *fakeInventory) ListBelowMinimum(_ context.Context) ([]*entity.StockSnapshot, error) {
	return nil, nil
}

func (f *fakeInventory) SetMinimum(_ context.Context, key repository.StockKey, min int) error {
	s := f.stock[key]
	s.MinimumQuantity = min
	f.stock[key] = s
	return nil
}

func (f *fakeInventory) Append(_ context.Context, m *entity.MovementRecord) error {
	m.ID = int64(len(f.movements) + 1)
	f.movements = append(f.movements, *m)
	return nil
}

func (f *fakeInventory) List(_ context.Context, _ repository.MovementFilter) ([]*entity.MovementRecord, error) {
	out := make([]*entity.MovementRecord, 0, len(f.movements))
	for i := range f.movements {
		out = append(out, &f.movements[i])
	}
	return out, nil
}

type fakeTx struct{ inv *fakeInventory }

func (t fakeTx) Run(_ context.Context, fn func(repository.MovementRepository, repository.StockRepository) error) error {
	return fn(t.inv, t.inv)
}

func inventoryApp(inv *fakeInventory) *fiber.App {
	h := apphttp.NewInventoryHandler(
		inventory.NewRecordMovementUseCase(fakeTx{inv: inv}),
		inventory.NewStockUseCase(inv, inv, nil),
	)
	app := fiber.New()
	g := app.Group("/api/inventario-puesto", apphttp.AuthMiddleware(testJWTSecret))
	g.Get("/", apphttp.RequirePermission(entity.PermInventoryRead), h.ListByLocation)
	g.Post("/movimiento", apphttp.RequirePermission(entity.PermInventoryWrite), h.RecordMovement)
	g.Get("/:puestoID/items/:itemID", apphttp.RequirePermission(entity.PermInventoryRead), h.GetStock)
	return app
}

func postMovement(t *testing.T, app *fiber.App, auth, body string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/inventario-puesto/movimiento", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var e dto.ErrorResponse
	if resp.StatusCode >= 400 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	}
	return resp, e
}

func TestRecordMovementHandler_Consumo(t *testing.T) {
	inv := newFakeInventory()
	inv.seed(1, 5, 10, 0)
	app := inventoryApp(inv)

	resp, _ := postMovement(t, app, tokenFor(t, "operador", entity.PermInventoryWrite),
		`{"puesto_id":1,"item_variante_id":5,"tipo_movimiento":"consumo","cantidad":4}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.RecordMovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 6, out.NewQuantity)
	assert.Equal(t, "consumo", out.Movement.Type)
	assert.Equal(t, testUserID, out.Movement.ResponsiblePartyID, "el responsable sale del token")
	assert.Equal(t, entity.ConditionGood, out.Movement.Condition)
}

func TestRecordMovementHandler_StockInsuficiente(t *testing.T) {
	inv := newFakeInventory()
	inv.seed(1, 5, 6, 0)
	app := inventoryApp(inv)

	resp, e := postMovement(t, app, tokenFor(t, "operador", entity.PermInventoryWrite),
		`{"puesto_id":1,"item_variante_id":5,"tipo_movimiento":"consumo","cantidad":10}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)
	assert.Contains(t, e.Message, "10")
	assert.Contains(t, e.Message, "6")
	assert.Empty(t, inv.movements, "no debe quedar movimiento registrado")
	assert.Equal(t, 6, inv.stock[repository.StockKey{LocationID: 1, ItemVariantID: 5, Condition: entity.ConditionGood}].CurrentQuantity)
}

func TestRecordMovementHandler_Validacion(t *testing.T) {
	app := inventoryApp(newFakeInventory())
	cases := map[string]string{
		"cantidad cero":   `{"puesto_id":1,"item_variante_id":5,"tipo_movimiento":"entrega","cantidad":0}`,
		"tipo invalido":   `{"puesto_id":1,"item_variante_id":5,"tipo_movimiento":"regalo","cantidad":1}`,
		"puesto faltante": `{"item_variante_id":5,"tipo_movimiento":"entrega","cantidad":1}`,
		"cantidad enorme": `{"puesto_id":1,"item_variante_id":5,"tipo_movimiento":"entrega","cantidad":3000000000}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, e := postMovement(t, app, tokenFor(t, "admin"), body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "VALIDATION", e.Code)
		})
	}
}

func TestRecordMovementHandler_CuerpoInvalido(t *testing.T) {
	resp, e := postMovement(t, inventoryApp(newFakeInventory()), tokenFor(t, "admin"), `{"puesto_id":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", e.Code)
}

func TestRecordMovementHandler_SinPermiso(t *testing.T) {
	resp, e := postMovement(t, inventoryApp(newFakeInventory()), tokenFor(t, "guarda", entity.PermInventoryRead),
		`{"puesto_id":1,"item_variante_id":5,"tipo_movimiento":"entrega","cantidad":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", e.Code)
}

func TestListByLocationHandler(t *testing.T) {
	inv := newFakeInventory()
	inv.seed(3, 7, 2, 5)
	app := inventoryApp(inv)

	resp := doRequest(t, app, "/api/inventario-puesto?puesto_id=3", tokenFor(t, "guarda", entity.PermInventoryRead))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.StockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].CurrentQuantity)
	assert.True(t, out[0].BelowMinimum)
}

func TestListByLocationHandler_SinPuesto(t *testing.T) {
	resp := doRequest(t, inventoryApp(newFakeInventory()), "/api/inventario-puesto", tokenFor(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetStockHandler(t *testing.T) {
	inv := newFakeInventory()
	inv.seed(3, 7, 9, 2)
	app := inventoryApp(inv)
	auth := tokenFor(t, "guarda", entity.PermInventoryRead)

	resp := doRequest(t, app, "/api/inventario-puesto/3/items/7", auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 9, out.CurrentQuantity)
	assert.False(t, out.BelowMinimum)

	missing := doRequest(t, app, "/api/inventario-puesto/3/items/8", auth)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestRecordMovementHandler_ExistenciaDesborda(t *testing.T) {
	inv := newFakeInventory()
	inv.seed(1, 5, math.MaxInt32-1, 0)
	app := inventoryApp(inv)

	resp, e := postMovement(t, app, tokenFor(t, "admin"),
		`{"puesto_id":1,"item_variante_id":5,"tipo_movimiento":"entrega","cantidad":2}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Empty(t, inv.movements)
}
