package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/auth"
	"github.com/jhoicas/Vigilancia-api/internal/application/features"
	"github.com/jhoicas/Vigilancia-api/internal/application/inventory"
	"github.com/jhoicas/Vigilancia-api/internal/application/rounds"
	"github.com/jhoicas/Vigilancia-api/internal/application/usecase"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	RecordMovement *inventory.RecordMovementUseCase
	StockUC        *inventory.StockUseCase
	RoundsUC       *rounds.UseCase
	Features       *features.Service
	ClientUC       *usecase.ClientUseCase
	ContractUC     *usecase.ContractUseCase
	EPSUC          *usecase.EPSUseCase
	SalaryUC       *usecase.SalaryUseCase
	ShiftUC        *usecase.ShiftUseCase
	SubPostUC      *usecase.SubPostUseCase
	IncidentUC     *usecase.IncidentUseCase
	NoveltyUC      *usecase.NoveltyUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Inventario por puesto
	invHandler := NewInventoryHandler(deps.RecordMovement, deps.StockUC)
	inv := protected.Group("/inventario-puesto")
	inv.Get("/", RequirePermission(entity.PermInventoryRead), invHandler.ListByLocation)
	inv.Get("/bajo-minimo", RequirePermission(entity.PermInventoryRead), invHandler.BelowMinimum)
	inv.Get("/movimientos", RequirePermission(entity.PermInventoryRead), invHandler.ListMovements)
	inv.Put("/minimo", RequirePermission(entity.PermInventoryWrite), invHandler.SetMinimum)
	inv.Post("/movimiento", RequirePermission(entity.PermInventoryWrite), invHandler.RecordMovement)
	inv.Get("/:puestoID/items/:itemID", RequirePermission(entity.PermInventoryRead), invHandler.GetStock)
	inv.Get("/:puestoID/reporte",
		RequireFeature(entity.FeatureStockReportPDF, deps.Features),
		RequirePermission(entity.PermInventoryRead),
		invHandler.StockReport,
	)

	// Rondas: las rutas de puntos van antes de /:id
	roundHandler := NewRoundHandler(deps.RoundsUC)
	rnd := protected.Group("/rondas-definicion")
	rnd.Post("/puntos", RequirePermission(entity.PermRoundsWrite), roundHandler.AddCheckpoint)
	rnd.Put("/puntos/:puntoID", RequirePermission(entity.PermRoundsWrite), roundHandler.UpdateCheckpoint)
	rnd.Delete("/puntos/:puntoID", RequirePermission(entity.PermRoundsWrite), roundHandler.DeleteCheckpoint)
	rnd.Get("/", RequirePermission(entity.PermRoundsRead), roundHandler.List)
	rnd.Post("/", RequirePermission(entity.PermRoundsWrite), roundHandler.Create)
	rnd.Get("/:id", RequirePermission(entity.PermRoundsRead), roundHandler.GetByID)
	rnd.Put("/:id", RequirePermission(entity.PermRoundsWrite), roundHandler.Update)
	rnd.Delete("/:id", RequirePermission(entity.PermRoundsWrite), roundHandler.Delete)
	rnd.Get("/:id/puntos", RequirePermission(entity.PermRoundsRead), roundHandler.ListCheckpoints)

	// Feature flags: consulta para cualquier usuario autenticado, administración solo admin
	featHandler := NewFeatureHandler(deps.Features)
	feat := protected.Group("/features")
	feat.Get("/:key/enabled", featHandler.IsEnabled)
	feat.Get("/", RequireRole(entity.RoleAdmin), featHandler.List)
	feat.Post("/", RequireRole(entity.RoleAdmin), featHandler.Create)
	feat.Get("/:key", RequireRole(entity.RoleAdmin), featHandler.Get)
	feat.Patch("/:key", RequireRole(entity.RoleAdmin), featHandler.Update)
	feat.Delete("/:key", RequireRole(entity.RoleAdmin), featHandler.Delete)

	registerCRUD(protected.Group("/clientes"), NewClientHandler(deps.ClientUC), entity.PermClientsRead, entity.PermClientsWrite)
	registerCRUD(protected.Group("/contratos"), NewContractHandler(deps.ContractUC), entity.PermClientsRead, entity.PermClientsWrite)
	registerCRUD(protected.Group("/eps"), NewEPSHandler(deps.EPSUC), entity.PermCatalogsRead, entity.PermCatalogsWrite)
	registerCRUD(protected.Group("/salarios"), NewSalaryHandler(deps.SalaryUC), entity.PermCatalogsRead, entity.PermCatalogsWrite)
	registerCRUD(protected.Group("/turnos"), NewShiftHandler(deps.ShiftUC), entity.PermStaffRead, entity.PermStaffWrite)
	registerCRUD(protected.Group("/novedades"), NewNoveltyHandler(deps.NoveltyUC), entity.PermStaffRead, entity.PermStaffWrite)

	subPostHandler := NewSubPostHandler(deps.SubPostUC)
	sub := protected.Group("/subpuestos")
	sub.Delete("/asignaciones/:asignacionID", RequirePermission(entity.PermStaffWrite), subPostHandler.EndAssignment)
	sub.Get("/:id/asignaciones", RequirePermission(entity.PermStaffRead), subPostHandler.ListAssignments)
	sub.Post("/:id/asignaciones", RequirePermission(entity.PermStaffWrite), subPostHandler.AssignGuard)
	registerCRUD(sub, subPostHandler, entity.PermStaffRead, entity.PermStaffWrite)

	// Incidentes: los guardas reportan, supervisión gestiona
	incHandler := NewIncidentHandler(deps.IncidentUC)
	inc := protected.Group("/incidentes")
	inc.Get("/", RequirePermission(entity.PermIncidentsRead), incHandler.List)
	inc.Post("/", RequirePermission(entity.PermIncidentsReport, entity.PermIncidentsWrite), incHandler.Create)
	inc.Get("/:id", RequirePermission(entity.PermIncidentsRead), incHandler.GetByID)
	inc.Put("/:id", RequirePermission(entity.PermIncidentsWrite), incHandler.Update)
	inc.Delete("/:id", RequirePermission(entity.PermIncidentsWrite), incHandler.Delete)
}

// crudHandler handlers de un recurso con las cinco operaciones convencionales.
type crudHandler interface {
	List(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func registerCRUD(g fiber.Router, h crudHandler, readPerm, writePerm string) {
	g.Get("/", RequirePermission(readPerm), h.List)
	g.Post("/", RequirePermission(writePerm), h.Create)
	g.Get("/:id", RequirePermission(readPerm), h.GetByID)
	g.Put("/:id", RequirePermission(writePerm), h.Update)
	g.Delete("/:id", RequirePermission(writePerm), h.Delete)
}
