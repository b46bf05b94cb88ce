// Package validation contiene validadores explícitos de las entradas HTTP.
// Cada validador devuelve un Result tipado (válido o campo + motivo) y no depende del router.
package validation

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/inventory"
)

// Result resultado de una validación.
type Result struct {
	Valid  bool
	Field  string
	Reason string
}

// OK resultado válido.
func OK() Result { return Result{Valid: true} }

// Fail resultado inválido para un campo.
func Fail(field, reason string) Result { return Result{Field: field, Reason: reason} }

// Err convierte el resultado en *domain.ValidationError (nil si es válido).
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return domain.Invalid(r.Field, r.Reason)
}

// first devuelve el primer resultado inválido o OK.
func first(results ...Result) Result {
	for _, r := range results {
		if !r.Valid {
			return r
		}
	}
	return OK()
}

func required(field, v string) Result {
	if strings.TrimSpace(v) == "" {
		return Fail(field, "es requerido")
	}
	return OK()
}

func positiveID(field string, v int64) Result {
	if v <= 0 {
		return Fail(field, "es requerido")
	}
	return OK()
}

var (
	hhmm       = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	flagKeyRe  = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{0,99}$`)
	nitRe      = regexp.MustCompile(`^\d{5,15}(-\d)?$`)
	severities = map[string]bool{"baja": true, "media": true, "alta": true}
	roles      = map[string]bool{
		entity.RoleAdmin: true, entity.RoleSupervisor: true, entity.RoleOperador: true, entity.RoleGuarda: true,
	}
)

// RecordMovement valida el body de registro de movimiento de inventario.
func RecordMovement(in dto.RecordMovementRequest) Result {
	r := first(
		positiveID("puesto_id", in.LocationID),
		positiveID("item_variante_id", in.ItemVariantID),
	)
	if !r.Valid {
		return r
	}
	if !inventory.IsKnownType(in.Type) {
		return Fail("tipo_movimiento", "debe ser uno de: "+strings.Join(entity.MovementTypes, ", "))
	}
	if in.Quantity <= 0 {
		return Fail("cantidad", "debe ser mayor que cero")
	}
	if in.Quantity > inventory.MaxQuantity {
		return Fail("cantidad", "supera el máximo admitido")
	}
	return OK()
}

// SetMinimum valida el body de cantidad mínima.
func SetMinimum(in dto.SetMinimumRequest) Result {
	r := first(
		positiveID("puesto_id", in.LocationID),
		positiveID("item_variante_id", in.ItemVariantID),
	)
	if !r.Valid {
		return r
	}
	if in.MinimumQuantity < 0 {
		return Fail("cantidad_minima", "no puede ser negativa")
	}
	if in.MinimumQuantity > inventory.MaxQuantity {
		return Fail("cantidad_minima", "supera el máximo admitido")
	}
	return OK()
}

// CreateRound valida la creación de una ronda.
func CreateRound(in dto.CreateRoundRequest) Result {
	return required("nombre", in.Name)
}

// CreateCheckpoint valida la creación de un punto de ronda.
func CreateCheckpoint(in dto.CreateCheckpointRequest) Result {
	r := first(positiveID("ronda_id", in.RoundID), required("nombre", in.Name))
	if !r.Valid {
		return r
	}
	if in.Order < 1 {
		return Fail("orden", "debe ser mayor o igual a 1")
	}
	return coordinates(in.Latitude, in.Longitude, in.RadiusM)
}

// UpdateCheckpoint valida la edición de un punto de ronda.
func UpdateCheckpoint(in dto.UpdateCheckpointRequest) Result {
	if in.Order != nil && *in.Order < 1 {
		return Fail("orden", "debe ser mayor o igual a 1")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Fail("nombre", "no puede ser vacío")
	}
	radius := 0
	if in.RadiusM != nil {
		radius = *in.RadiusM
	}
	return coordinates(in.Latitude, in.Longitude, radius)
}

func coordinates(lat, lng *float64, radius int) Result {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return Fail("latitud", "fuera de rango")
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return Fail("longitud", "fuera de rango")
	}
	if radius < 0 {
		return Fail("radio_metros", "no puede ser negativo")
	}
	return OK()
}

// FeatureKey valida el formato de la clave de un flag.
func FeatureKey(key string) Result {
	if !flagKeyRe.MatchString(key) {
		return Fail("key", "solo minúsculas, dígitos, '_', '.' o '-' (máx. 100)")
	}
	return OK()
}

// UpdateFeatureFlag valida el patch de un flag.
func UpdateFeatureFlag(in dto.UpdateFeatureFlagRequest) Result {
	if in.Enabled == nil && in.Description == nil {
		return Fail("body", "se requiere al menos enabled o description")
	}
	return OK()
}

// Register valida el registro de usuario.
func Register(in dto.RegisterRequest) Result {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return Fail("email", "formato inválido")
	}
	if len(in.Password) < 8 {
		return Fail("password", "debe tener al menos 8 caracteres")
	}
	if in.Role != "" && !roles[in.Role] {
		return Fail("role", "rol desconocido")
	}
	return OK()
}

// Login valida las credenciales de login.
func Login(in dto.LoginRequest) Result {
	return first(required("email", in.Email), required("password", in.Password))
}

// CreateClient valida la creación de un cliente.
func CreateClient(in dto.CreateClientRequest) Result {
	r := first(required("nit", in.NIT), required("razon_social", in.BusinessName))
	if !r.Valid {
		return r
	}
	if !nitRe.MatchString(in.NIT) {
		return Fail("nit", "formato inválido")
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return Fail("email", "formato inválido")
		}
	}
	return OK()
}

// CreateContract valida la creación de un contrato.
func CreateContract(in dto.CreateContractRequest) Result {
	r := first(positiveID("cliente_id", in.ClientID), required("numero", in.Number))
	if !r.Valid {
		return r
	}
	if in.StartDate.IsZero() {
		return Fail("fecha_inicio", "es requerida")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return Fail("fecha_fin", "no puede ser anterior a fecha_inicio")
	}
	if in.Value.IsNegative() {
		return Fail("valor", "no puede ser negativo")
	}
	return OK()
}

// ContractStatus valida un estado de contrato.
func ContractStatus(s string) Result {
	switch s {
	case entity.ContractActive, entity.ContractSuspended, entity.ContractEnded:
		return OK()
	}
	return Fail("estado", "estado desconocido")
}

// CreateEPS valida la creación de una EPS.
func CreateEPS(in dto.CreateEPSRequest) Result {
	return first(required("nombre", in.Name), required("codigo", in.Code))
}

// CreateSalary valida la creación de una escala salarial.
func CreateSalary(in dto.CreateSalaryRequest) Result {
	if r := required("nombre", in.Name); !r.Valid {
		return r
	}
	if !in.Amount.IsPositive() {
		return Fail("valor", "debe ser mayor que cero")
	}
	if in.Year < 2000 || in.Year > 2100 {
		return Fail("vigencia", "año inválido")
	}
	return OK()
}

// CreateShift valida la creación de un turno.
func CreateShift(in dto.CreateShiftRequest) Result {
	r := first(positiveID("empleado_id", in.EmployeeID), positiveID("subpuesto_id", in.SubPostID))
	if !r.Valid {
		return r
	}
	if in.Date.IsZero() {
		return Fail("fecha", "es requerida")
	}
	if !hhmm.MatchString(in.StartTime) {
		return Fail("hora_inicio", "formato HH:MM")
	}
	if !hhmm.MatchString(in.EndTime) {
		return Fail("hora_fin", "formato HH:MM")
	}
	return ShiftType(in.Type)
}

// ShiftType valida el tipo de turno.
func ShiftType(t string) Result {
	switch t {
	case entity.ShiftDay, entity.ShiftNight, entity.ShiftRest:
		return OK()
	}
	return Fail("tipo", "debe ser diurno, nocturno o descanso")
}

// CreateSubPost valida la creación de un subpuesto.
func CreateSubPost(in dto.CreateSubPostRequest) Result {
	r := first(positiveID("puesto_id", in.PostID), required("nombre", in.Name))
	if !r.Valid {
		return r
	}
	if in.RequiredGuards < 1 {
		return Fail("guardas_requeridos", "debe ser mayor o igual a 1")
	}
	return OK()
}

// AssignGuard valida una asignación de guarda.
func AssignGuard(in dto.AssignGuardRequest) Result {
	return positiveID("empleado_id", in.EmployeeID)
}

// CreateIncident valida el reporte de un incidente.
func CreateIncident(in dto.CreateIncidentRequest) Result {
	r := first(positiveID("puesto_id", in.PostID), required("tipo", in.Type), required("descripcion", in.Description))
	if !r.Valid {
		return r
	}
	if !severities[in.Severity] {
		return Fail("gravedad", "debe ser baja, media o alta")
	}
	return OK()
}

// CreateNovelty valida la creación de una novedad.
func CreateNovelty(in dto.CreateNoveltyRequest) Result {
	r := first(positiveID("empleado_id", in.EmployeeID), required("tipo", in.Type))
	if !r.Valid {
		return r
	}
	if in.StartDate.IsZero() {
		return Fail("fecha_inicio", "es requerida")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return Fail("fecha_fin", "no puede ser anterior a fecha_inicio")
	}
	return OK()
}
