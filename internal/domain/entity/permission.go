package entity

// Permisos nombrados (tabla roles_permisos). Formato: <módulo>.<acción>.
const (
	PermInventoryRead   = "inventario.ver"
	PermInventoryWrite  = "inventario.gestionar"
	PermRoundsRead      = "rondas.ver"
	PermRoundsWrite     = "rondas.gestionar"
	PermClientsRead     = "clientes.ver"
	PermClientsWrite    = "clientes.gestionar"
	PermStaffRead       = "personal.ver"       // turnos, subpuestos, novedades
	PermStaffWrite      = "personal.gestionar" // turnos, subpuestos, novedades
	PermCatalogsRead    = "catalogos.ver"      // eps, salarios
	PermCatalogsWrite   = "catalogos.gestionar"
	PermIncidentsRead   = "incidentes.ver"
	PermIncidentsReport = "incidentes.reportar"
	PermIncidentsWrite  = "incidentes.gestionar"
)

// Features conocidas por la API.
const (
	FeatureStockReportPDF = "reporte_inventario_pdf"
)
