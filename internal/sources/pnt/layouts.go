package pnt

import (
	"github.com/tidwall/gjson"

	"procnorm/internal/transform"
	"procnorm/pkg/lexical"
)

type fieldKind int

const (
	textField fieldKind = iota
	// nameField joins every present input with a space.
	nameField
	// moneyField reads the first present input; absent or malformed is 0.
	moneyField
	// dateField reads the first present DD/MM/YYYY input; absent is null.
	dateField
)

type field struct {
	out  string
	in   []string
	kind fieldKind
}

func (f field) read(record gjson.Result) any {
	switch f.kind {
	case nameField:
		return joinedText(record, f.in)
	case moneyField:
		for _, key := range f.in {
			if v := record.Get(key); v.Exists() {
				return transform.MoneyOrZero(v)
			}
		}

		return 0.0
	case dateField:
		return lexical.ParseSlashDate(firstText(record, f.in))
	default:
		return firstText(record, f.in)
	}
}

func text(out string, in ...string) field {
	return field{out: out, in: in, kind: textField}
}

func name(out string, in ...string) field {
	return field{out: out, in: in, kind: nameField}
}

func money(out string, in ...string) field {
	return field{out: out, in: in, kind: moneyField}
}

func date(out string, in ...string) field {
	return field{out: out, in: in, kind: dateField}
}

var contractFields = []field{
	text("numero_contrato", "numerocontrato", "numerodecontrato"),
	text("objeto", "objetocontrato", "objeto"),
	text("procedimiento", "tipoprocedimiento", "procedimiento"),
	text("materia", "materia"),
	name("proveedor", "razonsocial", "nombre", "primerapellido", "segundoapellido"),
	text("rfc", "rfc"),
	text("area", "areacontratante", "arearesponsable"),
	date("fecha_contrato", "fechacontrato", "fechadecontrato"),
	date("fecha_inicio", "fechainicio", "fechainicioplazo"),
	date("fecha_termino", "fechatermino", "fechaterminoplazo"),
	money("monto_sin_impuestos", "montosinimpuestos"),
	money("monto", "montototal", "montoconimpuestos"),
	text("moneda", "moneda", "tipomoneda"),
	text("hipervinculo", "hipervinculocontrato", "hipervinculodocumento"),
	text("status", "estatus"),
}

var directoryFields = []field{
	name("nombre", "nombre", "primerapellido", "segundoapellido"),
	text("cargo", "denominacioncargo", "cargo"),
	text("puesto", "denominacionpuesto", "clavepuesto"),
	text("area", "areaadscripcion", "area"),
	date("fecha_alta", "fechaalta", "fechaaltacargo"),
	text("email", "correoelectronico", "correo"),
	text("telefono", "telefono", "numerotelefono"),
	text("domicilio", "domicilio", "nombrevialidad"),
}

var salaryFields = []field{
	name("nombre", "nombre", "primerapellido", "segundoapellido"),
	text("cargo", "denominacioncargo", "cargo"),
	text("area", "areaadscripcion", "area"),
	text("tipo_integrante", "tipointegrante"),
	money("remuneracion_bruta", "remuneracionmensualbruta", "montobruto"),
	money("remuneracion_neta", "remuneracionmensualneta", "montoneto"),
	text("moneda", "monedabruta", "moneda"),
}

var exerciseFields = []field{
	text("capitulo", "capitulo", "clavecapitulo"),
	text("concepto", "denominacion", "concepto"),
	money("aprobado", "presupuestoaprobado", "aprobado"),
	money("modificado", "presupuestomodificado", "modificado"),
	money("devengado", "devengado"),
	money("pagado", "pagado"),
	money("subejercicio", "subejercicio"),
	text("justificacion", "justificacion"),
}

var beneficiaryFields = []field{
	text("programa", "nombreprograma", "programa"),
	name("beneficiario", "nombre", "primerapellido", "segundoapellido", "razonsocial"),
	text("unidad_territorial", "unidadterritorial"),
	money("monto", "montorecurso", "monto"),
	money("apoyo_economico", "montoapoyoeconomico"),
	date("fecha_alta", "fechaalta", "fechaaltapadron"),
	text("sexo", "sexo"),
}

var budgetFields = []field{
	text("ejercicio", "ejercicio"),
	text("partida", "partida", "clavepartida"),
	text("descripcion", "descripcion", "denominacionpartida"),
	money("asignado", "presupuestoasignado", "montoasignado"),
	money("total", "presupuestototal", "total"),
	text("hipervinculo", "hipervinculopresupuesto"),
}

var resolutionFields = []field{
	text("expediente", "numeroexpediente", "expediente"),
	text("materia", "materiaresolucion", "materia"),
	text("tipo", "tiporesolucion"),
	text("sentido", "sentidoresolucion", "sentido"),
	text("organo", "organoemisor"),
	date("fecha_resolucion", "fecharesolucion"),
	date("fecha_notificacion", "fechanotificacion"),
	text("hipervinculo", "hipervinculoresolucion", "hipervinculo"),
}

// layouts maps the overlay folder tag to its field table.
var layouts = map[string][]field{
	"contratos":     contractFields,
	"directorio":    directoryFields,
	"estructura":    directoryFields,
	"servidores":    directoryFields,
	"sueldos":       salaryFields,
	"ejercicio":     exerciseFields,
	"beneficiarios": beneficiaryFields,
	"presupuesto":   budgetFields,
	"resoluciones":  resolutionFields,
}
