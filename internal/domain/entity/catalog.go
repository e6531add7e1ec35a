package entity

// Grupos de componentes. El grupo es una clasificación derivada del tipo de
// componente, no un atributo editable del item.
const (
	GroupDesgaste  = "Elementos de Desgaste"
	GroupInsumos   = "Insumos"
	GroupCubiertas = "Cubiertas"
	GroupOtros     = "Otros"
)

// EquipmentTypes flota de la gerencia. El catálogo es cerrado: un item solo
// puede referenciar estos tipos.
var EquipmentTypes = []string{
	"Pala Cargadora",
	"Motoniveladora",
	"Retroexcavadora",
	"Camión volcador",
	"Compactador",
	"Camión Regador",
	"Terminadora de Asfalto",
	"Camioneta",
	"Automóvil",
}

// ComponentTypes tipos de repuesto del pañol.
var ComponentTypes = []string{
	"Cuchillas",
	"Dientes",
	"Baldes",
	"Tren rodante",
	"Filtros",
	"Aceites",
	"Correas",
	"Batería",
	"Cubiertas",
	"Otros",
}

// ComponentGroups grupos válidos para reglas por grupo.
var ComponentGroups = []string{GroupDesgaste, GroupInsumos, GroupCubiertas, GroupOtros}

var componentGroups = map[string]string{
	"Cuchillas":    GroupDesgaste,
	"Dientes":      GroupDesgaste,
	"Baldes":       GroupDesgaste,
	"Tren rodante": GroupDesgaste,
	"Correas":      GroupInsumos,
	"Filtros":      GroupInsumos,
	"Aceites":      GroupInsumos,
	"Batería":      GroupInsumos,
	"Cubiertas":    GroupCubiertas,
	"Otros":        GroupOtros,
}

// GroupOf devuelve el grupo de un tipo de componente. Un tipo fuera de la
// tabla cae en "Otros": la tabla de grupos puede quedar atrás del catálogo.
func GroupOf(componentType string) string {
	if g, ok := componentGroups[componentType]; ok {
		return g
	}
	return GroupOtros
}

// IsEquipmentType verifica pertenencia al catálogo de equipos (sensible a mayúsculas).
func IsEquipmentType(s string) bool {
	for _, e := range EquipmentTypes {
		if e == s {
			return true
		}
	}
	return false
}

// IsComponentType verifica pertenencia al catálogo de componentes.
func IsComponentType(s string) bool {
	for _, c := range ComponentTypes {
		if c == s {
			return true
		}
	}
	return false
}

// IsComponentGroup verifica pertenencia a los grupos válidos.
func IsComponentGroup(s string) bool {
	for _, g := range ComponentGroups {
		if g == s {
			return true
		}
	}
	return false
}
