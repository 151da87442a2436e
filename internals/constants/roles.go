package constants

import "fmt"

// User roles as stored in usuarios.tipo_usuario.
const (
	RoleAdmin     = "admin"
	RoleEvaluator = "evaluador"
	RoleChild     = "niño"
)

// Evaluator kinds (evaluadores.tipo).
const (
	EvaluatorStudent  = "Estudiante"
	EvaluatorDocente  = "Docente"
	EvaluatorGraduate = "Egresado"
)

// School shifts (ninos.jornada).
const (
	ShiftMorning   = "mañana"
	ShiftAfternoon = "tarde"
	ShiftFullDay   = "Continua"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "Acceso denegado. Solo administradores pueden acceder a %s."
	ErrOnlyEvaluatorsCanAccess = "Acceso denegado. Solo evaluadores pueden acceder a %s."
	ErrOnlyChildrenCanAccess   = "Acceso denegado. Esta función es solo para usuarios tipo niño (%s)."
	ErrNoRoleCanAccess         = "Acceso denegado. No tienes permisos para acceder a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEvaluator(feature string) string {
	return fmt.Sprintf(ErrOnlyEvaluatorsCanAccess, feature)
}

func RoleErrorChild(feature string) string {
	return fmt.Sprintf(ErrOnlyChildrenCanAccess, feature)
}

func RoleErrorAny(feature string) string {
	return fmt.Sprintf(ErrNoRoleCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleEvaluator,
		RoleChild,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	EvaluatorAndAbove = []string{
		RoleEvaluator,
		RoleAdmin,
	}

	ChildOnly = []string{
		RoleChild,
	}

	EvaluatorKinds = []string{
		EvaluatorStudent,
		EvaluatorDocente,
		EvaluatorGraduate,
	}

	Shifts = []string{
		ShiftMorning,
		ShiftAfternoon,
		ShiftFullDay,
	}
)

// NormalizeRole maps the legacy "administrador" value to RoleAdmin.
func NormalizeRole(role string) string {
	if role == "administrador" {
		return RoleAdmin
	}
	return role
}
