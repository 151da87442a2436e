package repository

import (
	"gorm.io/gorm"

	"priming_backend/internals/features/users/child/dto"
)

const recentSessionsLimit = 10

// FindChildInfo returns (nil, nil) when the user has no child row.
func FindChildInfo(db *gorm.DB, userID int) (*dto.ChildInfo, error) {
	var rows []dto.ChildInfo
	err := db.Raw(`
		SELECT u.nombre, n.edad, n.grado, n.colegio, n.jornada
		FROM usuarios u
		JOIN ninos n ON n.usuario_id = u.id
		WHERE u.id = ?`, userID).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func Totals(db *gorm.DB, userID int) (dto.Totals, error) {
	var t dto.Totals
	err := db.Raw(`
		SELECT
			COUNT(DISTINCT juego_id)                                          AS total_juegos,
			COUNT(DISTINCT (juego_id, nivel_id))                              AS total_niveles,
			COUNT(DISTINCT (juego_id, nivel_id)) FILTER (WHERE completado)    AS niveles_completados,
			COALESCE(SUM(puntuacion), 0)                                      AS puntuacion_total,
			COALESCE(SUM(tiempo), 0) / 60                                     AS tiempo_total_minutos,
			COALESCE(SUM(aciertos), 0)                                        AS total_aciertos,
			COALESCE(SUM(fallos), 0)                                          AS total_fallos
		FROM progreso_juego
		WHERE usuario_id = ?`, userID).Scan(&t).Error
	return t, err
}

// GameStats lists every game, played or not.
func GameStats(db *gorm.DB, userID int) ([]dto.GameStats, error) {
	rows := []dto.GameStats{}
	err := db.Raw(`
		SELECT
			j.id,
			j.nombre,
			COUNT(DISTINCT pg.nivel_id)                                 AS niveles_jugados,
			COUNT(DISTINCT pg.nivel_id) FILTER (WHERE pg.completado)    AS niveles_completados,
			(SELECT COUNT(*) FROM niveles WHERE juego_id = j.id)        AS total_niveles,
			COALESCE(SUM(pg.puntuacion), 0)                             AS puntuacion_total,
			COALESCE(SUM(pg.tiempo), 0) / 60                            AS tiempo_total_minutos
		FROM juegos j
		LEFT JOIN progreso_juego pg ON pg.juego_id = j.id AND pg.usuario_id = ?
		GROUP BY j.id, j.nombre
		ORDER BY j.id`, userID).Scan(&rows).Error
	return rows, err
}

func RecentSessions(db *gorm.DB, userID int) ([]dto.RecentSession, error) {
	rows := []dto.RecentSession{}
	err := db.Raw(`
		SELECT j.nombre AS juego, nv.nombre AS nivel,
		       pg.puntuacion, pg.aciertos, pg.fallos, pg.tiempo, pg.completado, pg.fecha_actualizacion
		FROM progreso_juego pg
		JOIN juegos j   ON j.id = pg.juego_id
		JOIN niveles nv ON nv.id = pg.nivel_id
		WHERE pg.usuario_id = ?
		ORDER BY pg.fecha_actualizacion DESC
		LIMIT ?`, userID, recentSessionsLimit).Scan(&rows).Error
	return rows, err
}

// AssignedEvaluators: evaluators with at least one survey for the child,
// ordered by their first survey.
func AssignedEvaluators(db *gorm.DB, userID int) ([]dto.AssignedEvaluator, error) {
	rows := []dto.AssignedEvaluator{}
	err := db.Raw(`
		SELECT u.nombre AS evaluador_nombre, ev.tipo AS evaluador_tipo, MIN(e.fecha) AS fecha_asignacion
		FROM encuestas e
		JOIN evaluadores ev ON ev.id = e.evaluador_id
		JOIN usuarios u     ON u.id = ev.usuario_id
		JOIN ninos n        ON n.id = e.nino_id
		WHERE n.usuario_id = ?
		GROUP BY u.nombre, ev.tipo
		ORDER BY fecha_asignacion`, userID).Scan(&rows).Error
	return rows, err
}
