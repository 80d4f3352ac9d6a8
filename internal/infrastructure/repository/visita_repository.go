package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Maxito7/recepcion_backend/internal/domain"
	"github.com/google/uuid"
)

type visitaRepository struct {
	db *sql.DB
}

// NewVisitaRepository crea una nueva instancia del repositorio de visitas
func NewVisitaRepository(db *sql.DB) domain.VisitaRepository {
	return &visitaRepository{db: db}
}

// RegistrarVisita ejecuta el registro completo de la visita en una sola
// transacción: upsert de la persona, validación de cobertura ARL y EPS, alta
// de la visita y lectura de la proyección final. Cualquier salida sin commit
// revierte todo, incluido el upsert de la persona.
func (r *visitaRepository) RegistrarVisita(solicitud domain.SolicitudVisita, ventana domain.VentanaCobertura) (*domain.VisitaCompleta, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	// 1. Upsert de la persona por cédula. El ON CONFLICT resuelve de forma
	// atómica la carrera entre dos visitas simultáneas de una cédula nueva,
	// y el RETURNING entrega el id durable en la misma sentencia.
	var personaID int
	err = tx.QueryRow(`
		INSERT INTO personas (cedula, nombre, apellido, empresa)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cedula) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			apellido = EXCLUDED.apellido,
			empresa = EXCLUDED.empresa
		RETURNING id
	`, solicitud.Cedula, solicitud.Nombre, solicitud.Apellido, solicitud.Empresa).Scan(&personaID)

	if err != nil {
		return nil, fmt.Errorf("error al registrar persona: %w", err)
	}

	// 2. Validación ARL mensual
	var existe int
	err = tx.QueryRow(`
		SELECT 1 FROM arl
		WHERE persona_id = $1 AND mes_vigencia BETWEEN $2 AND $3
		LIMIT 1
	`, personaID, ventana.InicioMes, ventana.FinMes).Scan(&existe)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrorCobertura{
			Codigo:  domain.CodigoARLRequerida,
			Mensaje: "ARL requerida para el mes actual",
		}
	}

	if err != nil {
		return nil, fmt.Errorf("error al validar ARL: %w", err)
	}

	// 3. Validación EPS vigente
	var fechaVencimiento time.Time
	err = tx.QueryRow(`
		SELECT fecha_vencimiento FROM eps
		WHERE persona_id = $1 AND fecha_vencimiento >= $2
		ORDER BY fecha_vencimiento DESC
		LIMIT 1
	`, personaID, ventana.Hoy).Scan(&fechaVencimiento)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrorCobertura{
			Codigo:  domain.CodigoEPSRequerida,
			Mensaje: "EPS vencida o no registrada",
		}
	}

	if err != nil {
		return nil, fmt.Errorf("error al validar EPS: %w", err)
	}

	// 4. Registrar la visita. La hora de ingreso la asigna el servidor de
	// base de datos; el código de visita identifica el carné impreso.
	var visitaID int
	err = tx.QueryRow(`
		INSERT INTO visitas (persona_id, area, elementos_ingresa, autoriza_ingreso, placa, codigo_visita)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		personaID,
		solicitud.Area,
		solicitud.ElementosIngresa,
		solicitud.AutorizaIngreso,
		solicitud.Placa,
		uuid.New().String(),
	).Scan(&visitaID)

	if err != nil {
		return nil, fmt.Errorf("error al registrar visita: %w", err)
	}

	// 5. Obtener los datos completos
	visita := &domain.VisitaCompleta{}
	var horaIngreso time.Time

	err = tx.QueryRow(`
		SELECT v.id, p.cedula, p.nombre, p.apellido, p.empresa,
		       v.area, v.elementos_ingresa, v.autoriza_ingreso, v.placa,
		       v.codigo_visita, v.hora_ingreso
		FROM visitas v
		JOIN personas p ON v.persona_id = p.id
		WHERE v.id = $1
	`, visitaID).Scan(
		&visita.ID,
		&visita.Cedula,
		&visita.Nombre,
		&visita.Apellido,
		&visita.Empresa,
		&visita.Area,
		&visita.ElementosIngresa,
		&visita.AutorizaIngreso,
		&visita.Placa,
		&visita.CodigoVisita,
		&horaIngreso,
	)

	if err != nil {
		return nil, fmt.Errorf("error al obtener visita registrada: %w", err)
	}

	visita.HoraIngreso = horaIngreso.UTC().Format(time.RFC3339)

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error al confirmar transacción: %w", err)
	}

	return visita, nil
}

// List devuelve todas las visitas unidas con su persona
func (r *visitaRepository) List() ([]domain.VisitaCompleta, error) {
	rows, err := r.db.Query(`
		SELECT v.id, p.cedula, p.nombre, p.apellido, p.empresa,
		       v.area, v.elementos_ingresa, v.autoriza_ingreso, v.placa,
		       v.codigo_visita, v.hora_ingreso
		FROM visitas v
		JOIN personas p ON v.persona_id = p.id
		ORDER BY v.hora_ingreso DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error al obtener visitas: %w", err)
	}
	defer rows.Close()

	var visitas []domain.VisitaCompleta
	for rows.Next() {
		var visita domain.VisitaCompleta
		var horaIngreso time.Time

		if err := rows.Scan(
			&visita.ID,
			&visita.Cedula,
			&visita.Nombre,
			&visita.Apellido,
			&visita.Empresa,
			&visita.Area,
			&visita.ElementosIngresa,
			&visita.AutorizaIngreso,
			&visita.Placa,
			&visita.CodigoVisita,
			&horaIngreso,
		); err != nil {
			return nil, fmt.Errorf("error al escanear visita: %w", err)
		}

		visita.HoraIngreso = horaIngreso.UTC().Format(time.RFC3339)
		visitas = append(visitas, visita)
	}

	return visitas, rows.Err()
}
