package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"hospital-agenda/config"
	"hospital-agenda/internal/converter"
	"hospital-agenda/internal/delivery/dto"
	"hospital-agenda/internal/domain/entity"
	"hospital-agenda/internal/domain/repository"
	"hospital-agenda/internal/service"
	"hospital-agenda/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound    = apperror.NotFound("Doctor no encontrado")
	ErrInvalidDate       = apperror.Validation("Formato de fecha inválido, use YYYY-MM-DD")
	ErrScheduleForbidden = apperror.Forbidden("No tiene permiso para modificar horarios")
)

// auditSavePoint isolates the audit insert so its failure leaves the
// surrounding transaction committable.
const auditSavePoint = "audit"

// NoScheduleMessage accompanies an empty block list; it is not an error.
const NoScheduleMessage = "El doctor no tiene horario configurado para esta fecha"

type AgendaUsecase interface {
	ResolveBlocks(ctx context.Context, principal *entity.Principal, doctorID uuid.UUID, fecha string) (*dto.BlocksResponse, error)
	ListAppointments(ctx context.Context, principal *entity.Principal, fecha string, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error)
	ListDoctors(ctx context.Context, principal *entity.Principal) (*dto.DoctorListResponse, error)
	UpdateSchedule(ctx context.Context, principal *entity.Principal, doctorID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
}

type agendaUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cfg             config.AgendaConfig
	location        *time.Location
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	doctorCache     service.DoctorCache
	auditService    service.AuditService
	transaction     func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func NewAgendaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.AgendaConfig,
	location *time.Location,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorCache service.DoctorCache,
	auditService service.AuditService,
) AgendaUsecase {
	return &agendaUsecase{
		db:              db,
		log:             log,
		cfg:             cfg,
		location:        location,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		doctorCache:     doctorCache,
		auditService:    auditService,
		transaction: func(ctx context.Context, fn func(tx *gorm.DB) error) error {
			return db.WithContext(ctx).Transaction(fn)
		},
	}
}

// ResolveBlocks produces the bookable and occupied blocks of a doctor's day.
//
// Flow:
// 1. Build the calendar date in the clinic timezone
// 2. Load the doctor; block size comes from the first linked specialty
// 3. Pick the date override, else the weekday rule
// 4. Load the doctor's active appointments (by account id) and walk each range
func (u *agendaUsecase) ResolveBlocks(ctx context.Context, principal *entity.Principal, doctorID uuid.UUID, fecha string) (*dto.BlocksResponse, error) {
	date, err := service.ParseCalendarDate(fecha, u.location)
	if err != nil {
		return nil, ErrInvalidDate
	}
	isoDate := date.Format(entity.DateLayout)

	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	blockMinutes := doctor.BlockDuration(u.cfg.DefaultBlockMinutes)

	rules, skipped := doctor.Schedule.Rules()
	for _, entry := range skipped {
		u.log.WithFields(logrus.Fields{
			"doctor_id": doctor.ID,
			"key":       entry.Key,
			"index":     entry.Index,
		}).Warnf("Skipping schedule entry: %s", entry.Reason)
	}

	response := &dto.BlocksResponse{
		Doctor:  converter.DoctorToSummary(doctor),
		Fecha:   isoDate,
		Bloques: []dto.BlockResponse{},
	}

	ranges, found := service.ResolveRanges(rules, date)
	if !found || len(ranges) == 0 {
		response.Mensaje = NoScheduleMessage
		return response, nil
	}

	appointments, err := u.appointmentRepo.FindActiveByDate(ctx, u.db, &entity.AppointmentFilter{
		Date:         isoDate,
		DoctorUserID: &doctor.UserID,
		Limit:        u.cfg.MaxAppointments,
	})
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s on %s: %+v", doctor.ID, isoDate, err)
		return nil, err
	}

	occupancy := service.NewOccupancyIndex(appointments, u.location)
	blocks := service.GenerateBlocks(ranges, blockMinutes, occupancy)

	u.log.WithFields(logrus.Fields{
		"doctor_id":    doctor.ID,
		"fecha":        isoDate,
		"blocks":       len(blocks),
		"appointments": occupancy.Len(),
		"requested_by": requesterOf(principal),
	}).Debug("Resolved schedule blocks")

	response.DuracionBloque = blockMinutes
	response.Bloques = converter.BlocksToResponses(blocks)
	return response, nil
}

// ListAppointments returns the day's active appointments ordered by time,
// optionally scoped to one doctor record.
func (u *agendaUsecase) ListAppointments(ctx context.Context, principal *entity.Principal, fecha string, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	date, err := service.ParseCalendarDate(fecha, u.location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	filter := &entity.AppointmentFilter{
		Date:  date.Format(entity.DateLayout),
		Limit: u.cfg.MaxAppointments,
	}

	if doctorID != nil {
		doctor, err := u.doctorRepo.FindByID(ctx, u.db, *doctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", *doctorID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		// appointments reference the doctor's account, not the doctor record
		filter.DoctorUserID = &doctor.UserID
	}

	appointments, err := u.appointmentRepo.FindActiveByDate(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments on %s: %+v", filter.Date, err)
		return nil, err
	}

	if len(appointments) == u.cfg.MaxAppointments {
		u.log.Warnf("Appointment list for %s truncated at %d rows (requested by %s)", filter.Date, u.cfg.MaxAppointments, requesterOf(principal))
	}

	return &dto.AppointmentListResponse{
		Citas: converter.AppointmentsToResponses(appointments, u.location),
		Total: len(appointments),
	}, nil
}

// ListDoctors serves active doctors from the cache when possible. Cache
// failures only cost a database read.
func (u *agendaUsecase) ListDoctors(ctx context.Context, principal *entity.Principal) (*dto.DoctorListResponse, error) {
	doctors, hit, err := u.doctorCache.GetActiveDoctors(ctx)
	if err != nil {
		u.log.Warnf("Doctor cache unavailable, reading database: %+v", err)
	}

	if !hit {
		doctors, err = u.doctorRepo.FindAllActive(ctx, u.db)
		if err != nil {
			u.log.Warnf("Failed to find active doctors: %+v", err)
			return nil, err
		}
		if err := u.doctorCache.SetActiveDoctors(ctx, doctors); err != nil {
			u.log.Warnf("Failed to cache active doctors: %+v", err)
		}
	}

	return &dto.DoctorListResponse{
		Doctores: converter.DoctorsToResponses(doctors),
	}, nil
}

// UpdateSchedule replaces a doctor's rule map. Keys are canonicalized
// (weekday names become index strings) and ranges are stored as start/end.
func (u *agendaUsecase) UpdateSchedule(ctx context.Context, principal *entity.Principal, doctorID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	if !principal.Can(entity.PermissionAgendaAdmin) {
		return nil, ErrScheduleForbidden
	}

	schedule, canonical, err := buildScheduleConfig(req.Horarios)
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	oldSchedule := doctor.Schedule

	err = u.transaction(ctx, func(tx *gorm.DB) error {
		if err := u.doctorRepo.UpdateSchedule(ctx, tx, doctor.ID, schedule); err != nil {
			u.log.Warnf("Failed to update schedule of doctor %s: %+v", doctor.ID, err)
			return err
		}

		if err := tx.SavePoint(auditSavePoint).Error; err != nil {
			u.log.Warnf("Failed to create audit savepoint: %+v", err)
			return err
		}

		userID := principal.UserID
		if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionScheduleUpdate, "doctor", doctor.ID.String(), oldSchedule, schedule); err != nil {
			// Audit failures never block a schedule change
			u.log.Warnf("Failed to create audit log: %+v", err)
			if err := tx.RollbackTo(auditSavePoint).Error; err != nil {
				u.log.Warnf("Failed to roll back audit savepoint: %+v", err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := u.doctorCache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate doctor cache: %+v", err)
	}

	u.log.Infof("Schedule updated: doctor=%s, keys=%d, by=%s", doctor.ID, len(canonical), requesterOf(principal))

	return &dto.ScheduleResponse{
		DoctorID: doctor.ID,
		Horarios: canonical,
	}, nil
}

func buildScheduleConfig(horarios map[string][]dto.TimeRangeRequest) (entity.ScheduleConfig, map[string][]dto.TimeRangeRequest, error) {
	keys := make([]string, 0, len(horarios))
	for key := range horarios {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	schedule := entity.ScheduleConfig{}
	canonical := make(map[string][]dto.TimeRangeRequest, len(horarios))

	for _, key := range keys {
		_, canonicalKey, _, err := entity.ParseRuleKey(key)
		if err != nil {
			return nil, nil, apperror.Validation(fmt.Sprintf("Clave de horario inválida %q: use YYYY-MM-DD o un día de la semana (0-6)", key))
		}
		if _, dup := canonical[canonicalKey]; dup {
			return nil, nil, apperror.Validation(fmt.Sprintf("Clave de horario duplicada %q", key))
		}

		ranges := make([]dto.TimeRangeRequest, 0, len(horarios[key]))
		for i, r := range horarios[key] {
			start, errStart := entity.ParseClock(r.Start)
			end, errEnd := entity.ParseClock(r.End)
			if errStart != nil || errEnd != nil {
				return nil, nil, apperror.Validation(fmt.Sprintf("Rango %d de %q inválido: use HH:MM", i, key))
			}
			if start >= end {
				return nil, nil, apperror.Validation(fmt.Sprintf("Rango %d de %q inválido: el inicio debe ser anterior al fin", i, key))
			}
			ranges = append(ranges, dto.TimeRangeRequest{Start: entity.FormatClock(start), End: entity.FormatClock(end)})
		}

		encoded, err := json.Marshal(ranges)
		if err != nil {
			return nil, nil, err
		}
		schedule[canonicalKey] = encoded
		canonical[canonicalKey] = ranges
	}

	return schedule, canonical, nil
}

func requesterOf(principal *entity.Principal) string {
	if principal == nil {
		return "anonymous"
	}
	return principal.UserID.String()
}
