package schedules

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/m04kA/SMC-ClassroomService/internal/availability"
	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	facultyRepo "github.com/m04kA/SMC-ClassroomService/internal/infra/storage/faculty"
	"github.com/m04kA/SMC-ClassroomService/internal/service/schedules/models"
	"github.com/m04kA/SMC-ClassroomService/pkg/types"
)

var weekOrder = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Service собирает недельное расписание преподавателя
type Service struct {
	schedules   ScheduleReader
	facultyRepo FacultyRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(schedules ScheduleReader, facultyRepo FacultyRepository, logger Logger) *Service {
	return &Service{
		schedules:   schedules,
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

// GetWeeklySchedule возвращает занятия преподавателя и его неучебные часы по дням.
// Занятие принадлежит преподавателю, если он назначен на ключ записи
// или если документ расписания назван его именем
func (s *Service) GetWeeklySchedule(ctx context.Context, professor string) (*models.WeeklyScheduleResponse, error) {
	who := normalize(professor)
	if who == "" {
		return nil, fmt.Errorf("%w: professor is required", ErrInvalidInput)
	}

	s.logger.Info("GetWeeklySchedule: building schedule for %s", professor)

	docs, err := s.schedules.Schedules(ctx)
	if err != nil {
		s.logger.Error("GetWeeklySchedule: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - get schedules: %v", ErrInternal, err)
	}

	byDay := make(map[string][]domain.ScheduleItem)

	// 1. Занятия из расписаний
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		ownDoc := normalize(doc.ID) == who
		for _, e := range doc.Entries {
			if !ownDoc && normalize(doc.ProfessorFor(e.Key)) != who {
				continue
			}
			day := availability.ShortWeekday(e.Weekday)
			byDay[day] = append(byDay[day], classItem(doc, e))
		}
	}

	// 2. Консультации и административные часы
	rec, err := s.facultyRepo.GetByProfessor(ctx, professor)
	switch {
	case errors.Is(err, facultyRepo.ErrFacultyNotFound):
		s.logger.Info("GetWeeklySchedule: no faculty record for %s", professor)
	case err != nil:
		s.logger.Error("GetWeeklySchedule: failed to get faculty record for %s: %v", professor, err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - get faculty: %v", ErrInternal, err)
	default:
		for i, h := range rec.NonTeachingHours {
			day := availability.ShortWeekday(h.Day)
			byDay[day] = append(byDay[day], nonTeachingItem(rec, i, day, h))
		}
	}

	// 3. Сортируем каждый день по времени начала
	resp := &models.WeeklyScheduleResponse{
		Professor: strings.TrimSpace(professor),
		Days:      make([]models.DayScheduleResponse, 0, len(weekOrder)),
	}
	for _, day := range weekOrder {
		items := byDay[day]
		sort.SliceStable(items, func(i, j int) bool { return items[i].Start < items[j].Start })

		out := make([]models.ScheduleItemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, models.FromDomainItem(it))
		}
		resp.Days = append(resp.Days, models.DayScheduleResponse{Day: day, Items: out})
	}

	return resp, nil
}

func classItem(doc *domain.ScheduleDocument, e domain.ScheduleEntry) domain.ScheduleItem {
	title := e.Subject
	if title == "" {
		title = "Class"
	}
	return domain.ScheduleItem{
		ID:       doc.ID + "-" + e.Key,
		Start:    types.MinutesOrMidnight(e.StartTime),
		Time:     e.StartTime + domain.TimeSlotSeparator + e.EndTime,
		Title:    title,
		Location: e.Room,
		Code:     e.SectionName,
		Type:     domain.ScheduleItemClass,
	}
}

func nonTeachingItem(rec *domain.FacultyRecord, idx int, day string, h domain.NonTeachingHour) domain.ScheduleItem {
	start := types.MinutesOrMidnight(h.Time)

	timeRange := h.Time
	if h.Time != "" && h.Hours > 0 {
		end := start + int(math.Round(h.Hours*60))
		timeRange = h.Time + domain.TimeSlotSeparator + types.FormatMinutes(end)
	}

	itemType := domain.ScheduleItemClass
	display := ""
	switch strings.ToLower(h.Type) {
	case "consultation":
		itemType, display = domain.ScheduleItemConsultation, "Consultation"
	case "administrative", "admin":
		itemType, display = domain.ScheduleItemAdmin, "Administrative"
	}

	title := display
	if h.Time != "" {
		title = strings.TrimSpace(fmt.Sprintf("%s (%s)", display, timeRange))
	}

	return domain.ScheduleItem{
		ID:       fmt.Sprintf("%d-nth-%s-%d", rec.ID, day, idx),
		Start:    start,
		Time:     timeRange,
		Title:    title,
		Location: h.Location,
		Type:     itemType,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
