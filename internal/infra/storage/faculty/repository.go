package faculty

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClassroomService/pkg/psqlbuilder"
)

type nonTeachingRecord struct {
	Day      string  `json:"day"`
	Time     string  `json:"time"`
	Hours    float64 `json:"hours"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
}

// Repository репозиторий карточек преподавателей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessor ищет карточку по имени без учёта регистра и крайних пробелов
func (r *Repository) GetByProfessor(ctx context.Context, professor string) (*domain.FacultyRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "professor", "non_teaching_hours", "updated_at").
		From("faculty").
		Where(squirrel.Expr("LOWER(TRIM(professor)) = ?", strings.ToLower(strings.TrimSpace(professor)))).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessor - build select query: %v", ErrBuildQuery, err)
	}

	var (
		rec       domain.FacultyRecord
		hours     []byte
		updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &rec.Professor, &hours, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFacultyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessor - scan row: %v", ErrScanRow, err)
	}

	rec.UpdatedAt = updatedAt.Time
	rec.NonTeachingHours, err = DecodeNonTeachingHours(hours)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// DecodeNonTeachingHours разбирает JSONB массив часов
func DecodeNonTeachingHours(raw []byte) ([]domain.NonTeachingHour, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var records []nonTeachingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	out := make([]domain.NonTeachingHour, 0, len(records))
	for _, r := range records {
		out = append(out, domain.NonTeachingHour{
			Day:      r.Day,
			Time:     r.Time,
			Hours:    r.Hours,
			Type:     r.Type,
			Location: r.Location,
		})
	}
	return out, nil
}
