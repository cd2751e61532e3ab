package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClassroomService/pkg/psqlbuilder"
)

// Repository читает недельные расписания. Документы ведут администраторы,
// сервис только читает их
type Repository struct {
	db     DBExecutor
	logger Logger
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor, logger Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// ListAll возвращает все документы расписаний.
// Битые записи пропускаются по одной, документ целиком не отбрасывается
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ScheduleDocument, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "program", "entries", "professor_assignments", "updated_at").
		From("schedules").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	docs := make([]*domain.ScheduleDocument, 0)
	for rows.Next() {
		var (
			doc         domain.ScheduleDocument
			entries     []byte
			assignments []byte
			updatedAt   sql.NullTime
		)

		if err := rows.Scan(&doc.ID, &doc.Program, &entries, &assignments, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}

		doc.UpdatedAt = updatedAt.Time
		doc.Entries = r.decodeEntries(doc.ID, entries)
		doc.ProfessorAssignments = r.decodeAssignments(doc.ID, assignments)

		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return docs, nil
}

func (r *Repository) decodeEntries(docID string, raw []byte) []domain.ScheduleEntry {
	entries, skipped := DecodeEntries(raw)
	for _, key := range skipped {
		r.logger.Warn("schedule %s: skipping malformed entry %q", docID, key)
	}
	return entries
}

func (r *Repository) decodeAssignments(docID string, raw []byte) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string)
	if err := json.Unmarshal(raw, &out); err != nil {
		r.logger.Warn("schedule %s: malformed professor assignments: %v", docID, err)
		return map[string]string{}
	}
	return out
}

// DecodeEntries разбирает JSONB карту "Monday_8:30AM" -> запись.
// Возвращает записи, отсортированные по ключу, и ключи пропущенных записей
// (не объект). Записи без аудитории сохраняются
func DecodeEntries(raw []byte) ([]domain.ScheduleEntry, []string) {
	if len(raw) == 0 {
		return nil, nil
	}

	var byKey map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return nil, []string{"*"}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		entries []domain.ScheduleEntry
		skipped []string
	)
	for _, key := range keys {
		var rec entryRecord
		if err := json.Unmarshal(byKey[key], &rec); err != nil {
			skipped = append(skipped, key)
			continue
		}

		weekday, _, _ := strings.Cut(key, "_")
		entries = append(entries, domain.ScheduleEntry{
			Key:               key,
			Weekday:           weekday,
			Room:              strings.TrimSpace(rec.Room),
			StartTime:         rec.StartTime,
			EndTime:           rec.EndTime,
			Subject:           rec.Subject,
			SectionName:       rec.SectionName,
			SubstituteTeacher: rec.SubstituteTeacher,
		})
	}

	return entries, skipped
}
