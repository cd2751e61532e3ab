package notifications

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

const substitutionTitle = "Substitution Assignment"

// reservationNotification строит уведомление по статусу заявки
func reservationNotification(r *domain.Reservation) domain.Notification {
	n := domain.Notification{
		ID:        fmt.Sprintf("reservation-%d", r.ID),
		Timestamp: r.UpdatedAt,
		Source:    domain.SourceReservation,
	}

	status := r.Status
	if status == "" {
		status = domain.StatusPending
	}
	n.Status = &status

	switch status {
	case domain.StatusApproved:
		n.Type = domain.NotificationSuccess
		n.Title = "Classroom Reservation Approved!"
		n.Message = fmt.Sprintf("Classroom reservation successful!\nYou've successfully reserved %s on %s at\n%s",
			r.RoomName, r.DateLabel, r.TimeSlot)
	case domain.StatusDeclined:
		n.Type = domain.NotificationError
		n.Title = "Classroom Reservation Declined"
		n.Message = fmt.Sprintf("Your reservation for %s on %s at %s was not approved.",
			r.RoomName, r.DateLabel, r.TimeSlot)
	default:
		n.Type = domain.NotificationWarning
		n.Title = "Classroom Reservation Pending"
		n.Message = fmt.Sprintf("Your reservation for %s on %s at %s is awaiting approval.",
			r.RoomName, r.DateLabel, r.TimeSlot)
	}

	return n
}

// substitutionNotification уведомление о назначении на замену
func substitutionNotification(doc *domain.ScheduleDocument, e domain.ScheduleEntry) domain.Notification {
	subject := e.Subject
	if subject == "" {
		subject = "a class"
	}

	var b strings.Builder
	b.WriteString("You have been assigned as substitute instructor for ")
	b.WriteString(subject)
	if e.SectionName != "" {
		fmt.Fprintf(&b, " (%s)", e.SectionName)
	}
	if prof := doc.ProfessorFor(e.Key); prof != "" {
		fmt.Fprintf(&b, "\nSubstituting for: %s", prof)
	}
	if doc.Program != "" {
		fmt.Fprintf(&b, "\nProgram: %s", doc.Program)
	}
	if e.Room != "" {
		fmt.Fprintf(&b, "\nRoom: %s", e.Room)
	}
	if e.Weekday != "" && e.StartTime != "" && e.EndTime != "" {
		fmt.Fprintf(&b, "\nSchedule: %s %s - %s", e.Weekday, e.StartTime, e.EndTime)
	}

	return domain.Notification{
		ID:        doc.ID + "-" + e.Key,
		Type:      domain.NotificationInfo,
		Title:     substitutionTitle,
		Message:   b.String(),
		Timestamp: doc.UpdatedAt,
		Source:    domain.SourceSubstitution,
	}
}

// TimeAgo подпись "5 minutes ago" / "Just now"
func TimeAgo(ts, now time.Time) string {
	if ts.IsZero() {
		return "Just now"
	}

	diff := now.Sub(ts)
	plural := func(n int, unit string) string {
		if n > 1 {
			return fmt.Sprintf("%d %ss ago", n, unit)
		}
		return fmt.Sprintf("%d %s ago", n, unit)
	}

	switch {
	case diff >= 24*time.Hour:
		return plural(int(diff/(24*time.Hour)), "day")
	case diff >= time.Hour:
		return plural(int(diff/time.Hour), "hour")
	case diff >= time.Minute:
		return plural(int(diff/time.Minute), "minute")
	}
	return "Just now"
}
