package domain

// Reservation window
const (
	DefaultReservationWindowDays = 7
	MaxNotesLength               = 500
	MaxRoomNameLength            = 100
)

// Time format constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	DateLabelFormat = "1/2/2006"   // M/D/YYYY, так дата хранится в бронированиях

	// TimeSlotSeparator разделитель начала и конца в строке "9:00 AM - 9:30 AM"
	TimeSlotSeparator = " - "
)

// BlockingStatuses статусы бронирований, которые занимают аудиторию
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
}
