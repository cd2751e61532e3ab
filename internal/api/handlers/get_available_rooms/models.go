package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-ClassroomService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-ClassroomService/pkg/types"
)

// SlotResponse свободный слот
type SlotResponse struct {
	Start string `json:"start"` // "9:00 AM"
	End   string `json:"end"`
	Label string `json:"label"` // "9:00 AM - 10:00 AM"
}

// RoomResponse аудитория со свободными слотами
type RoomResponse struct {
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	FreeSlots []SlotResponse `json:"freeSlots"`
}

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	Date      string         `json:"date"`      // "2025-03-03"
	DateLabel string         `json:"dateLabel"` // "3/3/2025"
	Weekday   string         `json:"weekday"`   // "Mon"
	Rooms     []RoomResponse `json:"rooms"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr, roomType string) (*getAvailableRooms.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	if roomType == "" {
		roomType = string(domain.RoomTypeAll)
	}

	return &getAvailableRooms.Request{
		Date:     date,
		RoomType: domain.RoomType(roomType),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	out := &AvailableRoomsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		DateLabel: resp.DateLabel,
		Weekday:   resp.Weekday,
		Rooms:     make([]RoomResponse, 0, len(resp.Rooms)),
	}

	for _, room := range resp.Rooms {
		slots := make([]SlotResponse, 0, len(room.FreeSlots))
		for _, s := range room.FreeSlots {
			slots = append(slots, SlotResponse{
				Start: types.FormatMinutes(s.Start),
				End:   types.FormatMinutes(s.End),
				Label: s.Label,
			})
		}
		out.Rooms = append(out.Rooms, RoomResponse{Name: room.Name, Type: string(room.Type), FreeSlots: slots})
	}

	return out
}
