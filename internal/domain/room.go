package domain

// RoomType classification of a classroom
type RoomType string

const (
	RoomTypeLecture    RoomType = "lecture"
	RoomTypeLaboratory RoomType = "laboratory"

	// RoomTypeAll используется только в фильтре
	RoomTypeAll RoomType = "all"
)

// IsValidFilter returns true if the value can be used as a room type filter
func (t RoomType) IsValidFilter() bool {
	return t == RoomTypeLecture || t == RoomTypeLaboratory || t == RoomTypeAll
}

// DerivedRoom комната с вычисленными свободными слотами на конкретную дату
type DerivedRoom struct {
	Name      string
	Type      RoomType
	FreeSlots []TimeSlot
}

// HasFreeSlots returns true if at least one slot is free
func (r *DerivedRoom) HasFreeSlots() bool {
	return len(r.FreeSlots) > 0
}
