package dto

type SummaryResponse struct {
	TotalBookings    int            `json:"total_bookings"`
	TotalRooms       int            `json:"total_rooms"`
	AvailableRooms   int            `json:"available_rooms"`
	BookedNights     int            `json:"booked_nights"`
	OccupancyRate    float64        `json:"occupancy_rate"`
	EstimatedRevenue int64          `json:"estimated_revenue"`
	RoomTypes        map[string]int `json:"room_types"`
	BookingStatuses  map[string]int `json:"booking_statuses"`
}
