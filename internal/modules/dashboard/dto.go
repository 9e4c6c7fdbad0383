package dashboard

import (
	"time"

	"tourcrm/internal/domain"
)

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type UpcomingTour struct {
	ID           int64     `json:"id"`
	TourTitle    string    `json:"tourTitle"`
	Date         time.Time `json:"date"`
	MaxGroupSize int       `json:"maxGroupSize"`
	BookedCount  int       `json:"bookedCount"`
}

type Stats struct {
	OrdersToday      int                          `json:"ordersToday"`
	WeeklyRevenue    int64                        `json:"weeklyRevenue"`
	ActiveTours      int64                        `json:"activeTours"`
	NewLeads         int64                        `json:"newLeads"`
	BookingsOverTime []DayCount                   `json:"bookingsOverTime"`
	BookingsByStatus map[domain.BookingStatus]int `json:"bookingsByStatus"`
	UpcomingTours    []UpcomingTour               `json:"upcomingTours"`
}
