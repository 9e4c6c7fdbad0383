package dashboard

import (
	"context"
	"time"

	"tourcrm/internal/domain"
)

const upcomingLimit = 5

type Service struct {
	bookings  BookingReader
	tours     TourCounter
	leads     LeadCounter
	tourDates TourDateReader

	// now is swapped in tests.
	now func() time.Time
}

func NewService(bookings BookingReader, tours TourCounter, leads LeadCounter, tourDates TourDateReader) *Service {
	return &Service{
		bookings:  bookings,
		tours:     tours,
		leads:     leads,
		tourDates: tourDates,
		now:       time.Now,
	}
}

func rangeDays(r string) int {
	switch r {
	case "1d":
		return 1
	case "30d":
		return 30
	default:
		return 7
	}
}

// Stats loads bookings created in the selected window and reduces them
// in memory. The bookingsOverTime series always covers the trailing 7
// calendar days regardless of the range selector.
func (s *Service) Stats(ctx context.Context, rng string) (*Stats, error) {
	now := s.now()
	start := now.AddDate(0, 0, -rangeDays(rng))
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	bookings, err := s.bookings.ListCreatedSince(ctx, start)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		BookingsByStatus: map[domain.BookingStatus]int{
			domain.BookingNew:       0,
			domain.BookingPaid:      0,
			domain.BookingCancelled: 0,
		},
	}

	for i := range bookings {
		b := &bookings[i]
		if !b.CreatedAt.Before(todayStart) {
			stats.OrdersToday++
		}
		if b.Status == domain.BookingPaid {
			stats.WeeklyRevenue += b.TotalPrice
		}
		stats.BookingsByStatus[b.Status]++
	}

	stats.ActiveTours, err = s.tours.CountByStatus(ctx, domain.TourPublished)
	if err != nil {
		return nil, err
	}
	stats.NewLeads, err = s.leads.CountOpenSince(ctx, start)
	if err != nil {
		return nil, err
	}

	stats.BookingsOverTime = make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		count := 0
		for j := range bookings {
			if bookings[j].CreatedAt.Format("2006-01-02") == day {
				count++
			}
		}
		stats.BookingsOverTime = append(stats.BookingsOverTime, DayCount{Date: day, Count: count})
	}

	upcoming, err := s.tourDates.ListUpcoming(ctx, now, upcomingLimit)
	if err != nil {
		return nil, err
	}
	stats.UpcomingTours = make([]UpcomingTour, 0, len(upcoming))
	for i := range upcoming {
		d := &upcoming[i]
		booked := 0
		for j := range d.Bookings {
			if d.Bookings[j].Status != domain.BookingCancelled {
				booked++
			}
		}
		title := ""
		if d.Tour != nil {
			title = d.Tour.Title
		}
		stats.UpcomingTours = append(stats.UpcomingTours, UpcomingTour{
			ID:           d.ID,
			TourTitle:    title,
			Date:         d.Date,
			MaxGroupSize: d.MaxGroupSize,
			BookedCount:  booked,
		})
	}

	return stats, nil
}
