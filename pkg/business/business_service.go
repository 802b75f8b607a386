package business

import (
	"context"
	"strconv"
	"strings"
	"time"

	"rumbles-backend/domain"
)

// Weekly opening schedule. Overnight entries (close before open) are not
// supported; such a day would read as closed for most of its range.
var businessHours = []domain.BusinessHours{
	{Day: "Monday", Open: "11:00", Close: "22:15"},
	{Day: "Tuesday", Open: "11:00", Close: "22:15"},
	{Day: "Wednesday", Open: "11:00", Close: "22:15"},
	{Day: "Thursday", Open: "11:00", Close: "22:15"},
	{Day: "Friday", Open: "11:00", Close: "22:15"},
	{Day: "Saturday", Open: "11:00", Close: "22:15"},
	{Day: "Sunday", Open: "12:00", Close: "22:15"},
}

var businessInfo = domain.BusinessInfoResponse{
	Name:          "Rumbles Fish Bar",
	Address:       "78 London Rd, Sawbridgeworth, CM21 9JN",
	Phone:         "01279 902532",
	Email:         "info@rumblesfishbar.co.uk",
	HygieneRating: 5,
	GoogleMapsURL: "https://www.google.com/maps/place/Rumbles+Fish+Bar/@51.8148,-0.1583,17z",
	Social: domain.BusinessSocial{
		Facebook:    "https://www.facebook.com/pages/RUMBLES-FISH-BAR-3-LIMITED/161050354507594",
		Tripadvisor: "https://www.tripadvisor.com/Restaurant_Review-g656895-d6610856-Reviews-Rumbles_Fish_Bar-Sawbridgeworth_Hertfordshire_England.html",
	},
	Hours: businessHours,
}

type (
	BusinessService interface {
		GetInfo(ctx context.Context) (domain.BusinessInfoResponse, error)
		GetHours(ctx context.Context) ([]domain.BusinessHours, error)
		GetStatus(ctx context.Context) (domain.BusinessStatusResponse, error)
		IsOpenAt(t time.Time) bool
	}

	businessService struct {
		hours []domain.BusinessHours
		now   func() time.Time
	}
)

func NewBusinessService() BusinessService {
	return &businessService{
		hours: businessHours,
		now:   time.Now,
	}
}

func (s *businessService) GetInfo(_ context.Context) (domain.BusinessInfoResponse, error) {
	return businessInfo, nil
}

func (s *businessService) GetHours(_ context.Context) ([]domain.BusinessHours, error) {
	hours := make([]domain.BusinessHours, len(s.hours))
	copy(hours, s.hours)
	return hours, nil
}

func (s *businessService) GetStatus(_ context.Context) (domain.BusinessStatusResponse, error) {
	now := s.now()
	return domain.BusinessStatusResponse{
		IsOpen: s.IsOpenAt(now),
		Day:    now.Weekday().String(),
		Time:   now.Format("15:04"),
	}, nil
}

// IsOpenAt reports whether the business is open at the given wall-clock
// time. The comparison is minute-resolution and inclusive at both bounds,
// so a check at the exact close minute still counts as open. A day with no
// schedule entry, or one marked closed, reads as closed.
func (s *businessService) IsOpenAt(t time.Time) bool {
	day := t.Weekday().String()

	var today *domain.BusinessHours
	for i := range s.hours {
		if s.hours[i].Day == day {
			today = &s.hours[i]
			break
		}
	}
	if today == nil || today.IsClosed {
		return false
	}

	currentTime := t.Hour()*100 + t.Minute()
	openTime, okOpen := parseClockTime(today.Open)
	closeTime, okClose := parseClockTime(today.Close)
	if !okOpen || !okClose {
		return false
	}

	return currentTime >= openTime && currentTime <= closeTime
}

// parseClockTime turns "HH:MM" into a comparable HHMM integer.
func parseClockTime(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hour*100 + minute, true
}
