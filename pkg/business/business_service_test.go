package business

import (
	"context"
	"testing"
	"time"

	"rumbles-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestIsOpenAtWithinHours(t *testing.T) {
	service := NewBusinessService()

	assert.True(t, service.IsOpenAt(monday(11, 0)))
	assert.True(t, service.IsOpenAt(monday(18, 30)))
}

func TestIsOpenAtCloseMinuteIsInclusive(t *testing.T) {
	service := NewBusinessService()

	assert.True(t, service.IsOpenAt(monday(22, 15)))
	assert.False(t, service.IsOpenAt(monday(22, 16)))
}

func TestIsOpenAtBeforeOpening(t *testing.T) {
	service := NewBusinessService()

	assert.False(t, service.IsOpenAt(monday(10, 59)))

	// Sunday opens later than the rest of the week.
	sunday := time.Date(2024, 1, 7, 11, 30, 0, 0, time.UTC)
	assert.False(t, service.IsOpenAt(sunday))
	assert.True(t, service.IsOpenAt(sunday.Add(30*time.Minute)))
}

func TestIsOpenAtClosedDay(t *testing.T) {
	service := &businessService{
		hours: []domain.BusinessHours{
			{Day: "Monday", IsClosed: true},
			{Day: "Tuesday", Open: "11:00", Close: "22:15"},
		},
		now: time.Now,
	}

	assert.False(t, service.IsOpenAt(monday(12, 0)))
}

func TestIsOpenAtMissingDayReadsClosed(t *testing.T) {
	service := &businessService{
		hours: []domain.BusinessHours{
			{Day: "Tuesday", Open: "11:00", Close: "22:15"},
		},
		now: time.Now,
	}

	assert.False(t, service.IsOpenAt(monday(12, 0)))
}

func TestGetStatusUsesClock(t *testing.T) {
	service := &businessService{
		hours: businessHours,
		now:   func() time.Time { return monday(12, 30) },
	}

	status, err := service.GetStatus(context.Background())
	require.NoError(t, err)

	assert.True(t, status.IsOpen)
	assert.Equal(t, "Monday", status.Day)
	assert.Equal(t, "12:30", status.Time)
}

func TestGetHoursReturnsFullWeek(t *testing.T) {
	service := NewBusinessService()

	hours, err := service.GetHours(context.Background())
	require.NoError(t, err)
	require.Len(t, hours, 7)
	assert.Equal(t, "Monday", hours[0].Day)
	assert.Equal(t, "22:15", hours[0].Close)
}
