// file: internals/features/outpasses/outpass/service/stats.go
package service

import (
	"time"

	"gorm.io/gorm"

	"outpass_backend/internals/features/outpasses/outpass/model"
)

const trendDays = 7

type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type Stats struct {
	Total    int64        `json:"total"`
	Pending  int64        `json:"pending"`
	Approved int64        `json:"approved"`
	Active   int64        `json:"active"`
	Overdue  int64        `json:"overdue"`
	Trends   []TrendPoint `json:"trends"`
}

// TrendWindow returns the last n days ending today, chronological order.
// Midnight is taken in today's own location; epoch-based truncation would
// shift the labels by a day for early-morning runs on a non-UTC clock.
func TrendWindow(today time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for i := n - 1; i >= 0; i-- {
		days = append(days, day.AddDate(0, 0, -i))
	}
	return days
}

// BuildStats computes the dashboard counters plus the trailing 7-day
// count-by-day trend over outgoing dates.
func BuildStats(db *gorm.DB, now time.Time) (*Stats, error) {
	s := &Stats{}

	counts := []struct {
		dest   *int64
		status model.Status
	}{
		{&s.Pending, model.StatusPending},
		{&s.Approved, model.StatusApproved},
		{&s.Active, model.StatusCheckedOut},
		{&s.Overdue, model.StatusOverdue},
	}

	if err := db.Model(&model.OutpassModel{}).Count(&s.Total).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		if err := db.Model(&model.OutpassModel{}).
			Where("outpass_status = ?", c.status).
			Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	for _, day := range TrendWindow(now, trendDays) {
		var n int64
		if err := db.Model(&model.OutpassModel{}).
			Where("outpass_outgoing_date = ?", day.Format("2006-01-02")).
			Count(&n).Error; err != nil {
			return nil, err
		}
		s.Trends = append(s.Trends, TrendPoint{Date: day.Format("01-02"), Count: n})
	}

	return s, nil
}
