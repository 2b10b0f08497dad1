package domain

import "time"

// CustomerStats aggregates the subscriber base by billing position.
type CustomerStats struct {
	Total     int64 `json:"total"`
	Paid      int64 `json:"paid"`
	Unpaid    int64 `json:"unpaid"`
	Verifying int64 `json:"verifying"`
	Isolated  int64 `json:"isolated"`
}

// Activity is a human-readable administrative event.
type Activity struct {
	Actor      string    `json:"actor"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Summary is the API response for the admin landing view.
type Summary struct {
	Stats          CustomerStats `json:"stats"`
	MonthlyRevenue int64         `json:"monthlyRevenue"`
	RecentActivity []Activity    `json:"recentActivity"`
}
