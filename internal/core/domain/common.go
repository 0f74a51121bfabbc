package domain

import "time"

// Timestamps holds the bookkeeping timestamps shared by persisted entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateLayout is the calendar date format used for transaction dates and report parameters.
const DateLayout = "2006-01-02"
