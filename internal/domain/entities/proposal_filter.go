package entities

import "time"

// TimestampField names a proposal timestamp that filters can test.
type TimestampField string

const (
	FieldCreatedAt     TimestampField = "created_at"
	FieldSentAt        TimestampField = "sent_at"
	FieldFirstViewedAt TimestampField = "first_viewed_at"
	FieldApprovedAt    TimestampField = "approved_at"
	FieldDeclinedAt    TimestampField = "declined_at"
)

// TimeRange is the half-open interval [From, To).
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// ProposalFilter selects proposals for one owner. Zero-valued fields do not filter.
type ProposalFilter struct {
	UserID          string
	Statuses        []ProposalStatus
	CreatedBetween  *TimeRange
	SentBetween     *TimeRange
	ApprovedBetween *TimeRange
	// NotNull lists timestamp fields that must be set.
	NotNull []TimestampField
}

// Timestamp returns the value of the named field, or nil when it is unset.
func (p Proposal) Timestamp(f TimestampField) *time.Time {
	switch f {
	case FieldCreatedAt:
		return &p.CreatedAt
	case FieldSentAt:
		return p.SentAt
	case FieldFirstViewedAt:
		return p.FirstViewedAt
	case FieldApprovedAt:
		return p.ApprovedAt
	case FieldDeclinedAt:
		return p.DeclinedAt
	}
	return nil
}

// Matches evaluates the filter in memory. Store adapters that can push the filter down
// to the database do so instead.
func (f ProposalFilter) Matches(p Proposal) bool {
	if f.UserID != "" && p.UserID != f.UserID {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if p.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.CreatedBetween != nil && !f.CreatedBetween.Contains(p.CreatedAt) {
		return false
	}
	if f.SentBetween != nil && (p.SentAt == nil || !f.SentBetween.Contains(*p.SentAt)) {
		return false
	}
	if f.ApprovedBetween != nil && (p.ApprovedAt == nil || !f.ApprovedBetween.Contains(*p.ApprovedAt)) {
		return false
	}
	for _, field := range f.NotNull {
		if p.Timestamp(field) == nil {
			return false
		}
	}
	return true
}
