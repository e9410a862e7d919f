package models

import (
	"sort"
	"strings"
)

// ActivityType tags an activity log entry.
type ActivityType string

const (
	ActivityContribution ActivityType = "contribution"
	ActivityUrgent       ActivityType = "condition_change_urgent"
	ActivityAtVet        ActivityType = "condition_change_at_vet"
)

const activityChangePrefix = "condition_change"

// IsConditionChange reports whether the entry records a condition change.
func (t ActivityType) IsConditionChange() bool {
	return strings.HasPrefix(string(t), activityChangePrefix)
}

// ActivityLogEntry is one append-only record in a cat's timeline.
type ActivityLogEntry struct {
	LogID       int64        `json:"log_id"`
	CatID       int64        `json:"cat_id"`
	Description string       `json:"activity_description"`
	Type        ActivityType `json:"activity_type,omitempty"`
	Time        Timestamp    `json:"activity_time"`
	Username    string       `json:"username,omitempty"`
}

// SortTimeline orders entries by time, oldest first. Entries with equal
// timestamps keep their relative order.
func SortTimeline(entries []ActivityLogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time.Time)
	})
}
