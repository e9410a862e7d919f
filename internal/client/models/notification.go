package models

import (
	"regexp"
	"strconv"
)

var (
	requestMarker   = regexp.MustCompile(` \[REQUEST_ID:\d+\]`)
	requestMarkerID = regexp.MustCompile(`\[REQUEST_ID:(\d+)\]`)
)

// Notification is a message addressed to the current user.
type Notification struct {
	NotificationID int64     `json:"notification_id"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      Timestamp `json:"created_at"`
	UserID         int64     `json:"user_id"`
}

// DisplayMessage returns Message with every request back-reference removed.
func (n Notification) DisplayMessage() string {
	return requestMarker.ReplaceAllString(n.Message, "")
}

// RequestID extracts the first embedded request id.
func (n Notification) RequestID() (int64, bool) {
	m := requestMarkerID.FindStringSubmatch(n.Message)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// MarkRead flips the notification to read. There is no way back.
func (n *Notification) MarkRead() {
	n.IsRead = true
}

// UnreadCount counts unread notifications in ns.
func UnreadCount(ns []Notification) int {
	c := 0
	for _, n := range ns {
		if !n.IsRead {
			c++
		}
	}
	return c
}
