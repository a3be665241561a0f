package model

import "time"

// AccessCodeSession is the single instructor-issued credential gating
// student submissions. Expiry is an absolute instant in epoch millis,
// matching the persisted wire format.
type AccessCodeSession struct {
	Code   string `json:"code"`
	Expiry int64  `json:"expiry"`
}

// ExpiresAt returns the expiry as a time.Time.
func (s AccessCodeSession) ExpiresAt() time.Time {
	return time.UnixMilli(s.Expiry)
}

// ValidAt reports whether the session is still usable at the given instant.
// A session is valid strictly before its expiry.
func (s AccessCodeSession) ValidAt(t time.Time) bool {
	return t.Before(s.ExpiresAt())
}
