package neo

import "time"

// Pointer helpers for the optional record fields, in the style of the
// AWS SDK value helpers. Mostly used by the loaders and in tests.

// String returns a pointer to s.
func String(s string) *string { return &s }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Time returns a pointer to t.
func Time(t time.Time) *time.Time { return &t }
