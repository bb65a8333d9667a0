// Package timezone keeps every timestamp of the service in one configured location.
//
//	now := timezone.Now()                             // record metadata
//	day, err := timezone.Parse("2006-01-02", input)   // event and booking dates
//
// The location comes from APP_TIMEZONE and must be an IANA name such as
// "UTC" or "Europe/London". It is resolved on first use; an unknown name
// falls back to UTC with an error log.
package timezone
