// Package timezone resolves the application clock from APP_TIMEZONE.
//
// The location is loaded lazily on first use, so importing the package has no side effects:
//
//	occurredAt := timezone.Now()
//	stamp := timezone.Format(occurredAt, constant.DateFormat)
//
// Only IANA names are accepted ("UTC", "Asia/Jakarta", "Europe/London"). An unknown name falls back to UTC.
package timezone
