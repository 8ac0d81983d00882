package csvstore

import "time"

// Retry budget for transient I/O failures. The third failure propagates;
// the sleeps between attempts keep one operation inside a ~300ms wait
// budget.
const (
	maxAttempts = 3
	retryDelay  = 100 * time.Millisecond
)

// withRetry runs fn up to maxAttempts times, sleeping retryDelay between
// attempts. The last error is returned as-is so callers keep the cause.
func withRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
