package frontdesk

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// signalDeadline bounds how long a background workflow signal may take.
const signalDeadline = 5 * time.Second

// runAsync is an indirection over signalInBackground so tests can run
// workflow signals synchronously.
var runAsync = signalInBackground

// signalInBackground delivers a stay-workflow signal from its own goroutine
// so the API response does not wait on Temporal. Failures are logged rather
// than returned: the totals a signal refreshes are recalculated again at
// check-out.
func signalInBackground(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), signalDeadline)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("stay workflow signal failed", "op", op, "error", err)
		} else {
			rlog.Debug("stay workflow signal delivered", "op", op)
		}
	}()
}
