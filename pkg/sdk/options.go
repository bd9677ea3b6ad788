package sdk

import "time"

// Defaults applied by NewClient. A directory review reads every test file
// on the server side before answering, so the timeout leaves room for large
// suites.
const (
	DefaultTimeout     = 60 * time.Second
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 250 * time.Millisecond
)

type options struct {
	timeout      time.Duration
	maxAttempts  int
	initialDelay time.Duration
}

func defaultOptions() options {
	return options{
		timeout:      DefaultTimeout,
		maxAttempts:  DefaultMaxAttempts,
		initialDelay: DefaultRetryDelay,
	}
}

// Option configures the SDK client.
type Option func(*options)

// WithTimeout bounds each tool call and resource read, including retries.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRetry sets how often a call is attempted when the transport fails and
// the delay before the first retry. Delays double on every further attempt.
// Reviews are read-only, so repeating a call is always safe. Tool errors
// such as an unreadable file come back as *ToolError and are never retried.
// Values below 1 mean a single attempt.
func WithRetry(maxAttempts int, initialDelay time.Duration) Option {
	return func(o *options) {
		if maxAttempts < 1 {
			maxAttempts = 1
		}
		o.maxAttempts = maxAttempts
		o.initialDelay = initialDelay
	}
}

// WithoutRetry makes every call a single attempt.
func WithoutRetry() Option {
	return WithRetry(1, 0)
}
