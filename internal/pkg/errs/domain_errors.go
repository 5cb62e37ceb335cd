package errs

// Sentinel errors shared across the usecase and handler layers.
// Specific errors are marked with one of these so callers can classify them.
var (
	// Rejected before any external call is made
	ErrValidation = New("validation error")

	// Resort, device, order, kiosk or catalog entry absent
	ErrNotFound = New("not found")

	// Pricing authority unreachable or answered with a malformed response
	ErrPricingUnavailable = New("pricing unavailable")

	// Business-rule rejection of a single order line
	ErrLineIneligible = New("line ineligible")

	// Device is faulted, occupied or was claimed concurrently
	ErrDeviceUnavailable = New("device unavailable")

	// Unique resource already exists
	ErrConflict = New("conflict")

	// Operation failed at the persistence layer
	ErrDatabaseOperationFailed = New("database operation failed")
)
