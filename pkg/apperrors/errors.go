// Package apperrors holds sentinel errors shared across packages.
package apperrors

import "errors"

// ErrStoreNotConfigured indicates the SEO store URL is absent and the
// service is running in degraded mode without a database pool.
var ErrStoreNotConfigured = errors.New("backing store not configured")
