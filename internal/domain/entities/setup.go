package entities

import "time"

// SetupResult summarizes one registration pass.
type SetupResult struct {
	ProjectID string
	Locales   []string
	// Collections lists the collection slots written, in project order.
	Collections []string
	// Skipped lists collections left out of the locale table.
	Skipped  []string
	Warnings []error
	Duration time.Duration
}
