// Package service manages long-lived infrastructure with a start/stop lifecycle
package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio devices, terminals
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire the device, launch goroutines if any
//  3. [runtime operation]
//  4. Stop() - release resources; must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	Start() error

	Stop() error
}
