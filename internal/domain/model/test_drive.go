//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// TestDriveStatus enumerates the lifecycle states of a test-drive request.
// Only the pending count is consumed by this application.
type TestDriveStatus string

const (
	TestDriveStatusPending   TestDriveStatus = "pending"
	TestDriveStatusApproved  TestDriveStatus = "approved"
	TestDriveStatusRejected  TestDriveStatus = "rejected"
	TestDriveStatusCompleted TestDriveStatus = "completed"
)

// TestDriveRequest represents a customer request to test-drive a car.
// Creation and management happen outside this application.
type TestDriveRequest struct {
	ID     string          `json:"id"`
	CarID  string          `json:"car_id"`
	UserID string          `json:"user_id"`
	Status TestDriveStatus `json:"status"`
}
