// internal/app/features/complaints/types.go
package complaints

// createRequest is the submission payload. Any status or resolution fields
// a client tries to smuggle in are simply not part of the shape: every new
// complaint starts pending.
type createRequest struct {
	StudentName   string `json:"studentName"`
	RoomNumber    string `json:"roomNumber"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	Description   string `json:"description"`
	ContactNumber string `json:"contactNumber"`
}

// statusRequest is the admin status-change payload.
type statusRequest struct {
	Status string `json:"status"`
}

// resolveRequest is the admin resolution payload.
type resolveRequest struct {
	Resolution string `json:"resolution"`
}
