package enrollment

import "github.com/google/uuid"

type StatusResponse struct {
	CourseID uuid.UUID `json:"course_id"`
	Enrolled bool      `json:"enrolled"`
}
