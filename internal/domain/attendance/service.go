package attendance

import "context"

type AttendanceService interface {
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)
	ListEvents(ctx context.Context, employeeID, month string) ([]EventResponse, error)
}
