package attendance

import "context"

type AttendanceService interface {
	ListAttendance(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
}
