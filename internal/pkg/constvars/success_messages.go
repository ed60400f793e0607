package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Schedule messages
	ScheduleUpdatedSuccess = "weekly schedule updated successfully"
	ScheduleGetSuccess     = "get weekly schedule successfully"

	// Slot messages
	SlotGetSuccess = "get available slots successfully"

	// Appointment messages
	AppointmentCreatedSuccess   = "appointment booked successfully"
	AppointmentGetSuccess       = "get appointments successfully"
	AppointmentCompletedSuccess = "appointment marked as completed"
	AppointmentCancelledSuccess = "appointment cancelled successfully"
)
