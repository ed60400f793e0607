package requests

type GenerateSlotsRequest struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required,date_ymd"`
}
