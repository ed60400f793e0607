package models

type Patient struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	FullName    string `json:"fullName" bson:"fullName"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	TimeModel   `bson:",inline"`
}
