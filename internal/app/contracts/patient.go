package contracts

import "context"

type PatientRepository interface {
	Exists(ctx context.Context, patientID string) (bool, error)
}
