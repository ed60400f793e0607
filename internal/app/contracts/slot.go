package contracts

import (
	"context"

	"hospicare-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	// GenerateSlots enumerates the bookable slots for a doctor on a date
	// given as YYYY-MM-DD. It is deterministic for a fixed appointment
	// state and has no side effects.
	GenerateSlots(ctx context.Context, doctorID, date string) ([]responses.Slot, error)
}
