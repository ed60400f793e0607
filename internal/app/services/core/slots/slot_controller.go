package slots

import (
	"context"
	"net/http"
	"time"

	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type SlotController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SlotUsecase    contracts.SlotUsecase
}

func NewSlotController(logger *zap.Logger, internalConfig *config.InternalConfig, slotUsecase contracts.SlotUsecase) *SlotController {
	return &SlotController{
		Log:            logger,
		InternalConfig: internalConfig,
		SlotUsecase:    slotUsecase,
	}
}

func (c *SlotController) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.Scheduling.StorageTimeoutInSeconds)*time.Second)
	defer cancel()

	request := &requests.GenerateSlotsRequest{
		DoctorID: r.URL.Query().Get("doctor_id"),
		Date:     r.URL.Query().Get("date"),
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.SlotUsecase.GenerateSlots(ctx, request.DoctorID, request.Date)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotGetSuccess, result)
}
