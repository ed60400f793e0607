package schedules

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

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, internalConfig *config.InternalConfig, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		InternalConfig:  internalConfig,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (c *ScheduleController) UpsertWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.Scheduling.StorageTimeoutInSeconds)*time.Second)
	defer cancel()

	session, err := utils.GetSession(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	request := new(requests.UpsertWeeklyScheduleRequest)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := c.ScheduleUsecase.UpsertWeeklySchedule(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleUpdatedSuccess, result)
}

func (c *ScheduleController) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.Scheduling.StorageTimeoutInSeconds)*time.Second)
	defer cancel()

	doctorID := chi.URLParam(r, "doctorID")
	if doctorID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(nil, "doctorID"))
		return
	}

	result, err := c.ScheduleUsecase.GetWeeklySchedule(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleGetSuccess, result)
}
