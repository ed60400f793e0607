package appointments

import (
	"context"
	"net/http"
	"time"

	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, internalConfig *config.InternalConfig, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		InternalConfig:     internalConfig,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (c *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.boundedContext(r)
	defer cancel()

	session, err := utils.GetSession(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	request := new(requests.CreateAppointmentRequest)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := c.AppointmentUsecase.CreateAppointment(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, result)
}

func (c *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.boundedContext(r)
	defer cancel()

	session, err := utils.GetSession(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.AppointmentUsecase.FindAll(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentGetSuccess, result)
}

func (c *AppointmentController) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.AppointmentUsecase.CompleteAppointment, constvars.AppointmentCompletedSuccess)
}

func (c *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.AppointmentUsecase.CancelAppointment, constvars.AppointmentCancelledSuccess)
}

func (c *AppointmentController) transition(
	w http.ResponseWriter,
	r *http.Request,
	operation func(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error),
	successMessage string,
) {
	ctx, cancel := c.boundedContext(r)
	defer cancel()

	session, err := utils.GetSession(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(nil, "appointmentID"))
		return
	}

	result, err := operation(ctx, session, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, result)
}

func (c *AppointmentController) boundedContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(c.InternalConfig.Scheduling.StorageTimeoutInSeconds)*time.Second)
}
