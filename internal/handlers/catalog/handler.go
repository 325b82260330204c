package catalog

import (
	"net/http"
	"repnowait/infras/otel"
	"repnowait/internal/domains/catalog/service"
	"repnowait/shared"
	"repnowait/shared/constant"
	"repnowait/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/muscle-groups", handler.GetMuscleGroups)
	router.Get("/equipment/{groupId}", handler.GetEquipment)
	router.Get("/time-slots", handler.GetTimeSlots)
}

// GetMuscleGroups
// @Summary List muscle groups
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.MuscleGroupResponse
// @Failure 500 {object} response.Message
// @Router /muscle-groups [get]
func (handler *Handler) GetMuscleGroups(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMuscleGroups")
	defer scope.End()

	groups, err := handler.service.MuscleGroups(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, groups)
}

// GetEquipment
// @Summary List equipment of a muscle group
// @Tags Catalog
// @Produce json
// @Param groupId path int true "Muscle group ID"
// @Success 200 {array} dto.EquipmentResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /equipment/{groupId} [get]
func (handler *Handler) GetEquipment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipment")
	defer scope.End()

	groupID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamGroupID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	equipment, err := handler.service.EquipmentByGroup(ctx, groupID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, equipment)
}

// GetTimeSlots
// @Summary List time slots
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.TimeSlotResponse
// @Failure 500 {object} response.Message
// @Router /time-slots [get]
func (handler *Handler) GetTimeSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeSlots")
	defer scope.End()

	slots, err := handler.service.TimeSlots(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, slots)
}
