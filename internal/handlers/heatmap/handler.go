package heatmap

import (
	"net/http"
	"repnowait/infras/otel"
	"repnowait/internal/domains/occupancy/service"
	"repnowait/shared/constant"
	"repnowait/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	ledger service.Ledger
	otel   otel.Otel
}

func New(ledger service.Ledger, otel otel.Otel) Handler {
	return Handler{
		ledger: ledger,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/heatmap-data", handler.GetHeatmap)
}

// GetHeatmap returns the active booking count of every zone.
// @Summary Zone occupancy heatmap
// @Tags Heatmap
// @Produce json
// @Success 200 {array} dto.ZoneCount
// @Failure 500 {object} response.Message
// @Router /heatmap-data [get]
func (handler *Handler) GetHeatmap(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHeatmap")
	defer scope.End()

	zones, err := handler.ledger.Snapshot(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, zones)
}
