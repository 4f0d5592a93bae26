package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sims/internal/models"
	"github.com/Skotchmaster/sims/internal/service"
	"github.com/Skotchmaster/sims/internal/transport"
	"github.com/Skotchmaster/sims/pkg/logging"
)

type ProfitHTTP struct {
	Svc *service.ProfitService
}

func (h *ProfitHTTP) Profit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profit.report")

	from, err := optionalDate(c.QueryParam("start_date"))
	if err != nil {
		l.Warn("profit_error", "status", 400, "reason", "bad start_date", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}
	to, err := optionalDate(c.QueryParam("end_date"))
	if err != nil {
		l.Warn("profit_error", "status", 400, "reason", "bad end_date", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}

	report, err := h.Svc.ProfitReport(ctx, from, to)
	if err != nil {
		l.Error("profit_error", "status", 500, "reason", "cannot build report", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("profit_success", "items", len(report.Items))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item Sold", Data: report.Rows()})
}

func optionalDate(raw string) (*models.Date, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
