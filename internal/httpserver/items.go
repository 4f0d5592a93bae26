package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sims/internal/middleware"
	"github.com/Skotchmaster/sims/internal/service"
	"github.com/Skotchmaster/sims/internal/transport"
	"github.com/Skotchmaster/sims/internal/util"
	"github.com/Skotchmaster/sims/pkg/logging"
)

type ItemsHTTP struct {
	Svc *service.ItemService
}

func (h *ItemsHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.create")

	var req transport.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.CreateItem(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_item_error", "status", 400, "reason", "invalid item", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_item_error", "status", 500, "reason", "cannot add item to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("create_item_success", "itemID", item.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item Added to Inventory System successfully"})
}

func (h *ItemsHTTP) ListItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.list")

	skip := util.ParseIntDefault(c.QueryParam("skip"), 0)
	limit := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultLimit)

	items, err := h.Svc.ListItems(ctx, skip, limit)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("list_items_error", "status", 404, "reason", "inventory is empty", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Inventory is empty...have you tried adding some items")
		}
		l.Error("list_items_error", "status", 500, "reason", "cannot read items", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("list_items_success", "count", len(items))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "All Items", Data: items})
}

func (h *ItemsHTTP) SearchItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.search")

	params := service.SearchParams{
		Term:   c.QueryParam("search_term"),
		Limit:  util.ParseIntDefault(c.QueryParam("limit"), util.DefaultLimit),
		Option: c.QueryParam("options"),
	}

	items, err := h.Svc.SearchItems(ctx, params)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("search_items_error", "status", 404, "reason", "no match", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Yikes missing items with your search keywords...try other items")
		}
		l.Error("search_items_error", "status", 500, "reason", "cannot search items", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("search_items_success", "count", len(items))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Items Found", Data: items})
}

func (h *ItemsHTTP) FullTextSearch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.full_text")

	limit := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultLimit)
	items, err := h.Svc.FullTextSearch(ctx, c.QueryParam("q"), limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("full_text_error", "status", 400, "reason", "empty query", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "query must not be empty")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("full_text_error", "status", 404, "reason", "no match", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Yikes missing items with your search keywords...try other items")
		}
		l.Error("full_text_error", "status", 500, "reason", "search failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("full_text_success", "count", len(items))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Items Found", Data: items})
}

func (h *ItemsHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.update")

	var req transport.PatchItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateItem(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_item_error", "status", 404, "reason", "item not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Queried Item Not Found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_item_error", "status", 400, "reason", "invalid item", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("update_item_error", "status", 500, "reason", "cannot update item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("update_item_success", "itemID", item.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item Updated", Data: item})
}

func (h *ItemsHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.delete")

	id, err := strconv.ParseUint(c.QueryParam("item_id"), 10, 64)
	if err != nil {
		l.Warn("delete_item_error", "status", 400, "reason", "item_id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "item_id must be an integer")
	}

	if err := h.Svc.DeleteItem(ctx, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_item_error", "status", 404, "reason", "item not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Item Not found")
		}
		l.Error("delete_item_error", "status", 500, "reason", "cannot delete item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("delete_item_success", "itemID", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item Removed", Data: map[string]any{}})
}

func (h *ItemsHTTP) SellItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "items.sell")

	name := c.QueryParam("item_name")
	qty := 1
	if raw := c.QueryParam("quantity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			l.Warn("sell_item_error", "status", 400, "reason", "quantity is not an integer", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "quantity must be an integer")
		}
		qty = v
	}

	var soldBy string
	if u, ok := middleware.CurrentUser(c); ok {
		soldBy = u.Email
	}

	item, sold, err := h.Svc.SellItem(ctx, name, qty, soldBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("sell_item_error", "status", 404, "reason", "item not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Item Not found")
		case errors.Is(err, service.ErrNotAcceptable):
			l.Warn("sell_item_error", "status", 406, "reason", "not enough stock", "error", err)
			return echo.NewHTTPError(http.StatusNotAcceptable, "Not enough stock.")
		case errors.Is(err, service.ErrValidation):
			l.Warn("sell_item_error", "status", 400, "reason", "invalid request", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("sell_item_error", "status", 500, "reason", "cannot sell item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	if !sold {
		l.Info("sell_item_out_of_stock", "itemID", item.ID, "itemStatus", item.Status)
		return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Out of stock", Data: map[string]any{}})
	}

	l.Info("sell_item_success", "itemID", item.ID, "quantity", qty)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item Sold", Data: item})
}
