package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/sims/internal/models"
	"github.com/Skotchmaster/sims/internal/repo"
)

type ItemProfit struct {
	ProductName    string  `json:"product_name"`
	TotalQuantity  int     `json:"total_quantity"`
	TotalPrice     float64 `json:"total_price"`
	UnitsSold      int     `json:"units_sold"`
	PerUnitCost    float64 `json:"per_unit_cost"`
	PerUnitPrice   float64 `json:"per_unit_price"`
	UnitsSoldPrice float64 `json:"units_sold_price"`
	ProductProfit  float64 `json:"product_profit"`
}

type Report struct {
	Items       []ItemProfit
	TotalProfit float64
}

var reportHeader = map[string]string{
	"product_name":     "Product Name",
	"total_quantity":   "Total Quantity",
	"total_price":      "Total Price",
	"units_sold":       "Units Sold",
	"per_unit_cost":    "Per Unit Cost",
	"per_unit_price":   "Per Unit Price",
	"units_sold_price": "Units Sold Price",
	"product_profit":   "Product Profit",
}

// Rows lays the report out as the header captions, the total, then one row
// per item.
func (r *Report) Rows() []any {
	rows := make([]any, 0, len(r.Items)+2)
	rows = append(rows, reportHeader, map[string]float64{"Total Profit": r.TotalProfit})
	for _, it := range r.Items {
		rows = append(rows, it)
	}
	return rows
}

func BuildReport(items []models.Item) *Report {
	report := &Report{Items: make([]ItemProfit, 0, len(items))}
	total := decimal.Zero

	for _, it := range items {
		price := decimal.NewFromFloat(it.Price)
		cost := decimal.NewFromFloat(it.Cost)
		sold := decimal.NewFromInt(int64(it.SoldUnits))
		totalQty := it.Quantity + it.SoldUnits

		soldPrice := sold.Mul(price)
		profit := soldPrice.Sub(cost.Mul(sold))
		total = total.Add(profit)

		report.Items = append(report.Items, ItemProfit{
			ProductName:    it.Name,
			TotalQuantity:  totalQty,
			TotalPrice:     decimal.NewFromInt(int64(totalQty)).Mul(price).InexactFloat64(),
			UnitsSold:      it.SoldUnits,
			PerUnitCost:    it.Cost,
			PerUnitPrice:   it.Price,
			UnitsSoldPrice: soldPrice.InexactFloat64(),
			ProductProfit:  profit.InexactFloat64(),
		})
	}
	report.TotalProfit = total.InexactFloat64()
	return report
}

type ProfitService struct {
	Repo *repo.GormRepo
}

// ProfitReport covers items with sales whose entry date falls in [from, to].
func (s *ProfitService) ProfitReport(ctx context.Context, from, to *models.Date) (*Report, error) {
	items, err := s.Repo.SoldItems(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return BuildReport(items), nil
}
