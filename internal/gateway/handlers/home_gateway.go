package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PeriodCard is one sales period summary on the home page.
type PeriodCard struct {
	Label               string `json:"label"`
	Value               string `json:"value"`
	Date                string `json:"date"`
	Orders              string `json:"orders"`
	Refunds             int    `json:"refunds"`
	AdvCost             string `json:"adv_cost"`
	EstPayout           string `json:"est_payout"`
	GrossProfit         string `json:"gross_profit"`
	NetProfit           string `json:"net_profit"`
	SalesPercentage     string `json:"sales_percentage,omitempty"`
	NetProfitPercentage string `json:"net_profit_percentage,omitempty"`
	Color               string `json:"color"`
}

// HomePeriodCards are fixed figures; no sales data source backs them yet.
var HomePeriodCards = []PeriodCard{
	{
		Label:       "Today",
		Value:       "€ 81.88",
		Date:        "23 April 2025",
		Orders:      "4 / 4",
		AdvCost:     "€ 0.00",
		EstPayout:   "€ 59.48",
		GrossProfit: "€ 13.57",
		NetProfit:   "€ 13.57",
		Color:       "blue",
	},
	{
		Label:       "Yesterday",
		Value:       "€ 332.70",
		Date:        "22 April 2025",
		Orders:      "3 / 4",
		AdvCost:     "€ 0.00",
		EstPayout:   "€ 303.33",
		GrossProfit: "€ 56.53",
		NetProfit:   "€ 56.53",
		Color:       "teal",
	},
	{
		Label:               "Month to date",
		Value:               "€ 22,065.91",
		Date:                "1-23 April 2025",
		Orders:              "443 / 496",
		Refunds:             24,
		AdvCost:             "€ 0.00",
		EstPayout:           "€ 17,319.42",
		GrossProfit:         "€ 2,226.67",
		NetProfit:           "€ 2,187.67",
		SalesPercentage:     "+173.7%",
		NetProfitPercentage: "+153.7%",
		Color:               "cyan",
	},
	{
		Label:               "Last month",
		Value:               "€ 12,900.94",
		Date:                "1-31 March 2025",
		Orders:              "300 / 318",
		Refunds:             10,
		AdvCost:             "€ 0.00",
		EstPayout:           "€ 9,708.71",
		GrossProfit:         "€ 1,055.86",
		NetProfit:           "€ 1,055.86",
		SalesPercentage:     "+134.0%",
		NetProfitPercentage: "+30.3%",
		Color:               "emerald",
	},
}

func HomeMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Home metrics retrieved", HomePeriodCards))
}
