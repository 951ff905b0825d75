package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"sourcing-planner/config"
	"sourcing-planner/internal/purchase"
	"sourcing-planner/internal/purchaserpc"
)

type PurchaseHTTPHandler struct {
	purchaseClient purchaserpc.PurchaseServiceClient
	view           purchase.ViewOptions
	logger         *logrus.Logger
}

func NewPurchaseHTTPHandler(purchaseClient purchaserpc.PurchaseServiceClient, loc *time.Location, imageBaseURL string) *PurchaseHTTPHandler {
	return &PurchaseHTTPHandler{
		purchaseClient: purchaseClient,
		view: purchase.ViewOptions{
			Location:     loc,
			ImageBaseURL: imageBaseURL,
			ThumbnailURL: ThumbnailPath,
		},
		logger: config.GetLogger(),
	}
}

// ThumbnailPath is the gateway route serving the thumbnail of a record.
func ThumbnailPath(id uuid.UUID) string {
	return "/api/v1/purchases/" + id.String() + "/thumbnail"
}

type ListPurchasesQuery struct {
	Sort  string `form:"sort"`
	Order string `form:"order"`
}

type BulkActionRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,max=500,dive,uuid"`
}

type BulkSummary struct {
	Results []*purchaserpc.BulkResult `json:"results"`
	Counts  map[string]int            `json:"counts"`
}

func (h *PurchaseHTTPHandler) loadRows(ctx context.Context) ([]purchase.ViewRow, error) {
	resp, err := h.purchaseClient.List(ctx, &purchaserpc.ListRequest{})
	if err != nil {
		return nil, err
	}
	records, err := purchaserpc.RecordsFromProto(resp.Purchases)
	if err != nil {
		return nil, err
	}
	return purchase.BuildView(records, h.view), nil
}

func (h *PurchaseHTTPHandler) ListPurchases(c *gin.Context) {
	var query ListPurchasesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	var (
		key    purchase.SortKey
		order  = purchase.Ascending
		sorted bool
	)
	if query.Sort != "" {
		k, ok := purchase.ParseSortKey(query.Sort)
		if !ok {
			c.JSON(http.StatusBadRequest, errorResponse("Unknown sort column: "+query.Sort))
			return
		}
		key, sorted = k, true
	}
	if query.Order != "" {
		o, ok := purchase.ParseSortOrder(query.Order)
		if !ok {
			c.JSON(http.StatusBadRequest, errorResponse("Order must be asc or desc"))
			return
		}
		order = o
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	rows, err := h.loadRows(ctx)
	if err != nil {
		config.LogError(h.logger, "gateway", "ListPurchases", "load purchases", nil, err)
		handleGRPCError(c, err)
		return
	}

	meta := gin.H{"total": len(rows)}
	if sorted {
		purchase.SortBy(rows, func(r purchase.ViewRow) purchase.Record { return r.Record }, key, order)
		meta["sort"] = key
		meta["order"] = order
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Purchases retrieved", rows, meta))
}

func (h *PurchaseHTTPHandler) Metrics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.purchaseClient.StatusCounts(ctx, &purchaserpc.StatusCountsRequest{})
	if err != nil {
		config.LogError(h.logger, "gateway", "Metrics", "load status counts", nil, err)
		handleGRPCError(c, err)
		return
	}

	counts := resp.Totals()
	ratios := counts.Ratios()
	c.JSON(http.StatusOK, successResponse("Purchase metrics retrieved", gin.H{
		"counts": counts,
		"ratios": ratios,
		"cards":  ratios.Cards(),
	}))
}

func (h *PurchaseHTTPHandler) Seed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.purchaseClient.Seed(ctx, &purchaserpc.SeedRequest{})
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	message := "Store already has purchases, nothing seeded"
	if resp.Inserted > 0 {
		message = fmt.Sprintf("Seeded %d example purchases", resp.Inserted)
	}
	c.JSON(http.StatusOK, successResponse(message, gin.H{"inserted": resp.Inserted}))
}

func (h *PurchaseHTTPHandler) Capture(c *gin.Context) {
	h.bulk(c, "captured", h.purchaseClient.Capture)
}

func (h *PurchaseHTTPHandler) Delete(c *gin.Context) {
	h.bulk(c, "deleted", h.purchaseClient.Delete)
}

type bulkCall func(ctx context.Context, in *purchaserpc.BulkRequest, opts ...grpc.CallOption) (*purchaserpc.BulkResponse, error)

func (h *PurchaseHTTPHandler) bulk(c *gin.Context, verb string, call bulkCall) {
	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	resp, err := call(ctx, &purchaserpc.BulkRequest{Ids: req.IDs})
	if err != nil {
		config.LogError(h.logger, "gateway", "bulk", verb+" purchases", req.IDs, err)
		handleGRPCError(c, err)
		return
	}

	summary := BulkSummary{Results: resp.Results, Counts: map[string]int{}}
	for _, r := range resp.Results {
		summary.Counts[r.Outcome]++
	}
	c.JSON(http.StatusOK, successResponse(fmt.Sprintf("%d of %d purchases %s", summary.Counts["updated"]+summary.Counts["deleted"], len(resp.Results), verb), summary))
}

func (h *PurchaseHTTPHandler) Export(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	rows, err := h.loadRows(ctx)
	if err != nil {
		config.LogError(h.logger, "gateway", "Export", "load purchases", nil, err)
		handleGRPCError(c, err)
		return
	}

	filename := fmt.Sprintf("purchases-%s.xlsx", time.Now().In(h.location()).Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	if err := purchase.WriteWorkbook(c.Writer, rows); err != nil {
		config.LogError(h.logger, "gateway", "Export", "write workbook", nil, err)
		c.Abort()
	}
}

func (h *PurchaseHTTPHandler) location() *time.Location {
	if h.view.Location == nil {
		return time.UTC
	}
	return h.view.Location
}
