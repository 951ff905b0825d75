package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sourcing-planner/config"
	"sourcing-planner/internal/purchase"
	"sourcing-planner/internal/purchaserpc"
)

const DuplicateASINMessage = "ASIN already exists. Row not inserted."

// IngestHTTPHandler serves the public ingestion endpoint used by the
// sourcing spreadsheet. Its responses are flat JSON objects rather than
// APIResponse envelopes.
type IngestHTTPHandler struct {
	purchaseClient purchaserpc.PurchaseServiceClient
	logger         *logrus.Logger
}

func NewIngestHTTPHandler(purchaseClient purchaserpc.PurchaseServiceClient) *IngestHTTPHandler {
	return &IngestHTTPHandler{
		purchaseClient: purchaseClient,
		logger:         config.GetLogger(),
	}
}

func (h *IngestHTTPHandler) Ingest(c *gin.Context) {
	var payload purchase.IngestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body: " + err.Error()})
		return
	}

	candidate, err := purchase.ParseCandidate(payload)
	if err != nil {
		body := gin.H{"error": err.Error()}
		var invalid *purchase.InvalidCandidateError
		if errors.As(err, &invalid) {
			body["fields"] = invalid.Fields
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.purchaseClient.Ingest(ctx, purchaserpc.IngestRequestFromCandidate(candidate))
	if err != nil {
		s, _ := status.FromError(err)
		switch s.Code() {
		case codes.AlreadyExists:
			c.JSON(http.StatusOK, gin.H{"message": DuplicateASINMessage})
		case codes.InvalidArgument:
			c.JSON(http.StatusBadRequest, gin.H{"error": s.Message()})
		default:
			config.LogError(h.logger, "gateway", "Ingest", "purchase service ingest", candidate.ASIN, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": s.Message()})
		}
		return
	}

	record, err := resp.Purchase.Record()
	if err != nil {
		config.LogError(h.logger, "gateway", "Ingest", "decode ingested purchase", candidate.ASIN, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": record})
}

// Preflight answers CORS preflight requests for the ingestion endpoint.
func (h *IngestHTTPHandler) Preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Status(http.StatusNoContent)
}
