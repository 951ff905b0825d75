package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"sourcing-planner/config"
	"sourcing-planner/internal/purchase"
	"sourcing-planner/internal/purchaserpc"
)

const (
	ThumbnailSize     = 70
	THUMBNAIL_TTL     = time.Hour
	NoImageMessage    = "No img"
	thumbnailMaxBytes = 10 << 20
)

type ImageHTTPHandler struct {
	purchaseClient purchaserpc.PurchaseServiceClient
	imageBaseURL   string
	httpClient     *http.Client
	thumbnails     *cache.Cache
	logger         *logrus.Logger
}

func NewImageHTTPHandler(purchaseClient purchaserpc.PurchaseServiceClient, imageBaseURL string, httpClient *http.Client) *ImageHTTPHandler {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &ImageHTTPHandler{
		purchaseClient: purchaseClient,
		imageBaseURL:   imageBaseURL,
		httpClient:     httpClient,
		thumbnails:     cache.New(THUMBNAIL_TTL, 2*THUMBNAIL_TTL),
		logger:         config.GetLogger(),
	}
}

type imageURI struct {
	ASIN string `uri:"asin" binding:"required,len=10,alphanum"`
}

type purchaseURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// PurchaseThumbnail serves the thumbnail of the record named by :id.
func (h *ImageHTTPHandler) PurchaseThumbnail(c *gin.Context) {
	var uri purchaseURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid purchase ID"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.purchaseClient.Get(ctx, &purchaserpc.GetRequest{Id: uri.ID})
	if err != nil {
		handleGRPCError(c, err)
		return
	}
	if resp.Purchase == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": NoImageMessage})
		return
	}
	h.serveThumbnail(c, resp.Purchase.Asin)
}

// ASINThumbnail serves the thumbnail for :asin directly.
func (h *ImageHTTPHandler) ASINThumbnail(c *gin.Context) {
	var uri imageURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid ASIN"))
		return
	}
	h.serveThumbnail(c, strings.ToUpper(uri.ASIN))
}

func (h *ImageHTTPHandler) serveThumbnail(c *gin.Context, asin string) {
	if cached, ok := h.thumbnails.Get(asin); ok {
		c.Header("X-Cache", "HIT")
		c.Data(http.StatusOK, "image/jpeg", cached.([]byte))
		return
	}

	thumb, err := h.fetchThumbnail(c.Request.Context(), asin)
	if err != nil {
		h.logger.WithFields(logrus.Fields{"asin": asin, "error": err.Error()}).Debug("thumbnail unavailable")
		c.JSON(http.StatusNotFound, gin.H{"message": NoImageMessage})
		return
	}

	h.thumbnails.Set(asin, thumb, cache.DefaultExpiration)
	c.Header("X-Cache", "MISS")
	c.Data(http.StatusOK, "image/jpeg", thumb)
}

// fetchThumbnail downloads the product image and fits it into a
// ThumbnailSize square, JPEG encoded.
func (h *ImageHTTPHandler) fetchThumbnail(ctx context.Context, asin string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, purchase.ImageURL(h.imageBaseURL, asin), nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image host answered %d", resp.StatusCode)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, thumbnailMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	// the image host answers unknown ASINs with a 1x1 pixel
	if b := img.Bounds(); b.Dx() <= 1 || b.Dy() <= 1 {
		return nil, fmt.Errorf("placeholder image")
	}

	var buf bytes.Buffer
	thumb := imaging.Fit(img, ThumbnailSize, ThumbnailSize, imaging.Lanczos)
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
