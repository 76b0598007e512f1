package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ship_catalog/internal/app/catalog"
	"ship_catalog/internal/app/ds"
	"ship_catalog/internal/app/dto"
)

const requestTimeout = 5 * time.Second

// maxImageSize bounds multipart uploads.
const maxImageSize = 10 << 20

type Catalog interface {
	Page(ctx context.Context, c catalog.Criteria, order catalog.Order, page catalog.Page) ([]ds.Ship, error)
	Count(ctx context.Context, c catalog.Criteria) (int, error)
	Get(ctx context.Context, id int64) (ds.Ship, error)
	Create(ctx context.Context, c catalog.Candidate) (ds.Ship, error)
	Update(ctx context.Context, id int64, patch catalog.Candidate) (ds.Ship, error)
	Delete(ctx context.Context, id int64) error
	AttachImage(ctx context.Context, id int64, objectName string) (ds.Ship, string, error)
}

type ImageStore interface {
	PutImage(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	RemoveImage(ctx context.Context, name string) error
}

type ShipHandler struct {
	Catalog Catalog
	Images  ImageStore // nil disables uploads
}

// GetShipsAPI godoc
// @Summary List ships
// @Description Filtered, sorted and paged ship listing
// @Tags ships
// @Produce json
// @Param name query string false "Name substring"
// @Param planet query string false "Planet substring"
// @Param shipType query string false "TRANSPORT, MILITARY or MERCHANT"
// @Param after query int false "Earliest production date, epoch millis"
// @Param before query int false "Latest production date, epoch millis"
// @Param isUsed query bool false "Used flag"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query int false "Minimum crew size"
// @Param maxCrewSize query int false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Param order query string false "ID, SPEED, DATE or RATING"
// @Param pageNumber query int false "Zero-based page number"
// @Param pageSize query int false "Page size"
// @Success 200 {array} dto.ShipResponse
// @Failure 400 {object} object "error: message"
// @Router /rest/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, err := parsePage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order := catalog.ParseOrder(c.Query("order"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	ships, err := h.Catalog.Page(ctx, criteria, order, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromShips(ships))
}

// CountShipsAPI godoc
// @Summary Count ships
// @Description Number of ships matching the listing filters
// @Tags ships
// @Produce json
// @Param name query string false "Name substring"
// @Param planet query string false "Planet substring"
// @Param shipType query string false "TRANSPORT, MILITARY or MERCHANT"
// @Param after query int false "Earliest production date, epoch millis"
// @Param before query int false "Latest production date, epoch millis"
// @Param isUsed query bool false "Used flag"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query int false "Minimum crew size"
// @Param maxCrewSize query int false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Success 200 {integer} int
// @Failure 400 {object} object "error: message"
// @Router /rest/ships/count [get]
func (h *ShipHandler) CountShipsAPI(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	count, err := h.Catalog.Count(ctx, criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// GetShipAPI godoc
// @Summary Get ship
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} dto.ShipResponse
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	ship, err := h.Catalog.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromShip(ship))
}

// CreateShipAPI godoc
// @Summary Create ship
// @Description Validates the ship, computes its rating and stores it
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body dto.ShipRequest true "Ship"
// @Success 200 {object} dto.ShipResponse
// @Failure 400 {object} object "error: message"
// @Failure 401 {object} object "error: message"
// @Failure 403 {object} object "error: message"
// @Router /rest/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var req dto.ShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	ship, err := h.Catalog.Create(ctx, req.ToCandidate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromShip(ship))
}

// UpdateShipAPI godoc
// @Summary Update ship
// @Description Merges the given fields onto the stored ship, revalidates and recomputes the rating
// @Tags ships
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param ship body dto.ShipRequest true "Fields to change"
// @Success 200 {object} dto.ShipResponse
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [post]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	var req dto.ShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	ship, err := h.Catalog.Update(ctx, id, req.ToCandidate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromShip(ship))
}

// DeleteShipAPI godoc
// @Summary Delete ship
// @Tags ships
// @Param id path int true "Ship ID"
// @Success 200
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.Catalog.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AddShipImageAPI godoc
// @Summary Upload ship image
// @Description Stores the image in object storage and replaces the previous one
// @Tags ships
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ship ID"
// @Param file formData file true "Image"
// @Success 200 {object} dto.ImageResponse
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Failure 503 {object} object "error: message"
// @Router /rest/ships/{id}/image [post]
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	if h.Images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize)
	header, err := c.FormFile("file")
	if err != nil {
		header, err = c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no image file provided"})
			return
		}
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	// the ship must exist before anything is uploaded
	if _, err := h.Catalog.Get(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)
	if err := h.Images.PutImage(ctx, name, file, header.Size, header.Header.Get("Content-Type")); err != nil {
		logrus.WithError(err).WithField("ship_id", id).Error("image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	ship, previous, err := h.Catalog.AttachImage(ctx, id, name)
	if err != nil {
		if rmErr := h.Images.RemoveImage(ctx, name); rmErr != nil {
			logrus.WithError(rmErr).Warn("orphaned image left in bucket")
		}
		respondError(c, err)
		return
	}
	if previous != "" {
		if err := h.Images.RemoveImage(ctx, previous); err != nil {
			logrus.WithError(err).WithField("object", previous).Warn("failed to remove old image")
		}
	}

	c.JSON(http.StatusOK, dto.ImageResponse{ShipID: ship.ShipID, PhotoURL: ship.PhotoURL})
}

func shipID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ship id"})
		return 0, false
	}
	return id, true
}

// respondError maps catalog errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidArgument), errors.Is(err, catalog.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": catalog.ErrNotFound.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseCriteria(c *gin.Context) (catalog.Criteria, error) {
	var (
		cr  catalog.Criteria
		err error
	)
	if v, ok := c.GetQuery("name"); ok {
		cr.Name = &v
	}
	if v, ok := c.GetQuery("planet"); ok {
		cr.Planet = &v
	}
	if v, ok := c.GetQuery("shipType"); ok {
		t, valid := ds.ParseShipType(v)
		if !valid {
			return cr, fmt.Errorf("unknown shipType %q", v)
		}
		cr.ShipType = &t
	}
	if cr.After, err = queryTime(c, "after"); err != nil {
		return cr, err
	}
	if cr.Before, err = queryTime(c, "before"); err != nil {
		return cr, err
	}
	if cr.IsUsed, err = queryBool(c, "isUsed"); err != nil {
		return cr, err
	}
	if cr.MinSpeed, err = queryFloat(c, "minSpeed"); err != nil {
		return cr, err
	}
	if cr.MaxSpeed, err = queryFloat(c, "maxSpeed"); err != nil {
		return cr, err
	}
	if cr.MinCrewSize, err = queryInt(c, "minCrewSize"); err != nil {
		return cr, err
	}
	if cr.MaxCrewSize, err = queryInt(c, "maxCrewSize"); err != nil {
		return cr, err
	}
	if cr.MinRating, err = queryFloat(c, "minRating"); err != nil {
		return cr, err
	}
	if cr.MaxRating, err = queryFloat(c, "maxRating"); err != nil {
		return cr, err
	}
	return cr, nil
}

func parsePage(c *gin.Context) (catalog.Page, error) {
	page := catalog.DefaultPage()
	number, err := queryInt(c, "pageNumber")
	if err != nil {
		return page, err
	}
	if number != nil {
		page.Number = *number
	}
	size, err := queryInt(c, "pageSize")
	if err != nil {
		return page, err
	}
	if size != nil {
		page.Size = *size
	}
	return page, nil
}

func queryInt(c *gin.Context, key string) (*int, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	return &n, nil
}

func queryFloat(c *gin.Context, key string) (*float64, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	return &f, nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	return &b, nil
}

// queryTime reads an epoch-millis parameter.
func queryTime(c *gin.Context, key string) (*time.Time, error) {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}
