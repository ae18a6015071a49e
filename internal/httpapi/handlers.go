package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jRubio4/EW-Payload-Plotter/internal/metrics"
	"github.com/jRubio4/EW-Payload-Plotter/pkg/ewpayload"
)

type decodeRequest struct {
	Hex     string `json:"hex" binding:"required"`
	Product string `json:"product"`
	Subtype string `json:"subtype"`
}

type productInfo struct {
	Name      ewpayload.Product `json:"name"`
	MinLength int               `json:"min_length"`
}

func (s *Server) handleProducts(c *gin.Context) {
	products := ewpayload.Products()
	out := make([]productInfo, 0, len(products))
	for _, p := range products {
		n, _ := ewpayload.MinLength(p)
		out = append(out, productInfo{Name: p, MinLength: n})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	product, opts, err := s.resolve(req.Product, req.Subtype)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	result, err := ewpayload.Decode(c.Request.Context(), req.Hex, product, opts)
	s.metrics.ObserveDecode(string(product), resultLabel(err), time.Since(start))
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	for _, w := range result.Warnings {
		s.log.WithField("request_id", c.GetString(requestIDKey)).
			WithField("product", product).
			Warn(w)
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleBatch(c *gin.Context) {
	product, opts, err := s.resolve(c.Query("product"), c.Query("subtype"))
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	body := c.Request.Body
	if s.cfg.HTTP.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, s.cfg.HTTP.MaxBodyBytes)
	}

	batch, err := ewpayload.DecodeLog(c.Request.Context(), body, product, opts)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(c, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	s.metrics.ObserveBatch(len(batch.Entries), len(batch.Failures), batch.Skipped)
	c.JSON(http.StatusOK, batch)
}

// resolve applies the configured defaults to an empty product or subtype.
func (s *Server) resolve(product, subtype string) (ewpayload.Product, ewpayload.DecodeOptions, error) {
	if product == "" {
		product = s.cfg.Decode.Product
	}
	if subtype == "" {
		subtype = s.cfg.Decode.AnalogSubtype
	}
	p, err := ewpayload.ParseProduct(product)
	if err != nil {
		return "", ewpayload.DecodeOptions{}, err
	}
	return p, ewpayload.DecodeOptions{AnalogSubtype: subtype}, nil
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ewpayload.ErrFrameTooShort):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ewpayload.ErrMalformedHex),
		errors.Is(err, ewpayload.ErrUnknownProduct),
		errors.Is(err, ewpayload.ErrUnknownSubtype):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ewpayload.ErrFrameTooShort):
		return metrics.ResultTooShort
	case errors.Is(err, ewpayload.ErrMalformedHex):
		return metrics.ResultMalformed
	default:
		return metrics.ResultBadRequest
	}
}
