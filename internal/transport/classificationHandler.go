package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/ds124wfegd/tomato-gateway/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *ClassificationHandler) AnalyzeDisease(c *gin.Context) {
	h.analyze(c, entity.KindDisease)
}

func (h *ClassificationHandler) AnalyzeQuality(c *gin.Context) {
	h.analyze(c, entity.KindQuality)
}

func (h *ClassificationHandler) analyze(c *gin.Context, kind entity.Kind) {
	requestID := c.GetString(middleware.RequestIDKey)

	payload, err := ExtractImage(c)
	if err != nil {
		if errors.Is(err, entity.ErrMissingImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid image provided"})
			return
		}
		logrus.WithField("request_id", requestID).Errorf("Failed to read upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error reading image"})
		return
	}

	result, err := h.service.Classify(c.Request.Context(), &entity.ClassificationRequest{
		ID:      requestID,
		Kind:    kind,
		Payload: payload,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"kind":       kind,
		}).Errorf("Classification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error analyzing image"})
		return
	}

	c.JSON(http.StatusOK, result.Body())
}
