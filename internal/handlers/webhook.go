// handlers/webhook.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"estatesync-listings/internal/normalize"
	"estatesync-listings/internal/services"
)

type WebhookHandler struct {
	listingService *services.ListingService
}

func NewWebhookHandler(listingService *services.ListingService) *WebhookHandler {
	return &WebhookHandler{listingService: listingService}
}

// Receive accepts one listing submission from the form-builder integration.
// The body may be a JSON object, a JSON array wrapping one object, or a
// form-encoded/multipart field set. An empty body is a connectivity check and
// is acknowledged without creating a record.
func (h *WebhookHandler) Receive(c *gin.Context) {
	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.listingService.IngestSubmission(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "no data received",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"listing_id": result.ListingID,
	})
}

// decodeBody reads the submission into a raw payload value. A nil result with
// a nil error means the body was empty.
func decodeBody(c *gin.Context) (any, error) {
	contentType := c.ContentType()

	if contentType == "" || strings.Contains(contentType, "json") {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, normalize.ErrUnrecognizedPayload
		}
		body = bytes.TrimSpace(body)
		if len(body) == 0 {
			return nil, nil
		}
		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, normalize.ErrUnrecognizedPayload
		}
		return payload, nil
	}

	if strings.Contains(contentType, "multipart/form-data") {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			return nil, normalize.ErrUnrecognizedPayload
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return nil, normalize.ErrUnrecognizedPayload
	}

	payload := make(map[string]any, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) == 1 {
			payload[key] = values[0]
			continue
		}
		items := make([]any, 0, len(values))
		for _, v := range values {
			items = append(items, v)
		}
		payload[key] = items
	}
	return payload, nil
}
