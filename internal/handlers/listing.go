// handlers/listing.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatesync-listings/internal/services"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// GetListings returns every stored listing, newest submission first. The
// gallery is always serialized as a JSON array.
func (h *ListingHandler) GetListings(c *gin.Context) {
	response, err := h.listingService.GetListings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetListingByID returns a single listing by its store-assigned id.
func (h *ListingHandler) GetListingByID(c *gin.Context) {
	id := c.Param("id")
	listing, err := h.listingService.GetListingByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}
