package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Github22799/Recipe-App-API/internal/middleware"
	"github.com/Github22799/Recipe-App-API/internal/service"
)

// ImageHandler serves the media catalog: multipart uploads and the
// caller's image listing.
type ImageHandler struct {
	images *service.ImageService
}

func NewImageHandler(images *service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) List(c *gin.Context) {
	images, err := h.images.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list images"})
		return
	}

	resp := []ImageResponse{}
	for _, img := range images {
		resp = append(resp, newImageResponse(img))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "an image file is required"})
		return
	}
	defer file.Close()

	if header.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is empty"})
		return
	}

	image, err := h.images.Upload(
		c.Request.Context(),
		middleware.UserID(c),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
		c.PostForm("description"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, newImageResponse(*image))
}
