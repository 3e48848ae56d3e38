package transport

import (
	"fmt"
	"io"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/gin-gonic/gin"
)

const imageField = "image"

// ExtractImage returns the bytes of the multipart file field "image" untouched.
// A missing field, a plain text field or a non-multipart body is entity.ErrMissingImage.
func ExtractImage(c *gin.Context) (entity.ImagePayload, error) {
	header, err := c.FormFile(imageField)
	if err != nil {
		return entity.ImagePayload{}, entity.ErrMissingImage
	}

	file, err := header.Open()
	if err != nil {
		return entity.ImagePayload{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return entity.ImagePayload{}, fmt.Errorf("read upload: %w", err)
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = entity.DefaultMediaType
	}

	return entity.ImagePayload{
		Data:      data,
		MediaType: mediaType,
		Filename:  header.Filename,
	}, nil
}
