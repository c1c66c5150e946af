package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pawcare-admin/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// PayloadField is the multipart form field carrying the JSON document when
// files are uploaded alongside it.
const PayloadField = "data"

// BindPayload binds dst from a JSON body, or from the JSON PayloadField of a
// multipart form. Files under fileField are returned as uploads.
func BindPayload(c *gin.Context, dst any, fileField string) ([]storage.Upload, error) {
	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		if c.Request.ContentLength == 0 {
			return nil, binding.Validator.ValidateStruct(dst)
		}
		return nil, c.ShouldBindJSON(dst)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	if raw := form.Value[PayloadField]; len(raw) > 0 && strings.TrimSpace(raw[0]) != "" {
		if err := json.Unmarshal([]byte(raw[0]), dst); err != nil {
			return nil, err
		}
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return nil, err
	}

	if fileField == "" {
		return nil, nil
	}
	files := form.File[fileField]
	uploads := make([]storage.Upload, 0, len(files))
	for _, fh := range files {
		uploads = append(uploads, storage.FromFileHeader(fh))
	}
	return uploads, nil
}

func isMaxBytes(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
