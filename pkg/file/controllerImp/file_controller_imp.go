package controllerImp

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"docqa/pkg/ai"
	"docqa/pkg/extract"
	"docqa/pkg/file/service"
)

type FileCtrl struct {
	svc       service.FileService
	uploadDir string
}

func New(svc service.FileService, uploadDir string) *FileCtrl {
	return &FileCtrl{svc: svc, uploadDir: uploadDir}
}

func (h *FileCtrl) Upload(c echo.Context) error {
	path, mediaType, _, err := h.saveUpload(c)
	if isMissingFile(err) {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "fail", "message": "No file uploaded"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "fail", "message": "Server Error"})
	}

	if err := h.svc.Upload(path, mediaType); err != nil {
		if errors.Is(err, extract.ErrUnsupportedMediaType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"status": "fail", "message": "Unsupported file type"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "fail", "message": "Error extracting file text"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "File processed successfully"})
}

func (h *FileCtrl) Summary(c echo.Context) error {
	path, mediaType, name, err := h.saveUpload(c)
	if isMissingFile(err) {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "fail", "message": "No file uploaded"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "fail", "message": "Server Error"})
	}

	summary, err := h.svc.Summarize(c.Request().Context(), path, mediaType, name)
	switch {
	case errors.Is(err, extract.ErrUnsupportedMediaType):
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "fail", "message": "Unsupported file type"})
	case errors.Is(err, ai.ErrGeneration):
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "fail", "message": "No summary generated"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "fail", "message": "Error extracting file text"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "success", "data": summary})
}

// saveUpload spools the multipart "file" field to the upload dir under a
// timestamp-derived name, keeping the original extension.
func (h *FileCtrl) saveUpload(c echo.Context) (path, mediaType, name string, err error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", "", "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", "", "", err
	}
	path = filepath.Join(h.uploadDir, fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(fh.Filename)))
	dst, err := os.Create(path)
	if err != nil {
		return "", "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", "", err
	}
	return path, fh.Header.Get("Content-Type"), fh.Filename, nil
}

func isMissingFile(err error) bool {
	return errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)
}
