package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
)

const (
	uploadField = "file"

	// Room for multipart boundaries and the other form fields.
	multipartOverhead = 1 << 20
	multipartMemory   = 32 << 20
)

type uploadedFile struct {
	File     io.Reader
	Filename string
	Size     int64

	closer multipart.File
}

func (u *uploadedFile) Close() {
	if u.closer != nil {
		_ = u.closer.Close()
	}
}

// parseUpload reads the attendance file from a multipart request. A missing
// file is not an error here; request validation reports it.
func parseUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (*uploadedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, attendance.ErrFileTooLarge
		}
		slog.Error("Failed to parse multipart form", "error", err)
		return nil, fmt.Errorf("%w: %v", attendance.ErrInvalidUpload, err)
	}

	file, fileHeader, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return &uploadedFile{}, nil
		}
		slog.Error("Failed to get file from form", "error", err)
		return nil, fmt.Errorf("%w: %v", attendance.ErrInvalidUpload, err)
	}

	return &uploadedFile{
		File:     file,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		closer:   file,
	}, nil
}
