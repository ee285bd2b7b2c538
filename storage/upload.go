package storage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"gallery/config"

	"github.com/google/uuid"
)

// Files must pass both the extension and the declared MIME type check.
var allowedImageTypes = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

const thumbDir = "thumbs"

// UploadError carries the rejection reason back to the caller. Unlike the
// not-found conflation elsewhere, the reason is safe to reveal.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string {
	return e.Reason
}

// StoredFile describes an accepted upload. URL is the storage-relative
// reference recorded as the image's url column.
type StoredFile struct {
	Name string
	URL  string
	Size int64
}

// Validate applies the size ceiling and the allowed-type checks without
// touching the disk.
func Validate(file *multipart.FileHeader) error {
	if file.Size > config.MaxUploadSize() {
		return &UploadError{Reason: fmt.Sprintf("file too large: %d bytes (limit is %d MB)", file.Size, config.MAX_UPLOAD_SIZE_MB)}
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	mime := strings.TrimPrefix(file.Header.Get("Content-Type"), "image/")
	if !allowedImageTypes[ext] || !allowedImageTypes[mime] {
		return &UploadError{Reason: "only image files are allowed (jpeg, jpg, png, gif, webp)"}
	}
	return nil
}

// Accept validates the upload and writes it under a collision-resistant name,
// preserving the original extension. Nothing is written when validation
// fails; write failures surface as upload errors too.
func Accept(file *multipart.FileHeader) (StoredFile, error) {
	if err := Validate(file); err != nil {
		return StoredFile{}, err
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	src, err := file.Open()
	if err != nil {
		return StoredFile{}, &UploadError{Reason: "could not read upload: " + err.Error()}
	}
	defer src.Close()
	if _, err = Save(name, src); err != nil {
		return StoredFile{}, &UploadError{Reason: "could not store file: " + err.Error()}
	}
	makeThumb(name)
	return StoredFile{
		Name: name,
		URL:  "/images/" + name,
		Size: file.Size,
	}, nil
}

// AcceptMany validates every file before writing any, then writes them in
// order. A write failure rolls back the files already written in this batch.
func AcceptMany(files []*multipart.FileHeader) ([]StoredFile, error) {
	for _, file := range files {
		if err := Validate(file); err != nil {
			return nil, err
		}
	}
	stored := []StoredFile{}
	for _, file := range files {
		sf, err := Accept(file)
		if err != nil {
			for _, s := range stored {
				_ = Remove(s.URL)
			}
			return nil, err
		}
		stored = append(stored, sf)
	}
	return stored, nil
}

// DefaultTitle derives an image title from the original filename: the text
// preceding the first dot.
func DefaultTitle(filename string) string {
	if i := strings.Index(filename, "."); i >= 0 {
		return filename[:i]
	}
	return filename
}

// Remove deletes a stored file (and its thumbnail) by its reference URL.
// Idempotent: a missing file is not an error.
func Remove(url string) error {
	name := strings.TrimPrefix(url, "/images/")
	_ = Delete(filepath.Join(thumbDir, name))
	return Delete(name)
}
