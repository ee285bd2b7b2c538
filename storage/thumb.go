package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"gallery/config"

	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"
)

// makeThumb writes a bounded JPEG thumbnail next to the original, under
// thumbs/. Best effort: nothing depends on the thumbnail existing.
func makeThumb(name string) {
	file, err := os.Open(GetFullPath(name))
	if err != nil {
		logrus.WithError(err).WithField("file", name).Warn("Could not open stored file for thumbnail")
		return
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		logrus.WithField("file", name).Debug("Skipping thumbnail for undecodable image")
		return
	}
	thumb := resize.Thumbnail(uint(config.THUMB_SIZE), uint(config.THUMB_SIZE), img, resize.Lanczos3)
	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 90}); err != nil {
		logrus.WithError(err).WithField("file", name).Warn("Could not encode thumbnail")
		return
	}
	if _, err = Save(filepath.Join(thumbDir, name), &buf); err != nil {
		logrus.WithError(err).WithField("file", name).Warn("Could not store thumbnail")
	}
}
