package folio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	coverImageWidth = 1600
	cardImageWidth  = 800
	jpegQuality     = 80
	maxUploadSize   = 10 << 20 // 10MB
)

// ErrUploadTooLarge is returned for files over maxUploadSize.
var ErrUploadTooLarge = errors.New("folio: uploaded file too large")

// DiskStore keeps uploaded files under a root directory. Stored paths are
// always relative to the root and use forward slashes, so they can be
// persisted on records and served under /media/.
type DiskStore struct {
	root string
}

// NewDiskStore creates a DiskStore rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{root: dir}
}

// Store writes data under pathPrefix with a generated name and returns the
// relative path.
func (d *DiskStore) Store(pathPrefix string, data []byte, ext string) (string, error) {
	name := uuid.NewString() + ext
	rel := posixJoin(pathPrefix, name)
	full, err := d.resolve(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return rel, nil
}

// Delete removes a stored file. A missing file is not an error; the record
// pointing at it has already moved on.
func (d *DiskStore) Delete(path string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// resolve maps a stored relative path onto the root, rejecting anything
// that would escape it.
func (d *DiskStore) resolve(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid stored path %q", rel)
	}
	return filepath.Join(d.root, clean), nil
}

func posixJoin(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, "/")
}

// processImage decodes an image, resizes it down to maxWidth if wider, and
// re-encodes it as JPEG. Uploads always land on disk in one known format.
func processImage(src io.Reader, maxWidth int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// storeImageUpload reads an optional multipart image field, processes it,
// and stores it under pathPrefix. Returns "" when the field is absent so
// callers can keep the current file.
func (a *App) storeImageUpload(file *multipart.FileHeader, pathPrefix string, maxWidth int) (string, error) {
	if file == nil {
		return "", nil
	}
	if file.Size > maxUploadSize {
		return "", ErrUploadTooLarge
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := processImage(src, maxWidth)
	if err != nil {
		return "", err
	}
	return a.Files.Store(pathPrefix, data, ".jpg")
}

// storeFileUpload stores a non-image upload (resume pdf) verbatim, keeping
// its extension.
func (a *App) storeFileUpload(file *multipart.FileHeader, pathPrefix string) (string, error) {
	if file == nil {
		return "", nil
	}
	if file.Size > maxUploadSize {
		return "", ErrUploadTooLarge
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".bin"
	}
	return a.Files.Store(pathPrefix, data, ext)
}
