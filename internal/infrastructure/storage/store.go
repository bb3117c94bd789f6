package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/asmendustri/asm-endustri-api/internal/domain"
)

// Category identifies what kind of asset is being uploaded. Each category
// maps to a fixed subdirectory; user input never picks the directory.
type Category string

const (
	CategoryProductImage   Category = "product_image"
	CategoryProductCatalog Category = "product_catalog"
	CategoryGalleryImage   Category = "gallery_image"
	CategoryGeneral        Category = "general"
)

// MaxFileSize is the upload ceiling (10 MiB), matching the server body limit.
const MaxFileSize = 10 << 20

var imageMIMETypes = []string{
	"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
}

var documentMIMETypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Subdir returns the destination directory relative to the uploads root.
func (c Category) Subdir() string {
	switch c {
	case CategoryProductImage:
		return "products/images"
	case CategoryProductCatalog:
		return "products/catalogs"
	case CategoryGalleryImage:
		return "gallery"
	default:
		return "general"
	}
}

// AllowedTypes returns the MIME allow-list for the category. Catalogs accept
// documents alongside images; everything else is image-only.
func (c Category) AllowedTypes() []string {
	if c == CategoryProductCatalog {
		return append(append([]string{}, imageMIMETypes...), documentMIMETypes...)
	}
	return imageMIMETypes
}

func (c Category) accepts(mimeType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	for _, allowed := range c.AllowedTypes() {
		if mt == allowed {
			return true
		}
	}
	return false
}

// SavedFile describes a stored upload.
type SavedFile struct {
	Filename  string // generated filename on disk
	PublicURL string // path the file is served back at, e.g. /uploads/gallery/x.jpg
}

// Store writes uploaded files under a single root directory, one
// subdirectory per category.
type Store struct {
	root string // absolute uploads root
}

// NewStore resolves dir to an absolute path and creates the root plus all
// category subdirectories.
func NewStore(dir string) (*Store, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	for _, c := range []Category{CategoryProductImage, CategoryProductCatalog, CategoryGalleryImage, CategoryGeneral} {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(c.Subdir())), 0o755); err != nil {
			return nil, fmt.Errorf("storage: create %s dir: %w", c, err)
		}
	}
	return &Store{root: root}, nil
}

// Root returns the absolute uploads root (served at /uploads).
func (s *Store) Root() string {
	return s.root
}

// Save validates and persists a multipart upload for the category.
//
// Validation happens before any byte touches disk: size against MaxFileSize,
// the declared Content-Type against the category allow-list, and the actual
// leading bytes (sniffed) against the same list so a renamed binary cannot
// pass as an image. On any write failure, including a client disconnect
// surfaced through ctx, the partial file is removed.
func (s *Store) Save(ctx context.Context, category Category, file *multipart.FileHeader) (*SavedFile, error) {
	if file.Size > MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}
	declared := file.Header.Get("Content-Type")
	if !category.accepts(declared) {
		return nil, domain.ErrUnsupportedMediaType
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	sniffed, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, fmt.Errorf("storage: sniff upload: %w", err)
	}
	if !category.accepts(sniffed.String()) {
		return nil, domain.ErrUnsupportedMediaType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("storage: rewind upload: %w", err)
	}

	subdir := filepath.Join(s.root, filepath.FromSlash(category.Subdir()))
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}

	name := generateFilename(file.Filename)
	dstPath := filepath.Join(subdir, name)
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("storage: create file: %w", err)
	}

	written, err := io.Copy(dst, &contextReader{ctx: ctx, r: io.LimitReader(src, MaxFileSize+1)})
	if err == nil && written > MaxFileSize {
		err = domain.ErrFileTooLarge
	}
	if cerr := dst.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("storage: close file: %w", cerr)
	}
	if err != nil {
		// Never leave a partial file behind.
		_ = os.Remove(dstPath)
		return nil, err
	}

	return &SavedFile{
		Filename:  name,
		PublicURL: "/uploads/" + path.Join(category.Subdir(), name),
	}, nil
}

// Delete removes a previously uploaded file given its public path
// ("/uploads/..." or a path relative to the root). The resolved absolute
// path must stay inside the uploads root; anything else is ErrUnsafePath and
// the filesystem is not touched.
func (s *Store) Delete(publicPath string) error {
	p := strings.TrimPrefix(strings.TrimSpace(publicPath), "/")
	p = strings.TrimPrefix(p, "uploads/")
	if p == "" {
		return domain.ErrUnsafePath
	}

	full := filepath.Join(s.root, filepath.FromSlash(p))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return domain.ErrUnsafePath
	}

	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("storage: stat %s: %w", rel, err)
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("storage: remove %s: %w", rel, err)
	}
	return nil
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// generateFilename derives a collision-resistant, traversal-safe name from
// the client filename: sanitized stem + unix millis + random suffix + a
// sanitized lowercase extension.
func generateFilename(original string) string {
	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(filepath.Base(original), ext)
	stem = nonAlnum.ReplaceAllString(stem, "_")
	if stem == "" || stem == "_" {
		stem = "file"
	}
	ext = strings.ToLower(nonAlnum.ReplaceAllString(ext, ""))
	if ext != "" {
		ext = "." + ext
	}
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s%s", stem, time.Now().UnixMilli(), suffix, ext)
}

// contextReader fails the copy as soon as the request context is canceled,
// so an aborted upload stops writing instead of draining the body.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
