package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmendustri/asm-endustri-api/internal/domain"
)

// jpegBytes returns size bytes starting with the JPEG magic number.
func jpegBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00})
	return b
}

func pdfBytes() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")
}

// newFileHeader builds a real multipart.FileHeader by writing and re-parsing
// a multipart form, the same shape Fiber hands to the handler.
func newFileHeader(t *testing.T, field, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var out []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			out = append(out, path)
		}
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestNewStore_CreatesCategoryDirs(t *testing.T) {
	root := t.TempDir()
	_, err := NewStore(root)
	require.NoError(t, err)

	for _, sub := range []string{"products/images", "products/catalogs", "gallery", "general"} {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(sub)))
		require.NoError(t, err, sub)
		assert.True(t, info.IsDir())
	}
}

func TestSave_JPEGProductImage(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	fh := newFileHeader(t, "product_image", "Mercedes Actros (ön).jpg", "image/jpeg", jpegBytes(200*1024))
	saved, err := store.Save(context.Background(), CategoryProductImage, fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(saved.PublicURL, "/uploads/products/images/"),
		"public URL must live under the product images dir, got %s", saved.PublicURL)
	assert.True(t, strings.HasSuffix(saved.Filename, ".jpg"))
	assert.NotContains(t, saved.Filename, " ", "spaces must be sanitized away")
	assert.NotContains(t, saved.Filename, "(")

	onDisk := filepath.Join(root, "products", "images", saved.Filename)
	info, err := os.Stat(onDisk)
	require.NoError(t, err)
	assert.Equal(t, int64(200*1024), info.Size())
}

func TestSave_PDFCatalogAllowed_PDFImageRejected(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	pdf := newFileHeader(t, "product_catalog", "katalog.pdf", "application/pdf", pdfBytes())
	saved, err := store.Save(context.Background(), CategoryProductCatalog, pdf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(saved.PublicURL, "/uploads/products/catalogs/"))

	pdfAsImage := newFileHeader(t, "product_image", "katalog.pdf", "application/pdf", pdfBytes())
	_, err = store.Save(context.Background(), CategoryProductImage, pdfAsImage)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
}

func TestSave_DeclaredTypeOutsideAllowList_NothingWritten(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	fh := newFileHeader(t, "gallery_image", "notes.txt", "text/plain", []byte("plain text"))
	_, err = store.Save(context.Background(), CategoryGalleryImage, fh)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
	assert.Empty(t, listFiles(t, root), "a rejected upload must not leave bytes on disk")
}

func TestSave_RenamedBinaryCaughtBySniffing(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	// Declared image/png but the content is plain text.
	fh := newFileHeader(t, "gallery_image", "fake.png", "image/png", []byte("definitely not a png"))
	_, err = store.Save(context.Background(), CategoryGalleryImage, fh)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
	assert.Empty(t, listFiles(t, root))
}

func TestSave_OversizeRejected_NothingWritten(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	// Size check runs before any bytes move; a bare header is enough.
	fh := &multipart.FileHeader{
		Filename: "huge.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
		Size:     11 << 20, // 11 MiB
	}
	_, err = store.Save(context.Background(), CategoryProductImage, fh)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Empty(t, listFiles(t, root))
}

func TestSave_CanceledContext_NoPartialFile(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // client already gone

	fh := newFileHeader(t, "gallery_image", "photo.jpg", "image/jpeg", jpegBytes(64*1024))
	_, err = store.Save(ctx, CategoryGalleryImage, fh)
	require.Error(t, err)
	assert.Empty(t, listFiles(t, root), "an aborted upload must be cleaned up")
}

func TestDelete_RemovesSavedFile(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	fh := newFileHeader(t, "gallery_image", "photo.jpg", "image/jpeg", jpegBytes(4096))
	saved, err := store.Save(context.Background(), CategoryGalleryImage, fh)
	require.NoError(t, err)

	require.NoError(t, store.Delete(saved.PublicURL))
	_, err = os.Stat(filepath.Join(root, "gallery", saved.Filename))
	assert.True(t, os.IsNotExist(err))

	// Second delete: already gone.
	assert.ErrorIs(t, store.Delete(saved.PublicURL), domain.ErrNotFound)
}

func TestDelete_TraversalBlocked_FilesystemUntouched(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "uploads")
	store, err := NewStore(root)
	require.NoError(t, err)

	// Sentinel outside the uploads root.
	sentinel := filepath.Join(base, "passwd")
	require.NoError(t, os.WriteFile(sentinel, []byte("root:x:0:0"), 0o644))

	for _, p := range []string{
		"../passwd",
		"/uploads/../passwd",
		"uploads/../../passwd",
		"/uploads/gallery/../../passwd",
		"/",
		"",
	} {
		assert.ErrorIs(t, store.Delete(p), domain.ErrUnsafePath, "path %q", p)
	}

	_, err = os.Stat(sentinel)
	assert.NoError(t, err, "traversal attempts must not touch the filesystem")
}

func TestGenerateFilename_Sanitizes(t *testing.T) {
	name := generateFilename("../katalog sayfası (5)?.PDF")
	assert.True(t, strings.HasSuffix(name, ".pdf"), "extension lowercased, got %s", name)
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "?")

	// Collision resistance: same input, different names.
	assert.NotEqual(t, name, generateFilename("../katalog sayfası (5)?.PDF"))
}

func TestGenerateFilename_EmptyStem(t *testing.T) {
	name := generateFilename(".jpg")
	assert.True(t, strings.HasPrefix(name, "file-"), "got %s", name)
}
