package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFile(name, mimeType string, content []byte) File {
	return File{
		Name:     name,
		MIMEType: mimeType,
		Size:     int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func TestAcceptable(t *testing.T) {
	cases := []struct {
		name    string
		mime    string
		ext     string
		size    int64
		wantErr error
	}{
		{"jpeg", "image/jpeg", ".jpg", 10, nil},
		{"jpeg ext", "image/jpeg", ".jpeg", 10, nil},
		{"png upper ext", "image/png", ".PNG", 10, nil},
		{"gif", "image/gif", ".gif", 10, nil},
		{"exactly max", "image/png", ".png", MaxFileSize, nil},
		{"one byte over", "image/png", ".png", MaxFileSize + 1, ErrFileTooLarge},
		{"pdf", "application/pdf", ".pdf", 10, ErrUnsupportedType},
		{"image mime bad ext", "image/png", ".exe", 10, ErrUnsupportedType},
		{"good ext bad mime", "text/plain", ".png", 10, ErrUnsupportedType},
		{"webp", "image/webp", ".webp", 10, ErrUnsupportedType},
		{"empty mime", "", ".png", 10, ErrUnsupportedType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Acceptable(tc.mime, tc.ext, tc.size)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrRejected)
		})
	}
}

func TestGenerateName(t *testing.T) {
	now := time.UnixMilli(1735000000123)
	name := GenerateName("Foto Perro.JPG", now)

	assert.Regexp(t, regexp.MustCompile(`^1735000000123-\d+\.jpg$`), name)
	assert.NotEqual(t, name, GenerateName("Foto Perro.JPG", now))
}

func TestIntake_Save_WritesFilesAndReturnsRefs(t *testing.T) {
	root := t.TempDir()
	in := NewIntake(root)

	refs, err := in.Save(context.Background(), []File{
		memFile("a.png", "image/png", []byte("png-bytes")),
		memFile("b.jpg", "image/jpeg", []byte("jpg-bytes")),
	})
	require.NoError(t, err)
	require.Len(t, refs, 2)

	for i, want := range []string{"png-bytes", "jpg-bytes"} {
		assert.True(t, strings.HasPrefix(refs[i], PublicPrefix), refs[i])
		b, err := os.ReadFile(filepath.Join(StorageDir(root), strings.TrimPrefix(refs[i], PublicPrefix)))
		require.NoError(t, err)
		assert.Equal(t, want, string(b))
	}
	assert.True(t, strings.HasSuffix(refs[0], ".png"))
	assert.True(t, strings.HasSuffix(refs[1], ".jpg"))
}

func TestIntake_Save_CreatesNestedRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "deep", "uploads")
	in := NewIntake(root)

	_, err := in.Save(context.Background(), []File{memFile("a.gif", "image/gif", []byte("gif"))})
	require.NoError(t, err)

	st, err := os.Stat(StorageDir(root))
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestIntake_Save_ExactlyMaxSizeSucceeds(t *testing.T) {
	in := NewIntake(t.TempDir())
	big := bytes.Repeat([]byte{'x'}, int(MaxFileSize))

	refs, err := in.Save(context.Background(), []File{memFile("big.png", "image/png", big)})
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestIntake_Save_RejectsBeforeWriting(t *testing.T) {
	root := t.TempDir()
	in := NewIntake(root)

	_, err := in.Save(context.Background(), []File{
		memFile("ok.png", "image/png", []byte("ok")),
		memFile("bad.txt", "text/plain", []byte("nope")),
	})
	require.ErrorIs(t, err, ErrUnsupportedType)

	_, statErr := os.Stat(StorageDir(root))
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing should be written on rejection")
}

func TestIntake_Save_RejectsSixthFile(t *testing.T) {
	in := NewIntake(t.TempDir())

	files := make([]File, 0, MaxFiles+1)
	for i := 0; i < MaxFiles+1; i++ {
		files = append(files, memFile("p.png", "image/png", []byte("x")))
	}

	_, err := in.Save(context.Background(), files)
	assert.ErrorIs(t, err, ErrTooManyFiles)
}

func TestIntake_Save_ContentLargerThanDeclared(t *testing.T) {
	root := t.TempDir()
	in := NewIntake(root)

	f := memFile("liar.png", "image/png", bytes.Repeat([]byte{'x'}, int(MaxFileSize)+1))
	f.Size = 10

	_, err := in.Save(context.Background(), []File{f})
	require.ErrorIs(t, err, ErrFileTooLarge)

	entries, _ := os.ReadDir(StorageDir(root))
	assert.Empty(t, entries)
}

func TestIntake_Save_CleansUpOnPartialFailure(t *testing.T) {
	root := t.TempDir()
	in := NewIntake(root)

	broken := memFile("broken.png", "image/png", nil)
	broken.Open = func() (io.ReadCloser, error) { return nil, errors.New("boom") }

	_, err := in.Save(context.Background(), []File{
		memFile("ok.png", "image/png", []byte("ok")),
		broken,
	})
	require.Error(t, err)

	entries, _ := os.ReadDir(StorageDir(root))
	assert.Empty(t, entries)
}

func TestIntake_Remove(t *testing.T) {
	root := t.TempDir()
	in := NewIntake(root)

	refs, err := in.Save(context.Background(), []File{memFile("a.png", "image/png", []byte("a"))})
	require.NoError(t, err)

	require.NoError(t, in.Remove(refs))
	entries, _ := os.ReadDir(StorageDir(root))
	assert.Empty(t, entries)

	// idempotente
	assert.NoError(t, in.Remove(refs))
	assert.Error(t, in.Remove([]string{"/uploads/pets/../../etc/passwd"}))
}

func TestIntake_FileServer_NoDirectoryListing(t *testing.T) {
	in := NewIntake(t.TempDir())
	refs, err := in.Save(context.Background(), []File{memFile("a.gif", "image/gif", []byte("gif-bytes"))})
	require.NoError(t, err)

	srv := in.FileServer()

	for _, path := range []string{"/uploads/", "/uploads/pets/", "/uploads/pets"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), strings.TrimPrefix(refs[0], PublicPrefix), path)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, refs[0], nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gif-bytes", rec.Body.String())
}
