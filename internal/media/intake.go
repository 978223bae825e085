// Package media valida y persiste las imágenes adjuntas a una publicación.
//
// La configuración se expresa como funciones puras (StorageDir, GenerateName,
// Acceptable) que Intake compone; no hay callbacks ni estado global.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	MaxFiles          = 5
	MaxFileSize int64 = 5 << 20 // 5 MiB por archivo

	// PublicPrefix es el prefijo de las reference paths devueltas al cliente.
	PublicPrefix = "/uploads/pets/"

	petsDir = "pets"
)

var (
	ErrRejected        = errors.New("media rejected")
	ErrTooManyFiles    = fmt.Errorf("%w: too many files (max %d)", ErrRejected, MaxFiles)
	ErrFileTooLarge    = fmt.Errorf("%w: file too large (max %d bytes)", ErrRejected, MaxFileSize)
	ErrUnsupportedType = fmt.Errorf("%w: only image files are allowed", ErrRejected)
)

var allowedKinds = map[string]struct{}{
	"jpeg": {},
	"jpg":  {},
	"png":  {},
	"gif":  {},
}

// File es un adjunto recibido, todavía sin persistir.
type File struct {
	Name     string // nombre original del cliente
	MIMEType string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// StorageDir es el directorio físico donde terminan las imágenes de mascotas.
func StorageDir(root string) string {
	return filepath.Join(root, petsDir)
}

// GenerateName arma "<unix-millis>-<random><ext>" a partir del nombre original.
func GenerateName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

// Acceptable exige tamaño <= MaxFileSize y que tanto el MIME como la
// extensión sean jpeg/jpg/png/gif.
func Acceptable(mimeType, ext string, size int64) error {
	if size > MaxFileSize {
		return ErrFileTooLarge
	}

	ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	if _, ok := allowedKinds[ext]; !ok {
		return ErrUnsupportedType
	}

	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return ErrUnsupportedType
	}
	typ, sub, ok := strings.Cut(mt, "/")
	if !ok || typ != "image" {
		return ErrUnsupportedType
	}
	if _, ok := allowedKinds[sub]; !ok {
		return ErrUnsupportedType
	}
	return nil
}

// Intake compone las reglas anteriores contra un content root en disco.
type Intake struct {
	root string
	now  func() time.Time
	name func(original string, now time.Time) string
}

func NewIntake(root string) *Intake {
	if strings.TrimSpace(root) == "" {
		root = "uploads"
	}
	return &Intake{
		root: root,
		now:  time.Now,
		name: GenerateName,
	}
}

func (in *Intake) Root() string { return in.root }

// Check valida todos los archivos sin escribir nada.
func (in *Intake) Check(files []File) error {
	if len(files) > MaxFiles {
		return ErrTooManyFiles
	}
	for _, f := range files {
		if err := Acceptable(f.MIMEType, filepath.Ext(f.Name), f.Size); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

// Save valida y escribe los archivos en paralelo. Devuelve una reference path
// por archivo, en el mismo orden de entrada. Si alguno falla, borra los que
// sí se escribieron.
func (in *Intake) Save(ctx context.Context, files []File) ([]string, error) {
	if err := in.Check(files); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return []string{}, nil
	}

	dir := StorageDir(in.root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: create dir: %w", err)
	}

	refs := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			name := in.name(f.Name, in.now())
			if err := writeFile(gctx, filepath.Join(dir, name), f); err != nil {
				return fmt.Errorf("media: write %s: %w", f.Name, err)
			}
			refs[i] = PublicPrefix + name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		_ = in.Remove(refs)
		return nil, err
	}
	return refs, nil
}

// Remove borra archivos por reference path. Ignora vacíos y los que ya no existen.
func (in *Intake) Remove(refs []string) error {
	dir := StorageDir(in.root)
	var errs []error
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		name := strings.TrimPrefix(ref, PublicPrefix)
		if name == ref || name == "" || strings.ContainsAny(name, `/\`) || name == ".." {
			errs = append(errs, fmt.Errorf("media: not a pet image reference: %q", ref))
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("media: remove %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// FileServer sirve el content root; se monta bajo /uploads/.
// Los directorios responden 404: no hay listado de archivos.
func (in *Intake) FileServer() http.Handler {
	return http.StripPrefix("/uploads/", http.FileServer(filesOnly{http.Dir(in.root)}))
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}

func writeFile(ctx context.Context, dst string, f File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.Open == nil {
		return errors.New("no content")
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	// El tamaño declarado ya se validó; igual cortamos si el contenido real es mayor.
	n, err := io.Copy(out, io.LimitReader(src, MaxFileSize+1))
	if err == nil && n > MaxFileSize {
		err = ErrFileTooLarge
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}
