package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"

	"doris-art/internal/domain/site"
)

const MaxSize = 10 << 20

var (
	ErrNoFile          = errors.New("no file provided")
	ErrTooLarge        = errors.New("file too large, maximum size is 10MB")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Extensions by MIME type, shared by both upload endpoints.
var (
	AdminTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
		"image/gif":  ".gif",
	}
	PublicTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}
)

// Store writes images under PublicDir/images/<folder>.
type Store struct {
	PublicDir string
	MaxSize   int64
	Types     map[string]string

	// Optimize, when set, downscales and re-encodes every upload.
	Optimize *Bounds
}

// Result describes a stored upload. Size is the stored byte count, which
// differs from OriginalSize when the image was re-encoded.
type Result struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	OriginalSize int64  `json:"originalSize"`
	MIME         string `json:"mime"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
}

func New(publicDir string, types map[string]string) *Store {
	return &Store{PublicDir: publicDir, MaxSize: MaxSize, Types: types}
}

// Save sniffs the content type, enforces the size cap, optionally optimizes
// the image and moves it into place under a generated name. Nothing is left
// on disk when it fails.
func (s *Store) Save(r io.Reader, originalName, folder string) (Result, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return Result{}, ErrNoFile
		}
		return Result{}, err
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	ext, ok := s.Types[mt.String()]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	dir := filepath.Join(s.PublicDir, "images", folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, err
	}
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return Result{}, err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	written, err := io.Copy(tmp, io.LimitReader(io.MultiReader(bytes.NewReader(head), r), s.MaxSize+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Result{}, err
	}
	if written > s.MaxSize {
		return Result{}, ErrTooLarge
	}

	res := Result{Size: written, OriginalSize: written, MIME: mt.String()}
	stored := tmpName
	if s.Optimize != nil {
		opt, err := os.CreateTemp(dir, ".optimized-*")
		if err != nil {
			return Result{}, err
		}
		opt.Close()
		defer os.Remove(opt.Name())

		w, h, err := optimize(tmpName, opt.Name(), mt.String(), *s.Optimize)
		if err != nil {
			return Result{}, err
		}
		if mt.String() != "image/png" {
			ext, res.MIME = ".jpg", "image/jpeg"
		}
		info, err := os.Stat(opt.Name())
		if err != nil {
			return Result{}, err
		}
		stored = opt.Name()
		res.Size, res.Width, res.Height = info.Size(), w, h
	} else if cfg, _, err := image.DecodeConfig(bytes.NewReader(head)); err == nil {
		res.Width, res.Height = cfg.Width, cfg.Height
	}

	name := fileName(originalName, ext)
	if err := os.Chmod(stored, 0o644); err != nil {
		return Result{}, err
	}
	if err := os.Rename(stored, filepath.Join(dir, name)); err != nil {
		return Result{}, err
	}
	res.Filename = name
	res.Path = path.Join("/images", folder, name)
	return res, nil
}

// fileName keeps a readable slug of the client name and appends a ULID.
func fileName(original, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	slug := site.MakeSlug(base)
	if len(slug) > 50 {
		slug = strings.Trim(slug[:50], "-")
	}
	id := strings.ToLower(ulid.Make().String())
	if slug == "" {
		return id + ext
	}
	return slug + "-" + id + ext
}
