// Package storage persists uploaded attachments on disk using a
// stage-then-commit pattern: files are first written to a staging area and
// only moved into the public uploads directory after the database insert
// succeeds. A failed insert discards the staged files, so no orphan files
// are left behind and no row ever references a missing file.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GiulianoD/vports/internal/config"
	"github.com/GiulianoD/vports/internal/models"
)

// ErrFileTooLarge is returned when an uploaded file exceeds the configured
// per-file size limit. User-correctable.
var ErrFileTooLarge = errors.New("arquivo excede o tamanho máximo permitido")

// ErrTooManyFiles is returned when a submission carries more files than the
// configured limit.
var ErrTooManyFiles = errors.New("quantidade de arquivos excede o limite")

// Store writes uploads to <dir> with a hidden staging area at <dir>/.staging.
type Store struct {
	dir          string
	stagingDir   string
	maxFileBytes int64
	maxFiles     int
}

// New creates the uploads and staging directories if needed.
func New(cfg config.UploadConfig) (*Store, error) {
	stagingDir := filepath.Join(cfg.Dir, ".staging")
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directories: %w", err)
	}
	return &Store{
		dir:          cfg.Dir,
		stagingDir:   stagingDir,
		maxFileBytes: cfg.MaxFileBytes,
		maxFiles:     cfg.MaxFiles,
	}, nil
}

// Dir returns the public uploads directory.
func (s *Store) Dir() string { return s.dir }

// Staged is a set of uploaded files written to the staging area, waiting for
// the owning database row to be inserted.
type Staged struct {
	store       *Store
	attachments []models.Attachment
	stagedPaths []string
	finalPaths  []string
	done        bool
}

// Stage validates and writes the uploaded files to the staging area and
// returns the attachment metadata the record row will reference. Staging
// zero files is valid and yields nil attachment metadata.
func (s *Store) Stage(files []*multipart.FileHeader) (*Staged, error) {
	if len(files) > s.maxFiles {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(files), s.maxFiles)
	}

	st := &Staged{store: s}
	for _, fh := range files {
		if fh.Size > s.maxFileBytes {
			st.Discard()
			return nil, fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, fh.Filename, fh.Size)
		}

		name := uniqueName(fh.Filename)
		stagedPath := filepath.Join(s.stagingDir, name)
		finalPath := filepath.Join(s.dir, name)

		if err := copyUpload(fh, stagedPath); err != nil {
			st.Discard()
			return nil, fmt.Errorf("failed to stage %s: %w", fh.Filename, err)
		}

		st.stagedPaths = append(st.stagedPaths, stagedPath)
		st.finalPaths = append(st.finalPaths, finalPath)
		st.attachments = append(st.attachments, models.Attachment{
			Nome:    filepath.Base(fh.Filename),
			Caminho: finalPath,
			Tamanho: fh.Size,
			Tipo:    fh.Header.Get("Content-Type"),
		})
	}
	return st, nil
}

// Attachments returns the metadata for the staged files. Nil when the
// submission carried no files.
func (st *Staged) Attachments() []models.Attachment {
	return st.attachments
}

// Commit moves the staged files into the public uploads directory. Called
// after the database row referencing them was inserted.
func (st *Staged) Commit() error {
	if st.done {
		return nil
	}
	st.done = true
	for i, staged := range st.stagedPaths {
		if err := os.Rename(staged, st.finalPaths[i]); err != nil {
			return fmt.Errorf("failed to publish %s: %w", staged, err)
		}
	}
	return nil
}

// Discard removes the staged files. Safe to call after Commit (no-op) and
// on a partially staged set.
func (st *Staged) Discard() {
	if st.done {
		return
	}
	st.done = true
	for _, staged := range st.stagedPaths {
		os.Remove(staged)
	}
}

// uniqueName prefixes the original file name so concurrent submissions of
// identically named files never collide.
func uniqueName(original string) string {
	base := sanitize(filepath.Base(original))
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], base)
}

// sanitize strips path separators and whitespace from an original file name.
func sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}

func copyUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return err
	}
	return out.Close()
}
