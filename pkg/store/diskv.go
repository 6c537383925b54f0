// Package store persists quotes, the selected category filter and the
// session-scoped last shown index on disk.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/quotes/pkg/quote"
)

const (
	keyQuotes    = "dynamicQuotes"
	keyCategory  = "selectedCategory"
	keyLastShown = "lastQuoteIndex"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("store: not found")

// Persistence defines the persistence contract for the quote list and the
// view state that goes with it.
type Persistence interface {
	Quotes() ([]quote.Quote, error)
	SaveQuotes(list []quote.Quote) error
	SelectedCategory() (string, error)
	SetSelectedCategory(category string) error
	LastShown() (int, error)
	SetLastShown(index int) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	sessionPath := cfg.SessionPath()
	if sessionPath == "" {
		sessionPath = DefaultSessionPath()
	}
	log.Debug("opening store", "path", basePath, "session", sessionPath)
	return &persistence{
		d:        newDiskv(basePath),
		session:  newDiskv(sessionPath),
		basePath: basePath,
	}, nil
}

func newDiskv(base string) *diskv.Diskv {
	// No read cache: other processes write to the same directory.
	return diskv.New(diskv.Options{
		BasePath:          base,
		TempDir:           filepath.Join(base, tempDirName),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
	})
}

type persistence struct {
	d        *diskv.Diskv
	session  *diskv.Diskv
	basePath string
}

func read(d *diskv.Diskv, key string) ([]byte, error) {
	val, err := d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) Quotes() ([]quote.Quote, error) {
	val, err := read(p.d, keyQuotes)
	if err != nil {
		return nil, err
	}
	list, err := quote.UnmarshalList(val)
	if err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", keyQuotes, err)
	}
	return list, nil
}

func (p *persistence) SaveQuotes(list []quote.Quote) error {
	data, err := quote.MarshalList(list)
	if err != nil {
		return err
	}
	if err := p.d.Write(keyQuotes, data); err != nil {
		return fmt.Errorf("store: write %s: %w", keyQuotes, err)
	}
	return nil
}

func (p *persistence) SelectedCategory() (string, error) {
	val, err := read(p.d, keyCategory)
	if err != nil {
		return "", err
	}
	return string(val), nil
}

func (p *persistence) SetSelectedCategory(category string) error {
	if err := p.d.Write(keyCategory, []byte(category)); err != nil {
		return fmt.Errorf("store: write %s: %w", keyCategory, err)
	}
	return nil
}

func (p *persistence) LastShown() (int, error) {
	val, err := read(p.session, keyLastShown)
	if err != nil {
		return -1, err
	}
	idx, err := strconv.Atoi(strings.TrimSpace(string(val)))
	if err != nil {
		return -1, fmt.Errorf("store: decode %s: %w", keyLastShown, err)
	}
	return idx, nil
}

func (p *persistence) SetLastShown(index int) error {
	if err := p.session.Write(keyLastShown, []byte(strconv.Itoa(index))); err != nil {
		return fmt.Errorf("store: write %s: %w", keyLastShown, err)
	}
	return nil
}

const tempDirName = ".tmp"

// Keys map to flat files in the base directory.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
