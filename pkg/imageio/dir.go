package imageio

import (
	"image"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/akeil/texscale/internal/errors"
	"github.com/akeil/texscale/internal/fs"
	"github.com/akeil/texscale/internal/logging"
)

// Dir is a flat directory of image files.
//
// Writes are staged in a temporary file and moved into place, so readers
// never see a partially written image. Dir is safe for concurrent use.
type Dir struct {
	base string
	mx   sync.RWMutex
}

// NewDir returns a Dir for the given directory.
// The directory is created on the first write if it does not exist.
func NewDir(base string) *Dir {
	return &Dir{base: base}
}

// Path returns the full path for an entry.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.base, name)
}

// List returns the names of all image files in the directory, sorted.
func (d *Dir) List() ([]string, error) {
	d.mx.RLock()
	defer d.mx.RUnlock()

	entries, err := os.ReadDir(d.base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("no directory %q", d.base)
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImageName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Read decodes the named image.
func (d *Dir) Read(name string) (image.Image, error) {
	logging.Debug("Read image %q", name)
	d.mx.RLock()
	defer d.mx.RUnlock()

	img, _, err := Open(d.Path(name))
	return img, err
}

// Write encodes img into the named entry, replacing an existing one.
// The format is chosen from the name's extension.
func (d *Dir) Write(name string, img image.Image) error {
	logging.Debug("Write image %q", name)
	format, err := FormatFor(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "texscale-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful move

	err = Encode(tmp, img, format)
	if err != nil {
		tmp.Close()
		return errors.Wrap(err, "encode %q", name)
	}
	err = tmp.Close()
	if err != nil {
		return err
	}

	d.mx.Lock()
	defer d.mx.Unlock()

	err = os.MkdirAll(d.base, 0755)
	if err != nil {
		logging.Warning("Failed to create directory %q: %v", d.base, err)
		return err
	}

	return fs.Move(tmp.Name(), d.Path(name))
}
