package fs

import (
	"io"
	"os"

	"github.com/akeil/texscale/internal/logging"
)

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	err = copyFile(src, dst)
	if err != nil {
		return err
	}

	// A bit untidy, but we carry on even if we fail to clean up behind us.
	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}

func copyFile(src, dst string) error {
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
