package optimize

import (
	"fmt"
	"io/fs"

	"github.com/google/renameio/v2"
)

const defaultFileMode fs.FileMode = 0o644

// writeFileAtomic replaces path with data through a pending file that is
// renamed into place. An existing file keeps its permission bits; new files get
// defaultFileMode regardless of the umask.
func writeFileAtomic(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, defaultFileMode, renameio.IgnoreUmask()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
