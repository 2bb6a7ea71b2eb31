package misc

import (
	"os"

	"github.com/pkg/errors"
)

func IsFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// EnsureDir creates folder when it does not exist yet. It reports whether
// the folder was created by this call.
func EnsureDir(folder string) (created bool, err error) {
	if IsFileExists(folder) {
		return false, nil
	}
	if err = os.MkdirAll(folder, 0755); err != nil {
		return false, errors.Wrap(err, "Create folder ["+folder+"] failed")
	}
	return true, nil
}
