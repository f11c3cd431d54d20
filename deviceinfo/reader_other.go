//go:build !ohos

package deviceinfo

import (
	"fmt"
	"runtime"
)

// stubReader serves builds without the ohos tag. There is no native
// deviceinfo library to bind, so every attribute is unavailable.
type stubReader struct{}

func newReader() reader { return stubReader{} }

func (stubReader) readString(attr Attribute) (string, error) {
	return "", fmt.Errorf("%s: %w on %s", attr, ErrUnavailable, runtime.GOOS)
}

func (stubReader) readInt(Attribute) int { return 0 }
