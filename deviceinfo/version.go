package deviceinfo

import (
	"fmt"
	"strconv"
	"strings"
)

const versionPrefix = "OpenHarmony-"

// Version is a parsed OS full version name such as "OpenHarmony-5.0.0.71".
type Version struct {
	Major int
	Minor int
	Patch int
	Build int
}

// ParseVersion parses an OS full version name. Three-field names, which some
// early releases report, are normalized to a zero build number.
func ParseVersion(name string) (Version, error) {
	rest, ok := strings.CutPrefix(name, versionPrefix)
	if !ok {
		return Version{}, fmt.Errorf("version %q does not start with %q", name, versionPrefix)
	}
	parts := strings.Split(rest, ".")
	if len(parts) != 3 && len(parts) != 4 {
		return Version{}, fmt.Errorf("version %q has %d fields, want 3 or 4", name, len(parts))
	}
	fields := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("version %q has invalid field %q", name, p)
		}
		fields[i] = n
	}
	return Version{Major: fields[0], Minor: fields[1], Patch: fields[2], Build: fields[3]}, nil
}

// String renders the version back in the platform's full-name format.
func (v Version) String() string {
	return fmt.Sprintf("%s%d.%d.%d.%d", versionPrefix, v.Major, v.Minor, v.Patch, v.Build)
}
