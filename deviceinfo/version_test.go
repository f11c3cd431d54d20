package deviceinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("OpenHarmony-5.0.0.71")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 5, Minor: 0, Patch: 0, Build: 71}, v)
}

func TestParseVersionNormalizesThreeFieldNames(t *testing.T) {
	v, err := ParseVersion("OpenHarmony-4.1.7")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 4, Minor: 1, Patch: 7, Build: 0}, v)
}

func TestParseVersionRejectsMalformedNames(t *testing.T) {
	malformed := []string{
		"",
		"5.0.0.71",
		"HarmonyOS-5.0.0.71",
		"OpenHarmony-",
		"OpenHarmony-5.0",
		"OpenHarmony-5.0.0.71.3",
		"OpenHarmony-a.b.c",
		"OpenHarmony-5.0.-1",
	}

	for _, name := range malformed {
		_, err := ParseVersion(name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestVersionStringRoundTrips(t *testing.T) {
	const name = "OpenHarmony-5.0.0.71"
	v, err := ParseVersion(name)
	require.NoError(t, err)
	assert.Equal(t, name, v.String())
}
