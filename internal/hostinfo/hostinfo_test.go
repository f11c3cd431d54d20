package hostinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectReportsHostIdentity(t *testing.T) {
	report, err := Collect()
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.Hostname)
	assert.NotEmpty(t, report.OS)
}

func TestCollectIsRepeatable(t *testing.T) {
	first, err := Collect()
	require.NoError(t, err)
	second, err := Collect()
	require.NoError(t, err)

	assert.Equal(t, first.Hostname, second.Hostname)
	assert.Equal(t, first.OS, second.OS)
	assert.Equal(t, first.KernelVersion, second.KernelVersion)
}
