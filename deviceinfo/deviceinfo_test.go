package deviceinfo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader stands in for the native library in tests.
type fakeReader struct {
	strings map[Attribute]string
	ints    map[Attribute]int
}

func (f fakeReader) readString(attr Attribute) (string, error) {
	v, ok := f.strings[attr]
	if !ok {
		return "", fmt.Errorf("%s: %w", attr, ErrUnavailable)
	}
	return v, nil
}

func (f fakeReader) readInt(attr Attribute) int { return f.ints[attr] }

func withReader(t *testing.T, r reader) {
	t.Helper()
	previous := active
	active = r
	t.Cleanup(func() { active = previous })
}

func TestStringAccessorsReturnPlatformValues(t *testing.T) {
	withReader(t, fakeReader{strings: map[Attribute]string{
		AttrManufacturer: "HUAWEI",
		AttrBrand:        "HUAWEI",
		AttrProductModel: "ALN-AL00",
		AttrOSFullName:   "OpenHarmony-5.0.0.71",
		AttrBuildType:    "release",
	}})

	manufacturer, err := Manufacturer()
	require.NoError(t, err)
	assert.Equal(t, "HUAWEI", manufacturer)

	model, err := ProductModel()
	require.NoError(t, err)
	assert.Equal(t, "ALN-AL00", model)

	buildType, err := BuildType()
	require.NoError(t, err)
	assert.Equal(t, "release", buildType)
}

func TestEmptyNativeValueIsUnavailable(t *testing.T) {
	withReader(t, fakeReader{strings: map[Attribute]string{
		AttrMarketName: "",
	}})

	_, err := MarketName()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMissingAttributeIsUnavailable(t *testing.T) {
	withReader(t, fakeReader{})

	_, err := Brand()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), string(AttrBrand))
}

func TestInvalidUTF8IsEncodingError(t *testing.T) {
	withReader(t, fakeReader{strings: map[Attribute]string{
		AttrBuildHost: "build-\xff\xfe-host",
	}})

	_, err := BuildHost()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestAPIVersionsClampNegatives(t *testing.T) {
	withReader(t, fakeReader{ints: map[Attribute]int{
		AttrSDKAPIVersion:            -3,
		AttrFirstAPIVersion:          9,
		AttrDistributionOSAPIVersion: 12,
	}})

	assert.Equal(t, uint32(0), SDKAPIVersion())
	assert.Equal(t, uint32(9), FirstAPIVersion())
	assert.Equal(t, uint32(12), DistributionOSAPIVersion())
}

func TestABIsSplitsCommaSeparatedList(t *testing.T) {
	withReader(t, fakeReader{strings: map[Attribute]string{
		AttrABIList: "arm64-v8a, armeabi-v7a,x86_64",
	}})

	abis, err := ABIs()
	require.NoError(t, err)
	assert.Equal(t, []string{"arm64-v8a", "armeabi-v7a", "x86_64"}, abis)
}

func TestOSVersionParsesFullName(t *testing.T) {
	withReader(t, fakeReader{strings: map[Attribute]string{
		AttrOSFullName: "OpenHarmony-5.0.0.71",
	}})

	v, err := OSVersion()
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 5, Minor: 0, Patch: 0, Build: 71}, v)
}

func TestQueryFormatsNumericAttributes(t *testing.T) {
	withReader(t, fakeReader{ints: map[Attribute]int{
		AttrSDKAPIVersion: 14,
	}})

	value, err := Query(AttrSDKAPIVersion)
	require.NoError(t, err)
	assert.Equal(t, "14", value)
}

func TestQueryUnknownAttribute(t *testing.T) {
	withReader(t, fakeReader{})

	_, err := Query(Attribute("nonsense"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestQueryCoversEveryListedAttribute(t *testing.T) {
	strings := make(map[Attribute]string)
	for _, attr := range Attributes() {
		strings[attr] = "value-" + string(attr)
	}
	strings[AttrDeviceType] = "phone"
	withReader(t, fakeReader{
		strings: strings,
		ints: map[Attribute]int{
			AttrSDKAPIVersion:            14,
			AttrFirstAPIVersion:          9,
			AttrDistributionOSAPIVersion: 14,
		},
	})

	for _, attr := range Attributes() {
		value, err := Query(attr)
		require.NoError(t, err, "attribute %s", attr)
		assert.NotEmpty(t, value, "attribute %s", attr)
	}
}

func TestAccessorsAreIdempotent(t *testing.T) {
	withReader(t, fakeReader{strings: map[Attribute]string{
		AttrDeviceType:   "tablet",
		AttrManufacturer: "HUAWEI",
		AttrOSFullName:   "OpenHarmony-4.1.0",
	}})

	first := Collect()
	second := Collect()
	assert.Equal(t, first, second)
}

func TestCollectSkipsUnavailableAttributes(t *testing.T) {
	withReader(t, fakeReader{strings: map[Attribute]string{
		AttrManufacturer: "HUAWEI",
	}})

	info := Collect()
	assert.Equal(t, "HUAWEI", info.Manufacturer)
	assert.Empty(t, info.Brand)
	assert.Empty(t, info.ABIs)
	assert.Empty(t, info.DeviceType)
}

// Without the ohos build tag the stub reader serves every query; it must
// fail with the typed error, never with garbage values.
func TestStubBuildReportsUnavailable(t *testing.T) {
	_, err := Manufacturer()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = Type()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.Equal(t, uint32(0), SDKAPIVersion())

	var collected Info
	assert.NotPanics(t, func() { collected = Collect() })
	assert.Empty(t, collected.Manufacturer)
}

func TestErrorsMatchWithErrorsIs(t *testing.T) {
	withReader(t, fakeReader{})

	_, err := SecurityPatchTag()
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.False(t, errors.Is(err, ErrEncoding))
}
