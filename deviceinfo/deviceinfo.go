// Package deviceinfo provides read-only access to device and OS information
// on OpenHarmony through the platform's native deviceinfo library.
//
// Every accessor is a stateless pass-through: values are read from the
// platform at call time, never cached, and are safe to query from multiple
// goroutines. Builds without the ohos tag have no native library to bind, so
// every query reports ErrUnavailable there.
//
// Required system capability: SystemCapability.Startup.SystemInfo.
package deviceinfo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Attribute identifies one queryable device or OS property.
type Attribute string

const (
	AttrDeviceType         Attribute = "deviceType"
	AttrManufacturer       Attribute = "manufacturer"
	AttrBrand              Attribute = "brand"
	AttrMarketName         Attribute = "marketName"
	AttrProductSeries      Attribute = "productSeries"
	AttrProductModel       Attribute = "productModel"
	AttrSoftwareModel      Attribute = "softwareModel"
	AttrHardwareModel      Attribute = "hardwareModel"
	AttrBootloaderVersion  Attribute = "bootloaderVersion"
	AttrABIList            Attribute = "abiList"
	AttrSecurityPatchTag   Attribute = "securityPatchTag"
	AttrDisplayVersion     Attribute = "displayVersion"
	AttrIncrementalVersion Attribute = "incrementalVersion"
	AttrOSReleaseType      Attribute = "osReleaseType"
	AttrOSFullName         Attribute = "osFullName"
	AttrSDKAPIVersion      Attribute = "sdkApiVersion"
	AttrFirstAPIVersion    Attribute = "firstApiVersion"
	AttrVersionID          Attribute = "versionId"
	AttrBuildType          Attribute = "buildType"
	AttrBuildUser          Attribute = "buildUser"
	AttrBuildHost          Attribute = "buildHost"
	AttrBuildTime          Attribute = "buildTime"
	AttrBuildRootHash      Attribute = "buildRootHash"

	// Distribution attributes describe the ISV distribution of the OS. The
	// platform falls back to the base OS values when the ISV did not
	// customize them.
	AttrDistributionOSName        Attribute = "distributionOSName"
	AttrDistributionOSVersion     Attribute = "distributionOSVersion"
	AttrDistributionOSAPIVersion  Attribute = "distributionOSApiVersion"
	AttrDistributionOSReleaseType Attribute = "distributionOSReleaseType"
)

var (
	// ErrUnavailable reports that the platform does not provide a value for
	// the attribute, either because the device omits it or because this
	// build has no native deviceinfo library.
	ErrUnavailable = errors.New("attribute unavailable")

	// ErrEncoding reports that the native library returned a string that is
	// not valid UTF-8.
	ErrEncoding = errors.New("attribute is not valid UTF-8")

	// ErrUnknownAttribute reports a Query for an attribute name this
	// package does not know.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// reader abstracts the native library so accessors stay testable off-device.
// The platform-specific constructor lives in reader_ohos.go / reader_other.go.
type reader interface {
	readString(Attribute) (string, error)
	readInt(Attribute) int
}

var active reader = newReader()

func stringAttr(attr Attribute) (string, error) {
	raw, err := active.readString(attr)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", fmt.Errorf("%s: %w", attr, ErrUnavailable)
	}
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("%s: %w", attr, ErrEncoding)
	}
	return raw, nil
}

// The native API reports API versions as signed integers; negative values
// mean the platform could not determine the version.
func versionAttr(attr Attribute) uint32 {
	raw := active.readInt(attr)
	if raw < 0 {
		return 0
	}
	return uint32(raw)
}

// Manufacturer returns the device manufacturer.
func Manufacturer() (string, error) { return stringAttr(AttrManufacturer) }

// Brand returns the device brand.
func Brand() (string, error) { return stringAttr(AttrBrand) }

// MarketName returns the product name used in the market.
func MarketName() (string, error) { return stringAttr(AttrMarketName) }

// ProductSeries returns the product series.
func ProductSeries() (string, error) { return stringAttr(AttrProductSeries) }

// ProductModel returns the product model.
func ProductModel() (string, error) { return stringAttr(AttrProductModel) }

// SoftwareModel returns the software model.
func SoftwareModel() (string, error) { return stringAttr(AttrSoftwareModel) }

// HardwareModel returns the hardware model.
func HardwareModel() (string, error) { return stringAttr(AttrHardwareModel) }

// BootloaderVersion returns the bootloader version string.
func BootloaderVersion() (string, error) { return stringAttr(AttrBootloaderVersion) }

// ABIList returns the supported application binary interfaces as the raw
// comma-separated platform string. Use ABIs for the split form.
func ABIList() (string, error) { return stringAttr(AttrABIList) }

// ABIs returns the supported application binary interfaces, one per entry.
func ABIs() ([]string, error) {
	raw, err := ABIList()
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, ",")
	abis := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			abis = append(abis, p)
		}
	}
	return abis, nil
}

// SecurityPatchTag returns the security patch tag.
func SecurityPatchTag() (string, error) { return stringAttr(AttrSecurityPatchTag) }

// DisplayVersion returns the product version shown to the customer.
func DisplayVersion() (string, error) { return stringAttr(AttrDisplayVersion) }

// IncrementalVersion returns the incremental version.
func IncrementalVersion() (string, error) { return stringAttr(AttrIncrementalVersion) }

// OSReleaseType returns the OS release type, e.g. "Release", "Beta1" or
// "Canary".
func OSReleaseType() (string, error) { return stringAttr(AttrOSReleaseType) }

// OSFullName returns the OS full version name, e.g. "OpenHarmony-5.0.0.71".
func OSFullName() (string, error) { return stringAttr(AttrOSFullName) }

// OSVersion returns the OS full version name parsed into its components.
func OSVersion() (Version, error) {
	name, err := OSFullName()
	if err != nil {
		return Version{}, err
	}
	return ParseVersion(name)
}

// SDKAPIVersion returns the SDK API version number, or 0 when the platform
// cannot determine it.
func SDKAPIVersion() uint32 { return versionAttr(AttrSDKAPIVersion) }

// FirstAPIVersion returns the first API version number, or 0 when the
// platform cannot determine it.
func FirstAPIVersion() uint32 { return versionAttr(AttrFirstAPIVersion) }

// VersionID returns the version ID.
func VersionID() (string, error) { return stringAttr(AttrVersionID) }

// BuildType returns the build type of the running OS.
func BuildType() (string, error) { return stringAttr(AttrBuildType) }

// BuildUser returns the build user of the running OS.
func BuildUser() (string, error) { return stringAttr(AttrBuildUser) }

// BuildHost returns the build host of the running OS.
func BuildHost() (string, error) { return stringAttr(AttrBuildHost) }

// BuildTime returns the build time of the running OS.
func BuildTime() (string, error) { return stringAttr(AttrBuildTime) }

// BuildRootHash returns the version hash of the running OS.
func BuildRootHash() (string, error) { return stringAttr(AttrBuildRootHash) }

// DistributionOSName returns the ISV distribution OS name. It is unavailable
// when the ISV did not specify a custom distribution name.
func DistributionOSName() (string, error) { return stringAttr(AttrDistributionOSName) }

// DistributionOSVersion returns the ISV distribution OS version. The
// platform reports the base OS full name when the ISV did not customize it.
func DistributionOSVersion() (string, error) { return stringAttr(AttrDistributionOSVersion) }

// DistributionOSAPIVersion returns the ISV distribution OS API version. The
// platform reports the SDK API version when the ISV did not customize it.
func DistributionOSAPIVersion() uint32 { return versionAttr(AttrDistributionOSAPIVersion) }

// DistributionOSReleaseType returns the ISV distribution OS release type.
// The platform reports the base OS release type when the ISV did not
// customize it.
func DistributionOSReleaseType() (string, error) { return stringAttr(AttrDistributionOSReleaseType) }

// attributes lists every queryable attribute in display order.
var attributes = []Attribute{
	AttrDeviceType,
	AttrManufacturer,
	AttrBrand,
	AttrMarketName,
	AttrProductSeries,
	AttrProductModel,
	AttrSoftwareModel,
	AttrHardwareModel,
	AttrBootloaderVersion,
	AttrABIList,
	AttrSecurityPatchTag,
	AttrDisplayVersion,
	AttrIncrementalVersion,
	AttrOSReleaseType,
	AttrOSFullName,
	AttrSDKAPIVersion,
	AttrFirstAPIVersion,
	AttrVersionID,
	AttrBuildType,
	AttrBuildUser,
	AttrBuildHost,
	AttrBuildTime,
	AttrBuildRootHash,
	AttrDistributionOSName,
	AttrDistributionOSVersion,
	AttrDistributionOSAPIVersion,
	AttrDistributionOSReleaseType,
}

// Attributes returns every queryable attribute in display order.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// Query returns the value of a single attribute formatted as a string.
// Numeric attributes are rendered in decimal, the device type as its
// canonical platform token.
func Query(attr Attribute) (string, error) {
	switch attr {
	case AttrDeviceType:
		dt, err := Type()
		if err != nil {
			return "", err
		}
		return string(dt), nil
	case AttrSDKAPIVersion, AttrFirstAPIVersion, AttrDistributionOSAPIVersion:
		return strconv.FormatUint(uint64(versionAttr(attr)), 10), nil
	default:
		for _, known := range attributes {
			if attr == known {
				return stringAttr(attr)
			}
		}
		return "", fmt.Errorf("%w: %s", ErrUnknownAttribute, attr)
	}
}
