//go:build ohos

package deviceinfo

/*
#cgo LDFLAGS: -ldeviceinfo_ndk.z
#include <deviceinfo.h>
*/
import "C"

import "fmt"

// nativeReader binds the deviceinfo NDK library. The native getters return
// static strings owned by the platform, or NULL when a value is missing.
type nativeReader struct{}

func newReader() reader { return nativeReader{} }

func (nativeReader) readString(attr Attribute) (string, error) {
	var raw *C.char
	switch attr {
	case AttrDeviceType:
		raw = C.OH_GetDeviceType()
	case AttrManufacturer:
		raw = C.OH_GetManufacture()
	case AttrBrand:
		raw = C.OH_GetBrand()
	case AttrMarketName:
		raw = C.OH_GetMarketName()
	case AttrProductSeries:
		raw = C.OH_GetProductSeries()
	case AttrProductModel:
		raw = C.OH_GetProductModel()
	case AttrSoftwareModel:
		raw = C.OH_GetSoftwareModel()
	case AttrHardwareModel:
		raw = C.OH_GetHardwareModel()
	case AttrBootloaderVersion:
		raw = C.OH_GetBootloaderVersion()
	case AttrABIList:
		raw = C.OH_GetAbiList()
	case AttrSecurityPatchTag:
		raw = C.OH_GetSecurityPatchTag()
	case AttrDisplayVersion:
		raw = C.OH_GetDisplayVersion()
	case AttrIncrementalVersion:
		raw = C.OH_GetIncrementalVersion()
	case AttrOSReleaseType:
		raw = C.OH_GetOsReleaseType()
	case AttrOSFullName:
		raw = C.OH_GetOSFullName()
	case AttrVersionID:
		raw = C.OH_GetVersionId()
	case AttrBuildType:
		raw = C.OH_GetBuildType()
	case AttrBuildUser:
		raw = C.OH_GetBuildUser()
	case AttrBuildHost:
		raw = C.OH_GetBuildHost()
	case AttrBuildTime:
		raw = C.OH_GetBuildTime()
	case AttrBuildRootHash:
		raw = C.OH_GetBuildRootHash()
	case AttrDistributionOSName:
		raw = C.OH_GetDistributionOSName()
	case AttrDistributionOSVersion:
		raw = C.OH_GetDistributionOSVersion()
	case AttrDistributionOSReleaseType:
		raw = C.OH_GetDistributionOSReleaseType()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAttribute, attr)
	}
	if raw == nil {
		return "", fmt.Errorf("%s: %w", attr, ErrUnavailable)
	}
	return C.GoString(raw), nil
}

func (nativeReader) readInt(attr Attribute) int {
	switch attr {
	case AttrSDKAPIVersion:
		return int(C.OH_GetSdkApiVersion())
	case AttrFirstAPIVersion:
		return int(C.OH_GetFirstApiVersion())
	case AttrDistributionOSAPIVersion:
		return int(C.OH_GetDistributionOSApiVersion())
	}
	return 0
}
