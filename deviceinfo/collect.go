package deviceinfo

// Info aggregates every device and OS attribute the platform reported.
// String fields that were unavailable are left empty.
type Info struct {
	DeviceType         DeviceType `json:"device_type,omitempty"`
	Manufacturer       string     `json:"manufacturer,omitempty"`
	Brand              string     `json:"brand,omitempty"`
	MarketName         string     `json:"market_name,omitempty"`
	ProductSeries      string     `json:"product_series,omitempty"`
	ProductModel       string     `json:"product_model,omitempty"`
	SoftwareModel      string     `json:"software_model,omitempty"`
	HardwareModel      string     `json:"hardware_model,omitempty"`
	BootloaderVersion  string     `json:"bootloader_version,omitempty"`
	ABIs               []string   `json:"abis,omitempty"`
	SecurityPatchTag   string     `json:"security_patch_tag,omitempty"`
	DisplayVersion     string     `json:"display_version,omitempty"`
	IncrementalVersion string     `json:"incremental_version,omitempty"`
	OSReleaseType      string     `json:"os_release_type,omitempty"`
	OSFullName         string     `json:"os_full_name,omitempty"`
	SDKAPIVersion      uint32     `json:"sdk_api_version"`
	FirstAPIVersion    uint32     `json:"first_api_version"`
	VersionID          string     `json:"version_id,omitempty"`
	BuildType          string     `json:"build_type,omitempty"`
	BuildUser          string     `json:"build_user,omitempty"`
	BuildHost          string     `json:"build_host,omitempty"`
	BuildTime          string     `json:"build_time,omitempty"`
	BuildRootHash      string     `json:"build_root_hash,omitempty"`

	DistributionOSName        string `json:"distribution_os_name,omitempty"`
	DistributionOSVersion     string `json:"distribution_os_version,omitempty"`
	DistributionOSAPIVersion  uint32 `json:"distribution_os_api_version"`
	DistributionOSReleaseType string `json:"distribution_os_release_type,omitempty"`
}

// Collect queries every attribute and returns whatever the platform
// reported. Unavailable attributes are skipped rather than treated as
// failures, so a partial report is still usable.
func Collect() Info {
	var info Info
	if dt, err := Type(); err == nil {
		info.DeviceType = dt
	}
	set := func(dst *string, get func() (string, error)) {
		if v, err := get(); err == nil {
			*dst = v
		}
	}
	set(&info.Manufacturer, Manufacturer)
	set(&info.Brand, Brand)
	set(&info.MarketName, MarketName)
	set(&info.ProductSeries, ProductSeries)
	set(&info.ProductModel, ProductModel)
	set(&info.SoftwareModel, SoftwareModel)
	set(&info.HardwareModel, HardwareModel)
	set(&info.BootloaderVersion, BootloaderVersion)
	if abis, err := ABIs(); err == nil {
		info.ABIs = abis
	}
	set(&info.SecurityPatchTag, SecurityPatchTag)
	set(&info.DisplayVersion, DisplayVersion)
	set(&info.IncrementalVersion, IncrementalVersion)
	set(&info.OSReleaseType, OSReleaseType)
	set(&info.OSFullName, OSFullName)
	info.SDKAPIVersion = SDKAPIVersion()
	info.FirstAPIVersion = FirstAPIVersion()
	set(&info.VersionID, VersionID)
	set(&info.BuildType, BuildType)
	set(&info.BuildUser, BuildUser)
	set(&info.BuildHost, BuildHost)
	set(&info.BuildTime, BuildTime)
	set(&info.BuildRootHash, BuildRootHash)
	set(&info.DistributionOSName, DistributionOSName)
	set(&info.DistributionOSVersion, DistributionOSVersion)
	info.DistributionOSAPIVersion = DistributionOSAPIVersion()
	set(&info.DistributionOSReleaseType, DistributionOSReleaseType)
	return info
}
