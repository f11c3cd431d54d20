package deviceinfo

// DeviceType classifies the kind of OpenHarmony device. Its value is the
// canonical platform token, so unknown tokens reported by newer OS versions
// survive classification unchanged.
type DeviceType string

const (
	DeviceTypePhone        DeviceType = "phone"
	DeviceTypeWearable     DeviceType = "wearable"
	DeviceTypeLiteWearable DeviceType = "liteWearable"
	DeviceTypeTablet       DeviceType = "tablet"
	DeviceTypeTV           DeviceType = "tv"
	DeviceTypeCar          DeviceType = "car"
	DeviceTypeSmartVision  DeviceType = "smartVision"
)

// Known reports whether t is one of the device types this package
// enumerates.
func (t DeviceType) Known() bool {
	switch t {
	case DeviceTypePhone, DeviceTypeWearable, DeviceTypeLiteWearable,
		DeviceTypeTablet, DeviceTypeTV, DeviceTypeCar, DeviceTypeSmartVision:
		return true
	}
	return false
}

// classifyDeviceType maps the raw platform token to a DeviceType. The
// platform reports "default" for standard phone devices.
func classifyDeviceType(raw string) DeviceType {
	switch raw {
	case "phone", "default":
		return DeviceTypePhone
	case "wearable":
		return DeviceTypeWearable
	case "liteWearable":
		return DeviceTypeLiteWearable
	case "tablet":
		return DeviceTypeTablet
	case "tv":
		return DeviceTypeTV
	case "car":
		return DeviceTypeCar
	case "smartVision":
		return DeviceTypeSmartVision
	default:
		return DeviceType(raw)
	}
}

// Type returns the device type, e.g. phone or wearable.
func Type() (DeviceType, error) {
	raw, err := stringAttr(AttrDeviceType)
	if err != nil {
		return "", err
	}
	return classifyDeviceType(raw), nil
}
