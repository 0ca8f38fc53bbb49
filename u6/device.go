package u6

import (
	"encoding/binary"
	"fmt"
)

// DeviceType represents the name of the device
type DeviceType string

const (

	// U6Device describes the U6 LabJack.
	U6Device = DeviceType("U6")

	// U6ProDevice describes the U6-Pro device.
	U6ProDevice = DeviceType("U6-Pro")

	// UnknownDevice describes an unknown LabJack.
	UnknownDevice = DeviceType("Unknown")
)

// configResponseSize is the length of the ConfigU6 response.
const configResponseSize = 38

// DeviceDesc stores the device information.
type DeviceDesc struct {
	FirmwareVersion   string
	BootloaderVersion string
	HardwareVersion   string
	SerialNumber      int
	ProductID         int
	LocalID           int
	VersionInfo       int
	DeviceType        DeviceType
}

// HiResolution reports whether the device is a U6-Pro with the 24-bit ADC.
func (d DeviceDesc) HiResolution() bool {
	return d.VersionInfo&8 == 8
}

func (d DeviceDesc) String() string {
	return fmt.Sprintf("%s serial=%d firmware=%s bootloader=%s hardware=%s local_id=%d",
		d.DeviceType, d.SerialNumber, d.FirmwareVersion, d.BootloaderVersion, d.HardwareVersion, d.LocalID)
}

// VersionInfo values reported in the last byte of the ConfigU6 response.
const (
	versionInfoU6    = 4
	versionInfoU6Pro = 12
)

// version formats a little endian minor/major byte pair as major.minor.
func version(b []byte) string {
	return fmt.Sprintf("%d.%02d", b[1], b[0])
}

func parseConfigBytes(recBuffer []uint8) (DeviceDesc, error) {
	if len(recBuffer) < configResponseSize {
		return DeviceDesc{}, ErrResponseTooShort
	}

	desc := DeviceDesc{
		FirmwareVersion:   version(recBuffer[9:11]),
		BootloaderVersion: version(recBuffer[11:13]),
		HardwareVersion:   version(recBuffer[13:15]),
		SerialNumber:      int(binary.LittleEndian.Uint32(recBuffer[15:19])),
		ProductID:         int(binary.LittleEndian.Uint16(recBuffer[19:21])),
		LocalID:           int(recBuffer[21]),
		VersionInfo:       int(recBuffer[37]),
	}
	switch desc.VersionInfo {
	case versionInfoU6:
		desc.DeviceType = U6Device
	case versionInfoU6Pro:
		desc.DeviceType = U6ProDevice
	default:
		desc.DeviceType = UnknownDevice
	}
	return desc, nil
}
