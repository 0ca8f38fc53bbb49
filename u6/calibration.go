package u6

// CalibrationInfo holds the U6 calibration
type CalibrationInfo struct {
	ProductID    uint8
	HiResolution bool
	CalConstants CalibrationConstants
}

// CalibrationConstants holds the calibration constants
type CalibrationConstants [40]float64

// calibrationBlocks is the number of 32 byte memory blocks holding the
// constants, four per block.
const calibrationBlocks = 10

// Layout of CalibrationConstants. The analog input constants form two
// blocks of 16, standard resolution at 0 and high resolution (U6-Pro) at 24.
// Within a block, gain g has its positive slope at 2g, offset at 2g+1,
// negative slope at 8+2g and center point at 9+2g.
const (
	calSlope    = 0
	calOffset   = 1
	calNegSlope = 8
	calCenter   = 9

	// 16..21 hold the DAC and current source constants
	calTemperatureSlope  = 22
	calTemperatureOffset = 23
	calHiResolutionBase  = 24
)

// DefaultCalibrationInfo holds the default values.
var DefaultCalibrationInfo = CalibrationInfo{
	ProductID:    6,
	HiResolution: false,
	CalConstants: [40]float64{
		0.00031580578,
		-10.5869565220,
		0.000031580578,
		-1.05869565220,
		0.0000031580578,
		-0.105869565220,
		0.00000031580578,
		-0.0105869565220,
		-.000315805800,
		33523.0,
		-.0000315805800,
		33523.0,
		-.00000315805800,
		33523.0,
		-.000000315805800,
		33523.0,
		13200.0,
		0.0,
		13200.0,
		0.0,
		0.00001,
		0.0002,
		-92.379,
		465.129,
		0.00031580578,
		-10.5869565220,
		0.000031580578,
		-1.05869565220,
		0.0000031580578,
		-0.105869565220,
		0.00000031580578,
		-0.0105869565220,
		-.000315805800,
		33523.0,
		-.0000315805800,
		33523.0,
		-.00000315805800,
		33523.0,
		-.000000315805800,
		33523.0,
	},
}

// Temperature converts a reading of the internal temperature sensor (AIN14,
// GainIndex=0) in volts to Kelvin.
func (c CalibrationInfo) Temperature(volts float64) float64 {
	return volts*c.CalConstants[calTemperatureSlope] + c.CalConstants[calTemperatureOffset]
}

// AIN converts a raw 16-bit analog reading to volts. Resolution indexes above
// 8 use the high resolution constants when the device is a U6-Pro.
func (c CalibrationInfo) AIN(resolutionIndex int, gain GainIndex, bits uint16) (float64, error) {
	return c.calibratedAIN(resolutionIndex, gain, float64(bits))
}

func (c CalibrationInfo) calibratedAIN(resolutionIndex int, gain GainIndex, value float64) (float64, error) {
	if gain > GainIndex1000 {
		return 0, ErrInvalidGainIndex
	}

	base := int(gain) * 2
	if resolutionIndex > 8 && c.HiResolution {
		base += calHiResolutionBase
	}
	slope := c.CalConstants[base+calSlope]
	negSlope := c.CalConstants[base+calNegSlope]
	center := c.CalConstants[base+calCenter]

	if value < center {
		return (center - value) * negSlope, nil
	}
	return (value - center) * slope, nil
}
