package u6

import (
	"errors"
	"io"
)

// Feedback IOTypes
const (
	ioTypeAIN24 byte = 2
)

// Analog input channels with a fixed purpose.
const (
	// ChannelTemperature is the internal temperature sensor.
	ChannelTemperature = 14
	// ChannelGround reads ground and is used to measure offset.
	ChannelGround = 15
)

// FeedbackCommand writes to and reads from the USB connection.
type FeedbackCommand interface {
	WriteTo(w io.Writer) (n int, err error)
	ReadFrom(r io.Reader) (n int, err error)
	ResponseSize() int
	SetCalibrationInfo(info CalibrationInfo)
}

// FeedbackAIN24 is the Feedback command for AIN24.
type FeedbackAIN24 struct {
	PositiveChannel int
	ResolutionIndex int
	GainIndex       GainIndex
	SettlingFactor  int
	Differential    bool
	responseBuffer  []byte
	calInfo         CalibrationInfo
}

// WriteTo writes the FeedbackAIN24 command.
func (f *FeedbackAIN24) WriteTo(w io.Writer) (int, error) {
	buf := make([]byte, 4)
	buf[0] = ioTypeAIN24                                // IOType for AIN24
	buf[1] = byte(f.PositiveChannel)                    //Positive Channel 0-143
	buf[2] = byte(uint(f.ResolutionIndex) & 0x0F)       // ResolutionIndex
	buf[2] = byte((uint(f.GainIndex)&0x0F)<<4) + buf[2] // GainIndex
	buf[3] = byte(f.SettlingFactor)                     // SettlingFactor
	if f.Differential {
		buf[3] += 1 << 7
	}
	n, err := w.Write(buf)
	if err != nil {
		return n, err
	} else if n != len(buf) {
		return n, errors.New("Feedback AIN24 data was not fully written")
	}
	return n, nil
}

// ReadFrom reads the response.
func (f *FeedbackAIN24) ReadFrom(r io.Reader) (int, error) {
	f.responseBuffer = make([]byte, f.ResponseSize())
	return io.ReadFull(r, f.responseBuffer)
}

// ResponseSize returns the response size.
func (f *FeedbackAIN24) ResponseSize() int {
	return 3
}

// SetCalibrationInfo sets the calibration info for calculating the proper values.
func (f *FeedbackAIN24) SetCalibrationInfo(info CalibrationInfo) {
	f.calInfo = info
}

// Raw returns the 24-bit reading.
func (f *FeedbackAIN24) Raw() uint32 {
	if len(f.responseBuffer) < 3 {
		return 0
	}
	return uint32(f.responseBuffer[0]) | uint32(f.responseBuffer[1])<<8 | uint32(f.responseBuffer[2])<<16
}

// Voltage returns the calibrated voltage
func (f *FeedbackAIN24) Voltage() (float64, error) {
	if len(f.responseBuffer) < 3 {
		return 0, ErrResponseTooShort
	}
	// calibration constants are in 16-bit counts
	return f.calInfo.calibratedAIN(f.ResolutionIndex, f.GainIndex, float64(f.Raw())/256.0)
}
