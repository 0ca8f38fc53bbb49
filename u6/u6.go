package u6

import (
	"bytes"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/gousb"
)

// Extended command numbers
const (
	cmdConfigU6 byte = 0x08
	cmdReadMem  byte = 0x2D
	cmdFeedback byte = 0x00
	cmdExtended byte = 0xF8
)

// OpenUSBConnection opens the USB connection a LabJack U6.
func OpenUSBConnection(usbctx *gousb.Context) (*U6, error) {
	if usbctx == nil {
		return nil, ErrInvalidContext
	}

	c, err := openUSBConn(usbctx)
	if err != nil {
		return nil, err
	}

	dev, err := newU6(c)
	if err != nil {
		c.Close()
		return nil, err
	}
	return dev, nil
}

// newU6 performs the config handshake and reads the calibration constants.
func newU6(c conn) (*U6, error) {
	ljdev := &U6{conn: c, calibration: DefaultCalibrationInfo, logger: log.NewNopLogger()}
	if err := ljdev.initConnection(); err != nil {
		return nil, err
	}
	if err := ljdev.getCalibrationInfo(); err != nil {
		return nil, err
	}
	return ljdev, nil
}

// U6 represents the LabJack U6 / U6 Pro devices. A U6 is not safe for
// concurrent use.
type U6 struct {
	conn        conn
	config      DeviceDesc
	calibration CalibrationInfo
	logger      log.Logger
}

// SetLogger sets the logger used for protocol diagnostics.
func (u *U6) SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	u.logger = log.With(logger, "device", "u6", "serial", u.config.SerialNumber)
}

// DeviceDesc returns the device details.
func (u *U6) DeviceDesc() DeviceDesc {
	return u.config
}

// GetCalibrationInfo gets the calibration information for the device
func (u *U6) GetCalibrationInfo() CalibrationInfo {
	return u.calibration
}

// Close closes the device connection.
func (u *U6) Close() error {
	return u.conn.Close()
}

// transact writes a command and reads the response into recBuffer. It returns
// the number of bytes received.
func (u *U6) transact(sendBuffer, recBuffer []byte) (int, error) {
	n, err := u.conn.Write(sendBuffer)
	if err != nil {
		return 0, ErrLibUSB{"Could not write command", err}
	} else if n != len(sendBuffer) {
		return 0, ErrEndpointSendError
	}

	n, err = u.conn.Read(recBuffer)
	if err != nil {
		return n, ErrLibUSB{"Could not read response", err}
	}

	// Bad checksum response
	if n >= 2 && recBuffer[0] == 0xB8 && recBuffer[1] == 0xB8 {
		return n, ErrInvalidChecksumResponse
	}
	return n, nil
}

func (u *U6) initConnection() error {
	sendBuffer := make([]byte, 26)
	recBuffer := make([]byte, configResponseSize)

	// setting up U6Config; a zero WriteMask only reads the configuration
	sendBuffer[1] = cmdExtended
	sendBuffer[2] = uint8(0x0A)
	sendBuffer[3] = cmdConfigU6
	if err := setChecksum(sendBuffer); err != nil {
		return err
	}

	n, err := u.transact(sendBuffer, recBuffer)
	if err != nil {
		return err
	} else if n != len(recBuffer) {
		return ErrEndpointRecvError
	}

	// Validate response
	if err = validateCommandResponse(recBuffer, 0x10, cmdConfigU6); err != nil {
		return err
	}

	// Parse device info
	config, err := parseConfigBytes(recBuffer)
	if err != nil {
		return err
	}
	u.config = config
	return nil
}

// validateCommandResponse checks the header, error code and checksums of an
// extended command response.
func validateCommandResponse(recBuffer []uint8, words, command byte) error {
	if len(recBuffer) < 7 {
		return ErrResponseTooShort
	}

	// Bad checksum response
	if recBuffer[0] == 0xB8 && recBuffer[1] == 0xB8 {
		return ErrInvalidChecksumResponse
	}

	// Validate response header
	if recBuffer[1] != cmdExtended || recBuffer[2] != words || recBuffer[3] != command {
		return ErrInvalidResponseHeader
	}

	if err := validateExtendedChecksums(recBuffer); err != nil {
		return err
	}
	if recBuffer[6] != 0 {
		return ErrLabJackErrorCode{code: int(recBuffer[6])}
	}
	return nil
}

// getCalibrationInfo reads the calibration constants from flash memory.
func (u *U6) getCalibrationInfo() error {
	sendBuffer := make([]byte, 8)
	recBuffer := make([]byte, 40)

	cal := CalibrationInfo{
		ProductID:    6,
		HiResolution: u.config.HiResolution(),
	}

	for i := 0; i < calibrationBlocks; i++ {

		/* reading block i from memory */
		sendBuffer[1] = cmdExtended //command byte
		sendBuffer[2] = uint8(0x01) //number of data words
		sendBuffer[3] = cmdReadMem  //extended command number
		sendBuffer[6] = 0
		sendBuffer[7] = uint8(i) //Blocknum = i
		if err := setChecksum(sendBuffer); err != nil {
			return err
		}

		n, err := u.transact(sendBuffer, recBuffer)
		if err != nil {
			return fmt.Errorf("reading calibration block %d: %w", i, err)
		} else if n != len(recBuffer) {
			return ErrEndpointRecvError
		}
		if err := validateCommandResponse(recBuffer, 0x11, cmdReadMem); err != nil {
			return fmt.Errorf("reading calibration block %d: %w", i, err)
		}

		//block data starts on byte 8 of the buffer
		offset := i * 4
		for j := 0; j < 4; j++ {
			cal.CalConstants[offset+j] = uint8ArrayToFloat64(recBuffer[8:], j*8)
		}
	}
	u.calibration = cal
	return nil
}

var feedbackHeader = []byte{0, cmdExtended, 0, cmdFeedback, 0, 0, 0}

// Feedback executes all of the Feedback commands given.
func (u *U6) Feedback(cmds ...FeedbackCommand) error {
	var sendBuffer bytes.Buffer

	// Write header
	sendBuffer.Write(feedbackHeader)

	// Write each feeback command
	var length int
	var responseSize int
	for _, cmd := range cmds {
		cmd.SetCalibrationInfo(u.calibration)
		n, err := cmd.WriteTo(&sendBuffer)
		if err != nil {
			return err
		} else if n == 0 {
			return fmt.Errorf("Command data was not written")
		}
		length += n
		responseSize += cmd.ResponseSize()
	}

	// Pad message if needed
	if (length+1)%2 == 1 {
		sendBuffer.WriteByte(0x00)
		length++
	}

	// Get bytes and set word count
	buf := sendBuffer.Bytes()
	buf[2] = byte((length + 1) / 2)

	// Calculate checksum
	if err := setChecksum(buf); err != nil {
		return err
	}
	level.Debug(u.logger).Log("msg", "feedback command", "commands", len(cmds), "bytes", len(buf))

	// Responses are padded to a whole number of words
	recvSize := 9 + responseSize
	if recvSize%2 != 0 {
		recvSize++
	}
	recvBuffer := make([]byte, recvSize)
	n, err := u.transact(buf, recvBuffer)
	if err != nil {
		return err
	} else if n != len(recvBuffer) {
		return fmt.Errorf("Full response was not recieved from device: %d != %d", n, len(recvBuffer))
	}

	if err := validateExtendedChecksums(recvBuffer); err != nil {
		return err
	} else if recvBuffer[1] != cmdExtended || recvBuffer[3] != cmdFeedback || int(recvBuffer[2]) != (recvSize-6)/2 {
		return ErrInvalidResponseHeader
	}

	errCode := recvBuffer[6]
	errFrame := recvBuffer[7]
	if errCode != 0 {
		level.Warn(u.logger).Log("msg", "feedback error", "code", errCode, "frame", errFrame)
		return ErrLabJackErrorCode{code: int(errCode), frame: int(errFrame)}
	}

	// Populate the commands' response
	buffer := bytes.NewReader(recvBuffer[9 : 9+responseSize])
	for i, cmd := range cmds {
		if _, err := cmd.ReadFrom(buffer); err != nil {
			return fmt.Errorf("decoding feedback response %d: %w", i, err)
		}
	}

	if remaining := buffer.Len(); remaining != 0 {
		return fmt.Errorf("Feedback response was not decoded completely: remaining=%d", remaining)
	}
	return nil
}
