package u6

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// fakeConn emulates the command protocol of a U6 for tests.
type fakeConn struct {
	versionInfo byte
	serial      uint32
	calibration CalibrationConstants

	// ain maps an analog channel to its raw 24-bit reading
	ain       map[int]uint32
	errorCode byte

	// stream packets returned by OpenStream
	packets [][]byte

	commands [][]byte
	pending  []byte
	closed   bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		versionInfo: 4,
		serial:      360012345,
		calibration: DefaultCalibrationInfo.CalConstants,
		ain:         map[int]uint32{},
	}
}

func (f *fakeConn) Write(p []byte) (int, error) {
	cmd := append([]byte(nil), p...)
	f.commands = append(f.commands, cmd)

	resp, err := f.respond(cmd)
	if err != nil {
		return 0, err
	}
	f.pending = resp
	return len(p), nil
}

func (f *fakeConn) Read(p []byte) (int, error) {
	if f.pending == nil {
		return 0, io.EOF
	}
	n := copy(p, f.pending)
	f.pending = nil
	return n, nil
}

func (f *fakeConn) OpenStream(packetSize int) (io.ReadCloser, error) {
	var buf bytes.Buffer
	for _, p := range f.packets {
		if len(p) != packetSize {
			return nil, fmt.Errorf("packet size %d != %d", len(p), packetSize)
		}
		buf.Write(p)
	}
	return io.NopCloser(&buf), nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func (f *fakeConn) respond(cmd []byte) ([]byte, error) {
	if len(cmd) == 2 {
		return f.streamControl(cmd)
	}

	// every extended command must carry valid checksums
	if err := validateExtendedChecksums(cmd); err != nil {
		return []byte{0xB8, 0xB8}, nil
	}
	if cmd[1] != cmdExtended || int(cmd[2]) != (len(cmd)-6)/2 {
		return nil, errors.New("fake: malformed command header")
	}

	switch cmd[3] {
	case cmdConfigU6:
		return f.configResponse(), nil
	case cmdReadMem:
		return f.readMemResponse(int(cmd[7])), nil
	case cmdFeedback:
		return f.feedbackResponse(cmd[7:])
	case 0x11:
		return extended(make([]byte, 8), 0x11), nil
	}
	return nil, fmt.Errorf("fake: unknown command 0x%02x", cmd[3])
}

// extended fills in the header and checksums of a response.
func extended(resp []byte, command byte) []byte {
	resp[1] = cmdExtended
	resp[2] = byte((len(resp) - 6) / 2)
	resp[3] = command
	extendedChecksum(resp)
	return resp
}

func (f *fakeConn) configResponse() []byte {
	resp := make([]byte, configResponseSize)
	resp[9], resp[10] = 10, 1 // firmware 1.10
	resp[11], resp[12] = 40, 4
	resp[13], resp[14] = 0, 2
	binary.LittleEndian.PutUint32(resp[15:], f.serial)
	binary.LittleEndian.PutUint16(resp[19:], 6)
	resp[21] = 1
	resp[37] = f.versionInfo
	return extended(resp, cmdConfigU6)
}

func (f *fakeConn) readMemResponse(block int) []byte {
	resp := make([]byte, 40)
	for j := 0; j < 4; j++ {
		putFixed(resp[8+j*8:], f.calibration[block*4+j])
	}
	return extended(resp, cmdReadMem)
}

func (f *fakeConn) feedbackResponse(body []byte) ([]byte, error) {
	var data []byte
	for i := 0; i < len(body); {
		switch body[i] {
		case ioTypeAIN24:
			raw := f.ain[int(body[i+1])]
			data = append(data, byte(raw), byte(raw>>8), byte(raw>>16))
			i += 4
		case 0:
			// padding
			i++
		default:
			return nil, fmt.Errorf("fake: unknown IOType %d", body[i])
		}
	}

	size := 9 + len(data)
	if size%2 != 0 {
		size++
	}
	resp := make([]byte, size)
	copy(resp[9:], data)
	if f.errorCode != 0 {
		resp[6] = f.errorCode
		resp[7] = 1
	}
	return extended(resp, cmdFeedback), nil
}

func (f *fakeConn) streamControl(cmd []byte) ([]byte, error) {
	resp := make([]byte, 4)
	switch cmd[0] {
	case 0xA8:
		resp[1] = 0xA9
	case 0xB0:
		resp[1] = 0xB1
		resp[2] = streamStopped
	default:
		return nil, fmt.Errorf("fake: unknown stream command 0x%02x", cmd[0])
	}
	resp[0] = normalChecksum8(resp[1:])
	return resp, nil
}

// putFixed encodes v as signed 32.32 fixed point.
func putFixed(b []byte, v float64) {
	wh := math.Floor(v)
	dec := uint32((v - wh) * 4294967296.0)
	binary.LittleEndian.PutUint32(b[0:], dec)
	binary.LittleEndian.PutUint32(b[4:], uint32(int32(wh)))
}

// streamPacket builds a stream data packet carrying samples.
func streamPacket(samples []uint16, errCode byte) []byte {
	p := make([]byte, 14+2*len(samples))
	p[1] = 0xF9
	p[2] = byte(4 + len(samples))
	p[3] = 0xC0
	p[11] = errCode
	for i, s := range samples {
		binary.LittleEndian.PutUint16(p[12+i*2:], s)
	}
	extendedChecksum(p)
	return p
}
