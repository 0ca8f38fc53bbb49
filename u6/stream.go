package u6

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/go-kit/log/level"
)

type StreamConfig struct {
	ResolutionIndex  byte
	SamplesPerPacket byte
	SettlingFactor   byte
	ScanConfig       ScanConfig
	Channels         []ChannelConfig

	// ScanFrequency in Hz; when non-zero it overrides ScanConfig timing.
	ScanFrequency int
}

type ChannelConfig struct {
	PositiveChannel byte
	GainIndex       GainIndex
	Differential    DifferentialInput
}

type ScanConfig struct {
	ClockSpeed   ClockSpeed
	DivideBy256  ClockDivision
	ScanInterval uint16
}

func (s ScanConfig) GetByte() byte {
	return byte(s.ClockSpeed) + byte(s.DivideBy256)
}

type ClockSpeed byte

const (
	ClockSpeed4Mhz  ClockSpeed = 0
	ClockSpeed48Mhz ClockSpeed = 8
)

type ClockDivision byte

const (
	ClockDivisionOff ClockDivision = 0
	ClockDivisionOn  ClockDivision = 2
)

type DifferentialInput byte

const (
	DifferentialInputDisabled DifferentialInput = 0   // 0
	DifferentialInputEnabled  DifferentialInput = 128 // 128
)

// GainIndex selects the input range: x1 is ±10 V, x10 ±1 V, x100 ±0.1 V and
// x1000 ±0.01 V.
type GainIndex byte

const (
	GainIndex1 GainIndex = iota
	GainIndex10
	GainIndex100
	GainIndex1000
)

// Stream packet status codes
const (
	streamOverflow     byte = 59
	streamAutoRecovery byte = 60
	streamStopped      byte = 52
)

type StreamResponse struct {
	Timestamp    time.Time
	Data         []ChannelData
	PacketNumber int
	ErrorCode    byte
	Error        error
}

type ChannelData struct {
	Raw           uint16
	ChannelIndex  int
	ScanNumber    int
	PacketNumber  int
	config        StreamConfig
	calInfo       CalibrationInfo
	channelConfig ChannelConfig
}

// Channel returns the configuration of the channel that produced the sample.
func (c *ChannelData) Channel() ChannelConfig {
	return c.channelConfig
}

func (c *ChannelData) GetCalibratedAIN() (float64, error) {
	return c.calInfo.AIN(int(c.config.ResolutionIndex), c.channelConfig.GainIndex, c.Raw)
}

type Stream struct {
	device  *U6
	config  StreamConfig
	running atomic.Bool
}

// NewStream configures a new data stream
func (u *U6) NewStream(config *StreamConfig) (*Stream, error) {
	if config == nil || len(config.Channels) == 0 {
		return nil, errors.New("Stream needs at least one channel")
	} else if config.SamplesPerPacket < 1 || config.SamplesPerPacket > 25 {
		return nil, errors.New("Invalid samples per packet")
	} else if config.ResolutionIndex < 1 || config.ResolutionIndex > 8 {
		return nil, errors.New("Invalid resolution index")
	}

	// resolve timing on a copy, the caller's config is left untouched
	cfg := *config
	if cfg.ScanFrequency < 0 {
		return nil, errors.New("Invalid scan frequency")
	} else if cfg.ScanFrequency != 0 {
		if cfg.ScanFrequency < 1000 {
			if cfg.ScanFrequency < 25 {
				cfg.SamplesPerPacket = byte(cfg.ScanFrequency)
			}
			cfg.ScanConfig.DivideBy256 = ClockDivisionOn
			cfg.ScanConfig.ScanInterval = uint16(15625 / cfg.ScanFrequency)
		} else {
			cfg.ScanConfig.DivideBy256 = ClockDivisionOff
			cfg.ScanConfig.ScanInterval = uint16(4000000 / cfg.ScanFrequency)
		}
	}
	cfg.Channels = append([]ChannelConfig(nil), config.Channels...)

	header := streamConfigCommand(&cfg)
	recvBuffer := make([]byte, 8)
	n, err := u.transact(header, recvBuffer)
	if err != nil {
		return nil, err
	} else if n != len(recvBuffer) {
		return nil, fmt.Errorf("Full response was not recieved from device: %d != %d", n, len(recvBuffer))
	}

	if err := validateExtendedChecksums(recvBuffer); err != nil {
		return nil, err
	} else if recvBuffer[1] != cmdExtended || recvBuffer[3] != 0x11 {
		return nil, ErrInvalidResponseHeader
	}

	if errCode := recvBuffer[6]; errCode != 0 {
		return nil, ErrLabJackErrorCode{code: int(errCode)}
	}
	return &Stream{device: u, config: cfg}, nil
}

// streamConfigCommand builds the StreamConfig extended command.
func streamConfigCommand(config *StreamConfig) []byte {
	header := make([]byte, 14+2*len(config.Channels))
	header[1] = cmdExtended
	header[2] = byte(len(config.Channels) + 4)
	header[3] = 0x11
	header[6] = byte(len(config.Channels))
	header[7] = config.ResolutionIndex
	header[8] = config.SamplesPerPacket
	header[10] = config.SettlingFactor
	header[11] = config.ScanConfig.GetByte()
	header[12] = byte(config.ScanConfig.ScanInterval & 0x00FF)
	header[13] = byte(config.ScanConfig.ScanInterval / 256)

	for i, ch := range config.Channels {
		header[14+i*2] = ch.PositiveChannel
		header[15+i*2] = byte(ch.Differential) + byte(ch.GainIndex)<<4
	}
	setChecksum(header)
	return header
}

// Config returns the stream configuration after timing was resolved.
func (s *Stream) Config() StreamConfig {
	return s.config
}

// Start starts the stream. Packets are delivered on the returned channel
// until ctx is cancelled, after which the stream is stopped on the device and
// the channel is closed.
func (s *Stream) Start(ctx context.Context) (<-chan StreamResponse, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrStreamRunning
	}

	// Stop existing streams
	if err := s.stop(); err != nil {
		s.running.Store(false)
		return nil, err
	}

	// Start new stream
	if err := s.start(); err != nil {
		s.running.Store(false)
		return nil, err
	}

	packetSize := 14 + 2*int(s.config.SamplesPerPacket)
	rs, err := s.device.conn.OpenStream(packetSize)
	if err != nil {
		s.stop()
		s.running.Store(false)
		return nil, ErrLibUSB{"Could not open stream endpoint", err}
	}

	level.Info(s.device.logger).Log("msg", "stream started", "channels", len(s.config.Channels), "samples_per_packet", s.config.SamplesPerPacket)
	dataCh := make(chan StreamResponse, 100)
	go s.readStream(ctx, dataCh, rs)
	return dataCh, nil
}

func (s *Stream) readStream(ctx context.Context, dataCh chan<- StreamResponse, rs io.ReadCloser) {
	defer func() {
		if err := s.stop(); err != nil {
			level.Warn(s.device.logger).Log("msg", "stream stop failed", "err", err)
		}
		s.running.Store(false)
		close(dataCh)
	}()

	// unblock the pending read on cancellation
	ctx, cancel := context.WithCancel(ctx)
	closed := make(chan struct{})
	go func() {
		<-ctx.Done()
		rs.Close()
		close(closed)
	}()
	defer func() {
		cancel()
		<-closed
	}()

	dec := newStreamDecoder(s.config, s.device.calibration)
	recvBuffer := make([]byte, 14+2*int(s.config.SamplesPerPacket))
	for {
		_, err := io.ReadFull(rs, recvBuffer)
		if ctx.Err() != nil {
			return
		}
		var resp StreamResponse
		if err != nil {
			resp = StreamResponse{Error: ErrLibUSB{"Stream read failed", err}}
		} else {
			resp = dec.decode(recvBuffer)
		}
		resp.Timestamp = time.Now()

		select {
		case dataCh <- resp:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// streamDecoder tracks the channel and scan position across packets.
type streamDecoder struct {
	config       StreamConfig
	calInfo      CalibrationInfo
	channelIndex int
	scanNumber   int
	packetNumber int
}

func newStreamDecoder(config StreamConfig, calInfo CalibrationInfo) *streamDecoder {
	return &streamDecoder{config: config, calInfo: calInfo}
}

// decode validates a stream data packet and splits it into channel samples.
func (d *streamDecoder) decode(recvBuffer []byte) StreamResponse {
	samplesPerPacket := int(d.config.SamplesPerPacket)
	if len(recvBuffer) < 14+2*samplesPerPacket {
		return StreamResponse{Error: ErrResponseTooShort}
	}

	if err := validateExtendedChecksums(recvBuffer); err != nil {
		return StreamResponse{Error: ErrInvalidChecksumResponse}
	}

	if recvBuffer[1] != byte(0xF9) || recvBuffer[2] != byte(4+samplesPerPacket) || recvBuffer[3] != byte(0xC0) {
		return StreamResponse{Error: ErrInvalidResponseHeader}
	}

	errCode := recvBuffer[11]
	if errCode != 0 && errCode != streamOverflow && errCode != streamAutoRecovery {
		return StreamResponse{ErrorCode: errCode, Error: ErrLabJackErrorCode{code: int(errCode)}}
	}

	numChannels := len(d.config.Channels)
	data := make([]ChannelData, samplesPerPacket)
	for i := 0; i < samplesPerPacket; i++ {
		data[i] = ChannelData{
			ChannelIndex:  d.channelIndex,
			ScanNumber:    d.scanNumber,
			PacketNumber:  d.packetNumber,
			Raw:           uint16(recvBuffer[12+i*2]) + uint16(recvBuffer[13+i*2])*256,
			calInfo:       d.calInfo,
			config:        d.config,
			channelConfig: d.config.Channels[d.channelIndex],
		}
		d.channelIndex++
		if d.channelIndex >= numChannels {
			d.channelIndex = 0
			d.scanNumber++
		}
	}

	resp := StreamResponse{Data: data, PacketNumber: d.packetNumber, ErrorCode: errCode}
	d.packetNumber = (d.packetNumber + 1) % 256
	return resp
}

// start sends StreamStart.
func (s *Stream) start() error {
	return s.streamControl(0xA8, 0xA9, 0)
}

// stop sends StreamStop. Stopping an idle stream reports code 52, which is
// not an error.
func (s *Stream) stop() error {
	return s.streamControl(0xB0, 0xB1, streamStopped)
}

func (s *Stream) streamControl(command, reply, allowedCode byte) error {
	header := []byte{command, command}
	recvBuffer := make([]byte, 4)
	n, err := s.device.transact(header, recvBuffer)
	if err != nil {
		return err
	} else if n != len(recvBuffer) {
		return fmt.Errorf("Full response was not recieved from device: %d != %d", n, len(recvBuffer))
	}

	if normalChecksum8(recvBuffer[1:]) != recvBuffer[0] {
		return ErrInvalidChecksum
	} else if recvBuffer[1] != reply || recvBuffer[3] != 0x00 {
		return ErrInvalidResponseHeader
	}

	if errCode := recvBuffer[2]; errCode != 0 && errCode != allowedCode {
		return ErrLabJackErrorCode{code: int(errCode)}
	}
	return nil
}
