package u6

import (
	"io"

	"github.com/google/gousb"
)

// LabJackVendorID is the ID for the LabJack company.
const LabJackVendorID gousb.ID = gousb.ID(0x0cd5)

// U6ProductID is the ID for the U6 / U6 Pro devices
const U6ProductID gousb.ID = gousb.ID(0x0006)

// U6 pipes to read/write through
const (
	U6PipeOutEP1 int = 1
	U6PipeInEP2  int = 0x82
	U6PipeInEP3  int = 0x83 //Stream Endpoint
)

// streamTransfers is the number of concurrent USB transfers kept in flight
// while streaming.
const streamTransfers = 20

// conn is the command transport to a U6. Writes go to the command pipe and
// reads come from the response pipe.
type conn interface {
	io.ReadWriter
	OpenStream(packetSize int) (io.ReadCloser, error)
	Close() error
}

// usbConn is a conn over a claimed gousb interface.
type usbConn struct {
	device *gousb.Device
	done   func()
	out    *gousb.OutEndpoint
	in     *gousb.InEndpoint
	stream *gousb.InEndpoint
}

func openUSBConn(usbctx *gousb.Context) (*usbConn, error) {
	// Open any device with a given VID/PID using a convenience function.
	dev, err := usbctx.OpenDeviceWithVIDPID(LabJackVendorID, U6ProductID)
	if err != nil {
		return nil, ErrLibUSB{"Could not open a device", err}
	} else if dev == nil {
		return nil, ErrDeviceNotFound
	}
	if err := dev.Reset(); err != nil {
		dev.Close()
		return nil, ErrLibUSB{"Could not reset the device", err}
	}
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		return nil, ErrLibUSB{"Could not enable kernel driver auto detach", err}
	}

	inf, done, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		return nil, ErrLibUSB{"Could not claim the default interface", err}
	}
	c := &usbConn{device: dev, done: done}
	if c.out, err = inf.OutEndpoint(U6PipeOutEP1); err != nil {
		c.Close()
		return nil, ErrLibUSB{"Could not open the command endpoint", err}
	}
	if c.in, err = inf.InEndpoint(U6PipeInEP2); err != nil {
		c.Close()
		return nil, ErrLibUSB{"Could not open the response endpoint", err}
	}
	if c.stream, err = inf.InEndpoint(U6PipeInEP3); err != nil {
		c.Close()
		return nil, ErrLibUSB{"Could not open the stream endpoint", err}
	}
	return c, nil
}

func (c *usbConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *usbConn) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *usbConn) OpenStream(packetSize int) (io.ReadCloser, error) {
	return c.stream.NewStream(packetSize, streamTransfers)
}

func (c *usbConn) Close() error {
	if c.done != nil {
		c.done()
	}
	return c.device.Close()
}
