package main

import (
	"fmt"
	"os"
	"time"

	"github.com/eliquious/thermocouple/u6"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/gousb"
)

func main() {
	logger := log.NewLogfmtLogger(os.Stderr)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	// Initialize a new Context.
	ctx := gousb.NewContext()
	defer ctx.Close()

	// Open U6 connection
	dev, err := u6.OpenUSBConnection(ctx)
	if err != nil {
		level.Error(logger).Log("msg", "could not open U6", "err", err)
		os.Exit(1)
	}
	defer dev.Close()
	dev.SetLogger(logger)

	fmt.Println(dev.DeviceDesc())

	for i := 0; i < 10; i++ {
		r, err := dev.ReadThermocouple(u6.DefaultThermocoupleConfig)
		if err != nil {
			level.Warn(logger).Log("msg", "reading failed", "err", err)
		} else {
			fmt.Printf("%s  %8.4f mV  cj=%6.2f °C  %8.2f °C\n", r.Time.Format(time.RFC3339), r.Millivolts, r.ColdJunctionCelsius, r.Celsius)
		}
		time.Sleep(time.Second)
	}
}
