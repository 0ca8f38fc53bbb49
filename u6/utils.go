package u6

// normalChecksum8 calculates the 8-bit checksum
func normalChecksum8(bytes []uint8) uint8 {
	var a, bb uint16

	//Sums bytes 1 to n-1 unsigned to a 2 byte value. Sums quotient and
	//remainder of 256 division.  Again, sums quotient and remainder of
	//256 division.
	for _, b := range bytes {
		a += uint16(b)
	}

	bb = a / 256
	a = (a - 256*bb) + bb
	bb = a / 256
	return uint8((a - 256*bb) + bb)
}

// extendedChecksum in-lines the 16-bit checksum in the slice
func extendedChecksum(bytes []uint8) error {
	a, err := extendedChecksum16(bytes)
	if err != nil {
		return err
	}
	bytes[4] = uint8(a & 0xff)
	bytes[5] = uint8((a / 256) & 0xff)

	b, err := extendedChecksum8(bytes)
	if err != nil {
		return err
	}
	bytes[0] = b
	return nil
}

// extendedChecksum16 returns the 16-bit checksum
func extendedChecksum16(bytes []uint8) (uint16, error) {
	if len(bytes) < 7 {
		return 0, ErrInvalidChecksumInput
	}
	var a uint16

	//Sums bytes 6 to n-1 to a unsigned 2 byte value
	for i := 6; i < len(bytes); i++ {
		a += uint16(bytes[i])
	}
	return a, nil
}

// extendedChecksum8 returns the 8-bit extended checksum
func extendedChecksum8(bytes []uint8) (uint8, error) {
	if len(bytes) < 6 {
		return 0, ErrInvalidChecksumInput
	}
	return normalChecksum8(bytes[1:6]), nil
}

// setChecksum fills in the checksums of a command. Extended commands carry
// the 0xF8 command byte.
func setChecksum(bytes []uint8) error {
	if len(bytes) < 2 {
		return ErrInvalidChecksumInput
	}
	if (bytes[1]&0x78)>>3 == 15 {
		return extendedChecksum(bytes)
	}
	bytes[0] = normalChecksum8(bytes[1:])
	return nil
}

// validateExtendedChecksums checks both checksums of an extended response.
func validateExtendedChecksums(bytes []uint8) error {
	checksumTotal, err := extendedChecksum16(bytes)
	if err != nil {
		return err
	} else if uint8((checksumTotal/256)&0xFF) != bytes[5] || uint8(checksumTotal&0xFF) != bytes[4] {
		return ErrInvalidChecksum
	}

	c, err := extendedChecksum8(bytes)
	if err != nil {
		return err
	} else if c != bytes[0] {
		return ErrInvalidChecksum
	}
	return nil
}

// uint8ArrayToFloat64 decodes a signed 32.32 fixed point value.
func uint8ArrayToFloat64(buffer []uint8, startIndex int) float64 {
	var resultDec uint32
	var resultWh int32
	resultDec = (uint32(buffer[startIndex]) |
		(uint32(buffer[startIndex+1]) << 8) |
		(uint32(buffer[startIndex+2]) << 16) |
		(uint32(buffer[startIndex+3]) << 24))
	resultWh = (int32(buffer[startIndex+4]) |
		(int32(buffer[startIndex+5]) << 8) |
		(int32(buffer[startIndex+6]) << 16) |
		(int32(buffer[startIndex+7]) << 24))
	return float64(int(resultWh)) + float64(resultDec)/4294967296.0
}
