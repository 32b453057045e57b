package eiscp

import "encoding/binary"

const (
	headerSize = 16
	marker     = "!1" // start character + unit type for a receiver
	terminator = 0x1a // inbound end-of-message
	messageEnd = '\r' // outbound end-of-message
)

var magic = []byte("ISCP")

// EncodePacket builds one outbound eISCP frame wrapping command, which
// must be a three-letter code plus argument (e.g. "PWR01", "MVL50").
func EncodePacket(command string) ([]byte, error) {
	if command == "" {
		return nil, ErrEmptyCommand
	}

	payloadLen := len(marker) + len(command) + 1
	buf := make([]byte, headerSize+payloadLen)
	copy(buf[0:4], magic)
	binary.BigEndian.PutUint32(buf[4:8], headerSize)
	binary.BigEndian.PutUint32(buf[8:12], uint32(payloadLen))
	// bytes 12-15 are reserved and stay zero

	copy(buf[headerSize:], marker)
	copy(buf[headerSize+len(marker):], command)
	buf[len(buf)-1] = messageEnd
	return buf, nil
}
