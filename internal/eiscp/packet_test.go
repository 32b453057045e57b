package eiscp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestEncodePacketLayout(t *testing.T) {
	packet, err := EncodePacket("MVL50")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(packet) != 16+8 {
		t.Fatalf("unexpected packet size: %d", len(packet))
	}
	if !bytes.Equal(packet[0:4], []byte("ISCP")) {
		t.Fatalf("bad magic: %q", packet[0:4])
	}
	if got := binary.BigEndian.Uint32(packet[4:8]); got != 16 {
		t.Fatalf("header length field = %d, want 16", got)
	}
	if got := binary.BigEndian.Uint32(packet[8:12]); got != 8 {
		t.Fatalf("payload length field = %d, want 8", got)
	}
	if !bytes.Equal(packet[12:16], []byte{0, 0, 0, 0}) {
		t.Fatalf("reserved bytes not zero: %v", packet[12:16])
	}
	if !bytes.Equal(packet[16:], []byte("!1MVL50\r")) {
		t.Fatalf("bad payload: %q", packet[16:])
	}
}

func TestEncodePacketRoundTrip(t *testing.T) {
	packet, err := EncodePacket("PWR01")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// The header bytes ahead of the "!1" marker are tolerated as noise,
	// so a whole terminated packet decodes directly.
	var dec Decoder
	msgs := dec.Feed(append(packet, terminator))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Command != "PWR" || msgs[0].Value != "01" {
		t.Fatalf("unexpected message: %+v", msgs[0])
	}
}

func TestEncodePacketEmptyCommand(t *testing.T) {
	if _, err := EncodePacket(""); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
}
