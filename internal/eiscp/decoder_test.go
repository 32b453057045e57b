package eiscp

import "testing"

func TestDecoderSplitChunks(t *testing.T) {
	wire := []byte("!1PWR01\x1a")
	whole := new(Decoder).Feed(wire)
	if len(whole) != 1 {
		t.Fatalf("single chunk: expected 1 message, got %d", len(whole))
	}

	for cut := 1; cut < len(wire); cut++ {
		var dec Decoder
		msgs := dec.Feed(wire[:cut])
		msgs = append(msgs, dec.Feed(wire[cut:])...)
		if len(msgs) != 1 {
			t.Fatalf("cut=%d: expected 1 message, got %d", cut, len(msgs))
		}
		if msgs[0] != whole[0] {
			t.Fatalf("cut=%d: got %+v, want %+v", cut, msgs[0], whole[0])
		}
	}
}

func TestDecoderMultipleMessagesPerChunk(t *testing.T) {
	var dec Decoder
	msgs := dec.Feed([]byte("!1PWR01\x1a!1MVL42\x1a"))
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Command != "PWR" || msgs[0].Value != "01" {
		t.Fatalf("unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Command != "MVL" || msgs[1].Value != "42" {
		t.Fatalf("unexpected second message: %+v", msgs[1])
	}
}

func TestDecoderRemainderPreserved(t *testing.T) {
	var dec Decoder
	if msgs := dec.Feed([]byte("!1SLT")); len(msgs) != 0 {
		t.Fatalf("unterminated chunk yielded %d messages", len(msgs))
	}
	msgs := dec.Feed([]byte("10\x1a"))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Command != "SLT" || msgs[0].Value != "10" {
		t.Fatalf("unexpected message: %+v", msgs[0])
	}
}

func TestDecoderLeadingNoiseTolerated(t *testing.T) {
	var dec Decoder
	msgs := dec.Feed([]byte("ISCP\x00\x00\x00\x10!1AMT00\x1a"))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Command != "AMT" || msgs[0].Value != "00" {
		t.Fatalf("unexpected message: %+v", msgs[0])
	}
}

func TestDecoderTrailingControlBytesStripped(t *testing.T) {
	var dec Decoder
	msgs := dec.Feed([]byte("!1PWR01\r\n\x1a"))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Value != "01" {
		t.Fatalf("unexpected value: %q", msgs[0].Value)
	}
}

func TestDecoderDiscardsUnrecognizedSegments(t *testing.T) {
	var dec Decoder
	msgs := dec.Feed([]byte("garbage\x1a!1pw r\x1a!1AB\x1a!1PWR01\x1a"))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Command != "PWR" {
		t.Fatalf("unexpected message: %+v", msgs[0])
	}
}
