package eiscp

import "bytes"

// Message is one decoded receiver notification.
type Message struct {
	Command string `json:"command"`
	Value   string `json:"value"`
}

// String returns the message as the command string it arrived as.
func (m Message) String() string {
	return m.Command + m.Value
}

// Decoder splits an unbounded inbound byte stream into messages. Chunk
// boundaries carry no protocol meaning: one frame may span several reads
// and one read may carry several frames, so the unterminated tail is
// kept between calls.
type Decoder struct {
	buf []byte
}

// Feed appends chunk to the receive buffer and returns every message it
// completes, in stream order. Terminated segments that do not carry a
// recognizable message are dropped.
func (d *Decoder) Feed(chunk []byte) []Message {
	d.buf = append(d.buf, chunk...)

	var out []Message
	for {
		i := bytes.IndexByte(d.buf, terminator)
		if i < 0 {
			return out
		}
		if msg, ok := parseSegment(d.buf[:i]); ok {
			out = append(out, msg)
		}
		d.buf = d.buf[i+1:]
	}
}

// parseSegment extracts one message from a terminator-bounded segment.
// Anything ahead of the "!1" marker is framing noise (typically the
// inbound ISCP header); segments without the marker followed by a
// three-letter code are not messages.
func parseSegment(segment []byte) (Message, bool) {
	i := bytes.Index(segment, []byte(marker))
	if i < 0 {
		return Message{}, false
	}
	rest := segment[i+len(marker):]
	if len(rest) < 3 {
		return Message{}, false
	}
	code := rest[:3]
	for _, b := range code {
		if b < 'A' || b > 'Z' {
			return Message{}, false
		}
	}
	value := rest[3:]
	for len(value) > 0 && value[len(value)-1] < 0x20 {
		value = value[:len(value)-1]
	}
	return Message{Command: string(code), Value: string(value)}, true
}
