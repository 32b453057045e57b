// Package eiscp implements the Integra Serial Control Protocol over IP
// used by Pioneer/Onkyo AV receivers.
//
// Ownership boundary:
// - outbound frame construction (fixed 16-byte ISCP header + payload)
// - inbound stream de-framing on the 0x1a terminator
// - one TCP session per Client with ordered event delivery
//
// Protocol notes: an outbound payload is "!1<code><arg>\r" and is
// delimited by the declared payload length in the header. Inbound
// messages are instead delimited by a trailing 0x1a byte; their header
// bytes are treated as framing noise ahead of the "!1" marker, so the
// inbound header is never parsed field by field.
package eiscp
