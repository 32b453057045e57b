// Package driver binds one eISCP client into the device host: it maps
// receiver notifications onto capability state, republishes host control
// actions as protocol commands, and supervises reconnection.
//
// Ownership boundary:
// - capability-value mapping for PWR/MVL/AMT/SLT
// - lazy reconnect ahead of every setter
// - fixed-interval retry after close or connect failure
package driver
