// Package server runs the adapter's HTTP listener.
//
// It owns startup, signal handling and graceful shutdown so that in-flight
// scans get a chance to finish when the process is asked to stop.
package server
