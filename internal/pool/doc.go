// Package pool recycles the byte buffers and scratch slices used while
// encoding payloads.
package pool
