// Package compress provides the compression codecs applied to encoded payload
// columns.
//
// Reduced series are shipped to a renderer as a payload of two encoded
// columns (see package payload). Each column can additionally be compressed
// with one of:
//
//   - None: the column is stored as encoded.
//   - Zstd: best ratio, suited to payloads sent over slow links.
//   - S2: balanced speed and ratio.
//   - LZ4: fastest decompression, suited to interactive panning.
//
// Zstd uses the pure Go klauspost/compress implementation. Building with
// cgo and the gozstd tag switches it to the libzstd binding:
//
//	go build -tags gozstd ./...
//
// Both produce standard zstd frames, so payloads written by one build are
// readable by the other.
//
// Codecs are stateless values and safe for concurrent use; encoder and
// decoder state is pooled internally.
package compress
