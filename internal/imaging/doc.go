// Package imaging maps byte payloads onto raster images and back.
//
// The mapping is one byte per pixel: payload byte i occupies the red
// channel of pixel i in row-major order, alpha is forced opaque for
// carrier pixels, and everything else stays zero. The grid is the
// smallest near-square that fits the payload (width = ceil(sqrt(n))).
//
// Decoding scans in the same order and stops at the first zero red value,
// which doubles as the end-of-data sentinel. Because the payloads stored
// here are ciphertext, a zero byte can legitimately occur mid-payload and
// truncate the decode; this defect is preserved deliberately since fixing
// it (say, with a length prefix) would change the image format.
//
// Images are persisted as PNG only. PNG is lossless, so every channel
// byte survives a write/read cycle exactly.
package imaging
