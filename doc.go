// Package avifpix implements the pixel-format conversion core for AVIF
// encoding and decoding: packed BGRA/RGBA surfaces to and from planar YUV
// (or lossless GBR) sample planes.
//
// The AV1 codec itself is an external collaborator consumed through the
// Encoder and Decoder interfaces; this package handles chroma subsampling,
// limited/full range rescaling, the H.273 matrix-coefficient color models
// (BT.601/709/2020, YCgCo, YCgCo-Re/Ro, Identity), 8/10/12/16-bit sample
// depths, and assembling image-grid tiles into one destination surface.
package avifpix
