// Package icon turns a launch target's native icon resource into a portable
// PNG asset.
//
// The OS-specific work is confined to the Provider capability, which hands
// back raw 32bpp pixel data; the raster pipeline that corrects byte order,
// reconstructs transparency from the monochrome mask, and encodes PNG is
// pure and platform-independent.
package icon
