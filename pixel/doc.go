// Package pixel implements the raw RGB color triple used by the rasterizer.
//
// Channels are stored as plain integers against a caller chosen color depth
// (the PPM "maxval"), so a [RGB] only has meaning together with the depth of
// the buffer it is written to. [Color] and [Model] bridge to Go's native
// [color.Color] interface for interop with the image packages.
package pixel
