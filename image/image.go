/*
Package image implements a decoder and encoder for DSC graphics containers.

Decoding reverses the conversion as far as it can. Indexed graphics are
returned as an *image.Paletted using the stored 15-bit palette, and 16 bpp
graphics are returned as an *image.NRGBA. Tiled graphics are put back into
raster order. Colors are only as accurate as 5 bits per channel allows.
*/
package image
