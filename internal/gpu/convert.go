package gpu

// CopyPitchAlignment is the row alignment WebGPU (and DX12) require for
// texture-to-buffer copies.
const CopyPitchAlignment = 256

// AlignBytesPerRow rounds a tight row pitch up to CopyPitchAlignment.
func AlignBytesPerRow(bytesPerRow uint32) uint32 {
	return (bytesPerRow + CopyPitchAlignment - 1) &^ (CopyPitchAlignment - 1)
}

// ConvertBGRAToRGBA converts pixelCount pixels from BGRA byte order (the
// render target format) into RGBA (the image format): blue and red swap,
// green and alpha pass through. src and dst must each hold at least
// pixelCount*4 bytes; they may not alias unless they are the same slice.
func ConvertBGRAToRGBA(src, dst []byte, pixelCount int) {
	for i := 0; i < pixelCount; i++ {
		o := i * 4
		b := src[o+0]
		g := src[o+1]
		r := src[o+2]
		a := src[o+3]
		dst[o+0] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = a
	}
}

// CompactRows strips the copy-pitch padding from a readback buffer: rows of
// alignedBytesPerRow bytes compact to bytesPerRow bytes each. When the two
// pitches already match, src is returned unchanged.
func CompactRows(src []byte, bytesPerRow, alignedBytesPerRow uint32, rows uint32) []byte {
	if bytesPerRow == alignedBytesPerRow {
		return src
	}
	tight := make([]byte, uint64(bytesPerRow)*uint64(rows))
	for row := uint32(0); row < rows; row++ {
		srcOff := int(row) * int(alignedBytesPerRow)
		dstOff := int(row) * int(bytesPerRow)
		copy(tight[dstOff:dstOff+int(bytesPerRow)], src[srcOff:srcOff+int(bytesPerRow)])
	}
	return tight
}
