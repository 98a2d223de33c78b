package encode

import (
	"encoding/binary"
	"fmt"
)

// JPEG marker codes used by InspectJPEG.
const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerTEM  = 0x01
	markerRST0 = 0xD0
	markerRST7 = 0xD7
	markerDHT  = 0xC4
	markerJPG  = 0xC8
	markerDAC  = 0xCC
)

// JPEGInfo describes the frame header of a JPEG stream.
type JPEGInfo struct {
	Width       int  `json:"width" yaml:"width"`
	Height      int  `json:"height" yaml:"height"`
	Components  int  `json:"components" yaml:"components"`
	Precision   int  `json:"precision" yaml:"precision"`
	Progressive bool `json:"progressive" yaml:"progressive"`
	// SOF is the frame marker, e.g. 0xC0 for baseline or 0xC2 for progressive.
	SOF byte `json:"sof" yaml:"sof"`
}

// ColorSpace names the usual color space for the component count.
func (i *JPEGInfo) ColorSpace() string {
	switch i.Components {
	case 1:
		return "Grayscale"
	case 3:
		return "YCbCr"
	case 4:
		return "CMYK"
	default:
		return fmt.Sprintf("components(%d)", i.Components)
	}
}

// InspectJPEG reads JPEG metadata from the frame header without decoding the image.
func InspectJPEG(data []byte) (*JPEGInfo, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, fmt.Errorf("not a jpeg: missing SOI marker")
	}

	pos := 2
	for pos < len(data) {
		if data[pos] != 0xFF {
			return nil, fmt.Errorf("invalid marker at offset %d", pos)
		}
		// Any number of 0xFF fill bytes may precede a marker code.
		for pos < len(data) && data[pos] == 0xFF {
			pos++
		}
		if pos >= len(data) {
			break
		}
		marker := data[pos]
		pos++

		switch {
		case marker == markerTEM, marker >= markerRST0 && marker <= markerRST7:
			continue
		case marker == markerEOI, marker == markerSOS:
			return nil, fmt.Errorf("no frame header before marker 0x%02X", marker)
		}

		if pos+2 > len(data) {
			return nil, fmt.Errorf("truncated segment 0x%02X", marker)
		}
		length := int(binary.BigEndian.Uint16(data[pos:]))
		if length < 2 || pos+length > len(data) {
			return nil, fmt.Errorf("invalid length %d for segment 0x%02X", length, marker)
		}

		if isSOF(marker) {
			seg := data[pos+2 : pos+length]
			if len(seg) < 6 {
				return nil, fmt.Errorf("truncated frame header")
			}
			return &JPEGInfo{
				Precision:   int(seg[0]),
				Height:      int(binary.BigEndian.Uint16(seg[1:])),
				Width:       int(binary.BigEndian.Uint16(seg[3:])),
				Components:  int(seg[5]),
				Progressive: marker == 0xC2 || marker == 0xC6 || marker == 0xCA || marker == 0xCE,
				SOF:         marker,
			}, nil
		}
		pos += length
	}
	return nil, fmt.Errorf("no frame header found")
}

func isSOF(marker byte) bool {
	return marker >= 0xC0 && marker <= 0xCF &&
		marker != markerDHT && marker != markerJPG && marker != markerDAC
}
