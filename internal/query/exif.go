package query

import (
	"bytes"
	"fmt"
	"time"

	"github.com/msvens/pfolio/internal/api"
	"github.com/rwcarlsen/goexif/exif"
)

// exifFromImage reads exif data out of the image bytes. Missing tags
// are simply skipped, a photo without exif is still a valid upload.
// The second return value is the capture time in RFC 3339, empty when
// the image carries no date
func exifFromImage(data []byte) (*api.Exif, string) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ""
	}
	var e api.Exif
	if tag, err := x.Get(exif.Model); err == nil {
		if val, err := tag.StringVal(); err == nil {
			e.Camera = val
		}
	}
	if tag, err := x.Get(exif.LensModel); err == nil {
		if val, err := tag.StringVal(); err == nil {
			e.Lens = val
		}
	}
	if tag, err := x.Get(exif.FNumber); err == nil {
		if rat, err := tag.Rat(0); err == nil && rat.Denom().Int64() != 0 {
			f := float64(rat.Num().Int64()) / float64(rat.Denom().Int64())
			e.Aperture = fmt.Sprintf("f/%.1f", f)
		}
	}
	if tag, err := x.Get(exif.ExposureTime); err == nil {
		if rat, err := tag.Rat(0); err == nil {
			num, denom := rat.Num().Int64(), rat.Denom().Int64()
			switch {
			case denom == 1:
				e.Shutter = fmt.Sprintf("%ds", num)
			case num == 1:
				e.Shutter = fmt.Sprintf("1/%ds", denom)
			default:
				e.Shutter = fmt.Sprintf("%d/%ds", num, denom)
			}
		}
	}
	if tag, err := x.Get(exif.ISOSpeedRatings); err == nil {
		if val, err := tag.Int(0); err == nil {
			e.Iso = val
		}
	}
	capturedAt := ""
	if tm, err := x.DateTime(); err == nil {
		capturedAt = tm.UTC().Format(time.RFC3339)
	}
	if e == (api.Exif{}) {
		return nil, capturedAt
	}
	return &e, capturedAt
}
