package export

// A4 portrait geometry, in millimeters.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 10.0
)

// paginate scales a raster of the given pixel dimensions to the page's
// printable width and computes the vertical offset of the image on each
// page. The same image is placed on every page; continuation pages use a
// negative offset so the visible slices join into one continuous document.
func paginate(rasterWidth, rasterHeight int) (imageWidth, imageHeight float64, offsets []float64) {
	if rasterWidth <= 0 || rasterHeight <= 0 {
		return 0, 0, nil
	}

	imageWidth = pageWidth - 2*pageMargin
	imageHeight = float64(rasterHeight) * imageWidth / float64(rasterWidth)

	heightLeft := imageHeight
	offsets = append(offsets, pageMargin)
	heightLeft -= pageHeight
	for heightLeft > 0 {
		offsets = append(offsets, heightLeft-imageHeight)
		heightLeft -= pageHeight
	}
	return imageWidth, imageHeight, offsets
}
