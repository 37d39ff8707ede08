// Package export renders the session transcript into a paginated PDF,
// entirely on the client.
package export

import (
	"image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/dharmaretainer/AryaAI/internal/configuration"
	"github.com/dharmaretainer/AryaAI/internal/session"
)

// OutputFilename is the fixed name of the exported document.
const OutputFilename = "AryaAI_travel_plan.pdf"

const documentTitle = "AI Travel Plan"

// Exporter turns a transcript into a downloadable PDF.
type Exporter struct {
	directory   string
	stagingRoot string
	rasterize   Rasterizer
}

// NewExporter builds an exporter writing into the configured directory.
func NewExporter(config *configuration.ExportConfig) *Exporter {
	directory := "."
	if config != nil && config.Directory != "" {
		directory = config.Directory
	}
	return &Exporter{
		directory:   directory,
		stagingRoot: os.TempDir(),
		rasterize:   rasterize,
	}
}

// Export renders the full transcript off-screen, rasterizes it, and emits a
// paginated A4 document. The staging area is removed on every path,
// including rasterization failure.
func (e *Exporter) Export(messages []session.Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("transcript is empty")
	}

	staging, err := os.MkdirTemp(e.stagingRoot, "aryaai-export-")
	if err != nil {
		return "", errors.Wrap(err, "creating staging directory")
	}
	defer os.RemoveAll(staging)

	img, err := e.rasterize(layoutTranscript(messages))
	if err != nil {
		return "", errors.Wrap(err, "rasterizing transcript")
	}

	rasterPath := filepath.Join(staging, "render.png")
	rasterFile, err := os.Create(rasterPath)
	if err != nil {
		return "", errors.Wrap(err, "creating raster file")
	}
	if err := png.Encode(rasterFile, img); err != nil {
		rasterFile.Close()
		return "", errors.Wrap(err, "encoding raster")
	}
	if err := rasterFile.Close(); err != nil {
		return "", errors.Wrap(err, "closing raster file")
	}

	bounds := img.Bounds()
	imageWidth, imageHeight, offsets := paginate(bounds.Dx(), bounds.Dy())

	pdf := gofpdf.New("P", "mm", "A4", "")
	options := gofpdf.ImageOptions{ImageType: "PNG"}
	for _, offset := range offsets {
		pdf.AddPage()
		pdf.ImageOptions(rasterPath, pageMargin, offset, imageWidth, imageHeight, false, options, 0, "")
	}

	outputPath := filepath.Join(e.directory, OutputFilename)
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", errors.Wrap(err, "writing document")
	}
	return outputPath, nil
}

// layoutTranscript produces the fixed-width print layout: a title, then each
// message under a resolved sender label, with preserved line breaks.
func layoutTranscript(messages []session.Message) []string {
	lines := []string{documentTitle, ""}
	for _, message := range messages {
		lines = append(lines, labelFor(message.Sender)+":")
		lines = append(lines, wrapText(message.Text)...)
		lines = append(lines, "")
	}
	return lines
}

func labelFor(sender session.Sender) string {
	if sender == session.SenderUser {
		return "You"
	}
	return "AI"
}
