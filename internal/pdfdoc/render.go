package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// ErrRendererNotFound is returned when pdftoppm is not installed.
// OCR assist requires poppler-utils; everything else works without it.
var ErrRendererNotFound = errors.New("pdftoppm not found: install poppler-utils")

// renderPage rasterizes one page (1-indexed) to a PNG at the given DPI
// by shelling out to pdftoppm. With no output root argument pdftoppm
// writes the image to stdout.
func renderPage(path string, pageNum, dpi int) ([]byte, error) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return nil, ErrRendererNotFound
	}

	cmd := exec.Command("pdftoppm",
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", strconv.Itoa(pageNum),
		"-l", strconv.Itoa(pageNum),
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm page %d of %s: %w (%s)",
			pageNum, path, err, bytes.TrimSpace(stderr.Bytes()))
	}

	if stdout.Len() == 0 {
		return nil, fmt.Errorf("pdftoppm page %d of %s: empty output", pageNum, path)
	}
	return stdout.Bytes(), nil
}
