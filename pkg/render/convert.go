package render

import (
	"bytes"
	"os/exec"
	"strings"

	rgerrors "github.com/matzehuels/runegrid/pkg/errors"
)

const rsvgBinary = "rsvg-convert"

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// CanConvert reports whether rsvg-convert is on PATH.
func CanConvert() bool {
	_, err := lookPath(rsvgBinary)
	return err == nil
}

// ToPDF converts SVG bytes to PDF using rsvg-convert.
func ToPDF(svg []byte) ([]byte, error) {
	if len(svg) == 0 {
		return nil, rgerrors.New(rgerrors.ErrCodeInvalidInput, "pdf: empty svg input")
	}
	return rsvgConvert(svg, "pdf")
}

func rsvgConvert(svg []byte, format string) ([]byte, error) {
	bin, err := lookPath(rsvgBinary)
	if err != nil {
		return nil, rgerrors.Wrap(rgerrors.ErrCodeInvalidFormat, err,
			"%s export needs librsvg (brew install librsvg, apt install librsvg2-bin)", format)
	}

	cmd := exec.Command(bin, "-f", format)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, rgerrors.Wrap(rgerrors.ErrCodeInternal, err, "%s: %s", rsvgBinary, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
