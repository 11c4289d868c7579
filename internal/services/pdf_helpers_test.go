package services

import (
	"bytes"
	"fmt"
	"strings"
)

// buildTestPDF writes a minimal well-formed PDF with the given number of
// blank 200x200pt pages.
func buildTestPDF(pages int) []byte {
	var buf bytes.Buffer

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages),
	}
	for i := 0; i < pages; i++ {
		objects = append(objects, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] >>")
	}

	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for i, obj := range objects {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n", len(objects)+1, xref)
	buf.WriteString("%%EOF\n")

	return buf.Bytes()
}

// shiftedXrefPDF inserts a comment line after the header so every
// cross-reference offset points a few bytes short of its object.
func shiftedXrefPDF() []byte {
	valid := buildTestPDF(1)
	header := []byte("%PDF-1.4\n")
	return append(append(append([]byte{}, header...), []byte("% resume export\n")...), valid[len(header):]...)
}
