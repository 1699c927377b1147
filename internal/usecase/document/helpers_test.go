package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/uuid"
)

// samplePDF builds a minimal but well-formed PDF with the given number of
// pages, computing the xref offsets as it goes.
func samplePDF(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int

	buf.WriteString("%PDF-1.4\n")

	offsets = append(offsets, buf.Len())
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	offsets = append(offsets, buf.Len())
	fmt.Fprintf(&buf, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), pages)

	for i := 0; i < pages; i++ {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n", 3+i)
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefPos)

	return buf.Bytes()
}

func testDocumentID() uuid.UUID {
	id, _ := uuid.Parse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	return id
}

func newStoredDocument() *model.Document {
	return &model.Document{
		ID:          testDocumentID(),
		Title:       "Course notes",
		Path:        "documents/" + testDocumentID().String() + ".pdf",
		SizeBytes:   1024,
		ContentType: ContentTypePDF,
		PageCount:   4,
	}
}
