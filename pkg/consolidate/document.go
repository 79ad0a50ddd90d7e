package consolidate

import "bytes"

// Document is the append-only buffer that becomes the output file. Each file is
// written as "<header>\n\n<content>\n\n".
type Document struct {
	buf   bytes.Buffer
	files int
}

// Append writes one file block.
func (d *Document) Append(e FileEntry) {
	d.buf.WriteString(Header(e.Path))
	d.buf.WriteString("\n\n")
	d.buf.Write(e.Content)
	d.buf.WriteString("\n\n")
	d.files++
}

// Bytes returns the assembled document. The slice aliases the buffer.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Len returns the document size in bytes.
func (d *Document) Len() int {
	return d.buf.Len()
}

// Files returns the number of blocks appended.
func (d *Document) Files() int {
	return d.files
}

// Render assembles entries in the given order.
func Render(entries []FileEntry) []byte {
	var d Document
	for _, e := range entries {
		d.Append(e)
	}
	return d.Bytes()
}
