package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// NewFile wraps content that did not come from disk.
func NewFile(name string, content []byte) *File {
	return &File{
		Name:    name,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   FileVirtual,
	}
}

// Load reads a file from disk and normalizes CRLF/BOM.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(path, content), nil
}

// FromBytes normalizes CRLF/BOM the same way Load does.
func FromBytes(name string, content []byte) *File {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return &File{
		Name:    name,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	}
}

// Len returns the content length as a span offset.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

// Resolve converts a span into line and column positions.
func (f *File) Resolve(span Span) (start, end LineCol) {
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Slice returns the bytes covered by span, clamped to the content.
func (f *File) Slice(span Span) []byte {
	n := f.Len()
	start, end := min(span.Start, n), min(span.End, n)
	if start > end {
		return nil
	}
	return f.Content[start:end]
}

// GetLine возвращает строку с заданным номером (1-based).
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent := f.Len()

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start > lenContent || start > end {
		return ""
	}
	return string(f.Content[start:end])
}
