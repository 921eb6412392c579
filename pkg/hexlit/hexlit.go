// Package hexlit renders raw bytes as a C array-initializer fragment.
package hexlit

import (
	"bufio"
	"io"
	"strings"
)

const (
	hexDigits = "0123456789ABCDEF"
	separator = ", "
)

// Encode returns data as comma-separated 0xHH tokens followed by a newline.
// An empty slice yields just the newline.
func Encode(data []byte) string {
	var b strings.Builder
	if len(data) > 0 {
		b.Grow(len(data)*(4+len(separator)) + 1)
	}
	// strings.Builder never returns a write error
	_ = encode(&b, data)
	return b.String()
}

// Write streams the encoding of data to w.
func Write(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)
	if err := encode(bw, data); err != nil {
		return err
	}
	return bw.Flush()
}

type byteWriter interface {
	io.ByteWriter
	io.StringWriter
}

func encode(w byteWriter, data []byte) error {
	for i, c := range data {
		if i > 0 {
			if _, err := w.WriteString(separator); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("0x"); err != nil {
			return err
		}
		if err := w.WriteByte(hexDigits[c>>4]); err != nil {
			return err
		}
		if err := w.WriteByte(hexDigits[c&0x0F]); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
