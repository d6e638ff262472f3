// Package netx contains small HTTP wire helpers shared by the API client.
//
// The backend accepts mutating requests either as JSON or as
// multipart/form-data (when file uploads are involved). Form builds the
// latter: plain fields are appended per key, nested objects are serialized
// as JSON strings within form fields, and file parts carry their sniffed
// content type.
package netx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path/filepath"

	"github.com/dmitrijs2005/rentadmin/internal/filex"
)

// Form accumulates multipart/form-data parts. The first error sticks and is
// reported by Close, so callers can chain appends without checking each one.
type Form struct {
	buf bytes.Buffer
	mw  *multipart.Writer
	err error
}

func NewForm() *Form {
	f := &Form{}
	f.mw = multipart.NewWriter(&f.buf)
	return f
}

// Field appends a plain text field.
func (f *Form) Field(name, value string) *Form {
	if f.err != nil {
		return f
	}
	f.err = f.mw.WriteField(name, value)
	return f
}

// JSONField appends a nested object serialized as a JSON string, the way the
// backend expects structured values mixed with file parts.
func (f *Form) JSONField(name string, v any) *Form {
	if f.err != nil {
		return f
	}
	data, err := json.Marshal(v)
	if err != nil {
		f.err = fmt.Errorf("encode field %s: %w", name, err)
		return f
	}
	f.err = f.mw.WriteField(name, string(data))
	return f
}

// File appends a file part read from path. The part's content type is
// sniffed from the file head.
func (f *Form) File(name, path string) *Form {
	if f.err != nil {
		return f
	}

	data, contentType, err := filex.ReadUpload(path)
	if err != nil {
		f.err = err
		return f
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, name, filepath.Base(path)))
	h.Set("Content-Type", contentType)

	part, err := f.mw.CreatePart(h)
	if err != nil {
		f.err = fmt.Errorf("create part %s: %w", name, err)
		return f
	}
	if _, err := part.Write(data); err != nil {
		f.err = fmt.Errorf("write part %s: %w", name, err)
	}
	return f
}

// Close finalizes the form and returns the body together with the boundary-
// qualified content type for the request header.
func (f *Form) Close() (*bytes.Buffer, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if err := f.mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &f.buf, f.mw.FormDataContentType(), nil
}
