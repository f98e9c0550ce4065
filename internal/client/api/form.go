package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// Field is one part of a multipart payload. Exactly two variants exist,
// Text and File; serialization is driven by the variant, never by runtime
// inspection of the value.
type Field interface {
	write(mw *multipart.Writer) error
}

// Text is a plain form field. Non-string values (booleans, numbers) are
// rendered to their string form by the caller before reaching the gateway.
type Text struct {
	Name  string
	Value string
}

func (f Text) write(mw *multipart.Writer) error {
	return mw.WriteField(f.Name, f.Value)
}

// File is a file-bearing form field.
type File struct {
	Name        string
	FileName    string
	ContentType string
	Data        []byte
}

func (f File) write(mw *multipart.Writer) error {
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Name, f.FileName))
	h.Set("Content-Type", ct)

	w, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = w.Write(f.Data)
	return err
}

// encodeForm renders fields into a multipart body. The returned content type
// carries the writer-chosen boundary; callers must use it verbatim and must
// not substitute a JSON content type.
func encodeForm(fields []Field) (string, *bytes.Buffer, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := f.write(mw); err != nil {
			return "", nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return "", nil, err
	}
	return mw.FormDataContentType(), &buf, nil
}
