package apiclient

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
)

// Multipart is a form-data body. Field order is preserved and keys may
// repeat (colors[], sizes[]).
type Multipart struct {
	fields []formField
	files  []File
}

type formField struct {
	key, value string
}

type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

func (m *Multipart) Add(key, value string) {
	m.fields = append(m.fields, formField{key: key, value: value})
}

func (m *Multipart) AddFile(f File) {
	m.files = append(m.files, f)
}

// Values returns every value sent for key.
func (m *Multipart) Values(key string) []string {
	var out []string
	for _, f := range m.fields {
		if f.key == key {
			out = append(out, f.value)
		}
	}
	return out
}

func (m *Multipart) Files() []File { return m.files }

func (m *Multipart) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range m.fields {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, "", err
		}
	}
	for _, f := range m.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Name+`"`)
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
