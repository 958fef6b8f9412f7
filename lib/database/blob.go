package database

import (
	"bytes"

	"github.com/pkg/errors"
)

// Blob is the content of one file at one path. The path is part of the
// hashed body, so equal bytes under different paths get different ids.
type Blob struct {
	oid  string
	path string
	data []byte
}

func NewBlob(path string, data []byte) *Blob {
	return &Blob{
		path: path,
		data: data,
	}
}

func ParseBlob(body []byte) (*Blob, error) {
	i := bytes.IndexByte(body, 0)
	if i < 0 {
		return nil, errors.New("blob has no path separator")
	}
	return NewBlob(string(body[:i]), body[i+1:]), nil
}

func (b *Blob) Type() string {
	return "blob"
}

func (b *Blob) String() string {
	return b.path + "\x00" + string(b.data)
}

func (b *Blob) Oid() string {
	return b.oid
}

func (b *Blob) SetOid(oid string) {
	b.oid = oid
}

func (b *Blob) Path() string {
	return b.path
}

func (b *Blob) Data() []byte {
	return b.data
}
