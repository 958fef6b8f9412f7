package stage

import (
	"bytes"
	"crypto/sha1"
	"hash"
	"io"

	"github.com/pkg/errors"
)

const (
	CHECKSUM_SIZE = 20
)

type Checksum struct {
	reader io.Reader
	writer io.Writer
	digest hash.Hash
}

func NewChecksumReader(reader io.Reader) *Checksum {
	return &Checksum{
		reader: reader,
		digest: sha1.New(),
	}
}

func NewChecksumWriter(writer io.Writer) *Checksum {
	return &Checksum{
		writer: writer,
		digest: sha1.New(),
	}
}

func (c *Checksum) Write(data []byte) error {
	if _, err := c.writer.Write(data); err != nil {
		return err
	}
	c.digest.Write(data)
	return nil
}

func (c *Checksum) WriteChecksum() error {
	_, err := c.writer.Write(c.digest.Sum(nil))
	return err
}

func (c *Checksum) Read(size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(c.reader, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.New("unexpected end-of-file while reading stage")
		}
		return nil, err
	}
	c.digest.Write(data)

	return data, nil
}

func (c *Checksum) VerifyChecksum() error {
	data := make([]byte, CHECKSUM_SIZE)
	if _, err := io.ReadFull(c.reader, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.New("unexpected end-of-file while reading stage")
		}
		return err
	}
	if !bytes.Equal(data, c.digest.Sum(nil)) {
		return errors.New("checksum does not match value stored on disk")
	}

	return nil
}
