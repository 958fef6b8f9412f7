package database

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrObjectNotFound = errors.New("object not found")

type Database struct {
	fs       billy.Filesystem
	pathname string
	objects  map[string]GitObject
	logger   *zap.Logger
}

type GitObject interface {
	Oid() string
	SetOid(string)
	Type() string
	String() string
}

func NewDatabase(fs billy.Filesystem, pathname string, logger *zap.Logger) *Database {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Database{
		fs:       fs,
		pathname: pathname,
		objects:  map[string]GitObject{},
		logger:   logger,
	}
}

// Store writes the object under its content id. Storing an object that
// already exists leaves the existing file alone.
func (d *Database) Store(object GitObject) error {
	cont := serializeObject(object)
	oid := hashContent(cont)
	object.SetOid(oid)

	if err := d.writeObject(oid, cont); err != nil {
		return errors.Wrapf(err, "storing %s %s", object.Type(), oid)
	}
	d.objects[oid] = object
	return nil
}

func (d *Database) Load(oid string) (GitObject, error) {
	if obj, exists := d.objects[oid]; exists {
		return obj, nil
	}
	obj, err := d.readObject(oid)
	if err != nil {
		return nil, err
	}
	d.objects[oid] = obj

	return obj, nil
}

func (d *Database) LoadCommit(oid string) (*Commit, error) {
	obj, err := d.Load(oid)
	if err != nil {
		return nil, err
	}
	commit, ok := obj.(*Commit)
	if !ok {
		return nil, errors.Errorf("object %s is a %s, not a commit", oid, obj.Type())
	}
	return commit, nil
}

func (d *Database) LoadBlob(oid string) (*Blob, error) {
	obj, err := d.Load(oid)
	if err != nil {
		return nil, err
	}
	blob, ok := obj.(*Blob)
	if !ok {
		return nil, errors.Errorf("object %s is a %s, not a blob", oid, obj.Type())
	}
	return blob, nil
}

func (d *Database) Exists(oid string) bool {
	if _, ok := d.objects[oid]; ok {
		return true
	}
	_, err := d.fs.Stat(d.objectPath(oid))
	return err == nil
}

func (d *Database) HashObject(object GitObject) string {
	return hashContent(serializeObject(object))
}

func ShortOid(oid string) string {
	if len(oid) < 7 {
		return oid
	}
	return oid[:7]
}

func (d *Database) PrefixMatch(name string) ([]string, error) {
	oids, err := d.listOids()
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, oid := range oids {
		if strings.HasPrefix(oid, name) {
			matches = append(matches, oid)
		}
	}
	return matches, nil
}

// Commits returns every commit in the store. Only object headers are read
// to tell commits apart from blobs.
func (d *Database) Commits() ([]*Commit, error) {
	oids, err := d.listOids()
	if err != nil {
		return nil, err
	}

	var commits []*Commit
	for _, oid := range oids {
		objectType, err := d.ObjectType(oid)
		if err != nil {
			return nil, err
		}
		if objectType != "commit" {
			continue
		}
		commit, err := d.LoadCommit(oid)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

func (d *Database) ObjectType(oid string) (string, error) {
	if obj, ok := d.objects[oid]; ok {
		return obj.Type(), nil
	}

	file, err := d.fs.Open(d.objectPath(oid))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(ErrObjectNotFound, oid)
		}
		return "", errors.Wrapf(err, "opening object %s", oid)
	}
	defer file.Close()

	zr, err := zlib.NewReader(file)
	if err != nil {
		return "", errors.Wrapf(err, "corrupt object %s", oid)
	}
	defer zr.Close()

	objectType, _, err := readHeader(bufio.NewReader(zr))
	if err != nil {
		return "", errors.Wrapf(err, "corrupt object %s", oid)
	}
	return objectType, nil
}

func (d *Database) listOids() ([]string, error) {
	files, err := d.fs.ReadDir(d.pathname)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrap(err, "listing objects")
	}

	oids := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || len(file.Name()) != 40 {
			continue
		}
		oids = append(oids, file.Name())
	}
	sort.Strings(oids)
	return oids, nil
}

func serializeObject(object GitObject) []byte {
	data := []byte(object.String())
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %d\x00", object.Type(), len(data))
	buf.Write(data)
	return buf.Bytes()
}

func hashContent(content []byte) string {
	return fmt.Sprintf("%x", sha1.Sum(content))
}

func (d *Database) objectPath(oid string) string {
	return path.Join(d.pathname, oid)
}

func (d *Database) writeObject(oid string, content []byte) error {
	objectPath := d.objectPath(oid)

	if _, err := d.fs.Stat(objectPath); err == nil {
		return nil
	}

	if err := d.fs.MkdirAll(d.pathname, os.ModePerm); err != nil {
		return err
	}

	file, err := d.fs.TempFile(d.pathname, "tmp_obj_")
	if err != nil {
		return err
	}
	defer file.Close()

	compressor, err := zlib.NewWriterLevel(file, zlib.BestSpeed)
	if err != nil {
		return err
	}
	if _, err := compressor.Write(content); err != nil {
		return err
	}
	if err := compressor.Close(); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	if err := d.fs.Rename(file.Name(), objectPath); err != nil {
		return err
	}
	d.logger.Debug("wrote object", zap.String("oid", oid), zap.Int("size", len(content)))
	return nil
}

func (d *Database) readObject(oid string) (GitObject, error) {
	data, err := util.ReadFile(d.fs, d.objectPath(oid))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrObjectNotFound, oid)
		}
		return nil, errors.Wrapf(err, "reading object %s", oid)
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt object %s", oid)
	}
	defer zr.Close()

	bufReader := bufio.NewReader(zr)
	objectType, size, err := readHeader(bufReader)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt object %s", oid)
	}

	body, err := io.ReadAll(bufReader)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt object %s", oid)
	}
	if len(body) != size {
		return nil, errors.Errorf("corrupt object %s: want %d bytes, but got %d", oid, size, len(body))
	}

	var object GitObject
	switch objectType {
	case "blob":
		object, err = ParseBlob(body)
	case "commit":
		object, err = ParseCommit(bufio.NewReader(bytes.NewReader(body)))
	default:
		return nil, errors.Errorf("unrecognized object type: %s", objectType)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt object %s", oid)
	}

	object.SetOid(oid)

	return object, nil
}

func readHeader(reader *bufio.Reader) (string, int, error) {
	line, err := reader.ReadString(' ')
	if err != nil {
		return "", 0, err
	}
	objectType := strings.TrimSpace(line)

	sizeText, err := reader.ReadString(0)
	if err != nil {
		return "", 0, err
	}
	var size int
	if _, err := fmt.Sscanf(strings.TrimRight(sizeText, "\x00"), "%d", &size); err != nil {
		return "", 0, err
	}
	return objectType, size, nil
}
