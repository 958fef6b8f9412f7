package stage

import (
	"encoding/binary"
	"encoding/hex"
	"os"

	"gitlet/lib"
	"gitlet/lib/lockfile"

	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	HEADER_SIZE = 12
	SIGNATURE   = "STGE"
	VERSION     = 1

	oidSize    = 20
	lengthSize = 4

	// MAX_PATH_SIZE bounds a single entry's path so a damaged length field
	// cannot ask for an arbitrary allocation.
	MAX_PATH_SIZE = 4096
)

// Stage is one persisted path -> blob id mapping. A repository keeps two of
// them: pending additions and pending removals.
type Stage struct {
	fs       billy.Filesystem
	pathname string
	entries  *lib.SortedMap[string]
	changed  bool
	logger   *zap.Logger
}

func NewStage(fs billy.Filesystem, pathname string, logger *zap.Logger) *Stage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stage{
		fs:       fs,
		pathname: pathname,
		entries:  lib.NewSortedMap[string](),
		logger:   logger,
	}
}

// Load replaces the in-memory entries with the persisted ones. A missing
// file is an empty stage.
func (s *Stage) Load() error {
	s.entries.Clear()
	s.changed = false

	file, err := s.fs.Open(s.pathname)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "opening %s", s.pathname)
	}
	defer file.Close()

	reader := NewChecksumReader(file)
	count, err := s.readHeader(reader)
	if err != nil {
		return errors.Wrapf(err, "reading %s", s.pathname)
	}
	if err := s.readEntries(reader, count); err != nil {
		return errors.Wrapf(err, "reading %s", s.pathname)
	}
	if err := reader.VerifyChecksum(); err != nil {
		return errors.Wrapf(err, "reading %s", s.pathname)
	}
	return nil
}

// WriteUpdates persists the entries if anything changed since Load.
func (s *Stage) WriteUpdates() error {
	if !s.changed {
		return nil
	}

	lock := lockfile.NewLockfile(s.fs, s.pathname)
	if err := lock.HoldForUpdate(); err != nil {
		return errors.Wrapf(err, "locking %s", s.pathname)
	}

	if err := s.write(NewChecksumWriter(lock.Lock)); err != nil {
		lock.Rollback()
		return errors.Wrapf(err, "writing %s", s.pathname)
	}
	if err := lock.Commit(); err != nil {
		return errors.Wrapf(err, "writing %s", s.pathname)
	}

	s.logger.Debug("wrote stage", zap.String("path", s.pathname), zap.Int("entries", s.entries.Len()))
	s.changed = false
	return nil
}

func (s *Stage) Set(path, oid string) {
	if current, ok := s.entries.Get(path); ok && current == oid {
		return
	}
	s.entries.Set(path, oid)
	s.changed = true
}

// Delete reports whether the path was staged.
func (s *Stage) Delete(path string) bool {
	if s.entries.Delete(path) {
		s.changed = true
		return true
	}
	return false
}

func (s *Stage) Get(path string) (string, bool) {
	return s.entries.Get(path)
}

func (s *Stage) Has(path string) bool {
	_, ok := s.entries.Get(path)
	return ok
}

// Paths returns the staged paths in sorted order.
func (s *Stage) Paths() []string {
	return append([]string{}, s.entries.Keys...)
}

func (s *Stage) Each(f func(path, oid string)) {
	s.entries.Iterate(f)
}

func (s *Stage) Len() int {
	return s.entries.Len()
}

func (s *Stage) Clear() {
	if s.entries.Len() == 0 {
		return
	}
	s.entries.Clear()
	s.changed = true
}

func (s *Stage) write(writer *Checksum) error {
	header := make([]byte, HEADER_SIZE)
	copy(header[0:4], SIGNATURE)
	binary.BigEndian.PutUint32(header[4:8], VERSION)
	binary.BigEndian.PutUint32(header[8:12], uint32(s.entries.Len()))
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, path := range s.entries.Keys {
		oid, _ := s.entries.Get(path)
		entry, err := packEntry(path, oid)
		if err != nil {
			return err
		}
		if err := writer.Write(entry); err != nil {
			return err
		}
	}
	return writer.WriteChecksum()
}

func (s *Stage) readHeader(reader *Checksum) (int, error) {
	data, err := reader.Read(HEADER_SIZE)
	if err != nil {
		return 0, err
	}

	signature := string(data[:4])
	version := binary.BigEndian.Uint32(data[4:8])
	count := binary.BigEndian.Uint32(data[8:12])

	if signature != SIGNATURE {
		return 0, errors.Errorf("signature: expected '%s' but found '%s'", SIGNATURE, signature)
	}
	if version != VERSION {
		return 0, errors.Errorf("version: expected '%d' but found '%d'", VERSION, version)
	}

	return int(count), nil
}

func (s *Stage) readEntries(reader *Checksum, count int) error {
	for ; count > 0; count-- {
		head, err := reader.Read(oidSize + lengthSize)
		if err != nil {
			return err
		}
		size := binary.BigEndian.Uint32(head[oidSize:])
		if size > MAX_PATH_SIZE {
			return errors.Errorf("corrupt stage: path length %d exceeds %d", size, MAX_PATH_SIZE)
		}
		path, err := reader.Read(int(size))
		if err != nil {
			return err
		}
		s.entries.Set(string(path), hex.EncodeToString(head[:oidSize]))
	}
	return nil
}

// packEntry lays an entry out as the binary id, the path length and the path.
func packEntry(path, oid string) ([]byte, error) {
	raw, err := hex.DecodeString(oid)
	if err != nil || len(raw) != oidSize {
		return nil, errors.Errorf("invalid object id %q for %s", oid, path)
	}
	entry := make([]byte, oidSize+lengthSize, oidSize+lengthSize+len(path))
	copy(entry, raw)
	binary.BigEndian.PutUint32(entry[oidSize:], uint32(len(path)))
	return append(entry, path...), nil
}
