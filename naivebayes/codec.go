package naivebayes

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitegraph"
)

// magic identifies a serialized model, including the format version.
var magic = [8]byte{'s', 'g', 'n', 'b', 0, 0, 0, 1}

// Save writes the model as a header (magic, payload checksum) followed by
// the gob-encoded model.
func (m *Model) Save(w io.Writer) error {
	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(m); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	var header [16]byte
	copy(header[:8], magic[:])
	binary.BigEndian.PutUint64(header[8:], xxhash.Sum64(payload.Bytes()))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write model header: %w", err)
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

// Load reads a model written by Save, rejecting foreign, corrupt or
// inconsistent data.
func Load(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	if len(data) < 16 || !bytes.Equal(data[:8], magic[:]) {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "not a model file")
	}
	payload := data[16:]
	if binary.BigEndian.Uint64(data[8:16]) != xxhash.Sum64(payload) {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "model checksum mismatch")
	}

	var m Model
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&m); err != nil {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "decode model: %v", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Classes) == 0 {
		return sitegraph.Errorf(sitegraph.EINVALID, "model has no classes")
	}
	v := len(m.Vocabulary)
	if len(m.IDF) != v || len(m.ClassLogPrior) != len(m.Classes) || len(m.FeatureLogProb) != len(m.Classes) {
		return sitegraph.Errorf(sitegraph.EINVALID, "model dimensions are inconsistent")
	}
	for _, row := range m.FeatureLogProb {
		if len(row) != v {
			return sitegraph.Errorf(sitegraph.EINVALID, "model dimensions are inconsistent")
		}
	}
	for _, t := range m.Vocabulary {
		if t < 0 || t >= v {
			return sitegraph.Errorf(sitegraph.EINVALID, "model vocabulary index out of range")
		}
	}
	return nil
}
