package journal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Entry is one accepted player action.
type Entry struct {
	Time   time.Time       `json:"time"`
	Player string          `json:"player"`
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Journal appends entries as zstd-compressed JSON lines. Each Record flushes
// through to the file.
type Journal struct {
	path string
	now  func() time.Time

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}

	return &Journal{
		path: path,
		now:  time.Now,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 32*1024),
	}, nil
}

// Record appends one entry.
func (j *Journal) Record(_ context.Context, playerID, action string, data json.RawMessage) error {
	b, err := json.Marshal(Entry{Time: j.now().UTC(), Player: playerID, Action: action, Data: data})
	if err != nil {
		return fmt.Errorf("encoding journal entry: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.w == nil {
		return fmt.Errorf("journal closed")
	}

	if _, err := j.w.Write(b); err != nil {
		return err
	}
	if err := j.w.WriteByte('\n'); err != nil {
		return err
	}
	if err := j.w.Flush(); err != nil {
		return err
	}
	return j.enc.Flush()
}

// Start keeps the journal open until ctx ends.
func (j *Journal) Start(ctx context.Context) error {
	<-ctx.Done()
	return j.Close()
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.w == nil {
		return nil
	}
	_ = j.w.Flush()
	err := j.enc.Close()
	if cerr := j.f.Close(); err == nil {
		err = cerr
	}
	j.w, j.enc, j.f = nil, nil, nil
	return err
}

// Read decodes every entry in a journal file.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer dec.Close()

	var entries []Entry
	jd := json.NewDecoder(dec)
	for {
		var e Entry
		if err := jd.Decode(&e); err == io.EOF {
			break
		} else if err != nil {
			return entries, fmt.Errorf("decoding journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
