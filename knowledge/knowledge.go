package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/cespare/xxhash"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Fact holds a single piece of information about one topic of a crop.
// It is either a scalar text value or a list of items, never both.
type Fact struct {
	Text  string
	Items []string
}

// ErrInvalidFact is returned when a fact in the knowledge file is neither
// a string nor a list of strings.
var ErrInvalidFact = errors.New("fact must be a string or a list of strings")

// UnmarshalJSON decodes a fact from either a JSON string or a JSON array
// of strings. Any other shape is rejected at load time.
func (f *Fact) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		f.Text = text
		f.Items = nil
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		f.Text = ""
		f.Items = items
		return nil
	}

	return ErrInvalidFact
}

// IsList reports whether the fact is a list of items rather than a scalar.
// An empty list still counts as a list.
func (f Fact) IsList() bool {
	return f.Items != nil
}

// Record maps topic names to the facts known for a single crop.
type Record map[string]Fact

// Base is an in-memory knowledge base keyed by crop name. Crops iterate in
// the order they appear in the source file, which drives detection priority,
// so the underlying container preserves insertion order.
type Base struct {
	crops       *orderedmap.OrderedMap[string, Record]
	fingerprint uint64
}

// Empty returns a usable knowledge base with no crops in it.
func Empty() *Base {
	return &Base{
		crops: orderedmap.New[string, Record](),
	}
}

// Load reads the knowledge file at path and returns the parsed base.
// A missing file is not an error, it yields an empty base so the service
// can start before any data has been provisioned. Malformed content is
// an error.
func Load(path string, logger *slog.Logger) (*Base, error) {
	logger = logger.With(
		slog.String("package", "knowledge"),
		slog.String("function", "Load"),
	)

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Knowledge file not found, starting with an empty base", "path", path)
			return Empty(), nil
		}
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}

	crops := orderedmap.New[string, Record]()
	if err := json.Unmarshal(raw, crops); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file %s: %w", path, err)
	}

	base := &Base{
		crops:       crops,
		fingerprint: xxhash.Sum64(raw),
	}

	logger.Info("Loaded knowledge base",
		"path", path,
		"crops", base.Len(),
		"fingerprint", base.Fingerprint())

	return base, nil
}

// Crops returns the crop names in file order. The slice is never nil.
func (b *Base) Crops() []string {
	names := make([]string, 0, b.crops.Len())
	for pair := b.crops.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Record returns the facts for the named crop. The name must match the
// file key exactly, lookups are case sensitive.
func (b *Base) Record(name string) (Record, bool) {
	rec, ok := b.crops.Get(name)
	return rec, ok
}

// Len returns the number of crops in the base.
func (b *Base) Len() int {
	return b.crops.Len()
}

// Fingerprint returns a hash of the raw bytes the base was loaded from,
// or zero for an empty base. It identifies the data revision in logs.
func (b *Base) Fingerprint() uint64 {
	return b.fingerprint
}
