package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"plp-bookstore/internal/catalog"
)

// Transcript writes the human-readable console log of a catalog run.
type Transcript struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{w: w}
}

func (t *Transcript) Connected() {
	t.printf("Connected to MongoDB\n")
}

func (t *Transcript) Closed() {
	t.printf("\nConnection closed\n")
}

// Result is shaped to be used as a catalog.Runner hook.
func (t *Transcript) Result(_ context.Context, res catalog.Result) {
	if res.Err != nil {
		t.printf("\nError: %v\n", res.Err)
		return
	}
	t.printf("\n%s: %s\n", res.Step, Render(res.Value))
}

func (t *Transcript) Error(err error) {
	t.printf("\nError: %v\n", err)
}

func (t *Transcript) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, format, args...)
}

// Render formats a step value. Counters print as sentences, plan documents as
// indented extended JSON and everything else as indented JSON.
func Render(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bson.D:
		out, err := bson.MarshalExtJSONIndent(val, false, false, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return "\n" + string(out)
	case fmt.Stringer:
		return val.String()
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
