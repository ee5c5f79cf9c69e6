package materialize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// prettyOptions keeps arrays expanded one element per line.
var prettyOptions = &pretty.Options{Indent: "  "}

// ensureDisplayName guarantees that the top-level field of the JSON file at
// rel equals value. Key order and every other value are preserved; the file
// is rewritten with 2-space indentation only when the field changes.
func ensureDisplayName(root, rel, field, value string) Outcome {
	o := Outcome{Phase: PhaseAppManifest, Path: rel}

	path := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.Kind = KindFileSubstitutionSkipped
			o.Message = "not present"
			return o
		}
		return skippedPatch(o, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return skippedPatch(o, err)
	}

	if !gjson.ValidBytes(data) {
		return skippedPatch(o, fmt.Errorf("parsing JSON: %s is not valid JSON", rel))
	}
	if !gjson.ParseBytes(data).IsObject() {
		return skippedPatch(o, fmt.Errorf("parsing JSON: top-level value is not an object"))
	}

	key := gjson.Escape(field)
	if current := gjson.GetBytes(data, key); current.Type == gjson.String && current.Str == value {
		o.Kind = KindUnchanged
		o.Message = fmt.Sprintf("%s already set", field)
		return o
	}

	encoded, err := marshalString(value)
	if err != nil {
		return skippedPatch(o, err)
	}
	patched, err := sjson.SetRawBytes(data, key, encoded)
	if err != nil {
		return skippedPatch(o, fmt.Errorf("setting %s: %w", field, err))
	}

	if err := os.WriteFile(path, pretty.PrettyOptions(patched, prettyOptions), info.Mode().Perm()); err != nil {
		return skippedPatch(o, err)
	}

	o.Kind = KindApplied
	o.Message = fmt.Sprintf("%s set to %q", field, value)
	return o
}

func skippedPatch(o Outcome, err error) Outcome {
	o.Kind = KindManifestPatchSkipped
	o.Message = err.Error()
	o.Err = err
	return o
}

// marshalString encodes s without HTML escaping, which sjson would apply
// to any string outside printable ASCII.
func marshalString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
