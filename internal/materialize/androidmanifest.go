package materialize

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const manifestElement = "manifest"

// ensurePackageAttr adds package="<bundleID>" to the root manifest element of
// the XML file at rel unless some element already carries a package
// attribute. Only the bytes of the root start tag change.
func ensurePackageAttr(root, rel, bundleID string) Outcome {
	o := Outcome{Phase: PhaseAndroidManifest, Path: rel}

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

	patched, changed, err := injectPackageAttr(data, bundleID)
	if err != nil {
		return skippedPatch(o, err)
	}
	if !changed {
		o.Kind = KindUnchanged
		o.Message = "package attribute already present"
		return o
	}

	if err := os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
		return skippedPatch(o, err)
	}

	o.Kind = KindApplied
	o.Message = fmt.Sprintf("package=%q", bundleID)
	return o
}

// injectPackageAttr returns data with the attribute inserted into the root
// start tag. changed is false when a package attribute already exists.
// The whole document must be well-formed.
func injectPackageAttr(data []byte, bundleID string) (out []byte, changed bool, err error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	rootEnd := int64(-1)
	hasPackage := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("parsing XML: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if rootEnd < 0 {
			if se.Name.Local != manifestElement {
				return nil, false, fmt.Errorf("root element is <%s>, expected <%s>", se.Name.Local, manifestElement)
			}
			rootEnd = dec.InputOffset()
		}
		for _, a := range se.Attr {
			if a.Name.Space == "" && a.Name.Local == "package" {
				hasPackage = true
			}
		}
	}

	if rootEnd < 0 {
		return nil, false, fmt.Errorf("no <%s> element found", manifestElement)
	}
	if hasPackage {
		return data, false, nil
	}

	pos, err := attrInsertPos(data, int(rootEnd))
	if err != nil {
		return nil, false, err
	}

	var attr bytes.Buffer
	attr.WriteString(` package="`)
	if err := xml.EscapeText(&attr, []byte(bundleID)); err != nil {
		return nil, false, err
	}
	attr.WriteByte('"')

	out = make([]byte, 0, len(data)+attr.Len())
	out = append(out, data[:pos]...)
	out = append(out, attr.Bytes()...)
	out = append(out, data[pos:]...)
	return out, true, nil
}

// attrInsertPos finds where a new attribute goes in the start tag that ends
// just before end: after the last attribute, ahead of any whitespace and the
// closing ">" or "/>".
func attrInsertPos(data []byte, end int) (int, error) {
	if end < 1 || end > len(data) || data[end-1] != '>' {
		return 0, fmt.Errorf("unexpected end of <%s> start tag", manifestElement)
	}

	pos := end - 1
	if pos > 0 && data[pos-1] == '/' {
		pos--
	}
	for pos > 0 && isXMLSpace(data[pos-1]) {
		pos--
	}
	return pos, nil
}

func isXMLSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
