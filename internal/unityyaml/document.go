package unityyaml

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
)

// Well-known class IDs of the object types the matchers inspect.
const (
	ClassGameObject     = 1
	ClassTransform      = 4
	ClassSpriteRenderer = 212
	ClassRectTransform  = 224
)

// Type names as they appear as the single top-level key of an object body.
const (
	TypeGameObject     = "GameObject"
	TypeTransform      = "Transform"
	TypeSpriteRenderer = "SpriteRenderer"
	TypeRectTransform  = "RectTransform"
)

// headerPattern matches object separators such as "--- !u!212 &1234" and
// "--- !u!1 &-5871 stripped".
var headerPattern = regexp.MustCompile(`^---\s+!u!(\d+)\s+&(-?\d+)(\s+stripped)?\s*$`)

// Document is a parsed structural file: an ordered list of top-level objects
// indexed by their file-local IDs.
type Document struct {
	Objects []*Object
	byID    map[int64]*Object
}

// Parse splits content into objects and decodes each body into a generic
// YAML node tree. Content without any object headers is decoded as a single
// anonymous object with ClassID 0.
func Parse(content []byte) (*Document, error) {
	doc := &Document{byID: make(map[int64]*Object)}

	var (
		current *Object
		body    bytes.Buffer
		line    int
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if err := current.decode(body.Bytes()); err != nil {
			return fmt.Errorf("object &%d at line %d: %w", current.FileID, current.Line, err)
		}
		doc.add(current)
		current = nil
		body.Reset()
		return nil
	}

	for _, raw := range bytes.Split(content, []byte("\n")) {
		line++
		text := bytes.TrimRight(raw, "\r")

		if current == nil && len(text) > 0 && (text[0] == '%' || text[0] == '#') {
			continue
		}

		if bytes.HasPrefix(text, []byte("---")) {
			if err := flush(); err != nil {
				return nil, err
			}
			obj, err := parseHeader(string(text), line)
			if err != nil {
				return nil, err
			}
			current = obj
			continue
		}

		if current == nil {
			if len(bytes.TrimSpace(text)) == 0 {
				continue
			}
			current = &Object{Line: line}
		}
		body.Write(text)
		body.WriteByte('\n')
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseHeader(text string, line int) (*Object, error) {
	m := headerPattern.FindStringSubmatch(text)
	if m == nil {
		if text == "---" {
			return &Object{Line: line}, nil
		}
		return nil, fmt.Errorf("line %d: malformed object header %q", line, text)
	}

	classID, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid class id: %w", line, err)
	}
	fileID, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid file id: %w", line, err)
	}

	return &Object{
		ClassID:  classID,
		FileID:   fileID,
		Stripped: m[3] != "",
		Line:     line,
	}, nil
}

func (d *Document) add(obj *Object) {
	d.Objects = append(d.Objects, obj)
	if obj.FileID != 0 {
		d.byID[obj.FileID] = obj
	}
}

// Object returns the object with the given file-local ID.
func (d *Document) Object(fileID int64) (*Object, bool) {
	obj, ok := d.byID[fileID]
	return obj, ok
}

// Resolve returns the local object a reference points at. References to
// other files (non-empty GUID) and null references never resolve.
func (d *Document) Resolve(ref Ref) (*Object, bool) {
	if ref.GUID != "" || ref.FileID == 0 {
		return nil, false
	}
	return d.Object(ref.FileID)
}

// OfKind returns every object of the given type, in file order.
func (d *Document) OfKind(kind Kind) []*Object {
	var out []*Object
	for _, obj := range d.Objects {
		if obj.Is(kind) {
			out = append(out, obj)
		}
	}
	return out
}
