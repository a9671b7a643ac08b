package unityyaml

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind identifies an object type by name and class ID. Either may match.
type Kind struct {
	Name    string
	ClassID int
}

// Kinds used by the structural matchers.
var (
	KindGameObject     = Kind{Name: TypeGameObject, ClassID: ClassGameObject}
	KindTransform      = Kind{Name: TypeTransform, ClassID: ClassTransform}
	KindRectTransform  = Kind{Name: TypeRectTransform, ClassID: ClassRectTransform}
	KindSpriteRenderer = Kind{Name: TypeSpriteRenderer, ClassID: ClassSpriteRenderer}
)

// Object is one top-level entry of a structural file.
type Object struct {
	ClassID  int
	FileID   int64
	Stripped bool
	// Type is the single top-level key of the body, e.g. "GameObject".
	Type string
	// Line is the 1-based line of the object header.
	Line int

	fields *yaml.Node
}

func (o *Object) decode(body []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(body, &root); err != nil {
		return err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode || len(top.Content) < 2 {
		return nil
	}

	o.Type = top.Content[0].Value
	if top.Content[1].Kind == yaml.MappingNode {
		o.fields = top.Content[1]
	}
	return nil
}

// Is reports whether the object is of the given kind.
func (o *Object) Is(kind Kind) bool {
	if o.Type != "" {
		return o.Type == kind.Name
	}
	return kind.ClassID != 0 && o.ClassID == kind.ClassID
}

// Field returns the value node of a direct field, or nil.
func (o *Object) Field(name string) *yaml.Node {
	return mappingValue(o.fields, name)
}

// Scalar returns the string value of a scalar field.
func (o *Object) Scalar(name string) (string, bool) {
	n := o.Field(name)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

// Ref decodes a reference-valued field such as {fileID: 0} or
// {fileID: 21300000, guid: 0123..., type: 3}.
func (o *Object) Ref(name string) (Ref, bool) {
	return refFromNode(o.Field(name))
}

// RefList decodes a sequence of references. Elements may be plain references
// or single-key wrappers around one, which covers both
// "- component: {fileID: 1}" and the older "- 212: {fileID: 1}" layouts.
func (o *Object) RefList(name string) []Ref {
	n := o.Field(name)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}

	refs := make([]Ref, 0, len(n.Content))
	for _, item := range n.Content {
		if ref, ok := refFromNode(item); ok {
			refs = append(refs, ref)
			continue
		}
		if item.Kind == yaml.MappingNode && len(item.Content) == 2 {
			if ref, ok := refFromNode(item.Content[1]); ok {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// Ref is a reference-by-identifier to another object, local or external.
type Ref struct {
	FileID int64
	GUID   string
	Type   int
}

// IsNull reports whether the reference points at nothing.
func (r Ref) IsNull() bool {
	return r.FileID == 0
}

func refFromNode(n *yaml.Node) (Ref, bool) {
	if n == nil || n.Kind != yaml.MappingNode {
		return Ref{}, false
	}
	fileID := mappingValue(n, "fileID")
	if fileID == nil {
		return Ref{}, false
	}

	id, err := strconv.ParseInt(fileID.Value, 10, 64)
	if err != nil {
		return Ref{}, false
	}
	ref := Ref{FileID: id}

	if guid := mappingValue(n, "guid"); guid != nil {
		ref.GUID = guid.Value
	}
	if typ := mappingValue(n, "type"); typ != nil {
		ref.Type, _ = strconv.Atoi(typ.Value)
	}
	return ref, true
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}
