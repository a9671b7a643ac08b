package matcher

import (
	"github.com/vvka-141/assetref/internal/unityyaml"
)

// SpriteRenderer matches structural files in which some GameObject, or one
// of its descendants, carries a SpriteRenderer whose m_Sprite points at a
// sprite sub-asset of the target GUID. References through any other field,
// such as m_Materials, never match.
type SpriteRenderer struct{}

func (SpriteRenderer) Name() string { return "sprite-renderer" }

func (SpriteRenderer) Match(content []byte, guid string) (bool, error) {
	if guid == "" {
		return false, nil
	}

	doc, err := unityyaml.Parse(content)
	if err != nil {
		return false, err
	}

	h := newHierarchy(doc)
	for _, node := range doc.OfKind(unityyaml.KindGameObject) {
		if h.subtreeReferences(node.FileID, guid) {
			return true, nil
		}
	}
	return false, nil
}

// hierarchy answers "does this node or any descendant carry a matching
// SpriteRenderer" with memoization, so each node is evaluated once.
type hierarchy struct {
	doc        *unityyaml.Document
	components map[int64][]*unityyaml.Object
	memo       map[int64]bool
	visiting   map[int64]bool
}

func newHierarchy(doc *unityyaml.Document) *hierarchy {
	h := &hierarchy{
		doc:        doc,
		components: make(map[int64][]*unityyaml.Object),
		memo:       make(map[int64]bool),
		visiting:   make(map[int64]bool),
	}
	h.indexComponents()
	return h
}

// indexComponents attaches components to their GameObject using both the
// node's m_Component list and each component's m_GameObject back-reference.
func (h *hierarchy) indexComponents() {
	seen := make(map[int64]map[int64]bool)
	attach := func(nodeID int64, comp *unityyaml.Object) {
		if seen[nodeID] == nil {
			seen[nodeID] = make(map[int64]bool)
		}
		if seen[nodeID][comp.FileID] {
			return
		}
		seen[nodeID][comp.FileID] = true
		h.components[nodeID] = append(h.components[nodeID], comp)
	}

	for _, node := range h.doc.OfKind(unityyaml.KindGameObject) {
		for _, ref := range node.RefList("m_Component") {
			if comp, ok := h.doc.Resolve(ref); ok {
				attach(node.FileID, comp)
			}
		}
	}

	for _, obj := range h.doc.Objects {
		if obj.Is(unityyaml.KindGameObject) {
			continue
		}
		if ref, ok := obj.Ref("m_GameObject"); ok {
			if owner, ok := h.doc.Resolve(ref); ok && owner.Is(unityyaml.KindGameObject) {
				attach(owner.FileID, obj)
			}
		}
	}
}

func (h *hierarchy) subtreeReferences(nodeID int64, guid string) bool {
	if result, ok := h.memo[nodeID]; ok {
		return result
	}
	if h.visiting[nodeID] {
		return false
	}
	h.visiting[nodeID] = true
	defer delete(h.visiting, nodeID)

	result := false
	for _, comp := range h.components[nodeID] {
		if comp.Is(unityyaml.KindSpriteRenderer) && spriteReferences(comp, guid) {
			result = true
			break
		}
	}

	if !result {
		for _, child := range h.children(nodeID) {
			if h.subtreeReferences(child, guid) {
				result = true
				break
			}
		}
	}

	h.memo[nodeID] = result
	return result
}

// children returns the GameObject IDs below nodeID via its transform's m_Children.
func (h *hierarchy) children(nodeID int64) []int64 {
	var ids []int64
	for _, comp := range h.components[nodeID] {
		if !comp.Is(unityyaml.KindTransform) && !comp.Is(unityyaml.KindRectTransform) {
			continue
		}
		for _, ref := range comp.RefList("m_Children") {
			childTransform, ok := h.doc.Resolve(ref)
			if !ok {
				continue
			}
			owner, ok := childTransform.Ref("m_GameObject")
			if !ok {
				continue
			}
			if child, ok := h.doc.Resolve(owner); ok {
				ids = append(ids, child.FileID)
			}
		}
	}
	return ids
}

func spriteReferences(renderer *unityyaml.Object, guid string) bool {
	sprite, ok := renderer.Ref("m_Sprite")
	if !ok || sprite.IsNull() {
		return false
	}
	return sprite.GUID == guid
}
