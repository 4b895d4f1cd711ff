package opc

import (
	"path"

	"github.com/beevik/etree"
)

// Part is one content-bearing package member: its item path (part name),
// content type, body, and optional relationship set. The body is either an
// XML element tree or an opaque blob, selected by the part type's format
// kind; the other slot stays nil.
//
// A part is exclusively owned by the PartCollection that loaded it.
type Part struct {
	path        string
	contentType string
	spec        *PartTypeSpec

	// Element is the parsed body of an xml-format part, nil otherwise.
	Element *etree.Element
	// Blob is the raw body of a binary-format part, nil otherwise.
	Blob []byte

	rels *RelationshipCollection
}

// Path returns the part's item path, commonly known as its part name.
func (p *Part) Path() string {
	return p.path
}

// ContentType returns the part's content type.
func (p *Part) ContentType() string {
	return p.contentType
}

// Spec returns the part type spec the part was loaded under.
func (p *Part) Spec() *PartTypeSpec {
	return p.spec
}

// Relationships returns the part's relationship collection, or nil if the
// part has none.
func (p *Part) Relationships() *RelationshipCollection {
	return p.rels
}

// RelsItemPath returns the item path of the part's companion relationship
// item, whether or not one exists in the package.
func (p *Part) RelsItemPath() string {
	return relsItemPath(p.path)
}

// PartCollection is the deduplicated set of all loaded parts, keyed by item
// path and ordered by load order.
type PartCollection struct {
	order  []*Part
	byPath map[string]*Part
}

// NewPartCollection returns an empty collection.
func NewPartCollection() *PartCollection {
	return &PartCollection{
		byPath: make(map[string]*Part),
	}
}

// Contains reports whether a part with the given item path is a member.
func (pc *PartCollection) Contains(itemPath string) bool {
	_, ok := pc.byPath[itemPath]
	return ok
}

// Get returns the part with the given item path, failing with
// PartNotFoundError if absent.
func (pc *PartCollection) Get(itemPath string) (*Part, error) {
	part, ok := pc.byPath[itemPath]
	if !ok {
		return nil, &PartNotFoundError{ItemPath: itemPath}
	}
	return part, nil
}

// Parts returns the parts in load order.
func (pc *PartCollection) Parts() []*Part {
	parts := make([]*Part, len(pc.order))
	copy(parts, pc.order)
	return parts
}

// Len returns the number of parts in the collection.
func (pc *PartCollection) Len() int {
	return len(pc.order)
}

// Load reads the part at itemPath from fs and registers it in the
// collection. The body is read as XML or bytes per the type's format kind.
// Whether a relationship item is read follows the type's tri-state
// requirement: always (missing item fails with CorruptedPackageError),
// never, or optional (read only if present).
func (pc *PartCollection) Load(fs FileSystem, itemPath, contentType string, registry *Registry) (*Part, error) {
	if pc.Contains(itemPath) {
		return nil, &DuplicatePartError{ItemPath: itemPath}
	}
	spec, err := registry.SpecFor(contentType)
	if err != nil {
		return nil, err
	}

	part := &Part{
		path:        itemPath,
		contentType: contentType,
		spec:        spec,
	}
	if spec.Format() == FormatXML {
		part.Element, err = fs.Element(itemPath)
	} else {
		part.Blob, err = fs.Blob(itemPath)
	}
	if err != nil {
		return nil, err
	}

	relsPath := relsItemPath(itemPath)
	switch spec.HasRels {
	case RelsNever:
	case RelsOptional:
		if fs.Contains(relsPath) {
			part.rels, err = loadRelationships(fs, relsPath, path.Dir(itemPath))
			if err != nil {
				return nil, err
			}
		}
	case RelsAlways:
		if !fs.Contains(relsPath) {
			return nil, &CorruptedPackageError{
				ItemPath: relsPath,
				Message:  "required relationship item not found",
			}
		}
		part.rels, err = loadRelationships(fs, relsPath, path.Dir(itemPath))
		if err != nil {
			return nil, err
		}
	}

	pc.byPath[itemPath] = part
	pc.order = append(pc.order, part)
	GetLogger().Debug("loaded part", "path", itemPath, "contentType", contentType)
	return part, nil
}
