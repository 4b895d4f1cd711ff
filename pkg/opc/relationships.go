package opc

import (
	"path"
	"strings"

	"github.com/beevik/etree"
)

// Relationship is a typed directed edge from a source (the package root or
// a part) to a target part. The source is implicitly the owner of the
// collection the relationship belongs to; the target is a URI relative to
// that owner's base directory, as written in the rels item.
type Relationship struct {
	// ID is the relationship's local identifier, unique within its owning
	// collection, e.g. "rId3".
	ID string
	// Type is the relationship-type URI, e.g. RelTypeSlide.
	Type string
	// Target is the relative URI of the target part, suitable for use in
	// a rels item.
	Target string
}

func (r *Relationship) element() *etree.Element {
	rel := etree.NewElement("Relationship")
	rel.CreateAttr("Id", r.ID)
	rel.CreateAttr("Type", r.Type)
	rel.CreateAttr("Target", r.Target)
	return rel
}

// RelationshipCollection is the ordered set of relationships belonging to
// one owner, indexed by local id. The owner's base directory is the
// directory relative targets resolve against: "/" for the package root,
// the directory portion of the part's item path for a part.
type RelationshipCollection struct {
	baseDir string
	order   []*Relationship
	byID    map[string]*Relationship
}

// NewRelationshipCollection creates an empty collection whose relative
// targets resolve against baseDir.
func NewRelationshipCollection(baseDir string) *RelationshipCollection {
	return &RelationshipCollection{
		baseDir: baseDir,
		byID:    make(map[string]*Relationship),
	}
}

// Add appends a relationship, failing with DuplicateRelationshipIDError if
// the local id is already present.
func (c *RelationshipCollection) Add(id, relType, target string) (*Relationship, error) {
	if _, ok := c.byID[id]; ok {
		return nil, &DuplicateRelationshipIDError{RelationshipID: id}
	}
	rel := &Relationship{ID: id, Type: relType, Target: target}
	c.byID[id] = rel
	c.order = append(c.order, rel)
	return rel, nil
}

// Get returns the relationship with the given local id, failing with
// RelationshipNotFoundError if absent.
func (c *RelationshipCollection) Get(id string) (*Relationship, error) {
	rel, ok := c.byID[id]
	if !ok {
		return nil, &RelationshipNotFoundError{RelationshipID: id}
	}
	return rel, nil
}

// Relationships returns the relationships in insertion order.
func (c *RelationshipCollection) Relationships() []*Relationship {
	rels := make([]*Relationship, len(c.order))
	copy(rels, c.order)
	return rels
}

// Len returns the number of relationships in the collection.
func (c *RelationshipCollection) Len() int {
	return len(c.order)
}

// BaseDir returns the directory relative targets resolve against.
func (c *RelationshipCollection) BaseDir() string {
	return c.baseDir
}

// ResolveTarget translates a relationship's relative target into the
// absolute item path of the target part, normalizing "." and ".." segments.
func (c *RelationshipCollection) ResolveTarget(rel *Relationship) string {
	return resolveItemPath(c.baseDir, rel.Target)
}

// Element serializes the collection as a relationships item body, with the
// relationships in insertion order.
func (c *RelationshipCollection) Element() *etree.Element {
	rels := etree.NewElement("Relationships")
	rels.CreateAttr("xmlns", nsRelationships)
	for _, rel := range c.order {
		rels.AddChild(rel.element())
	}
	return rels
}

// resolveItemPath joins an owner base directory with a relative target and
// normalizes the result to a canonical absolute item path.
func resolveItemPath(baseDir, target string) string {
	resolved := path.Join(baseDir, target)
	if !strings.HasPrefix(resolved, "/") {
		resolved = "/" + resolved
	}
	return resolved
}

// relsItemPath returns the item path of the relationship item companion to
// ownerPath. The package root ("/") owns the fixed "/_rels/.rels"; a part's
// rels item sits in a sibling "_rels" directory, named after the part file
// with a ".rels" suffix appended.
func relsItemPath(ownerPath string) string {
	if ownerPath == "/" {
		return PackageRelsItemPath
	}
	dir := path.Dir(ownerPath)
	if dir == "/" {
		dir = ""
	}
	return dir + "/_rels/" + path.Base(ownerPath) + ".rels"
}

// parseRelationships builds a collection from a parsed relationships item
// body.
func parseRelationships(rels *etree.Element, baseDir string) (*RelationshipCollection, error) {
	c := NewRelationshipCollection(baseDir)
	for _, rel := range rels.SelectElements("Relationship") {
		_, err := c.Add(
			rel.SelectAttrValue("Id", ""),
			rel.SelectAttrValue("Type", ""),
			rel.SelectAttrValue("Target", ""),
		)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// loadRelationships reads and parses the relationships item at itemPath.
func loadRelationships(fs FileSystem, itemPath, baseDir string) (*RelationshipCollection, error) {
	rels, err := fs.Element(itemPath)
	if err != nil {
		return nil, err
	}
	return parseRelationships(rels, baseDir)
}
