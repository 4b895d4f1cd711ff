package opc

import (
	"path"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// ContentTypesIndex resolves the content type of a package item through the
// two-tier scheme of the manifest: exact per-item-path overrides win over
// extension-based defaults.
//
// The index is owned by the Package: parsed once from /[Content_Types].xml
// on load, and rebuilt in full from the part collection on every save.
type ContentTypesIndex struct {
	defaults  map[string]string // extension, lower-case, no dot
	overrides map[string]string // exact item path
}

// NewContentTypesIndex returns an empty index.
func NewContentTypesIndex() *ContentTypesIndex {
	return &ContentTypesIndex{
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
}

// Resolve returns the content type for itemPath: the override entry if one
// exists, otherwise the default for the item's lower-cased extension,
// otherwise ContentTypeNotFoundError.
func (idx *ContentTypesIndex) Resolve(itemPath string) (string, error) {
	if contentType, ok := idx.overrides[itemPath]; ok {
		return contentType, nil
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(itemPath), "."))
	if contentType, ok := idx.defaults[ext]; ok {
		return contentType, nil
	}
	return "", &ContentTypeNotFoundError{ItemPath: itemPath}
}

// Len returns the total count of default and override entries.
func (idx *ContentTypesIndex) Len() int {
	return len(idx.defaults) + len(idx.overrides)
}

// Compose rebuilds the index from the current part collection, discarding
// any prior state. The default map is seeded with the two fixed manifest
// entries for relationship items and raw XML. Every ".xml" part gets an
// exact override (per-part precision even when two same-extension parts
// differ in type); other extensions must have a package-level default or
// composition fails with UnregisteredExtensionError.
func (idx *ContentTypesIndex) Compose(parts *PartCollection) error {
	idx.defaults = map[string]string{
		"rels": ContentTypeRelationships,
		"xml":  ContentTypeXML,
	}
	idx.overrides = make(map[string]string)
	for _, part := range parts.Parts() {
		ext := strings.ToLower(path.Ext(part.Path()))
		if ext == ".xml" {
			idx.overrides[part.Path()] = part.ContentType()
			continue
		}
		contentType, ok := defaultContentTypes[ext]
		if !ok {
			return &UnregisteredExtensionError{Extension: ext}
		}
		idx.defaults[strings.TrimPrefix(ext, ".")] = contentType
	}
	return nil
}

// Element serializes the index into its manifest form: one Default entry
// per extension and one Override entry per item path, each sorted for
// deterministic output.
func (idx *ContentTypesIndex) Element() *etree.Element {
	types := etree.NewElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	exts := make([]string, 0, len(idx.defaults))
	for ext := range idx.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		def := types.CreateElement("Default")
		def.CreateAttr("Extension", ext)
		def.CreateAttr("ContentType", idx.defaults[ext])
	}

	itemPaths := make([]string, 0, len(idx.overrides))
	for itemPath := range idx.overrides {
		itemPaths = append(itemPaths, itemPath)
	}
	sort.Strings(itemPaths)
	for _, itemPath := range itemPaths {
		override := types.CreateElement("Override")
		override.CreateAttr("PartName", itemPath)
		override.CreateAttr("ContentType", idx.overrides[itemPath])
	}
	return types
}

// LoadElement replaces the index content with the Default and Override
// entries of a parsed manifest element.
func (idx *ContentTypesIndex) LoadElement(types *etree.Element) {
	idx.defaults = make(map[string]string)
	idx.overrides = make(map[string]string)
	for _, def := range types.SelectElements("Default") {
		ext := strings.ToLower(def.SelectAttrValue("Extension", ""))
		idx.defaults[ext] = def.SelectAttrValue("ContentType", "")
	}
	for _, override := range types.SelectElements("Override") {
		idx.overrides[override.SelectAttrValue("PartName", "")] = override.SelectAttrValue("ContentType", "")
	}
}

// loadContentTypes reads and parses the manifest from fs.
func loadContentTypes(fs FileSystem) (*ContentTypesIndex, error) {
	types, err := fs.Element(ContentTypesItemPath)
	if err != nil {
		return nil, err
	}
	idx := NewContentTypesIndex()
	idx.LoadElement(types)
	return idx, nil
}
