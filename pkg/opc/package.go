package opc

import (
	"strings"
)

// Package loads and saves an OPC package: the content-types manifest, the
// relationship graph, and every part reachable from the package root.
type Package struct {
	registry     *Registry
	parts        *PartCollection
	contentTypes *ContentTypesIndex
	rels         *RelationshipCollection
}

// Open loads the package at location (a zip archive or an expanded
// directory tree) using a fresh part-type registry.
func Open(location string) (*Package, error) {
	return OpenWithRegistry(location, NewRegistry())
}

// OpenWithRegistry loads the package at location, resolving part types
// through the given registry. Opening either fully succeeds or fails
// outright; there is no partial-package recovery.
func OpenWithRegistry(location string, registry *Registry) (*Package, error) {
	GetLogger().Debug("opening package", "location", location)
	fs, err := OpenFileSystem(location)
	if err != nil {
		return nil, err
	}
	contentTypes, err := loadContentTypes(fs)
	if err != nil {
		return nil, err
	}
	rels, err := loadRelationships(fs, PackageRelsItemPath, "/")
	if err != nil {
		return nil, err
	}
	pkg := &Package{
		registry:     registry,
		parts:        NewPartCollection(),
		contentTypes: contentTypes,
		rels:         rels,
	}
	if err := pkg.loadParts(fs); err != nil {
		return nil, err
	}
	GetLogger().Debug("opened package", "location", location, "parts", pkg.parts.Len())
	return pkg, nil
}

// loadParts walks the relationship graph from the root relationships and
// loads every reachable part. The graph may contain cycles; an explicit
// visited set keyed by item path bounds the walk to one visit per part,
// and an explicit work stack bounds stack depth on deep packages.
func (pkg *Package) loadParts(fs FileSystem) error {
	visited := make(map[string]bool)
	var stack []string

	push := func(rels *RelationshipCollection) {
		targets := rels.Relationships()
		// reversed so the stack pops relationships in discovery order
		for i := len(targets) - 1; i >= 0; i-- {
			stack = append(stack, rels.ResolveTarget(targets[i]))
		}
	}
	push(pkg.rels)

	for len(stack) > 0 {
		itemPath := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[itemPath] {
			continue
		}
		visited[itemPath] = true

		contentType, err := pkg.contentTypes.Resolve(itemPath)
		if err != nil {
			return err
		}
		part, err := pkg.parts.Load(fs, itemPath, contentType, pkg.registry)
		if err != nil {
			return err
		}
		if part.Relationships() != nil {
			push(part.Relationships())
		}
	}
	return nil
}

// Parts returns the package's part collection.
func (pkg *Package) Parts() *PartCollection {
	return pkg.parts
}

// Relationships returns the package-level relationship collection.
func (pkg *Package) Relationships() *RelationshipCollection {
	return pkg.rels
}

// ContentTypes returns the package's content-types index.
func (pkg *Package) ContentTypes() *ContentTypesIndex {
	return pkg.contentTypes
}

// Registry returns the part-type registry the package resolves through.
func (pkg *Package) Registry() *Registry {
	return pkg.registry
}

// Save writes the package to location as a fresh zip archive, appending
// the canonical package suffix if absent. The manifest is recomposed from
// the current part collection; then the root relationship item, every part
// body, and every part's relationship item are written in collection
// order.
//
// Save never overwrites an existing file at the target location. If it
// fails partway, the partially written archive is left on disk and must be
// discarded by the caller.
func (pkg *Package) Save(location string) error {
	location = normalizeSavePath(location)
	GetLogger().Debug("saving package", "location", location)

	if err := pkg.contentTypes.Compose(pkg.parts); err != nil {
		return err
	}
	w, err := NewPackageWriter(location)
	if err != nil {
		return err
	}
	if err := pkg.writeItems(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (pkg *Package) writeItems(w *PackageWriter) error {
	if err := w.WriteElement(ContentTypesItemPath, pkg.contentTypes.Element()); err != nil {
		return err
	}
	if err := w.WriteElement(PackageRelsItemPath, pkg.rels.Element()); err != nil {
		return err
	}
	for _, part := range pkg.parts.Parts() {
		if part.Spec().Format() == FormatXML {
			if err := w.WriteElement(part.Path(), part.Element); err != nil {
				return err
			}
		} else {
			if err := w.WriteBlob(part.Path(), part.Blob); err != nil {
				return err
			}
		}
		if part.Relationships() != nil {
			if err := w.WriteElement(part.RelsItemPath(), part.Relationships().Element()); err != nil {
				return err
			}
		}
	}
	return nil
}

// normalizeSavePath appends the canonical package suffix if absent.
func normalizeSavePath(location string) string {
	if strings.HasSuffix(location, PackageExt) {
		return location
	}
	return location + PackageExt
}
