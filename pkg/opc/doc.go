// Package opc implements the read/write engine for Open Packaging
// Conventions (OPC) document containers: the zip-or-directory packages
// underneath .pptx and friends, holding a content-types manifest, a
// relationship graph, and content-bearing parts.
//
// The package is the substrate for higher-level document object models; it
// deliberately knows nothing about slides, shapes, or styles. It loads a
// whole package into memory, lets the layer above walk parts and
// relationships, and writes the whole package back out.
//
// # Quick Start
//
//	pkg, err := opc.Open("deck.pptx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, part := range pkg.Parts().Parts() {
//	    fmt.Println(part.Path(), part.ContentType())
//	}
//
//	if err := pkg.Save("copy.pptx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The main pieces, leaf-first:
//
//   - FileSystem: uniform byte/XML access over an expanded directory tree
//     or a zip archive, addressed by item path (e.g. "/ppt/slides/slide1.xml").
//   - Registry / PartTypeSpec: static format metadata per content type
//     (naming convention, cardinality, base directory, relationship
//     requirement, xml-or-binary format kind).
//   - ContentTypesIndex: default (by extension) and override (by exact item
//     path) content-type resolution, serialized as /[Content_Types].xml.
//   - Relationship / RelationshipCollection: typed directed edges from the
//     package root or a part to a target part, with relative-target
//     resolution against the owner's base directory.
//   - Part / PartCollection: one package member (XML element tree or opaque
//     blob, per its type's format kind) and the deduplicated set of all
//     loaded parts.
//   - Package: opens an archive, loads the manifest and root relationships,
//     walks the relationship graph (cycle-safe, each part visited once), and
//     re-serializes everything on save.
//
// # Error Handling
//
// Failures surface as typed errors (PackageNotFoundError, ItemNotFoundError,
// MalformedXMLError, CorruptedPackageError, the Duplicate* family, ...) with
// matching predicates:
//
//	if opc.IsCorruptedPackage(err) {
//	    // required relationship item missing
//	}
//
// An Open or Save either fully succeeds or fails outright; there is no
// partial-package recovery and no silent skipping of malformed members.
//
// # Concurrency
//
// A Package is not safe for concurrent use. Callers must serialize access
// or use separate Package instances per archive.
package opc
