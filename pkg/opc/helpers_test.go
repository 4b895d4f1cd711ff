package opc

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// zipItem is one member of a test package archive.
type zipItem struct {
	name string // archive member name, no leading slash
	data []byte
}

// pngBytes is a fake binary body with a PNG signature; not parseable as XML.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x01, 0x02, 0x03}

// minimalPackageItems returns the members of a small but complete
// presentation package. The slideLayout and slideMaster reference each
// other, so the relationship graph contains a cycle.
func minimalPackageItems() []zipItem {
	return []zipItem{
		{"[Content_Types].xml", []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Default Extension="png" ContentType="image/png"/><Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/><Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/><Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/><Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/><Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/></Types>`)},
		{"_rels/.rels", []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/></Relationships>`)},
		{"ppt/presentation.xml", []byte(`<presentation><sldMasterIdLst/><sldIdLst/></presentation>`)},
		{"ppt/_rels/presentation.xml.rels", []byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/></Relationships>`)},
		{"ppt/slides/slide1.xml", []byte(`<slide><title>Minimal</title></slide>`)},
		{"ppt/slides/_rels/slide1.xml.rels", []byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/></Relationships>`)},
		{"ppt/slideLayouts/slideLayout1.xml", []byte(`<slideLayout/>`)},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/></Relationships>`)},
		{"ppt/slideMasters/slideMaster1.xml", []byte(`<slideMaster/>`)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/></Relationships>`)},
		{"ppt/media/image1.png", pngBytes},
		{"docProps/core.xml", []byte(`<coreProperties><title>Minimal deck</title></coreProperties>`)},
	}
}

// minimalPartPaths is the set of parts the minimal package loads into the
// part collection (rels items and the manifest are not parts).
var minimalPartPaths = []string{
	"/ppt/presentation.xml",
	"/docProps/core.xml",
	"/ppt/slides/slide1.xml",
	"/ppt/slideLayouts/slideLayout1.xml",
	"/ppt/slideMasters/slideMaster1.xml",
	"/ppt/media/image1.png",
}

// writePackageZip writes items to a zip archive at path.
func writePackageZip(t *testing.T, path string, items []zipItem) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for _, item := range items {
		fw, err := w.Create(item.name)
		require.NoError(t, err)
		_, err = fw.Write(item.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

// writePackageDir expands items into a directory tree at root.
func writePackageDir(t *testing.T, root string, items []zipItem) {
	t.Helper()
	for _, item := range items {
		p := filepath.Join(root, filepath.FromSlash(item.name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, item.data, 0o644))
	}
}

// buildMinimalPackage writes the minimal package as a zip archive and
// returns its path.
func buildMinimalPackage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minimal.pptx")
	writePackageZip(t, path, minimalPackageItems())
	return path
}

// withoutItem filters one member out of a fixture item set.
func withoutItem(items []zipItem, name string) []zipItem {
	out := make([]zipItem, 0, len(items))
	for _, item := range items {
		if item.name != name {
			out = append(out, item)
		}
	}
	return out
}

// replaceItem swaps one member's body in a fixture item set.
func replaceItem(items []zipItem, name string, data []byte) []zipItem {
	out := make([]zipItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].name == name {
			out[i] = zipItem{name: name, data: data}
		}
	}
	return out
}

// xmlString serializes an element for comparison in tests.
func xmlString(t *testing.T, element *etree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(element.Copy())
	s, err := doc.WriteToString()
	require.NoError(t, err)
	return strings.TrimSpace(s)
}
