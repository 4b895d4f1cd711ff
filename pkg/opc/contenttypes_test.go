package opc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manifestIndex(t *testing.T) *ContentTypesIndex {
	t.Helper()
	types, err := parseItemXML(ContentTypesItemPath, minimalPackageItems()[0].data)
	require.NoError(t, err)
	idx := NewContentTypesIndex()
	idx.LoadElement(types)
	return idx
}

func TestContentTypesIndexResolve(t *testing.T) {
	idx := manifestIndex(t)

	tests := []struct {
		name     string
		itemPath string
		want     string
		wantErr  bool
	}{
		{
			// an .xml item with an override must not fall through to the
			// "xml" default
			name:     "override wins over extension default",
			itemPath: "/ppt/slides/slide1.xml",
			want:     ContentTypeSlide,
		},
		{
			name:     "extension default",
			itemPath: "/ppt/media/image1.png",
			want:     ContentTypePNG,
		},
		{
			name:     "plain xml item without override",
			itemPath: "/ppt/anything.xml",
			want:     ContentTypeXML,
		},
		{
			name:     "extension matching is case-insensitive",
			itemPath: "/ppt/media/IMAGE2.PNG",
			want:     ContentTypePNG,
		},
		{
			name:     "no override and no default",
			itemPath: "/ppt/media/movie1.mp4",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Resolve(tt.itemPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsContentTypeNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentTypesIndexLoadElement(t *testing.T) {
	idx := manifestIndex(t)
	assert.Equal(t, 8, idx.Len()) // 3 defaults + 5 overrides

	// loading replaces, never merges
	types, err := parseItemXML(ContentTypesItemPath, []byte(
		`<Types xmlns="`+nsContentTypes+`"><Default Extension="GIF" ContentType="image/gif"/></Types>`))
	require.NoError(t, err)
	idx.LoadElement(types)
	assert.Equal(t, 1, idx.Len())

	// extension keys are lower-cased on load
	ct, err := idx.Resolve("/ppt/media/image1.gif")
	require.NoError(t, err)
	assert.Equal(t, ContentTypeGIF, ct)
}

func TestContentTypesIndexCompose(t *testing.T) {
	parts := &PartCollection{byPath: map[string]*Part{}}
	add := func(itemPath, contentType string) {
		part := &Part{path: itemPath, contentType: contentType}
		parts.byPath[itemPath] = part
		parts.order = append(parts.order, part)
	}
	add("/ppt/presentation.xml", ContentTypePresentation)
	add("/ppt/slides/slide1.xml", ContentTypeSlide)
	add("/ppt/media/image1.png", ContentTypePNG)
	add("/ppt/media/photo2.JPG", ContentTypeJPEG)

	idx := NewContentTypesIndex()
	// pre-existing state must be discarded by the rebuild
	idx.overrides["/stale/override.xml"] = "application/stale"
	idx.defaults["stale"] = "application/stale"

	require.NoError(t, idx.Compose(parts))

	ct, err := idx.Resolve("/ppt/presentation.xml")
	require.NoError(t, err)
	assert.Equal(t, ContentTypePresentation, ct)
	ct, err = idx.Resolve("/ppt/slides/slide1.xml")
	require.NoError(t, err)
	assert.Equal(t, ContentTypeSlide, ct)
	ct, err = idx.Resolve("/ppt/media/photo2.JPG")
	require.NoError(t, err)
	assert.Equal(t, ContentTypeJPEG, ct)

	_, err = idx.Resolve("/stale/override.xml")
	require.NoError(t, err) // resolves, but through the xml default
	assert.NotContains(t, idx.overrides, "/stale/override.xml")
	assert.NotContains(t, idx.defaults, "stale")

	// fixed seeds are always present
	ct, err = idx.Resolve("/_rels/.rels")
	require.NoError(t, err)
	assert.Equal(t, ContentTypeRelationships, ct)
}

func TestContentTypesIndexComposeUnregisteredExtension(t *testing.T) {
	parts := NewPartCollection()
	part := &Part{path: "/ppt/media/movie1.mp4", contentType: "video/mp4"}
	parts.byPath[part.path] = part
	parts.order = append(parts.order, part)

	err := NewContentTypesIndex().Compose(parts)
	require.Error(t, err)
	assert.True(t, IsUnregisteredExtension(err))
}

func TestContentTypesIndexElement(t *testing.T) {
	idx := manifestIndex(t)

	first := xmlString(t, idx.Element())
	second := xmlString(t, idx.Element())
	assert.Equal(t, first, second, "serialization must be deterministic")

	// Element and LoadElement are inverses
	reloaded := NewContentTypesIndex()
	reloaded.LoadElement(idx.Element())
	assert.Equal(t, idx.defaults, reloaded.defaults)
	assert.Equal(t, idx.overrides, reloaded.overrides)

	types := idx.Element()
	assert.Equal(t, nsContentTypes, types.SelectAttrValue("xmlns", ""))
	assert.Len(t, types.SelectElements("Default"), 3)
	assert.Len(t, types.SelectElements("Override"), 5)
}

func TestLoadContentTypes(t *testing.T) {
	fs, err := OpenFileSystem(buildMinimalPackage(t))
	require.NoError(t, err)

	idx, err := loadContentTypes(fs)
	require.NoError(t, err)
	ct, err := idx.Resolve("/ppt/slideMasters/slideMaster1.xml")
	require.NoError(t, err)
	assert.Equal(t, ContentTypeSlideMaster, ct)
}

func TestLoadContentTypesMissingManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stripped.pptx")
	writePackageZip(t, path, withoutItem(minimalPackageItems(), "[Content_Types].xml"))

	fs, err := OpenFileSystem(path)
	require.NoError(t, err)
	_, err = loadContentTypes(fs)
	require.Error(t, err)
	assert.True(t, IsItemNotFound(err))
}
