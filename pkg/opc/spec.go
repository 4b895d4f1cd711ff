package opc

// Well-known item paths and namespaces of the package wire format.
const (
	// ContentTypesItemPath is the fixed item path of the manifest.
	ContentTypesItemPath = "/[Content_Types].xml"
	// PackageRelsItemPath is the fixed item path of the package
	// relationship item.
	PackageRelsItemPath = "/_rels/.rels"
	// PackageExt is the canonical file suffix applied by Save.
	PackageExt = ".pptx"

	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Content types of the fixed manifest defaults.
const (
	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML           = "application/xml"
)

// Content types of the PresentationML part-type table.
const (
	ContentTypePresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ContentTypeSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ContentTypeSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ContentTypeSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ContentTypeNotesMaster   = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
	ContentTypeNotesSlide    = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ContentTypeHandoutMaster = "application/vnd.openxmlformats-officedocument.presentationml.handoutMaster+xml"
	ContentTypeTableStyles   = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ContentTypeViewProps     = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ContentTypePresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ContentTypeTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ContentTypeCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ContentTypePNG           = "image/png"
	ContentTypeJPEG          = "image/jpeg"
	ContentTypeGIF           = "image/gif"
	ContentTypeEMF           = "image/x-emf"
	ContentTypeWMF           = "image/x-wmf"
	ContentTypeTIFF          = "image/tiff"
)

// Relationship type URIs.
const (
	relTypeBase = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"

	RelTypeOfficeDocument = relTypeBase + "officeDocument"
	RelTypeSlide          = relTypeBase + "slide"
	RelTypeSlideLayout    = relTypeBase + "slideLayout"
	RelTypeSlideMaster    = relTypeBase + "slideMaster"
	RelTypeNotesMaster    = relTypeBase + "notesMaster"
	RelTypeNotesSlide     = relTypeBase + "notesSlide"
	RelTypeHandoutMaster  = relTypeBase + "handoutMaster"
	RelTypeTableStyles    = relTypeBase + "tableStyles"
	RelTypeViewProps      = relTypeBase + "viewProps"
	RelTypePresProps      = relTypeBase + "presProps"
	RelTypeTheme          = relTypeBase + "theme"
	RelTypeImage          = relTypeBase + "image"
	RelTypeExtendedProps  = relTypeBase + "extendedProperties"
	RelTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
)

// partTypeDef holds the fixed, table-driven attributes of one part type.
type partTypeDef struct {
	basename    string
	ext         string
	cardinality Cardinality
	required    bool
	baseDir     string
	hasRels     RelsRequirement
	relType     string
}

// partTypeTable is the static format table keyed by content type. It is the
// read-only source for PartTypeSpec construction; Registry never mutates it.
var partTypeTable = map[string]partTypeDef{
	ContentTypePresentation: {
		basename:    "presentation",
		ext:         ".xml",
		cardinality: CardinalitySingle,
		required:    true,
		baseDir:     "/ppt",
		hasRels:     RelsAlways,
		relType:     RelTypeOfficeDocument,
	},
	ContentTypeSlide: {
		basename:    "slide",
		ext:         ".xml",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/slides",
		hasRels:     RelsAlways,
		relType:     RelTypeSlide,
	},
	ContentTypeSlideLayout: {
		basename:    "slideLayout",
		ext:         ".xml",
		cardinality: CardinalityMultiple,
		required:    true,
		baseDir:     "/ppt/slideLayouts",
		hasRels:     RelsAlways,
		relType:     RelTypeSlideLayout,
	},
	ContentTypeSlideMaster: {
		basename:    "slideMaster",
		ext:         ".xml",
		cardinality: CardinalityMultiple,
		required:    true,
		baseDir:     "/ppt/slideMasters",
		hasRels:     RelsAlways,
		relType:     RelTypeSlideMaster,
	},
	ContentTypeNotesMaster: {
		basename:    "notesMaster",
		ext:         ".xml",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/notesMasters",
		hasRels:     RelsAlways,
		relType:     RelTypeNotesMaster,
	},
	ContentTypeNotesSlide: {
		basename:    "notesSlide",
		ext:         ".xml",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/notesSlides",
		hasRels:     RelsAlways,
		relType:     RelTypeNotesSlide,
	},
	ContentTypeHandoutMaster: {
		basename:    "handoutMaster",
		ext:         ".xml",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/handoutMasters",
		hasRels:     RelsAlways,
		relType:     RelTypeHandoutMaster,
	},
	ContentTypeTableStyles: {
		basename:    "tableStyles",
		ext:         ".xml",
		cardinality: CardinalitySingle,
		required:    false,
		baseDir:     "/ppt",
		hasRels:     RelsNever,
		relType:     RelTypeTableStyles,
	},
	ContentTypeViewProps: {
		basename:    "viewProps",
		ext:         ".xml",
		cardinality: CardinalitySingle,
		required:    false,
		baseDir:     "/ppt",
		hasRels:     RelsNever,
		relType:     RelTypeViewProps,
	},
	ContentTypePresProps: {
		basename:    "presProps",
		ext:         ".xml",
		cardinality: CardinalitySingle,
		required:    true,
		baseDir:     "/ppt",
		hasRels:     RelsNever,
		relType:     RelTypePresProps,
	},
	ContentTypeTheme: {
		basename:    "theme",
		ext:         ".xml",
		cardinality: CardinalityMultiple,
		required:    true,
		baseDir:     "/ppt/theme",
		hasRels:     RelsOptional,
		relType:     RelTypeTheme,
	},
	ContentTypeCoreProps: {
		basename:    "core",
		ext:         ".xml",
		cardinality: CardinalitySingle,
		required:    true,
		baseDir:     "/docProps",
		hasRels:     RelsNever,
		relType:     RelTypeCoreProps,
	},
	ContentTypeExtendedProps: {
		basename:    "app",
		ext:         ".xml",
		cardinality: CardinalitySingle,
		required:    false,
		baseDir:     "/docProps",
		hasRels:     RelsNever,
		relType:     RelTypeExtendedProps,
	},
	ContentTypePNG: {
		basename:    "image",
		ext:         ".png",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/media",
		hasRels:     RelsNever,
		relType:     RelTypeImage,
	},
	ContentTypeJPEG: {
		basename:    "image",
		ext:         ".jpeg",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/media",
		hasRels:     RelsNever,
		relType:     RelTypeImage,
	},
	ContentTypeGIF: {
		basename:    "image",
		ext:         ".gif",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/media",
		hasRels:     RelsNever,
		relType:     RelTypeImage,
	},
	ContentTypeEMF: {
		basename:    "image",
		ext:         ".emf",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/media",
		hasRels:     RelsNever,
		relType:     RelTypeImage,
	},
	ContentTypeWMF: {
		basename:    "image",
		ext:         ".wmf",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/media",
		hasRels:     RelsNever,
		relType:     RelTypeImage,
	},
	ContentTypeTIFF: {
		basename:    "image",
		ext:         ".tiff",
		cardinality: CardinalityMultiple,
		required:    false,
		baseDir:     "/ppt/media",
		hasRels:     RelsNever,
		relType:     RelTypeImage,
	},
}

// defaultContentTypes maps a file extension (with leading dot) to the
// package-level default content type recorded for it in the manifest.
var defaultContentTypes = map[string]string{
	".rels": ContentTypeRelationships,
	".xml":  ContentTypeXML,
	".png":  ContentTypePNG,
	".jpeg": ContentTypeJPEG,
	".jpg":  ContentTypeJPEG,
	".gif":  ContentTypeGIF,
	".emf":  ContentTypeEMF,
	".wmf":  ContentTypeWMF,
	".tiff": ContentTypeTIFF,
	".bmp":  "image/bmp",
}
