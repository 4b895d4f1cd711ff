package opc

// Cardinality expresses whether a part type is a singleton within the
// package or may occur as many numbered instances.
type Cardinality string

const (
	CardinalitySingle   Cardinality = "single"
	CardinalityMultiple Cardinality = "multiple"
)

// RelsRequirement expresses whether parts of a type carry a companion
// relationship item.
type RelsRequirement string

const (
	// RelsAlways means the relationship item must be present; loading a
	// part without one fails with CorruptedPackageError.
	RelsAlways RelsRequirement = "always"
	// RelsNever means no relationship item is ever read for the part.
	RelsNever RelsRequirement = "never"
	// RelsOptional means the relationship item is read only if present.
	RelsOptional RelsRequirement = "optional"
)

// FormatKind selects which body slot of a Part is populated.
type FormatKind string

const (
	FormatXML    FormatKind = "xml"
	FormatBinary FormatKind = "binary"
)

// ModelLoader is the extension hook a document-model layer may associate
// with a content type. The packaging core never invokes it; it exists so
// the layer above can attach model construction to part types.
type ModelLoader func(part *Part) error

// PartTypeSpec describes the fixed characteristics of one part type, as
// defined in ECMA-376. Instances are cached per Registry, so at most one
// instance exists per content type for the lifetime of the registry.
type PartTypeSpec struct {
	// ContentType is the MIME-type-like string distinguishing parts of
	// this type, e.g.
	// "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml".
	ContentType string
	// Basename is the root of the part's filename within the package,
	// e.g. "slideLayout" for slideLayout1.xml.
	Basename string
	// Ext is the part filename extension, including the dot.
	Ext string
	// Cardinality is single for parts like presentation.xml, multiple for
	// numbered parts like slideLayout4.xml.
	Cardinality Cardinality
	// Required reports whether at least one instance of this part type
	// must appear in a package.
	Required bool
	// BaseDir is the package-relative directory part files of this type
	// live in, with a leading slash, e.g. "/ppt/slideMasters".
	BaseDir string
	// HasRels states whether parts of this type have a companion
	// relationship item.
	HasRels RelsRequirement
	// RelType is the URI identifying this part type in relationship items.
	RelType string
	// Loader is the model-loader hook registered for this content type,
	// or the registry's default loader if none. Never called by the core.
	Loader ModelLoader
}

// Format returns the format kind derived from the extension: xml iff the
// extension is ".xml", binary otherwise.
func (s *PartTypeSpec) Format() FormatKind {
	if s.Ext == ".xml" {
		return FormatXML
	}
	return FormatBinary
}

// Registry resolves content types to cached PartTypeSpec instances and
// holds the model-loader hooks for the layer above.
//
// A Registry is constructed once and passed by reference to every component
// that needs it; there is no process-wide shared instance, so tests and
// callers cannot contaminate each other through hidden state.
type Registry struct {
	specs         map[string]*PartTypeSpec
	loaders       map[string]ModelLoader
	defaultLoader ModelLoader
}

// NewRegistry creates a registry over the static part-type table.
func NewRegistry() *Registry {
	return &Registry{
		specs:   make(map[string]*PartTypeSpec),
		loaders: make(map[string]ModelLoader),
	}
}

// SpecFor returns the spec for contentType, creating and caching it on
// first request. Re-requesting the same content type returns the identical
// instance. Content types absent from the static format table fail with
// UnknownContentTypeError.
func (r *Registry) SpecFor(contentType string) (*PartTypeSpec, error) {
	if spec, ok := r.specs[contentType]; ok {
		return spec, nil
	}
	def, ok := partTypeTable[contentType]
	if !ok {
		return nil, &UnknownContentTypeError{ContentType: contentType}
	}
	spec := &PartTypeSpec{
		ContentType: contentType,
		Basename:    def.basename,
		Ext:         def.ext,
		Cardinality: def.cardinality,
		Required:    def.required,
		BaseDir:     def.baseDir,
		HasRels:     def.hasRels,
		RelType:     def.relType,
		Loader:      r.loaderFor(contentType),
	}
	r.specs[contentType] = spec
	return spec, nil
}

// RegisterLoader associates a model-loader hook with a content type. A spec
// already cached for that content type picks up the new loader, since the
// cached instance is shared by all lookups.
func (r *Registry) RegisterLoader(contentType string, loader ModelLoader) {
	r.loaders[contentType] = loader
	if spec, ok := r.specs[contentType]; ok {
		spec.Loader = loader
	}
}

// RegisterDefaultLoader sets the hook used for content types with no
// specific loader registered.
func (r *Registry) RegisterDefaultLoader(loader ModelLoader) {
	r.defaultLoader = loader
	for contentType, spec := range r.specs {
		if _, ok := r.loaders[contentType]; !ok {
			spec.Loader = loader
		}
	}
}

func (r *Registry) loaderFor(contentType string) ModelLoader {
	if loader, ok := r.loaders[contentType]; ok {
		return loader
	}
	return r.defaultLoader
}
