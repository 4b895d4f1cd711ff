package opc

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// FileSystem provides uniform access to package items via their item path
// (e.g. "/_rels/.rels" or "/ppt/presentation.xml"), hiding whether the
// package is an expanded directory tree or a zip archive.
type FileSystem interface {
	// Contains reports whether an item with the given path exists.
	Contains(itemPath string) bool
	// ItemPaths returns all item paths, sorted. The order is deterministic
	// but carries no loading semantics; loading is graph-driven.
	ItemPaths() []string
	// Blob returns the raw bytes of the item at itemPath.
	Blob(itemPath string) ([]byte, error)
	// Element parses the item at itemPath as XML and returns its root
	// element.
	Element(itemPath string) (*etree.Element, error)
	// Path returns the filesystem location this package was opened from.
	Path() string
}

// OpenFileSystem determines what kind of package lives at location and
// returns the matching FileSystem. A location that is neither a directory
// nor a valid zip archive fails with PackageNotFoundError.
func OpenFileSystem(location string) (FileSystem, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, &PackageNotFoundError{Path: location}
	}
	if info.IsDir() {
		return newDirectoryFileSystem(location)
	}
	zfs, err := newZipFileSystem(location)
	if err != nil {
		return nil, &PackageNotFoundError{Path: location}
	}
	return zfs, nil
}

// parseItemXML turns an item's bytes into an element tree, failing with
// MalformedXMLError (distinct from ItemNotFoundError) on unparsable input.
func parseItemXML(itemPath string, blob []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(blob); err != nil {
		return nil, &MalformedXMLError{ItemPath: itemPath, Cause: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &MalformedXMLError{ItemPath: itemPath}
	}
	return root, nil
}

// DirectoryFileSystem provides access to a package that has been expanded
// into an on-disk directory structure. It is read-only.
type DirectoryFileSystem struct {
	root  string
	items []string
}

func newDirectoryFileSystem(root string) (*DirectoryFileSystem, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve package directory: %w", err)
	}
	dfs := &DirectoryFileSystem{root: abs}
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(abs, p)
		if err != nil {
			return err
		}
		dfs.items = append(dfs.items, "/"+filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate package directory: %w", err)
	}
	sort.Strings(dfs.items)
	return dfs, nil
}

func (dfs *DirectoryFileSystem) Contains(itemPath string) bool {
	for _, item := range dfs.items {
		if item == itemPath {
			return true
		}
	}
	return false
}

func (dfs *DirectoryFileSystem) ItemPaths() []string {
	paths := make([]string, len(dfs.items))
	copy(paths, dfs.items)
	return paths
}

func (dfs *DirectoryFileSystem) Blob(itemPath string) ([]byte, error) {
	if !dfs.Contains(itemPath) {
		return nil, &ItemNotFoundError{ItemPath: itemPath}
	}
	blob, err := os.ReadFile(filepath.Join(dfs.root, filepath.FromSlash(strings.TrimPrefix(itemPath, "/"))))
	if err != nil {
		return nil, fmt.Errorf("failed to read item '%s': %w", itemPath, err)
	}
	return blob, nil
}

func (dfs *DirectoryFileSystem) Element(itemPath string) (*etree.Element, error) {
	blob, err := dfs.Blob(itemPath)
	if err != nil {
		return nil, err
	}
	return parseItemXML(itemPath, blob)
}

func (dfs *DirectoryFileSystem) Path() string {
	return dfs.root
}

// ZipFileSystem provides access to a zip-based package (a regular Office
// file). The archive handle is acquired and released per operation; two
// operations never hold overlapping handles.
type ZipFileSystem struct {
	path  string
	items []string
}

func newZipFileSystem(path string) (*ZipFileSystem, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve package path: %w", err)
	}
	zr, err := zip.OpenReader(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer zr.Close()

	zfs := &ZipFileSystem{path: abs}
	for _, f := range zr.File {
		// zip archives can contain entries for directories; skip those
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		zfs.items = append(zfs.items, "/"+f.Name)
	}
	sort.Strings(zfs.items)
	return zfs, nil
}

func (zfs *ZipFileSystem) Contains(itemPath string) bool {
	for _, item := range zfs.items {
		if item == itemPath {
			return true
		}
	}
	return false
}

func (zfs *ZipFileSystem) ItemPaths() []string {
	paths := make([]string, len(zfs.items))
	copy(paths, zfs.items)
	return paths
}

func (zfs *ZipFileSystem) Blob(itemPath string) ([]byte, error) {
	if !zfs.Contains(itemPath) {
		return nil, &ItemNotFoundError{ItemPath: itemPath}
	}
	zr, err := zip.OpenReader(zfs.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer zr.Close()

	member := strings.TrimPrefix(itemPath, "/")
	for _, f := range zr.File {
		if f.Name != member {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open item '%s': %w", itemPath, err)
		}
		defer rc.Close()
		blob, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read item '%s': %w", itemPath, err)
		}
		return blob, nil
	}
	return nil, &ItemNotFoundError{ItemPath: itemPath}
}

func (zfs *ZipFileSystem) Element(itemPath string) (*etree.Element, error) {
	blob, err := zfs.Blob(itemPath)
	if err != nil {
		return nil, err
	}
	return parseItemXML(itemPath, blob)
}

func (zfs *ZipFileSystem) Path() string {
	return zfs.path
}

// PackageWriter writes a fresh zip archive one item at a time. The archive
// is append-only for the duration of the save session: writing an item
// path twice fails with DuplicateItemError, and items are never removed.
//
// Creating a writer over an existing file fails rather than truncating;
// callers must remove or rename a prior save target themselves.
type PackageWriter struct {
	path      string
	file      *os.File
	zw        *zip.Writer
	members   map[string]bool
	prettyXML bool
}

// NewPackageWriter creates a new, empty archive at path.
func NewPackageWriter(path string) (*PackageWriter, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, &DuplicateItemError{ItemPath: path}
		}
		return nil, fmt.Errorf("failed to create archive '%s': %w", path, err)
	}
	return &PackageWriter{
		path:      path,
		file:      f,
		zw:        zip.NewWriter(f),
		members:   make(map[string]bool),
		prettyXML: ConfigFromEnvironment().PrettyXML,
	}, nil
}

// WriteBlob appends blob under itemPath.
func (w *PackageWriter) WriteBlob(itemPath string, blob []byte) error {
	if w.members[itemPath] {
		return &DuplicateItemError{ItemPath: itemPath}
	}
	fw, err := w.zw.Create(strings.TrimPrefix(itemPath, "/"))
	if err != nil {
		return fmt.Errorf("failed to create archive member '%s': %w", itemPath, err)
	}
	if _, err := fw.Write(blob); err != nil {
		return fmt.Errorf("failed to write archive member '%s': %w", itemPath, err)
	}
	w.members[itemPath] = true
	return nil
}

// WriteElement appends element, serialized as an XML document with a
// declaration, under itemPath.
func (w *PackageWriter) WriteElement(itemPath string, element *etree.Element) error {
	if w.members[itemPath] {
		return &DuplicateItemError{ItemPath: itemPath}
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	doc.SetRoot(element.Copy())
	if w.prettyXML {
		doc.Indent(2)
	}
	blob, err := doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize item '%s': %w", itemPath, err)
	}
	return w.WriteBlob(itemPath, blob)
}

// Path returns the archive location being written.
func (w *PackageWriter) Path() string {
	return w.path
}

// Close finalizes the archive. The writer is unusable afterwards.
func (w *PackageWriter) Close() error {
	if err := w.zw.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to finalize archive '%s': %w", w.path, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close archive '%s': %w", w.path, err)
	}
	return nil
}
