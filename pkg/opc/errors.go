package opc

import (
	"errors"
	"fmt"
)

// PackageNotFoundError indicates that the location given to Open is neither
// a package directory nor a valid zip archive.
type PackageNotFoundError struct {
	Path string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("package not found at '%s'", e.Path)
}

// ItemNotFoundError indicates an item path absent from the archive.
type ItemNotFoundError struct {
	ItemPath string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("no package item with path '%s'", e.ItemPath)
}

// MalformedXMLError indicates that an item's bytes were requested as XML but
// do not parse as a well-formed document.
type MalformedXMLError struct {
	ItemPath string
	Cause    error
}

func (e *MalformedXMLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("package item '%s' is not XML: %v", e.ItemPath, e.Cause)
	}
	return fmt.Sprintf("package item '%s' is not XML", e.ItemPath)
}

func (e *MalformedXMLError) Unwrap() error {
	return e.Cause
}

// ContentTypeNotFoundError indicates an item path that matches neither an
// override entry nor an extension default in the content-types index.
type ContentTypeNotFoundError struct {
	ItemPath string
}

func (e *ContentTypeNotFoundError) Error() string {
	return fmt.Sprintf("no content type for item path '%s'", e.ItemPath)
}

// UnregisteredExtensionError indicates a part extension with no entry in the
// default content-types table, found while composing the manifest.
type UnregisteredExtensionError struct {
	Extension string
}

func (e *UnregisteredExtensionError) Error() string {
	return fmt.Sprintf("extension '%s' not found in default content types", e.Extension)
}

// UnknownContentTypeError indicates a content type absent from the static
// part-type table.
type UnknownContentTypeError struct {
	ContentType string
}

func (e *UnknownContentTypeError) Error() string {
	return fmt.Sprintf("no part type spec for content type '%s'", e.ContentType)
}

// DuplicatePartError indicates an attempt to load a second part under an
// item path already present in the part collection.
type DuplicatePartError struct {
	ItemPath string
}

func (e *DuplicatePartError) Error() string {
	return fmt.Sprintf("cannot add part with duplicate item path '%s'", e.ItemPath)
}

// DuplicateRelationshipIDError indicates an attempt to add a relationship
// whose local id already exists in the owning collection.
type DuplicateRelationshipIDError struct {
	RelationshipID string
}

func (e *DuplicateRelationshipIDError) Error() string {
	return fmt.Sprintf("cannot add relationship with duplicate id '%s'", e.RelationshipID)
}

// DuplicateItemError indicates an attempt to append an item path already
// written in the current save session, or to create an archive over an
// existing file.
type DuplicateItemError struct {
	ItemPath string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("item with path '%s' already in package", e.ItemPath)
}

// CorruptedPackageError indicates a format invariant violation, such as a
// part whose type mandates a relationship item that is absent.
type CorruptedPackageError struct {
	ItemPath string
	Message  string
}

func (e *CorruptedPackageError) Error() string {
	if e.ItemPath != "" {
		return fmt.Sprintf("corrupted package: %s ('%s')", e.Message, e.ItemPath)
	}
	return fmt.Sprintf("corrupted package: %s", e.Message)
}

// PartNotFoundError indicates a part collection lookup miss.
type PartNotFoundError struct {
	ItemPath string
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("no part with item path '%s'", e.ItemPath)
}

// RelationshipNotFoundError indicates a relationship collection lookup miss.
type RelationshipNotFoundError struct {
	RelationshipID string
}

func (e *RelationshipNotFoundError) Error() string {
	return fmt.Sprintf("no relationship with id '%s'", e.RelationshipID)
}

// IsPackageNotFound checks if an error is a package-not-found error.
func IsPackageNotFound(err error) bool {
	var target *PackageNotFoundError
	return errors.As(err, &target)
}

// IsItemNotFound checks if an error is an item-not-found error.
func IsItemNotFound(err error) bool {
	var target *ItemNotFoundError
	return errors.As(err, &target)
}

// IsMalformedXML checks if an error is a malformed-XML error.
func IsMalformedXML(err error) bool {
	var target *MalformedXMLError
	return errors.As(err, &target)
}

// IsContentTypeNotFound checks if an error is a content-type resolution error.
func IsContentTypeNotFound(err error) bool {
	var target *ContentTypeNotFoundError
	return errors.As(err, &target)
}

// IsUnregisteredExtension checks if an error is an unregistered-extension error.
func IsUnregisteredExtension(err error) bool {
	var target *UnregisteredExtensionError
	return errors.As(err, &target)
}

// IsUnknownContentType checks if an error is an unknown-content-type error.
func IsUnknownContentType(err error) bool {
	var target *UnknownContentTypeError
	return errors.As(err, &target)
}

// IsDuplicatePart checks if an error is a duplicate-part error.
func IsDuplicatePart(err error) bool {
	var target *DuplicatePartError
	return errors.As(err, &target)
}

// IsDuplicateRelationshipID checks if an error is a duplicate-relationship-id error.
func IsDuplicateRelationshipID(err error) bool {
	var target *DuplicateRelationshipIDError
	return errors.As(err, &target)
}

// IsDuplicateItem checks if an error is a duplicate-item error.
func IsDuplicateItem(err error) bool {
	var target *DuplicateItemError
	return errors.As(err, &target)
}

// IsCorruptedPackage checks if an error is a corrupted-package error.
func IsCorruptedPackage(err error) bool {
	var target *CorruptedPackageError
	return errors.As(err, &target)
}

// IsPartNotFound checks if an error is a part-not-found error.
func IsPartNotFound(err error) bool {
	var target *PartNotFoundError
	return errors.As(err, &target)
}

// IsRelationshipNotFound checks if an error is a relationship-not-found error.
func IsRelationshipNotFound(err error) bool {
	var target *RelationshipNotFoundError
	return errors.As(err, &target)
}
