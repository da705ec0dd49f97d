package cache

import "errors"

// ErrUnsupportedDumpVersion is returned by Load when a document's
// dump_version is not one this package knows how to read.
var ErrUnsupportedDumpVersion = errors.New("cache: unsupported dump_version")

// ErrNotSupported mirrors the source's SerializationException::NotSupported.
var ErrNotSupported = errors.New("cache: operation not supported")

// ErrInvalidDescriptorIndex mirrors the source's
// SerializationException::InvalidDescriptorIndex: the document
// referenced a descriptor index its own descriptor counts don't allow.
var ErrInvalidDescriptorIndex = errors.New("cache: invalid descriptor index in document")

// ErrInternal mirrors the source's SerializationException::InternalError.
var ErrInternal = errors.New("cache: internal serialization error")
