package rag

import "errors"

var (
	ErrEmptyQuestion = errors.New("question must not be empty")
	ErrNoIndex       = errors.New("retrieval index not built")
	ErrBadEmbedding  = errors.New("embedding response does not match request")
	ErrModelMismatch = errors.New("stored index was built with a different embedding model")
)
