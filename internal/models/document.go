package models

// Document is a schema-less output record for sources without a canonical shape.
type Document map[string]any
