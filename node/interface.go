// Package node implements the tree produced by the tree builder. Nodes
// live in an arena owned by a Tree and refer to each other by ID, so
// moving an element under a new parent is a matter of appending an
// index.
package node

import "errors"

// ID addresses a node within a Tree
type ID int

// InvalidID is returned by lookups that fail
const InvalidID ID = -1

// Type represents the type of a node in the tree
type Type int

const (
	InvalidType Type = iota
	DefinitionType
	ElementType
	CommentType
	TextType
	AttributeType
)

var (
	ErrInvalidNode      = errors.New("invalid node")
	ErrInvalidOperation = errors.New("invalid operation")
)

type entry struct {
	typ         Type
	name        string
	data        string
	publicID    string
	systemID    string
	hasPublicID bool
	hasSystemID bool
	children    []ID
	attributes  []ID
}

// Tree is the arena holding every node created during a parse.
// The zero value is ready to use.
type Tree struct {
	entries []entry
	roots   []ID
}

// WalkFunc is called by Walk for every node. depth is 0 for roots.
type WalkFunc func(id ID, depth int) error
