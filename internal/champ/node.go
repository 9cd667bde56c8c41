// Package champ implements the CHAMP trie (compressed hash-array mapped
// prefix trie) that backs pcol's persistent Map: a 32-way trie keyed by a
// caller-supplied hash, with twin presence bitmaps and canonical collapse
// on deletion (spec §3.3, §4.4).
package champ

import (
	"unsafe"

	"github.com/arborlib/pcol/internal/owner"
)

// Branching and shift constants (spec §3.1).
const (
	M         = 32 // branching factor, same as the RRB tree
	LogM      = 5
	HashBits  = 32
	MaxShift  = 30 // six 5-bit levels; the residual 2 bits collapse into a collision node
	bitMask   = M - 1
)

type kind uint8

const (
	kindEmpty kind = iota
	kindData
	kindCollision
	kindBitmap
)

// node is the common header shared by every CHAMP node variant. As in the
// RRB engine, each concrete type embeds it first so a *node[K,V] can be
// reinterpreted once its kind tag is known — the teacher's tagged
// node-kind dispatch (art/common_node_functions.go), narrowed here from
// the teacher's 256-bit bitfield256 to CHAMP's twin 32-bit bitmaps.
type node[K comparable, V any] struct {
	kind  kind
	owner *owner.Owner
	count int // total entries beneath this node
}

// dataNode holds exactly one (key, value) pair and its hash, used both as
// a leaf of the trie and as the inlined form of a canonicalised singleton.
type dataNode[K comparable, V any] struct {
	node[K, V]
	hash  uint32
	key   K
	value V
}

// collisionNode holds ≥2 entries that share a full hash but compare
// unequal by ==.
type collisionNode[K comparable, V any] struct {
	node[K, V]
	hash   uint32
	keys   []K
	values []V
}

// bitmapNode holds disjoint dataMap/nodeMap bitmaps plus two parallel
// typed slices: keys/values for data entries (front-packed, bitmap order)
// and children for sub-nodes (also bitmap order). The spec's single
// mixed compact array (data front, sub-nodes reversed from the back)
// relies on a host language that can store heterogeneous element kinds
// in one array slot; Go's generics give no safe way to type-pun a
// []K/[]V pair and a []*node[K,V] into one slice without erasing to
// `any` (which the teacher's concrete-typed-field style avoids
// everywhere else), so this trie keeps the same two bitmaps but splits
// the payload into two parallel typed slices instead of one reversed
// compact array. Indexing math (popcount of the masked bitmap) is
// unchanged; only the storage shape differs (see DESIGN.md).
type bitmapNode[K comparable, V any] struct {
	node[K, V]
	dataMap uint32
	nodeMap uint32
	keys    []K
	values  []V
	children []*node[K, V]
}

func (n *node[K, V]) asData() *dataNode[K, V] {
	if n.kind != kindData {
		panic("champ: node is not a data node")
	}
	return (*dataNode[K, V])(unsafe.Pointer(n))
}

func (n *node[K, V]) asCollision() *collisionNode[K, V] {
	if n.kind != kindCollision {
		panic("champ: node is not a collision node")
	}
	return (*collisionNode[K, V])(unsafe.Pointer(n))
}

func (n *node[K, V]) asBitmap() *bitmapNode[K, V] {
	if n.kind != kindBitmap {
		panic("champ: node is not a bitmap node")
	}
	return (*bitmapNode[K, V])(unsafe.Pointer(n))
}

func (d *dataNode[K, V]) asNode() *node[K, V]      { return &d.node }
func (c *collisionNode[K, V]) asNode() *node[K, V] { return &c.node }
func (b *bitmapNode[K, V]) asNode() *node[K, V]    { return &b.node }

func emptyNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{kind: kindEmpty}
}

func newDataNode[K comparable, V any](hash uint32, key K, value V) *node[K, V] {
	d := &dataNode[K, V]{hash: hash, key: key, value: value}
	d.kind = kindData
	d.count = 1
	return d.asNode()
}

func newDataNodeOwned[K comparable, V any](hash uint32, key K, value V, o *owner.Owner) *node[K, V] {
	n := newDataNode(hash, key, value)
	n.owner = o
	return n
}

func newCollisionNode[K comparable, V any](hash uint32, keys []K, values []V) *node[K, V] {
	c := &collisionNode[K, V]{hash: hash, keys: keys, values: values}
	c.kind = kindCollision
	c.count = len(keys)
	return c.asNode()
}

func newCollisionNodeOwned[K comparable, V any](hash uint32, keys []K, values []V, o *owner.Owner) *node[K, V] {
	n := newCollisionNode(hash, keys, values)
	n.owner = o
	return n
}

func newBitmapNode[K comparable, V any](dataMap, nodeMap uint32, keys []K, values []V, children []*node[K, V]) *node[K, V] {
	b := &bitmapNode[K, V]{dataMap: dataMap, nodeMap: nodeMap, keys: keys, values: values, children: children}
	b.kind = kindBitmap
	b.count = len(keys)
	for _, c := range children {
		b.count += c.count
	}
	return b.asNode()
}

func newBitmapNodeOwned[K comparable, V any](dataMap, nodeMap uint32, keys []K, values []V, children []*node[K, V], o *owner.Owner) *node[K, V] {
	n := newBitmapNode(dataMap, nodeMap, keys, values, children)
	n.owner = o
	return n
}

func bitpos(frag uint32) uint32 { return 1 << frag }

func fragment(hash uint32, shift uint8) uint32 {
	return (hash >> shift) & bitMask
}

func popcount(x uint32) int {
	c := 0
	for x != 0 {
		x &= x - 1
		c++
	}
	return c
}

// dataIndex returns the position of the data slot for bitpos within a
// bitmap node's data-section bitmap.
func dataIndex(dataMap, bp uint32) int {
	return popcount(dataMap & (bp - 1))
}

// nodeIndex returns the position of the sub-node slot for bitpos within a
// bitmap node's node-section bitmap.
func nodeIndex(nodeMap, bp uint32) int {
	return popcount(nodeMap & (bp - 1))
}
