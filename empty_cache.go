package pcol

import (
	"reflect"
	"sync"

	"github.com/arborlib/pcol/internal/champ"
	"github.com/arborlib/pcol/internal/rrb"
)

// Canonical empty roots are cached per generic instantiation (spec §9,
// "Empty-instance sharing"): Go has no way to declare one package-level
// variable per instantiation of a generic type, so the cache is keyed by
// reflect.Type instead. This is purely a reuse optimisation — every
// instantiation still produces a structurally-identical empty root even
// on a cache miss.
var (
	emptyListRoots sync.Map // reflect.Type -> any (rrb.Root[T])
	emptyMapRoots  sync.Map // [2]reflect.Type -> any (champ.Root[K,V])
)

func emptyListRoot[T any]() rrb.Root[T] {
	var zero T
	key := reflect.TypeOf(&zero).Elem()
	if v, ok := emptyListRoots.Load(key); ok {
		return v.(rrb.Root[T])
	}
	root := rrb.Empty[T]()
	actual, _ := emptyListRoots.LoadOrStore(key, root)
	return actual.(rrb.Root[T])
}

func emptyMapRoot[K comparable, V any]() champ.Root[K, V] {
	var zk K
	var zv V
	key := [2]reflect.Type{reflect.TypeOf(&zk).Elem(), reflect.TypeOf(&zv).Elem()}
	if v, ok := emptyMapRoots.Load(key); ok {
		return v.(champ.Root[K, V])
	}
	root := champ.Empty[K, V]()
	actual, _ := emptyMapRoots.LoadOrStore(key, root)
	return actual.(champ.Root[K, V])
}
