package rbtree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/gostonefire/assoctables"
	"github.com/gostonefire/assoctables/internal/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ assoctables.Container[int, string] = (*Tree[int, string])(nil)

// checkInvariants - Verifies ordering, parent links, coloring, black height, the size of the tree and that the
// nil node was never written to
func checkInvariants[K int | string, V any](t *testing.T, tree *Tree[K, V]) {
	t.Helper()

	require.Equal(t, node[K, V]{color: black}, *tree.node(arena.Null), "nil node untouched")
	require.Equal(t, black, tree.colorOf(tree.root), "root is black")

	var walk func(i, parent int) (blackHeight, count int)
	walk = func(i, parent int) (int, int) {
		if i == arena.Null {
			return 1, 0
		}
		n := tree.node(i)
		require.Equal(t, parent, n.parent, "parent link of node %v", n.key)
		if n.left != arena.Null {
			require.Less(t, tree.node(n.left).key, n.key, "left key is smaller")
		}
		if n.right != arena.Null {
			require.Greater(t, tree.node(n.right).key, n.key, "right key is bigger")
		}
		if n.color == red {
			require.Equal(t, black, tree.colorOf(n.left), "red node %v has black children", n.key)
			require.Equal(t, black, tree.colorOf(n.right), "red node %v has black children", n.key)
		}
		lb, lc := walk(n.left, i)
		rb, rc := walk(n.right, i)
		require.Equal(t, lb, rb, "same black height below %v", n.key)
		if n.color == black {
			lb++
		}
		return lb, 1 + lc + rc
	}

	_, count := walk(tree.root, arena.Null)
	require.Equal(t, tree.Len(), count, "size matches node count")
	require.Equal(t, count, tree.nodes.Len(), "no leaked nodes")
}

// inOrder - Collects keys by walking the tree with an iterator
func inOrder[K int | string, V any](t *testing.T, tree *Tree[K, V]) []K {
	t.Helper()

	var keys []K
	for it := tree.Begin(); !it.Equal(tree.End()); {
		k, err := it.Key()
		require.NoError(t, err)
		keys = append(keys, k)
		require.NoError(t, it.Next())
	}
	return keys
}

func TestTree_Insert(t *testing.T) {
	t.Run("inserts new keys and updates existing ones", func(t *testing.T) {
		// Prepare
		tree := New[string, int]()

		// Execute
		it, inserted := tree.Insert("b", 1)

		// Check
		assert.True(t, inserted, "new key")
		k, err := it.Key()
		require.NoError(t, err)
		assert.Equal(t, "b", k, "iterator at the new key")

		// Execute
		it, inserted = tree.Insert("b", 2)

		// Check
		assert.False(t, inserted, "existing key")
		v, err := it.Value()
		require.NoError(t, err)
		assert.Equal(t, 2, *v, "value updated in place")
		assert.Equal(t, 1, tree.Len())
		checkInvariants(t, tree)
	})

	t.Run("keeps ascending and descending runs balanced", func(t *testing.T) {
		// Prepare
		asc := New[int, int]()
		desc := New[int, int]()

		// Execute
		for i := 0; i < 200; i++ {
			asc.Insert(i, i)
			desc.Insert(200-i, i)
			checkInvariants(t, asc)
			checkInvariants(t, desc)
		}

		// Check
		assert.Equal(t, 200, asc.Len())
		assert.Equal(t, 200, desc.Len())
	})
}

func TestTree_Erase(t *testing.T) {
	t.Run("erases a node with two children", func(t *testing.T) {
		// Prepare
		tree := New[int, string]()
		for _, k := range []int{50, 25, 75, 10, 30} {
			tree.Insert(k, "v")
		}

		// Execute
		erased := tree.Erase(25)

		// Check
		assert.True(t, erased, "existing key")
		assert.Equal(t, []int{10, 30, 50, 75}, inOrder(t, tree))
		checkInvariants(t, tree)
	})

	t.Run("ignores missing keys", func(t *testing.T) {
		// Prepare
		tree := New[int, string]()
		tree.Insert(1, "one")

		// Execute & Check
		assert.False(t, tree.Erase(2), "missing key")
		assert.False(t, New[int, string]().Erase(2), "empty tree")
		assert.Equal(t, 1, tree.Len())
	})

	t.Run("erases every key in random order", func(t *testing.T) {
		// Prepare
		rg := rand.New(rand.NewSource(4))
		tree := New[int, int]()
		keys := rg.Perm(300)
		for _, k := range keys {
			tree.Insert(k, k)
		}
		rg.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

		// Execute
		for _, k := range keys {
			require.True(t, tree.Erase(k))
			checkInvariants(t, tree)
		}

		// Check
		assert.True(t, tree.Empty())
		assert.True(t, tree.Begin().Equal(tree.End()))
	})
}

func TestTree_Index(t *testing.T) {
	t.Run("finds or inserts a default value", func(t *testing.T) {
		// Prepare
		tree := New[string, int]()

		// Execute
		*tree.Index("a") = 5
		*tree.Index("a") += 1
		v := tree.Index("b")

		// Check
		assert.Equal(t, 0, *v, "zero value inserted")
		assert.Equal(t, 2, tree.Len())
		got, err := tree.Find("a").Value()
		require.NoError(t, err)
		assert.Equal(t, 6, *got)
		checkInvariants(t, tree)
	})
}

func TestTree_Clone(t *testing.T) {
	t.Run("creates an independent deep copy", func(t *testing.T) {
		// Prepare
		tree := New[int, string]()
		for i := 0; i < 20; i++ {
			tree.Insert(i, "v")
		}

		// Execute
		cp := tree.Clone()
		cp.Erase(5)
		*cp.Index(6) = "changed"
		tree.Insert(100, "new")

		// Check
		checkInvariants(t, tree)
		checkInvariants(t, cp)
		assert.True(t, tree.Contains(5), "erase in copy not visible in original")
		assert.False(t, cp.Contains(100), "insert in original not visible in copy")
		v, _ := tree.Find(6).Value()
		assert.Equal(t, "v", *v, "original value untouched")
		assert.Equal(t, 21, tree.Len())
		assert.Equal(t, 19, cp.Len())
	})
}

func TestTree_Clear(t *testing.T) {
	t.Run("removes all entries", func(t *testing.T) {
		// Prepare
		tree := New[int, int]()
		for i := 0; i < 10; i++ {
			tree.Insert(i, i)
		}
		it := tree.Begin()

		// Execute
		tree.Clear()

		// Check
		assert.True(t, tree.Empty())
		assert.False(t, it.Valid(), "iterators invalidated")
		checkInvariants(t, tree)
		tree.Insert(1, 1)
		assert.Equal(t, []int{1}, inOrder(t, tree), "usable after clear")
	})
}

func TestTree_Random(t *testing.T) {
	t.Run("matches an ordered btree model", func(t *testing.T) {
		// Prepare
		rg := rand.New(rand.NewSource(5))
		tree := New[int, int]()
		model := btree.NewOrderedG[int](8)
		values := make(map[int]int)

		// Execute
		for i := 0; i < 5000; i++ {
			k := rg.Intn(500)
			if rg.Intn(3) < 2 {
				_, inserted := tree.Insert(k, i)
				_, replaced := model.ReplaceOrInsert(k)
				assert.Equal(t, !replaced, inserted, "insert reports new keys")
				values[k] = i
			} else {
				_, in := model.Delete(k)
				assert.Equal(t, in, tree.Erase(k), "erase reports existing keys")
				delete(values, k)
			}
			if i%100 == 0 {
				checkInvariants(t, tree)
			}
		}

		// Check
		checkInvariants(t, tree)
		var want []int
		model.Ascend(func(k int) bool {
			want = append(want, k)
			return true
		})
		assert.Empty(t, cmp.Diff(want, inOrder(t, tree)), "same keys in the same order")
		for k, v := range tree.All() {
			assert.Equal(t, values[k], v, "value of %d", k)
		}
	})
}

func TestIterator(t *testing.T) {
	t.Run("nil iterator cannot be used", func(t *testing.T) {
		// Prepare
		tree := New[int, string]()
		tree.Insert(1, "one")
		it := tree.Find(2)

		// Execute
		_, errKey := it.Key()
		_, errValue := it.Value()
		errNext := it.Next()

		// Check
		assert.True(t, it.Equal(tree.End()), "missing key gives End")
		assert.True(t, errors.Is(errKey, assoctables.InvalidIterator{}))
		assert.True(t, errors.Is(errValue, assoctables.InvalidIterator{}))
		assert.True(t, errors.Is(errNext, assoctables.InvalidIterator{}))
	})

	t.Run("structural changes invalidate iterators", func(t *testing.T) {
		// Prepare
		tree := New[int, string]()
		tree.Insert(1, "one")
		it := tree.Begin()

		// Execute
		tree.Insert(1, "uno")

		// Check
		assert.True(t, it.Valid(), "update keeps iterators valid")
		tree.Insert(2, "two")
		assert.False(t, it.Valid(), "new key invalidates")
	})
}
