package store

import (
	"reflect"
	"testing"
)

type entity struct {
	ID   string
	Name string
}

func (e entity) EntityID() string { return e.ID }

func seeded(items ...entity) *Collection[entity] {
	c := NewCollection[entity]()
	c.Initialize(items)
	return c
}

func ids(items []entity) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.ID
	}
	return out
}

func TestCollectionAddPrepends(t *testing.T) {
	c := seeded(entity{ID: "a"}, entity{ID: "b"})
	c.Add(entity{ID: "c"})

	got := ids(c.Items())
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCollectionReplaceIsIdempotent(t *testing.T) {
	c := seeded(entity{ID: "a", Name: "old"}, entity{ID: "b"})

	c.Replace(entity{ID: "a", Name: "new"})
	once := c.Items()
	c.Replace(entity{ID: "a", Name: "new"})
	twice := c.Items()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("replace not idempotent: %v vs %v", once, twice)
	}
	if got, _ := c.GetByID("a"); got.Name != "new" {
		t.Fatalf("replace did not apply: %+v", got)
	}
}

func TestCollectionReplaceUnknownIDIsNoop(t *testing.T) {
	c := seeded(entity{ID: "a"}, entity{ID: "b"})
	before := c.Items()
	c.Replace(entity{ID: "ghost"})
	if !reflect.DeepEqual(before, c.Items()) {
		t.Fatal("replacing an absent id must leave the collection unchanged")
	}
}

func TestCollectionAddThenDeleteRestoresOrder(t *testing.T) {
	c := seeded(entity{ID: "a"}, entity{ID: "b"})
	before := c.Items()

	c.Add(entity{ID: "tmp"})
	c.Delete("tmp")

	if !reflect.DeepEqual(before, c.Items()) {
		t.Fatalf("add+delete must restore the collection: %v vs %v", before, c.Items())
	}
}

func TestCollectionDeleteUnknownIDIsNoop(t *testing.T) {
	c := seeded(entity{ID: "a"})
	c.Delete("ghost")
	if c.Len() != 1 {
		t.Fatal("deleting an absent id must be a no-op")
	}
}

func TestCollectionGetByID(t *testing.T) {
	c := seeded(entity{ID: "a", Name: "Ali"})
	got, ok := c.GetByID("a")
	if !ok || got.Name != "Ali" {
		t.Fatalf("unexpected lookup result %+v %v", got, ok)
	}
	if _, ok := c.GetByID("ghost"); ok {
		t.Fatal("lookup of absent id must report not found")
	}
}

func TestCollectionFilteredViewStaysConsistent(t *testing.T) {
	c := seeded(entity{ID: "a", Name: "keep"}, entity{ID: "b", Name: "drop"})
	view := c.Filtered(func(e entity) bool { return e.Name == "keep" })

	if got := ids(view.Get()); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("unexpected initial view %v", got)
	}

	c.Add(entity{ID: "c", Name: "keep"})
	if got := ids(view.Get()); !reflect.DeepEqual(got, []string{"c", "a"}) {
		t.Fatalf("view did not track add: %v", got)
	}

	c.Delete("a")
	if got := ids(view.Get()); !reflect.DeepEqual(got, []string{"c"}) {
		t.Fatalf("view did not track delete: %v", got)
	}
}

func TestCollectionInitializeCopiesInput(t *testing.T) {
	source := []entity{{ID: "a"}}
	c := NewCollection[entity]()
	c.Initialize(source)
	source[0] = entity{ID: "mutated"}
	if got, _ := c.GetByID("a"); got.ID != "a" {
		t.Fatal("collection must not alias caller slices")
	}
}
