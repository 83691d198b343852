package assets

import (
	"reflect"
	"slices"
	"testing"

	"github.com/alindqvist/blackwhite/shared/leveldata"
)

func TestEmbeddedLevelsMatchBuiltin(t *testing.T) {
	loaded, err := LoadLevelTable()
	if err != nil {
		t.Fatalf("LoadLevelTable: %v", err)
	}
	builtin := leveldata.Builtin()

	if !slices.Equal(loaded.IDs(), builtin.IDs()) {
		t.Fatalf("expected ids %v, got %v", builtin.IDs(), loaded.IDs())
	}

	for _, id := range append(builtin.IDs(), leveldata.FallbackID, 99) {
		want, _ := builtin.Lookup(id)
		got, _ := loaded.Lookup(id)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("level %d:\n got %+v\nwant %+v", id, got, want)
		}
	}
}
