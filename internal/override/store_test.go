package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkwell/internal/command"
	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

func testStore() *Store {
	lib := command.NewLibrary([]command.Command{
		{Name: "rounded glass panel", Fragment: style.Fragment{"radius": "24px"}},
		{Name: "dark", Fragment: style.Fragment{"background": "#1c1c1e"}},
		{Name: "compact", Fragment: style.Fragment{"spacing": "1"}},
	})
	return NewStore(lib, nil)
}

func TestApplyCommandAppendsMatches(t *testing.T) {
	store := testStore()

	store.ApplyCommand("scan.preview", "make it a rounded glass panel please")

	snap := store.Get("scan.preview")
	assert.Equal(t, []string{"rounded glass panel"}, snap.Commands)
	assert.Equal(t, uint64(1), snap.Generation)
}

func TestApplyCommandNoMatchIsSilentNoOp(t *testing.T) {
	store := testStore()

	store.ApplyCommand("scan.preview", "nothing matches here")

	snap := store.Get("scan.preview")
	assert.Empty(t, snap.Commands)
	assert.Equal(t, uint64(0), snap.Generation)
}

func TestApplyCommandPreservesDuplicates(t *testing.T) {
	store := testStore()

	store.ApplyCommand("print.queue", "go dark")
	store.ApplyCommand("print.queue", "dark again")

	snap := store.Get("print.queue")
	assert.Equal(t, []string{"dark", "dark"}, snap.Commands)
}

func TestApplyCommandAppendsInLibraryOrder(t *testing.T) {
	store := testStore()

	store.ApplyCommand("print.queue", "compact and dark")

	snap := store.Get("print.queue")
	assert.Equal(t, []string{"dark", "compact"}, snap.Commands)
}

func TestSetManualOverrideIsCumulative(t *testing.T) {
	store := testStore()

	store.SetManualOverride("print.queue", style.Fragment{"radius": "8px", "spacing": "2"})
	store.SetManualOverride("print.queue", style.Fragment{"radius": "12px"})

	snap := store.Get("print.queue")
	assert.Equal(t, "12px", snap.Manual["radius"])
	assert.Equal(t, "2", snap.Manual["spacing"])
}

func TestSetManualOverrideMergesNestedMappings(t *testing.T) {
	store := testStore()

	store.SetManualOverride("scan.preview", style.Fragment{
		"padding": style.Fragment{"handset": "4px", "desk": "8px"},
	})
	store.SetManualOverride("scan.preview", style.Fragment{
		"padding": style.Fragment{"desk": "16px"},
	})

	snap := store.Get("scan.preview")
	padding, ok := snap.Manual["padding"].(style.Fragment)
	require.True(t, ok)
	assert.Equal(t, "4px", padding["handset"])
	assert.Equal(t, "16px", padding["desk"])
}

func TestResetClearsBothParts(t *testing.T) {
	store := testStore()

	store.ApplyCommand("device.status", "dark")
	store.SetManualOverride("device.status", style.Fragment{"opacity": 0.5})
	store.Reset("device.status")

	snap := store.Get("device.status")
	assert.Empty(t, snap.Commands)
	assert.True(t, snap.Manual.IsEmpty())
}

func TestResetKeepsGenerationMonotonic(t *testing.T) {
	store := testStore()

	store.ApplyCommand("device.status", "dark")
	before := store.Generation("device.status")
	store.Reset("device.status")

	assert.Greater(t, store.Generation("device.status"), before)
}

func TestResetUntouchedKeyIsNoOp(t *testing.T) {
	store := testStore()

	store.Reset("never.touched")

	assert.Equal(t, uint64(0), store.Generation("never.touched"))
}

func TestGenerationBumpsOnEveryMutation(t *testing.T) {
	store := testStore()

	assert.Equal(t, uint64(0), store.Generation("print.queue"))
	store.ApplyCommand("print.queue", "dark")
	assert.Equal(t, uint64(1), store.Generation("print.queue"))
	store.SetManualOverride("print.queue", style.Fragment{"radius": "8px"})
	assert.Equal(t, uint64(2), store.Generation("print.queue"))
	store.Reset("print.queue")
	assert.Equal(t, uint64(3), store.Generation("print.queue"))
}

func TestGetReturnsIsolatedSnapshot(t *testing.T) {
	store := testStore()

	store.ApplyCommand("print.queue", "dark")
	store.SetManualOverride("print.queue", style.Fragment{"radius": "8px"})

	snap := store.Get("print.queue")
	snap.Commands[0] = "tampered"
	snap.Manual["radius"] = "tampered"

	fresh := store.Get("print.queue")
	assert.Equal(t, []string{"dark"}, fresh.Commands)
	assert.Equal(t, "8px", fresh.Manual["radius"])
}

func TestStateIsScopedPerKey(t *testing.T) {
	store := testStore()

	store.ApplyCommand("print.queue", "dark")

	assert.Empty(t, store.Get("scan.preview").Commands)
	assert.Equal(t, uint64(0), store.Generation("scan.preview"))
}
