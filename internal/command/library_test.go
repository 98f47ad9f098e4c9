package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

func testLibrary() *Library {
	return NewLibrary([]Command{
		{Name: "rounded glass panel", Fragment: style.Fragment{"radius": "24px", "backdrop": "blur(18px)"}},
		{Name: "dark", Fragment: style.Fragment{"background": "#1c1c1e"}},
		{Name: "compact", Fragment: style.Fragment{"spacing": "1"}},
	})
}

func TestLookupKnownCommand(t *testing.T) {
	lib := testLibrary()

	fragment := lib.Lookup("dark")
	require.NotNil(t, fragment)
	assert.Equal(t, "#1c1c1e", fragment["background"])
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	lib := testLibrary()

	assert.NotNil(t, lib.Lookup("DARK"))
	assert.True(t, lib.Has("Dark"))
}

func TestLookupUnknownCommandReturnsNil(t *testing.T) {
	lib := testLibrary()

	assert.Nil(t, lib.Lookup("nonexistent"))
	assert.False(t, lib.Has("nonexistent"))
}

func TestLookupReturnsCopy(t *testing.T) {
	lib := testLibrary()

	first := lib.Lookup("dark")
	first["background"] = "tampered"

	second := lib.Lookup("dark")
	assert.Equal(t, "#1c1c1e", second["background"])
}

func TestNamesPreserveRegistrationOrder(t *testing.T) {
	lib := testLibrary()

	assert.Equal(t, []string{"rounded glass panel", "dark", "compact"}, lib.Names())
}

func TestInterpretMatchesSubstring(t *testing.T) {
	lib := testLibrary()

	matches := lib.Interpret("make it a rounded glass panel please")
	assert.Equal(t, []string{"rounded glass panel"}, matches)
}

func TestInterpretIsCaseInsensitive(t *testing.T) {
	lib := testLibrary()

	lower := lib.Interpret("switch to dark and compact")
	upper := lib.Interpret("SWITCH TO Dark AND Compact")

	assert.Equal(t, lower, upper)
	assert.Equal(t, []string{"dark", "compact"}, lower)
}

func TestInterpretReturnsRegistrationOrderNotTextOrder(t *testing.T) {
	lib := testLibrary()

	// "compact" precedes "dark" in the text but follows it in the library.
	matches := lib.Interpret("compact but also dark")
	assert.Equal(t, []string{"dark", "compact"}, matches)
}

func TestInterpretMatchesInsideUnrelatedWords(t *testing.T) {
	lib := testLibrary()

	// Containment is deliberate: "darkroom" still matches "dark".
	matches := lib.Interpret("print the darkroom photos")
	assert.Equal(t, []string{"dark"}, matches)
}

func TestInterpretNoMatches(t *testing.T) {
	lib := testLibrary()

	assert.Empty(t, lib.Interpret("nothing relevant here"))
}

func TestInterpretNeverInventsNames(t *testing.T) {
	lib := testLibrary()

	for _, name := range lib.Interpret("dark compact glass") {
		assert.True(t, lib.Has(name))
	}
}

func TestNewLibrarySkipsBlankAndNormalizesNames(t *testing.T) {
	lib := NewLibrary([]Command{
		{Name: "  Soft Shadow  ", Fragment: style.Fragment{"shadow": "soft"}},
		{Name: "", Fragment: style.Fragment{"ignored": true}},
	})

	assert.Equal(t, []string{"soft shadow"}, lib.Names())
	assert.NotNil(t, lib.Lookup("soft shadow"))
}

func TestBuiltinCommandsResolve(t *testing.T) {
	lib := Builtin()

	require.True(t, lib.Has("rounded glass panel"))
	require.True(t, lib.Has("high contrast"))

	fragment := lib.Lookup("compact")
	require.NotNil(t, fragment)
	_, ok := fragment["padding"].(style.Fragment)
	assert.True(t, ok, "compact should carry a responsive padding mapping")
}
