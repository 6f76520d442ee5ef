package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-games/birdclash/internal/game/catalog"
	"github.com/kestrel-games/birdclash/internal/game/effect"
)

const sparrowYAML = `id: sparrow
name: Sparrow
description: Small but scrappy.
stats:
  health: 80
  attack: 11
  defense: 8
  speed: 14
ability:
  name: Peck Storm
  kind: damage
  power: 6
  hits: 3
  cooldown_seconds: 6
passive:
  name: Thrifty
  stream: coin_gain
  multiplier: 1.05
`

const heronYAML = `id: heron
name: Heron
stats:
  health: 110
  attack: 13
  defense: 11
  speed: 7
ability:
  name: Still Stance
  kind: buff
  stream: attack
  multiplier: 1.3
  duration_seconds: 4
  cooldown_seconds: 10
  lua_on_apply: "multiplier = 1 + 0.3 * stacks"
passive:
  name: Patience
  stream: xp_gain
  multiplier: 1.05
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sparrow.yaml", sparrowYAML)
	writeFile(t, dir, "heron.yaml", heronYAML)
	writeFile(t, dir, "notes.txt", "ignored")

	c, err := catalog.LoadDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	// Lexical order: heron before sparrow.
	all := c.All()
	assert.Equal(t, "heron", all[0].ID)
	assert.Equal(t, "sparrow", all[1].ID)

	heron, err := c.Archetype("heron")
	require.NoError(t, err)
	assert.Equal(t, effect.KindBuff, heron.Ability.Kind)
	assert.NotEmpty(t, heron.Ability.LuaOnApply)
}

func TestLoadDirectory_UnknownFieldRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", sparrowYAML+"favorite_snack: crumbs\n")
	_, err := catalog.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_InvalidArchetypeRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "id: ghost\nname: Ghost\n")
	_, err := catalog.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_EmptyDir(t *testing.T) {
	_, err := catalog.LoadDirectory(t.TempDir())
	assert.Error(t, err)
}

func TestLoadDirectory_MissingDir(t *testing.T) {
	_, err := catalog.LoadDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadDirectory_MatchesBuiltinRoster(t *testing.T) {
	// The shipped content/birds files must stay in sync with the built-in set.
	dir := filepath.Join("..", "..", "..", "content", "birds")
	if _, err := os.Stat(dir); err != nil {
		t.Skipf("content dir not present: %v", err)
	}
	loaded, err := catalog.LoadDirectory(dir)
	require.NoError(t, err)
	builtin := catalog.Default()
	require.Equal(t, builtin.Len(), loaded.Len())
	for _, a := range builtin.All() {
		got, err := loaded.Archetype(a.ID)
		require.NoError(t, err, a.ID)
		assert.Equal(t, a.Stats, got.Stats, a.ID)
		assert.Equal(t, a.Ability, got.Ability, a.ID)
		assert.Equal(t, a.Passive, got.Passive, a.ID)
	}
}
