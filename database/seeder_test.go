package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedUserMaster(t *testing.T) {
	store := NewStore(t.TempDir())
	RunSeeders(store)

	lines := store.ReadLines(UsersFile)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "OW001,admin,"))

	// running again must not duplicate the admin row
	RunSeeders(store)
	assert.Len(t, store.ReadLines(UsersFile), 1)
}
