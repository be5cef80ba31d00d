package cron

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCrontab backs the crontab read/write vars with an in-memory table.
type fakeCrontab struct {
	content []byte
	writes  int
}

func stubCrontab(t *testing.T, initial string) *fakeCrontab {
	t.Helper()
	fake := &fakeCrontab{content: []byte(initial)}
	origRead := readCrontab
	origWrite := writeCrontab
	readCrontab = func() ([]byte, error) { return fake.content, nil }
	writeCrontab = func(content []byte) error {
		fake.content = content
		fake.writes++
		return nil
	}
	t.Cleanup(func() {
		readCrontab = origRead
		writeCrontab = origWrite
	})
	return fake
}

func makeDeployment(t *testing.T, withScript bool) string {
	t.Helper()
	root := t.TempDir()
	if withScript {
		require.NoError(t, os.WriteFile(filepath.Join(root, "cron.php"), []byte("<?php\n"), 0o644))
	}
	return root
}

func TestEntry(t *testing.T) {
	t.Parallel()
	entry := Entry("/var/www/mirza", "/usr/bin/php", "cron.php")
	assert.Equal(t,
		"*/5 * * * * cd /var/www/mirza && /usr/bin/php /var/www/mirza/cron.php >/dev/null 2>&1",
		entry)
}

func TestSchedule_AddsEntry(t *testing.T) {
	fake := stubCrontab(t, "")
	root := makeDeployment(t, true)

	scheduled, err := Schedule(root, "/usr/bin/php", "cron.php")
	require.NoError(t, err)
	assert.True(t, scheduled)
	assert.Equal(t, Entry(root, "/usr/bin/php", "cron.php")+"\n", string(fake.content))
}

func TestSchedule_NoDuplicateAfterRepeatedRuns(t *testing.T) {
	fake := stubCrontab(t, "")
	root := makeDeployment(t, true)

	for i := 0; i < 3; i++ {
		_, err := Schedule(root, "/usr/bin/php", "cron.php")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, strings.Count(string(fake.content), root),
		"crontab must hold at most one entry for the deployment path")
}

func TestSchedule_PreservesUnrelatedEntries(t *testing.T) {
	other := "0 3 * * * /usr/local/bin/backup.sh\n"
	fake := stubCrontab(t, other)
	root := makeDeployment(t, true)

	_, err := Schedule(root, "/usr/bin/php", "cron.php")
	require.NoError(t, err)

	assert.Contains(t, string(fake.content), "/usr/local/bin/backup.sh")
	assert.Contains(t, string(fake.content), root)
}

func TestSchedule_MissingScriptRemovesEntry(t *testing.T) {
	root := makeDeployment(t, false)
	fake := stubCrontab(t, Entry(root, "/usr/bin/php", "cron.php")+"\n")

	scheduled, err := Schedule(root, "/usr/bin/php", "cron.php")
	require.NoError(t, err)
	assert.False(t, scheduled)
	assert.NotContains(t, string(fake.content), root)
}

func TestRemove(t *testing.T) {
	root := makeDeployment(t, true)
	other := "0 3 * * * /usr/local/bin/backup.sh"
	fake := stubCrontab(t, other+"\n"+Entry(root, "/usr/bin/php", "cron.php")+"\n")

	require.NoError(t, Remove(root))

	assert.NotContains(t, string(fake.content), root)
	assert.Contains(t, string(fake.content), other)
}

func TestRemove_NoMatchingEntrySkipsWrite(t *testing.T) {
	fake := stubCrontab(t, "0 3 * * * /usr/local/bin/backup.sh\n")

	require.NoError(t, Remove("/var/www/mirza"))
	assert.Zero(t, fake.writes, "crontab must not be rewritten when nothing matches")
}
