package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_RendersHeadersAndRows(t *testing.T) {
	tbl := NewTable("KEY", "VALUE", "SOURCE").
		Row("packageManager", "yarn", "env").
		Row("skipGit", "false", "default")

	out := tbl.String()
	assert.Equal(t, 2, tbl.Len())
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "packageManager")
	assert.Contains(t, out, "yarn")
	assert.Contains(t, out, "default")
}
