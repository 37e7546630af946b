package root_test

import (
	"testing"

	"fjacquet/expense-tracker/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "expense-tracker", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "free-form expense text")
	assert.Contains(t, root.Cmd.Long, "structured records")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
}
