package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestOnLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	assert.False(t, onLambda())

	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "blog-api")
	assert.True(t, onLambda())
}

func TestBootstrapFailsWithoutDatabaseCredentials(t *testing.T) {
	t.Setenv("BLOG_DATABASE_USER", "")
	t.Setenv("BLOG_DATABASE_PASSWORD", "")

	_, _, _, err := bootstrap()
	assert.Error(t, err)
}
