package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"torment.dev/pkg/torment/pkg/loader"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

var sampleModules = []loader.Module{
	{ID: "fixtures.db", Path: "fixtures/db.go"},
	{ID: "fixtures.http.client", Path: "fixtures/http/client.go"},
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCmd()

	ui, err := NewUI(cmd, "")
	require.NoError(t, err)
	assert.IsType(t, &SimpleUI{}, ui)

	ui, err = NewUI(cmd, FormatYAML)
	require.NoError(t, err)
	assert.IsType(t, &YAMLUI{}, ui)

	_, err = NewUI(cmd, "xml")
	require.Error(t, err)
}

func TestSimpleUI_DisplayModules(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayModules(context.Background(), sampleModules, nil))

	output := out.String()
	assert.Contains(t, output, "MODULE")
	assert.Contains(t, output, "fixtures.http.client")
	assert.Contains(t, output, "fixtures/db.go")
	assert.Contains(t, output, "TOTAL MODULES 2")
}

func TestSimpleUI_DisplayModulesEmpty(t *testing.T) {
	cmd, out := newTestCmd()

	require.NoError(t, NewSimpleUI(cmd).DisplayModules(context.Background(), nil, nil))
	assert.Equal(t, "no modules found\n", out.String())
}

func TestSimpleUI_DisplayModulesError(t *testing.T) {
	cmd, out := newTestCmd()
	boom := errors.New("boom")

	err := NewSimpleUI(cmd).DisplayModules(context.Background(), nil, boom)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, out.String(), "discovery error: boom")
}

func TestYAMLUI_DisplayModules(t *testing.T) {
	cmd, out := newTestCmd()

	require.NoError(t, NewYAMLUI(cmd).DisplayModules(context.Background(), sampleModules, nil))

	var docs []moduleDocument
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &docs))
	assert.Equal(t, []moduleDocument{
		{Module: "fixtures.db", Path: "fixtures/db.go"},
		{Module: "fixtures.http.client", Path: "fixtures/http/client.go"},
	}, docs)
}

func TestDisplayModules_CancelledContext(t *testing.T) {
	cmd, out := newTestCmd()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, NewSimpleUI(cmd).DisplayModules(ctx, sampleModules, nil), context.Canceled)
	require.ErrorIs(t, NewYAMLUI(cmd).DisplayModules(ctx, sampleModules, nil), context.Canceled)
	assert.Empty(t, out.String())
}
