package codegen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compass-routing/compass-codegen/internal/codegen/writer"
)

// Test plan:
// 1. File counts per extension (1, 3, 4)
// 2. Rendering is deterministic
// 3. Generated content substitutes the PascalCase name and package name
// 4. Typed-config stub deserializes into the generated types; engine variant
//    cross-references Config from the engine file
// 5. Generate round-trips through disk byte-identically
// 6. Existing files abort generation unless force is set
// 7. Missing target directory fails without creating parents

func mustName(t *testing.T, s string) ModelName {
	t.Helper()
	name, err := ParseModelName(s)
	require.NoError(t, err)
	return name
}

func TestRenderTraversal_FileCounts(t *testing.T) {
	tests := []struct {
		ext  Extension
		want int
	}{
		{ext: ExtensionNone, want: 1},
		{ext: ExtensionTypedConfig, want: 3},
		{ext: ExtensionTypedConfigAndEngine, want: 4},
	}

	name := mustName(t, "FancyRobot")
	for _, tt := range tests {
		t.Run(tt.ext.String(), func(t *testing.T) {
			files, err := RenderTraversal(name, tt.ext)
			require.NoError(t, err)
			assert.Len(t, files, tt.want)
		})
	}
}

func TestRenderTraversal_Deterministic(t *testing.T) {
	name := mustName(t, "FancyRobot")
	for _, ext := range []Extension{ExtensionNone, ExtensionTypedConfig, ExtensionTypedConfigAndEngine} {
		t.Run(ext.String(), func(t *testing.T) {
			first, err := RenderTraversal(name, ext)
			require.NoError(t, err)
			second, err := RenderTraversal(name, ext)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestRenderTraversal_BaseStub(t *testing.T) {
	name := mustName(t, "FancyRobot")
	files, err := RenderTraversal(name, ExtensionNone)
	require.NoError(t, err)

	stub, ok := files["fancy_robot/fancy_robot.go"]
	require.True(t, ok, "expected stub file, got %v", keys(files))

	assert.Contains(t, stub, "package fancyrobot")
	assert.Contains(t, stub, "type FancyRobotBuilder struct{}")
	assert.Contains(t, stub, "type FancyRobotService struct{}")
	assert.Contains(t, stub, "type FancyRobotModel struct{}")
	assert.Contains(t, stub, `return "FancyRobotModel"`)
	// base stub ignores its JSON inputs and must not reference typed config
	assert.NotContains(t, stub, "FancyRobotConfig")
	assert.NotContains(t, stub, "FancyRobotParams")
}

func TestRenderTraversal_TypedConfig(t *testing.T) {
	name := mustName(t, "FancyRobot")
	files, err := RenderTraversal(name, ExtensionTypedConfig)
	require.NoError(t, err)

	require.Contains(t, files, "fancy_robot/fancy_robot.go")
	require.Contains(t, files, "fancy_robot/fancy_robot_config.go")
	require.Contains(t, files, "fancy_robot/fancy_robot_params.go")

	stub := files["fancy_robot/fancy_robot.go"]
	assert.Contains(t, stub, "var config FancyRobotConfig")
	assert.Contains(t, stub, "var params FancyRobotParams")
	assert.NotContains(t, stub, "FancyRobotEngine")

	assert.Contains(t, files["fancy_robot/fancy_robot_config.go"], "type FancyRobotConfig struct{}")
	assert.Contains(t, files["fancy_robot/fancy_robot_params.go"], "type FancyRobotParams struct{}")
}

func TestRenderTraversal_TypedConfigAndEngine(t *testing.T) {
	name := mustName(t, "FancyRobot")
	files, err := RenderTraversal(name, ExtensionTypedConfigAndEngine)
	require.NoError(t, err)

	require.Contains(t, files, "fancy_robot/fancy_robot_engine.go")

	stub := files["fancy_robot/fancy_robot.go"]
	assert.Contains(t, stub, "NewFancyRobotEngine(config)")

	// the engine file converts from the generated config type
	engine := files["fancy_robot/fancy_robot_engine.go"]
	assert.Contains(t, engine, "type FancyRobotEngine struct{}")
	assert.Contains(t, engine, "func NewFancyRobotEngine(config FancyRobotConfig)")
}

func TestGenerateTraversal_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	name := mustName(t, "FancyRobot")

	written, err := GenerateTraversal(dir, name, ExtensionTypedConfig, false)
	require.NoError(t, err)
	require.Len(t, written, 3)

	rendered, err := RenderTraversal(name, ExtensionTypedConfig)
	require.NoError(t, err)

	for rel, want := range rendered {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.Equal(t, want, string(data), "content mismatch for %s", rel)
	}
}

func TestGenerateTraversal_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	name := mustName(t, "FancyRobot")

	_, err := GenerateTraversal(dir, name, ExtensionNone, false)
	require.NoError(t, err)

	_, err = GenerateTraversal(dir, name, ExtensionNone, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, writer.ErrFileExists)

	// force overwrites
	_, err = GenerateTraversal(dir, name, ExtensionNone, true)
	assert.NoError(t, err)
}

func TestGenerateTraversal_MissingTargetDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	name := mustName(t, "FancyRobot")

	_, err := GenerateTraversal(missing, name, ExtensionNone, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, writer.ErrNotADirectory)

	_, statErr := os.Stat(missing)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "target parents must not be created")
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
