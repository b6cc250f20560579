// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xenonlang/xnc/ast"
)

func TestResolveModulePathNonModDir(t *testing.T) {
	fsys := MapFS{
		"src/net/net.xn": true,
	}
	mp, err := ResolveModulePath(fsys, "src", "net", nil, false)
	require.NoError(t, err)
	require.Equal(t, "src/net/net.xn", mp.FsFile)
	require.False(t, mp.IsModDir)
}

func TestResolveModulePathModDirFallback(t *testing.T) {
	fsys := MapFS{
		"src/net/mod.xn": true,
	}
	mp, err := ResolveModulePath(fsys, "src", "net", nil, false)
	require.NoError(t, err)
	require.Equal(t, "src/net/mod.xn", mp.FsFile)
	require.True(t, mp.IsModDir)
}

func TestResolveModulePathFromModPath(t *testing.T) {
	fsys := MapFS{
		"src/io.xn": true,
	}
	mp, err := ResolveModulePath(fsys, "src", "io", nil, true)
	require.NoError(t, err)
	require.Equal(t, "src/io.xn", mp.FsFile)
}

func TestResolveModulePathNotFound(t *testing.T) {
	fsys := MapFS{}
	_, err := ResolveModulePath(fsys, "src", "missing", nil, false)
	require.Error(t, err)
	invalid, ok := err.(*ErrInvalidModulePath)
	require.True(t, ok)
	require.Len(t, invalid.Tried, 2)
}

func TestResolveModulePathExplicitAttr(t *testing.T) {
	fsys := MapFS{
		"src/custom/place.xn": true,
	}
	pathAttr := ast.FsPath{"custom", "place.xn"}
	mp, err := ResolveModulePath(fsys, "src", "ignored", &pathAttr, false)
	require.NoError(t, err)
	require.Equal(t, "src/custom/place.xn", mp.FsFile)
}
