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
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
)

// FS is the minimal filesystem surface the module path resolver needs;
// production use backs it with os.DirFS, tests back it with a map so the
// algorithm can be exercised without touching disk.
type FS interface {
	// Exists reports whether path names a regular file.
	Exists(path string) bool
}

// MapFS is a virtual filesystem literal, for declarative resolver fixtures:
// the resolver tests write each one as a Go map literal.
type MapFS map[string]bool

func (m MapFS) Exists(p string) bool { return m[p] }

// ModulePath is the resolved outcome of locating an out-of-line `mod name;`
// item on disk (§4.4).
type ModulePath struct {
	// FsFile is the filesystem path of the module's root source file,
	// relative to the enclosing module's own directory resolution.
	FsFile string
	// IsModDir reports whether FsFile is a `<name>/mod.xn`-shaped file,
	// which matters for the enclosing directory used to resolve this
	// module's own nested `mod` items.
	IsModDir bool
}

// ErrInvalidModulePath is the shape of the E-AstInvalidModulePath
// diagnostic payload: the module resolver always lists every candidate it
// tried, so the user can see exactly why resolution failed.
type ErrInvalidModulePath struct {
	Tried []string
}

func (e *ErrInvalidModulePath) Error() string {
	return "no module file found; tried: " + strings.Join(e.Tried, ", ")
}

// ResolveModulePath finds the file backing `mod name;` declared in a file
// at dir (the enclosing module's own directory, already resolved), honoring
// an optional explicit `path` attribute (pathAttr, relative to dir) and
// whether the enclosing module is itself a mod-path directory module
// (enclosingIsModDir), per §4.4's candidate-ordering algorithm (grounded on
// ast_passes/module_symbol_generation.rs):
//
//   - an explicit path attribute is tried first, verbatim (relative to dir),
//     and is the only candidate tried in that case;
//   - otherwise, if the enclosing module is a mod-path module (its own file
//     is named mod.xn), candidates are tried in the order
//     "<dir>/<name>.xn", then "<dir>/<name>/mod.xn";
//   - otherwise (the enclosing module's file is "<parent>/<enclosing>.xn"),
//     candidates are tried in the order "<dir>/<name>/<name>.xn", then
//     "<dir>/<name>/mod.xn".
func ResolveModulePath(fsys FS, dir string, name string, pathAttr *ast.FsPath, enclosingIsModDir bool) (ModulePath, error) {
	if pathAttr != nil {
		candidate := path.Join(append([]string{dir}, *pathAttr...)...)
		if fsys.Exists(candidate) {
			return ModulePath{FsFile: candidate, IsModDir: strings.HasSuffix(candidate, "/mod.xn")}, nil
		}
		return ModulePath{}, &ErrInvalidModulePath{Tried: []string{candidate}}
	}

	var tried []string
	tryCandidate := func(p string) (ModulePath, bool) {
		tried = append(tried, p)
		if fsys.Exists(p) {
			return ModulePath{FsFile: p, IsModDir: strings.HasSuffix(p, "/mod.xn")}, true
		}
		return ModulePath{}, false
	}

	if enclosingIsModDir {
		if mp, ok := tryCandidate(path.Join(dir, name+".xn")); ok {
			return mp, nil
		}
		if mp, ok := tryCandidate(path.Join(dir, name, "mod.xn")); ok {
			return mp, nil
		}
	} else {
		if mp, ok := tryCandidate(path.Join(dir, name, name+".xn")); ok {
			return mp, nil
		}
		if mp, ok := tryCandidate(path.Join(dir, name, "mod.xn")); ok {
			return mp, nil
		}
	}
	return ModulePath{}, &ErrInvalidModulePath{Tried: tried}
}

// ListModuleSources returns every ".xn" source file under root, sorted,
// using a doublestar glob so the module discovery step and its diagnostics
// can show the full candidate set a `mod` item could conceivably have
// named, not just the two or three the ordered algorithm above actually
// probes.
func ListModuleSources(fsys fs.FS) ([]string, error) {
	return doublestar.Glob(fsys, "**/*.xn")
}

// SymPath derives the symbol-table Scope for a newly resolved submodule:
// the parent scope with one SegmentModule appended.
func SymPath(parent ast.Scope, name intern.ID) ast.Scope {
	return parent.Child(ast.ScopeSegment{Name: name, Kind: ast.SegmentModule})
}
