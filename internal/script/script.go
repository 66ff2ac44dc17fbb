// Package script compiles and runs user Lua scripts.
package script

import (
	"fmt"
	"sync"
	"time"

	"github.com/huewheel/huewheel/filesystem"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

type cacheKey struct {
	path    string
	modTime time.Time
}

var bytecodeCache sync.Map

// NewState returns a Lua state with the standard helper libraries preloaded.
func NewState() *lua.LState {
	state := lua.NewState()
	libs.Preload(state)
	return state
}

// PreCompileAndLoad runs the script at path inside L. Compiled prototypes are
// cached per path and modification time, so an edited script is recompiled.
func PreCompileAndLoad(L *lua.LState, path string) error {
	stat, err := filesystem.API().Stat(path)
	if err != nil {
		return err
	}

	k := cacheKey{path: path, modTime: stat.ModTime()}
	if cached, ok := bytecodeCache.Load(k); ok {
		return run(L, cached.(*lua.FunctionProto))
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return fmt.Errorf("compile %s: %w", path, err)
	}

	bytecodeCache.Store(k, proto)
	return run(L, proto)
}

func run(L *lua.LState, proto *lua.FunctionProto) error {
	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// Forget drops every cached prototype of path.
func Forget(path string) {
	bytecodeCache.Range(func(k, _ any) bool {
		if k.(cacheKey).path == path {
			bytecodeCache.Delete(k)
		}
		return true
	})
}

// Cached reports how many prototypes of path are cached.
func Cached(path string) (n int) {
	bytecodeCache.Range(func(k, _ any) bool {
		if k.(cacheKey).path == path {
			n++
		}
		return true
	})
	return
}
