// Package custom loads user-defined harmony rules written in Lua.
//
// A rule script lives in the rules directory and defines a global function
// returning the hue offsets, plus an optional description:
//
//	Description = "Golden angle"
//
//	function Offsets()
//		return { 0, 137.5, 275 }
//	end
package custom

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/huewheel/huewheel/constant"
	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/internal/script"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/log"
	"github.com/huewheel/huewheel/util"
	"github.com/huewheel/huewheel/where"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

const Extension = ".lua"

var ErrInvalidRule = errors.New("invalid rule script")

// Path returns where a rule with the given name is stored.
func Path(name string) string {
	return filepath.Join(where.Rules(), name+Extension)
}

// Load runs the script and reads its offsets.
func Load(path string) (harmony.Rule, error) {
	state := script.NewState()
	defer state.Close()

	if err := script.PreCompileAndLoad(state, path); err != nil {
		return harmony.Rule{}, err
	}

	name := util.FileStem(path)

	fn := state.GetGlobal(constant.RuleOffsetsFn)
	if fn.Type() != lua.LTFunction {
		return harmony.Rule{}, fmt.Errorf("%w: function %s is required but not defined in %s", ErrInvalidRule, constant.RuleOffsetsFn, name)
	}

	if err := state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}); err != nil {
		return harmony.Rule{}, fmt.Errorf("%s: %w", name, err)
	}

	ret := state.Get(-1)
	state.Pop(1)

	offsets, err := offsetsFromValue(ret)
	if err != nil {
		return harmony.Rule{}, fmt.Errorf("%s: %w", name, err)
	}

	var description string
	if desc := state.GetGlobal(constant.RuleDescriptionVar); desc.Type() == lua.LTString {
		description = desc.String()
	}

	return harmony.Rule{
		Name:        name,
		Description: description,
		Offsets:     offsets,
		Custom:      true,
	}, nil
}

func offsetsFromValue(value lua.LValue) ([]float64, error) {
	table, ok := value.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: %s must return a table, got %s", ErrInvalidRule, constant.RuleOffsetsFn, value.Type())
	}

	var offsets []float64
	for i := 1; i <= table.Len(); i++ {
		v := table.RawGetInt(i)
		n, ok := v.(lua.LNumber)
		if !ok {
			return nil, fmt.Errorf("%w: offset #%d is a %s, not a number", ErrInvalidRule, i, v.Type())
		}

		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: offset #%d is not finite", ErrInvalidRule, i)
		}

		offsets = append(offsets, f)
	}

	if len(offsets) == 0 {
		return nil, harmony.ErrEmptyRule
	}

	return offsets, nil
}

// Rules loads every script in the rules directory. Broken scripts are
// logged and skipped. Nothing is loaded when rules.enable is off.
func Rules() ([]harmony.Rule, error) {
	if !viper.GetBool(key.RulesEnable) {
		return nil, nil
	}

	files, err := filesystem.API().ReadDir(where.Rules())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var rules []harmony.Rule
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != Extension {
			continue
		}

		rule, err := Load(filepath.Join(where.Rules(), f.Name()))
		if err != nil {
			log.WithFields(log.Fields{"rule": f.Name()}).Warn(err)
			continue
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

// All returns built-in rules followed by custom ones.
func All() []harmony.Rule {
	customs, err := Rules()
	if err != nil {
		log.Warn(err)
	}

	return append(harmony.Builtins(), customs...)
}

// Lookup resolves a rule by name. Built-ins shadow custom rules.
func Lookup(name string) (harmony.Rule, error) {
	return harmony.Find(name, All())
}
