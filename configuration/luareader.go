// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/roster/fault"
)

// tag on the fields of a configuration struct
const fieldTag = "gluamapper"

// ParseConfigurationFile - run a Lua script and copy the table it
// returns into the struct that config points to
//
// struct fields absent from the table keep their current values
func ParseConfigurationFile(fileName string, config interface{}) error {
	if !isStructPointer(config) {
		return fault.ErrInvalidStructPointer
	}

	table, err := evaluate(fileName)
	if nil != err {
		return err
	}
	return decode(table, config)
}

// evaluate - run the script with arg[0] holding its own path and
// return its final value
func evaluate(fileName string) (*lua.LTable, error) {
	state := lua.NewState()
	defer state.Close()

	scriptArguments := state.NewTable()
	scriptArguments.RawSetInt(0, lua.LString(fileName))
	state.SetGlobal("arg", scriptArguments)

	if err := state.DoFile(fileName); nil != err {
		return nil, err
	}

	result, ok := state.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fault.ErrConfigurationNotTable
	}
	return result, nil
}

func decode(table *lua.LTable, config interface{}) error {
	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: keepName,
		TagName:  fieldTag,
	})
	return mapper.Map(table, config)
}

// table keys match the tags exactly
func keepName(s string) string {
	return s
}

func isStructPointer(config interface{}) bool {
	v := reflect.ValueOf(config)
	return reflect.Ptr == v.Kind() && !v.IsNil() && reflect.Struct == v.Elem().Kind()
}
