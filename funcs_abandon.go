package main

import (
	"github.com/sirkon/seme/internal/anchors"
)

// Some funcs are known for stopping current func execution or even stopping the whole program.
// They are collected into a single group, so the region shows the part of a function which
// can end up abandoning execution.
const abandonGroup = "exit"

func predefinedAbandonFuncs() map[anchors.Reference]string {
	return map[anchors.Reference]string{
		// Stdlib.
		{Package: "os", Name: "Exit"}:                     abandonGroup,
		{Package: "runtime", Name: "Goexit"}:              abandonGroup,
		{Package: "log", Name: "Fatal"}:                   abandonGroup,
		{Package: "log", Name: "Fatalf"}:                  abandonGroup,
		{Package: "log", Name: "Fatalln"}:                 abandonGroup,
		{Package: "log", Name: "Panic"}:                   abandonGroup,
		{Package: "log", Name: "Panicf"}:                  abandonGroup,
		{Package: "log", Name: "Panicln"}:                 abandonGroup,
		{Package: "log", Type: "Logger", Name: "Fatal"}:   abandonGroup,
		{Package: "log", Type: "Logger", Name: "Fatalf"}:  abandonGroup,
		{Package: "log", Type: "Logger", Name: "Fatalln"}: abandonGroup,
		{Package: "log", Type: "Logger", Name: "Panic"}:   abandonGroup,
		{Package: "log", Type: "Logger", Name: "Panicf"}:  abandonGroup,
		{Package: "log", Type: "Logger", Name: "Panicln"}: abandonGroup,
	}
}
