/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/rlepack/rlepack/cmd/rlepack/cmd"
)

func main() {
	cmd.Execute()
}
