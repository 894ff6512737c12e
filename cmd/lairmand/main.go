/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/lairworks/lairman/cmd/lairmand/cmd"

func main() {
	cmd.Execute()
}
