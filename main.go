// main is the entry point for the githistory CLI.
package main

import (
	"github.com/huangsam/githistory/cmd"
	"github.com/huangsam/githistory/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("githistory failed", err)
	}
}
