package main

import (
	"context"
	"fmt"
	"os"

	"github.com/example/portfolio/internal/cli"
	"github.com/example/portfolio/internal/wire"
)

func main() {
	err := cli.NewRootCmd().ExecuteContext(context.Background())
	if cerr := wire.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
