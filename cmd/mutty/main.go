package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/Orange-Icepop/ReverseMutty/internal/cli"
	"github.com/Orange-Icepop/ReverseMutty/internal/generator"
	"github.com/Orange-Icepop/ReverseMutty/internal/parser"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := parser.New()
	g := generator.New(generator.NewGoimportsFormatter())
	reg := generator.NewFileRegistrar()
	if cfg.DryRun {
		reg = generator.NewStreamRegistrar(os.Stdout)
	}

	runner := cli.NewRunner(p, g, reg)
	if err := runner.Run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
