package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/vast-data/go-openstack-codegen/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "openstack-codegen: %v\n", err)
		os.Exit(1)
	}
}
