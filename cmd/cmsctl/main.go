package main

import (
	"log"

	"doris-art/cmd/cmsctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
