package main

import (
	"fmt"
	"os"

	"github.com/openkpi/portal/pkg/api"
	"github.com/openkpi/portal/pkg/helpers"
)

func die(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
	os.Exit(1)
}

func main() {
	s, err := api.New()
	if err != nil {
		die(err)
	}

	port := helpers.CoalesceString(os.Getenv("PORT"), "8000")

	if err := s.Listen("http", fmt.Sprintf(":%s", port)); err != nil {
		die(err)
	}
}
