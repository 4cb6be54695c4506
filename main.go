package main

import (
	"fmt"
	"os"
	"tenantry/cmd/tenantry"
)

func main() {
	if err := tenantry.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
