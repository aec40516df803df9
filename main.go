package main

import (
	"github.com/Leandriiito/Cart-API-Service/cmd"
)

func main() {
	cmd.Start()
}
