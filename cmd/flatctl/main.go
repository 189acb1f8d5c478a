package main

import (
	_ "github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/admin"
	_ "github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/listings"
	"github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/root"
	_ "github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/users"
)

func main() {
	root.Execute()
}
