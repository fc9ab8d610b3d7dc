package main

import (
	"github.com/Ulysses-Xu/go-dbase/cmd/dbfedit/cmd"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func main() {
	cmd.Execute()
}
