package main

import "github.com/olivierh59500/particle-field-go/cmd"

func main() {
	cmd.Execute()
}
