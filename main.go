package main

import "github.com/JeremyDong22/gp-calculator/cmd"

func main() {
	cmd.Execute()
}
