package main

import (
	"github.com/Laisky/weather-widget/cmd"
)

func main() {
	cmd.Execute()
}
