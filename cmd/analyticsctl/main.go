package main

import "github.com/aaravmahajanofficial/ecommerce-analytics/cmd/analyticsctl/commands"

func main() {
	commands.Execute()
}
