package main

import "policyradar/cmd/handlers"

func main() {
	handlers.Execute()
}
