/*
Copyright (c) 2026 kimberlythegeek
*/

package main

import "github.com/kimberlythegeek/accessibility-dashboard/cmd"

func main() {
	cmd.Execute()
}
