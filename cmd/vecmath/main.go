// Command vecmath evaluates 2D vector operations on vectors given as x,y.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
