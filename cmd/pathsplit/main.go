// Command pathsplit runs the path splitter from the command line: it can
// split a layer's paths against a configured grid, or emit the grid's cube
// mesh for external visualization.
package main

func main() {
	Execute()
}
