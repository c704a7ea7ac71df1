// Command critbit-demo exercises the tree from the command line: inserting
// fake keys, timing a bench run, and walking a tree in ascending order.
package main

func main() {
	Execute()
}
