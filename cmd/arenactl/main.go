// Command arenactl runs text workloads through a region arena and reports
// how the arena grew and was reused.
package main

func main() {
	execute()
}
