// Package main implements the threatkb CLI.
package main

func main() {
	Execute()
}
