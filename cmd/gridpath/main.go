// Command gridpath searches grid scenarios from the terminal or over HTTP.
package main

func main() {
	Execute()
}
