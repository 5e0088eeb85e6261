// Command keysort stably sorts key/value records by 16-bit key.
package main

func main() {
	execute()
}
