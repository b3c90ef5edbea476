// Command classmapctl inspects class catalogs stored in a blob store.
package main

func main() {
	execute()
}
